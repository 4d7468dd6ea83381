package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"roamai/internal/models/request_models"
	"roamai/internal/models/response_models"
	"roamai/internal/services"
	"roamai/pkg/utils"
)

type NotificationController struct {
	notificationService services.NotificationServiceInterface
}

func NewNotificationController(notificationService services.NotificationServiceInterface) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

// SendBookingConfirmation godoc
// @Summary Send a booking confirmation email
// @Description Email an itinerary summary with all booking references to the recipient
// @Tags Notification
// @Accept json
// @Produce json
// @Param request body request_models.ConfirmationRequest true "Confirmation request"
// @Success 200 {object} response_models.NotificationResponse
// @Failure 400 {object} utils.APIResponse
// @Router /travel/notifications/confirmation [post]
func (n *NotificationController) SendBookingConfirmation(c *gin.Context) {
	var req request_models.ConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	sent := n.notificationService.SendBookingConfirmation(req.Itinerary, req.Recipient)

	utils.RespondSuccess(c, response_models.NotificationResponse{
		Sent:      sent,
		Recipient: req.Recipient,
		Subject:   "Your Travel Booking Confirmation - " + req.Itinerary.Destination.City,
	}, "Booking confirmation processed")
}

// SendTravelAlert godoc
// @Summary Send a travel alert email
// @Description Email an important travel alert to the recipient
// @Tags Notification
// @Accept json
// @Produce json
// @Param request body request_models.AlertRequest true "Alert request"
// @Success 200 {object} response_models.NotificationResponse
// @Failure 400 {object} utils.APIResponse
// @Router /travel/notifications/alert [post]
func (n *NotificationController) SendTravelAlert(c *gin.Context) {
	var req request_models.AlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	sent := n.notificationService.SendTravelAlert(req.Recipient, req.Message)

	utils.RespondSuccess(c, response_models.NotificationResponse{
		Sent:      sent,
		Recipient: req.Recipient,
		Subject:   "Important Travel Alert from RoamAI",
	}, "Travel alert processed")
}
