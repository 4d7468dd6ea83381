package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"roamai/cmd/fx/ai_fx"
	"roamai/cmd/fx/controllers_fx"
	"roamai/cmd/fx/mail_fx"
	"roamai/cmd/fx/planner_fx"
	"roamai/cmd/fx/providers_fx"
	"roamai/internal/api/controllers"
	"roamai/pkg/middleware"
	"roamai/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		ai_fx.Module,
		providers_fx.Module,
		planner_fx.Module,
		mail_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := utils.GetEnvWithDefault("PORT", "8080")
			go func() {
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	travelController *controllers.TravelController,
	notificationController *controllers.NotificationController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, travelController, notificationController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	travelController *controllers.TravelController,
	notificationController *controllers.NotificationController) {

	travelGroup := r.Group("/travel")
	travelGroup.POST("/recommendations", travelController.RecommendDestinations)
	travelGroup.POST("/itinerary", travelController.CreateItinerary)
	travelGroup.GET("/trending", travelController.GetTrendingDestinations)
	travelGroup.GET("/social-content/:destination", travelController.GetSocialContent)
	travelGroup.POST("/pilgrimage", travelController.GetPilgrimageInfo)

	notificationGroup := travelGroup.Group("/notifications")
	notificationGroup.POST("/confirmation", notificationController.SendBookingConfirmation)
	notificationGroup.POST("/alert", notificationController.SendTravelAlert)
}
