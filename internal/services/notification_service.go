package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"log"
	"net"
	"net/smtp"
	"strings"
	"text/template"
	"time"

	"roamai/internal/models/travel_models"
	"roamai/pkg/utils"
)

type NotificationServiceInterface interface {
	SendBookingConfirmation(itinerary travel_models.TravelItinerary, recipientEmail string) bool
	SendTravelAlert(recipientEmail, alertMessage string) bool
}

// SMTPConfig holds the mail transport settings. An empty Host puts the
// service in log-only mode, which is how demos and tests run.
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	FromName   string
	UseSSL     bool
	RequireTLS bool
}

func SMTPConfigFromEnv() SMTPConfig {
	return SMTPConfig{
		Host:       utils.GetEnvWithDefault("SMTP_HOST", ""),
		Port:       utils.GetEnvInt("SMTP_PORT", 587),
		Username:   utils.GetEnvWithDefault("SMTP_USERNAME", ""),
		Password:   utils.GetEnvWithDefault("SMTP_PASSWORD", ""),
		From:       utils.GetEnvWithDefault("SMTP_FROM", "no-reply@roamai.example.com"),
		FromName:   utils.GetEnvWithDefault("SMTP_FROM_NAME", "RoamAI"),
		UseSSL:     utils.GetEnvBool("SMTP_USE_SSL", false),
		RequireTLS: utils.GetEnvBool("SMTP_REQUIRE_TLS", false),
	}
}

type NotificationService struct {
	cfg             SMTPConfig
	confirmationTpl *template.Template
	alertTpl        *template.Template
}

func NewNotificationService(cfg SMTPConfig) NotificationServiceInterface {
	return &NotificationService{
		cfg:             cfg,
		confirmationTpl: template.Must(template.New("confirmation").Parse(confirmationTemplate)),
		alertTpl:        template.Must(template.New("alert").Parse(alertTemplate)),
	}
}

type flightSummary struct {
	Direction string
	Airline   string
	Number    string
	Route     string
	Departing string
	Cabin     string
}

type bookingSummary struct {
	Type      string
	Reference string
	Status    string
}

type confirmationData struct {
	City      string
	Country   string
	StartDate string
	EndDate   string
	Travelers int
	TotalCost string
	Flights   []flightSummary
	HasHotel  bool
	HotelName string
	RoomType  string
	Bookings  []bookingSummary
	Notes     string
}

const confirmationTemplate = `Dear Traveler,

Thank you for booking your trip to {{.City}}, {{.Country}} with RoamAI. Your booking is confirmed!

Itinerary Summary:
-----------------
Destination: {{.City}}, {{.Country}}
Dates: {{.StartDate}} to {{.EndDate}}
Travelers: {{.Travelers}}
Total Cost: ${{.TotalCost}}

Booking References:
-----------------
{{- if .Flights}}
Flights:
{{- range .Flights}}
- {{.Direction}}: {{.Airline}} {{.Number}}
  {{.Route}}
  Departing: {{.Departing}}
  Cabin: {{.Cabin}}
{{- end}}
{{- end}}
{{- if .HasHotel}}

Accommodation:
- {{.HotelName}}
  Room: {{.RoomType}}
  Check-in: {{.StartDate}}
  Check-out: {{.EndDate}}
{{- end}}

Your Booking References:
{{- range .Bookings}}
- {{.Type}}: {{.Reference}} ({{.Status}})
{{- end}}
{{- if .Notes}}

Notes:
{{.Notes}}
{{- end}}

Thank you for choosing RoamAI for your travel needs.
For any questions, please contact our support team.

Safe travels!
The RoamAI Team
`

const alertTemplate = `Dear Traveler,

IMPORTANT TRAVEL ALERT:

{{.Message}}

This alert is provided to help you stay informed about your upcoming or current travel.
Please take any necessary actions to ensure your safety and convenience.

If you have any questions, please contact our support team.

Safe travels!
The RoamAI Team
`

// SendBookingConfirmation emails an itinerary summary with every booking
// reference. Returns false instead of an error so callers can report
// delivery status without aborting.
func (n *NotificationService) SendBookingConfirmation(itinerary travel_models.TravelItinerary, recipientEmail string) bool {
	log.Printf("Sending booking confirmation to %s", recipientEmail)

	data := confirmationData{
		City:      itinerary.Destination.City,
		Country:   itinerary.Destination.Country,
		StartDate: utils.FormatDate(itinerary.StartDate),
		EndDate:   utils.FormatDate(itinerary.EndDate),
		Travelers: itinerary.UserPreferences.Travelers,
		TotalCost: fmt.Sprintf("%.2f", itinerary.TotalCost),
		Notes:     itinerary.Notes,
	}

	for i, flight := range itinerary.Flights {
		direction := "Outbound"
		if i > 0 {
			direction = "Return"
		}
		data.Flights = append(data.Flights, flightSummary{
			Direction: direction,
			Airline:   flight.Airline,
			Number:    flight.FlightNumber,
			Route:     flight.DepartureAirport + " to " + flight.ArrivalAirport,
			Departing: utils.FormatDateTime(flight.DepartureTime),
			Cabin:     flight.CabinClass,
		})
	}

	if itinerary.Accommodation != nil {
		data.HasHotel = true
		data.HotelName = itinerary.Accommodation.Name
		data.RoomType = itinerary.Accommodation.RoomType
	}

	for _, booking := range itinerary.Bookings {
		data.Bookings = append(data.Bookings, bookingSummary{
			Type:      capitalize(booking.BookingType),
			Reference: booking.ReferenceNumber,
			Status:    booking.Status,
		})
	}

	var body bytes.Buffer
	if err := n.confirmationTpl.Execute(&body, data); err != nil {
		log.Printf("Error rendering booking confirmation: %v", err)
		return false
	}

	subject := "Your Travel Booking Confirmation - " + itinerary.Destination.City
	return n.deliver(recipientEmail, subject, body.String())
}

func (n *NotificationService) SendTravelAlert(recipientEmail, alertMessage string) bool {
	log.Printf("Sending travel alert to %s", recipientEmail)

	var body bytes.Buffer
	if err := n.alertTpl.Execute(&body, struct{ Message string }{alertMessage}); err != nil {
		log.Printf("Error rendering travel alert: %v", err)
		return false
	}

	return n.deliver(recipientEmail, "Important Travel Alert from RoamAI", body.String())
}

func (n *NotificationService) deliver(to, subject, body string) bool {
	if n.cfg.Host == "" {
		log.Printf("Email Subject: %s", subject)
		log.Printf("Email Body: %s", truncate(body, 500))
		return true
	}

	if err := n.send(to, subject, body); err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
		return false
	}
	return true
}

func (n *NotificationService) send(to, subject, body string) error {
	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s\r\n", n.formatFromHeader())
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n")
	write("\r\n")
	write("%s\r\n", body)

	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	auth := smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)

	if n.cfg.UseSSL {
		// SMTPS (implicit TLS, usually port 465)
		tlsCfg := &tls.Config{ServerName: n.cfg.Host, MinVersion: tls.VersionTLS12}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		c, err := smtp.NewClient(conn, n.cfg.Host)
		if err != nil {
			return err
		}
		defer c.Quit()

		return n.transmit(c, auth, to, msg.Bytes())
	}

	// STARTTLS path (typically port 587)
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, n.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: n.cfg.Host, MinVersion: tls.VersionTLS12}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	} else if n.cfg.RequireTLS {
		return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
	}

	return n.transmit(c, auth, to, msg.Bytes())
}

func (n *NotificationService) transmit(c *smtp.Client, auth smtp.Auth, to string, msg []byte) error {
	if n.cfg.Username != "" {
		if err := c.Auth(auth); err != nil {
			return err
		}
	}
	if err := c.Mail(n.cfg.From); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

func (n *NotificationService) formatFromHeader() string {
	name := strings.TrimSpace(n.cfg.FromName)
	if name == "" {
		return n.cfg.From
	}
	return fmt.Sprintf("%s <%s>", name, n.cfg.From)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
