package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"roamai/internal/models/travel_models"
	"roamai/pkg/utils"
)

const maxActivitiesPerDay = 3

// ScheduleRequest carries everything the scheduler needs for one trip.
// ActivityPriceCeiling is the per-person ceiling handed down by the budget
// allocation; zero means no ceiling.
type ScheduleRequest struct {
	Preferences          travel_models.Preferences
	Destination          travel_models.Location
	Traveler             travel_models.TravelerDetails
	ActivityPriceCeiling float64
	PrioritizeLuxury     bool
}

type SchedulerServiceInterface interface {
	BuildDailyItineraries(ctx context.Context, req ScheduleRequest) ([]travel_models.DailyItinerary, []travel_models.Booking, error)
}

type SchedulerService struct {
	activityService ActivityServiceInterface
	rand            *utils.RandSource
}

func NewSchedulerService(activityService ActivityServiceInterface, rand *utils.RandSource) SchedulerServiceInterface {
	return &SchedulerService{
		activityService: activityService,
		rand:            rand,
	}
}

// BuildDailyItineraries fills every day of the trip. Day 1 and the last day
// become travel days when the trip runs longer than three days. The other
// days get up to three booked activities, restaurant picks, and a transport
// chain from the hotel through each activity and back.
func (s *SchedulerService) BuildDailyItineraries(ctx context.Context, req ScheduleRequest) ([]travel_models.DailyItinerary, []travel_models.Booking, error) {
	tripDuration := req.Preferences.TripDuration()

	var days []travel_models.DailyItinerary
	var bookings []travel_models.Booking

	currentDate := req.Preferences.StartDate
	for dayNumber := 1; dayNumber <= tripDuration; dayNumber++ {
		if (dayNumber == 1 || dayNumber == tripDuration) && tripDuration > 3 {
			days = append(days, travel_models.DailyItinerary{
				Date:           currentDate,
				DayNumber:      dayNumber,
				Activities:     []travel_models.Activity{},
				Restaurants:    []travel_models.Restaurant{},
				Transportation: []travel_models.Transportation{},
				Notes:          "Travel day. No activities planned.",
			})
			currentDate = currentDate.AddDate(0, 0, 1)
			continue
		}

		activities, err := s.activityService.SearchActivities(ctx, ActivitySearchCriteria{
			Destination:       req.Destination,
			Date:              currentDate,
			Interests:         req.Preferences.Interests,
			Travelers:         req.Preferences.Travelers,
			MaxPricePerPerson: req.ActivityPriceCeiling,
		})
		if err != nil {
			return nil, nil, err
		}

		if len(activities) > maxActivitiesPerDay {
			activities = activities[:maxActivitiesPerDay]
		}

		var booked []travel_models.Activity
		for _, activity := range activities {
			booking, err := s.activityService.BookActivity(ctx, activity, req.Traveler)
			if err != nil || booking == nil {
				log.Printf("Skipping activity %s: booking failed", activity.Name)
				continue
			}
			bookings = append(bookings, *booking)
			booked = append(booked, activity)
		}

		days = append(days, travel_models.DailyItinerary{
			Date:           currentDate,
			DayNumber:      dayNumber,
			Activities:     booked,
			Restaurants:    s.pickRestaurants(req.Destination, req.PrioritizeLuxury),
			Transportation: s.buildTransportChain(booked, currentDate),
			Notes:          fmt.Sprintf("Day %d of your %s adventure.", dayNumber, req.Destination.City),
		})
		currentDate = currentDate.AddDate(0, 0, 1)
	}

	return days, bookings, nil
}

var restaurantTypes = []string{"Local Cuisine", "Fine Dining", "Casual Dining", "Street Food", "Cafe"}

func (s *SchedulerService) pickRestaurants(destination travel_models.Location, prioritizeLuxury bool) []travel_models.Restaurant {
	count := s.rand.IntBetween(1, 2)

	restaurants := make([]travel_models.Restaurant, 0, count)
	for i := 0; i < count; i++ {
		restaurantType := restaurantTypes[s.rand.IntN(len(restaurantTypes))]
		if prioritizeLuxury {
			restaurantType = "Fine Dining"
		}

		var name string
		var cuisine []string
		var priceRange string
		var rating float64

		switch restaurantType {
		case "Local Cuisine":
			name = "Authentic " + destination.City + " Kitchen"
			cuisine = []string{"Local", destination.Country + " Cuisine"}
			priceRange = "$"
			if prioritizeLuxury {
				priceRange = "$$"
			}
			rating = s.rand.FloatBetween(4.0, 4.5)
		case "Fine Dining":
			name = "The " + s.pick("Grand", "Royal", "Luxe", "Elite") + " " + s.pick("Table", "Bistro", "Brasserie", "Garden")
			cuisine = []string{"Fine Dining", "International", s.pick("French", "Italian", "Japanese", "Fusion")}
			priceRange = "$$$"
			if prioritizeLuxury {
				priceRange = "$$$$"
			}
			rating = s.rand.FloatBetween(4.5, 5.0)
		case "Casual Dining":
			name = s.pick("Sunny", "Happy", "Urban", "Village") + " " + s.pick("Kitchen", "Grill", "Diner", "Cafe")
			cuisine = []string{"Casual", "International", s.pick("American", "Mediterranean", "Asian", "Fusion")}
			priceRange = "$$"
			rating = s.rand.FloatBetween(3.5, 4.5)
		case "Street Food":
			name = destination.City + " Street Food Market"
			cuisine = []string{"Street Food", "Local", "Fast Food"}
			priceRange = "$"
			rating = s.rand.FloatBetween(4.0, 4.8)
		default:
			name = s.pick("Morning", "Sunny", "City", "Artisan") + " " + s.pick("Cafe", "Coffee", "Bakery", "Patisserie")
			cuisine = []string{"Cafe", "Coffee", "Bakery"}
			priceRange = "$"
			if prioritizeLuxury {
				priceRange = "$$"
			}
			rating = s.rand.FloatBetween(4.0, 4.6)
		}

		restaurants = append(restaurants, travel_models.Restaurant{
			RestaurantID:   utils.GenerateID("R"),
			Name:           name,
			Description:    fmt.Sprintf("A %s restaurant offering %s in a charming setting.", strings.ToLower(restaurantType), strings.ToLower(strings.Join(cuisine, ", "))),
			Location:       destination,
			Cuisine:        cuisine,
			PriceRange:     priceRange,
			Rating:         utils.Round1(rating),
			ReservationURL: "https://example.com/reserve/" + utils.GenerateID(""),
			OpeningHours: map[string]string{
				"Monday":    "11:00-22:00",
				"Tuesday":   "11:00-22:00",
				"Wednesday": "11:00-22:00",
				"Thursday":  "11:00-22:00",
				"Friday":    "11:00-23:00",
				"Saturday":  "11:00-23:00",
				"Sunday":    "11:00-22:00",
			},
			Images: []string{
				"https://example.com/images/restaurant1.jpg",
				"https://example.com/images/restaurant2.jpg",
			},
		})
	}

	return restaurants
}

var transportTypes = []string{"Taxi", "Public Transport", "Rideshare", "Walking", "Rental Car"}

// buildTransportChain links Hotel -> activity1 -> ... -> Hotel with one leg
// per hop. No activities means no legs.
func (s *SchedulerService) buildTransportChain(activities []travel_models.Activity, date time.Time) []travel_models.Transportation {
	if len(activities) == 0 {
		return []travel_models.Transportation{}
	}

	legs := make([]travel_models.Transportation, 0, len(activities)+1)
	prevLocation := "Hotel"
	for _, activity := range activities {
		legs = append(legs, s.buildTransportLeg(prevLocation, activity.Name, date, activity.StartTime))
		prevLocation = activity.Name
	}
	legs = append(legs, s.buildTransportLeg(prevLocation, "Hotel", date, ""))

	return legs
}

func (s *SchedulerService) buildTransportLeg(from, to string, date time.Time, departAt string) travel_models.Transportation {
	transportType := transportTypes[s.rand.IntN(len(transportTypes))]

	var price float64
	switch transportType {
	case "Taxi":
		price = s.rand.FloatBetween(15, 30)
	case "Public Transport":
		price = s.rand.FloatBetween(1, 5)
	case "Rideshare":
		price = s.rand.FloatBetween(10, 25)
	case "Walking":
		price = 0
	default:
		price = s.rand.FloatBetween(30, 60)
	}

	bookingURL := ""
	if transportType == "Taxi" || transportType == "Rideshare" || transportType == "Rental Car" {
		bookingURL = "https://example.com/transportation/" + utils.GenerateID("")
	}

	return travel_models.Transportation{
		Type:         transportType,
		FromLocation: from,
		ToLocation:   to,
		Date:         date,
		Time:         departAt,
		Price:        utils.Round2(price),
		BookingURL:   bookingURL,
		Details:      s.transportDetails(transportType),
	}
}

func (s *SchedulerService) transportDetails(transportType string) map[string]string {
	details := make(map[string]string)

	switch transportType {
	case "Taxi":
		details["company"] = s.pick("City Taxi", "Metro Cab", "Express Taxi")
		details["contact"] = fmt.Sprintf("+1-555-%03d-%04d", s.rand.IntBetween(100, 999), s.rand.IntBetween(1000, 9999))
	case "Public Transport":
		details["line"] = "Line " + s.pick("A", "B", "C", "1", "2", "3")
		details["stops"] = strconv.Itoa(s.rand.IntBetween(2, 6))
		details["frequency"] = fmt.Sprintf("Every %d minutes", s.rand.IntBetween(5, 15))
	case "Rideshare":
		details["company"] = s.pick("Uber", "Lyft", "Careem", "Bolt")
		details["estimated_wait"] = fmt.Sprintf("%d minutes", s.rand.IntBetween(3, 10))
	case "Walking":
		details["distance"] = fmt.Sprintf("%.1f km", s.rand.FloatBetween(0.5, 2.0))
		details["estimated_time"] = fmt.Sprintf("%d minutes", s.rand.IntBetween(10, 30))
	default:
		details["company"] = s.pick("Hertz", "Avis", "Enterprise", "Budget")
		details["car_type"] = s.pick("Economy", "Compact", "Mid-size", "SUV", "Luxury")
		details["pickup_location"] = "Hotel"
	}

	return details
}

func (s *SchedulerService) pick(options ...string) string {
	return options[s.rand.IntN(len(options))]
}
