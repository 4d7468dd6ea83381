package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"roamai/internal/models/travel_models"
	"roamai/pkg/utils"
)

// Airline is immutable catalog data; providers hold it by value and never
// mutate it, so concurrent planning runs can share one service.
type Airline struct {
	Name     string
	Rating   float64
	IsLuxury bool
}

type FlightCatalog struct {
	Airlines []Airline
	Airports map[string]string // code -> city served
}

func DefaultFlightCatalog() FlightCatalog {
	return FlightCatalog{
		Airlines: []Airline{
			{Name: "Emirates", Rating: 5, IsLuxury: true},
			{Name: "Qatar Airways", Rating: 5, IsLuxury: true},
			{Name: "Etihad Airways", Rating: 5, IsLuxury: true},
			{Name: "Singapore Airlines", Rating: 5, IsLuxury: true},
			{Name: "Lufthansa", Rating: 4, IsLuxury: false},
			{Name: "British Airways", Rating: 4, IsLuxury: false},
			{Name: "Air France", Rating: 4, IsLuxury: false},
			{Name: "KLM", Rating: 4, IsLuxury: false},
			{Name: "Delta Airlines", Rating: 3, IsLuxury: false},
			{Name: "American Airlines", Rating: 3, IsLuxury: false},
			{Name: "United Airlines", Rating: 3, IsLuxury: false},
			{Name: "Saudia", Rating: 4, IsLuxury: false},
			{Name: "Turkish Airlines", Rating: 4, IsLuxury: false},
		},
		Airports: map[string]string{
			"DXB": "Dubai",
			"AUH": "Abu Dhabi",
			"DOH": "Doha",
			"RUH": "Riyadh",
			"JED": "Jeddah",
			"CAI": "Cairo",
			"IST": "Istanbul",
			"LHR": "London",
			"CDG": "Paris",
			"JFK": "New York",
			"LAX": "Los Angeles",
			"SIN": "Singapore",
			"HKG": "Hong Kong",
			"SYD": "Sydney",
			"NRT": "Tokyo",
		},
	}
}

const (
	CabinEconomy        = "Economy"
	CabinPremiumEconomy = "Premium Economy"
	CabinBusiness       = "Business"
	CabinFirst          = "First"
)

// flightOffersPerSearch is the fixed candidate pool size per search call.
const flightOffersPerSearch = 5

type FlightSearchCriteria struct {
	Origin           string
	Destination      string
	DepartureDate    time.Time
	Passengers       int
	CabinClass       string
	PrioritizeLuxury bool
}

type FlightServiceInterface interface {
	SearchFlights(ctx context.Context, criteria FlightSearchCriteria) ([]travel_models.Flight, error)
	BookFlight(ctx context.Context, flight travel_models.Flight, traveler travel_models.TravelerDetails) (*travel_models.Booking, error)
}

type FlightService struct {
	catalog FlightCatalog
	rand    *utils.RandSource
	luxury  map[string]bool // airline name -> luxury flag, derived once
}

func NewFlightService(catalog FlightCatalog, rand *utils.RandSource) FlightServiceInterface {
	luxury := make(map[string]bool, len(catalog.Airlines))
	for _, a := range catalog.Airlines {
		luxury[a.Name] = a.IsLuxury
	}
	return &FlightService{
		catalog: catalog,
		rand:    rand,
		luxury:  luxury,
	}
}

// SearchFlights generates a fresh candidate pool for one leg. Candidates are
// ephemeral; nothing is cached across calls.
func (f *FlightService) SearchFlights(ctx context.Context, criteria FlightSearchCriteria) ([]travel_models.Flight, error) {
	log.Printf("Searching flights from %s to %s on %s", criteria.Origin, criteria.Destination, criteria.DepartureDate.Format("2006-01-02"))

	if criteria.Passengers < 1 {
		criteria.Passengers = 1
	}
	if criteria.CabinClass == "" {
		criteria.CabinClass = CabinEconomy
	}

	originCode := f.airportCode(criteria.Origin)
	destinationCode := f.airportCode(criteria.Destination)

	flights := make([]travel_models.Flight, 0, flightOffersPerSearch)
	for i := 0; i < flightOffersPerSearch; i++ {
		airline := f.catalog.Airlines[f.rand.IntN(len(f.catalog.Airlines))]

		flightNumber := fmt.Sprintf("%s%d", utils.InitialsCode(airline.Name, 0), f.rand.IntBetween(100, 999))

		durationMinutes := f.rand.IntBetween(180, 720)
		departureTime := criteria.DepartureDate.
			Add(time.Duration(f.rand.IntBetween(0, 23)) * time.Hour).
			Add(time.Duration(15*f.rand.IntN(4)) * time.Minute)
		arrivalTime := departureTime.Add(time.Duration(durationMinutes) * time.Minute)

		basePrice := f.rand.FloatBetween(250, 500)
		luxuryMultiplier := 1.0
		if airline.IsLuxury {
			luxuryMultiplier = 1.5
		}
		price := basePrice * cabinPriceMultiplier(criteria.CabinClass) * luxuryMultiplier * float64(criteria.Passengers)

		stopChoices := []int{0, 0, 0, 1, 1, 2}

		flights = append(flights, travel_models.Flight{
			FlightID:         utils.GenerateID("FL"),
			Airline:          airline.Name,
			FlightNumber:     flightNumber,
			DepartureAirport: originCode,
			ArrivalAirport:   destinationCode,
			DepartureTime:    departureTime,
			ArrivalTime:      arrivalTime,
			DurationMinutes:  durationMinutes,
			StopCount:        stopChoices[f.rand.IntN(len(stopChoices))],
			Price:            utils.Round2(price),
			CabinClass:       criteria.CabinClass,
			AvailableSeats:   f.rand.IntBetween(1, 50),
			Refundable:       f.rand.Bool(),
			BookingURL:       "https://example.com/book/flight/" + utils.GenerateID(""),
			BaggageAllowance: baggageAllowance(criteria.CabinClass, airline.IsLuxury),
			Amenities:        flightAmenities(criteria.CabinClass, airline.IsLuxury),
		})
	}

	f.sortFlights(flights, criteria.PrioritizeLuxury)
	return flights, nil
}

// sortFlights ranks luxury carriers first (price as the stable secondary key)
// when luxury is prioritized, otherwise ascending price with stop count as
// the tiebreak.
func (f *FlightService) sortFlights(flights []travel_models.Flight, prioritizeLuxury bool) {
	if prioritizeLuxury {
		sort.SliceStable(flights, func(i, j int) bool {
			li, lj := f.luxury[flights[i].Airline], f.luxury[flights[j].Airline]
			if li != lj {
				return li
			}
			return flights[i].Price < flights[j].Price
		})
		return
	}
	sort.SliceStable(flights, func(i, j int) bool {
		if flights[i].Price != flights[j].Price {
			return flights[i].Price < flights[j].Price
		}
		return flights[i].StopCount < flights[j].StopCount
	})
}

// BookFlight commits to a candidate. The mock always succeeds, but callers
// must treat a nil booking as a sold-out leg rather than an error.
func (f *FlightService) BookFlight(ctx context.Context, flight travel_models.Flight, traveler travel_models.TravelerDetails) (*travel_models.Booking, error) {
	log.Printf("Booking flight %s with %s", flight.FlightNumber, flight.Airline)

	paymentMethod := traveler.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "Credit Card"
	}

	return &travel_models.Booking{
		BookingID:         utils.GenerateID("B"),
		BookingType:       travel_models.BookingTypeFlight,
		Provider:          flight.Airline,
		Status:            travel_models.BookingStatusConfirmed,
		BookingDate:       time.Now(),
		ReferenceNumber:   utils.GenerateID(utils.InitialsCode(flight.Airline, 0)),
		ConfirmationEmail: traveler.Email,
		PaymentDetails: &travel_models.PaymentSummary{
			Amount:        flight.Price,
			Currency:      "USD",
			PaymentMethod: paymentMethod,
			IsPaid:        true,
		},
		CancellationPolicy: "Cancellation available up to 24 hours before departure with a 20% fee.",
	}, nil
}

// airportCode resolves a city to a known code, passes codes through, and
// falls back to the first three letters uppercased.
func (f *FlightService) airportCode(location string) string {
	if _, ok := f.catalog.Airports[location]; ok {
		return location
	}
	for code, city := range f.catalog.Airports {
		if strings.EqualFold(city, location) {
			return code
		}
	}
	if len(location) < 3 {
		return strings.ToUpper(location)
	}
	return strings.ToUpper(location[:3])
}

func cabinPriceMultiplier(cabinClass string) float64 {
	switch cabinClass {
	case CabinPremiumEconomy:
		return 1.7
	case CabinBusiness:
		return 3.5
	case CabinFirst:
		return 6.0
	default:
		return 1.0
	}
}

func baggageAllowance(cabinClass string, isLuxury bool) map[string]string {
	allowance := map[string]string{}

	if cabinClass == CabinEconomy || cabinClass == CabinPremiumEconomy {
		allowance["cabin"] = "1 x 7kg"
	} else {
		allowance["cabin"] = "2 x 7kg"
	}

	switch cabinClass {
	case CabinEconomy:
		if isLuxury {
			allowance["checked"] = "2 x 23kg"
		} else {
			allowance["checked"] = "1 x 23kg"
		}
	case CabinPremiumEconomy:
		allowance["checked"] = "2 x 23kg"
	case CabinBusiness:
		allowance["checked"] = "2 x 32kg"
	default: // First
		allowance["checked"] = "3 x 32kg"
	}

	return allowance
}

func flightAmenities(cabinClass string, isLuxury bool) []string {
	var amenities []string

	if isLuxury || cabinClass == CabinBusiness || cabinClass == CabinFirst {
		amenities = append(amenities, "Priority Boarding", "Lounge Access")
	}

	switch cabinClass {
	case CabinEconomy:
		amenities = append(amenities, "Standard Seat")
		if isLuxury {
			amenities = append(amenities, "Complimentary Meals", "Personal Entertainment System", "Wi-Fi (paid)")
		}
	case CabinPremiumEconomy:
		amenities = append(amenities, "Extra Legroom", "Complimentary Meals", "Personal Entertainment System", "Wi-Fi (paid)", "Premium Headphones")
	case CabinBusiness:
		if isLuxury {
			amenities = append(amenities, "Lie-flat Seat")
		} else {
			amenities = append(amenities, "Recliner Seat")
		}
		amenities = append(amenities, "Gourmet Meals", "Premium Entertainment System", "Wi-Fi (complimentary)", "Noise-Cancelling Headphones", "Amenity Kit")
		if isLuxury {
			amenities = append(amenities, "Dedicated Cabin Crew", "Premium Bedding")
		}
	default: // First
		if isLuxury {
			amenities = append(amenities, "Private Suite")
		} else {
			amenities = append(amenities, "Lie-flat Seat")
		}
		amenities = append(amenities, "On-demand Dining", "Premium Entertainment System", "Wi-Fi (complimentary)", "Luxury Amenity Kit", "Chauffeur Service")
		if isLuxury {
			amenities = append(amenities, "Shower Facilities (select aircraft)", "Personal Butler")
		}
	}

	return amenities
}
