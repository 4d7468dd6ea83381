package services

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"roamai/internal/models/travel_models"
	"roamai/pkg/utils"
)

type HotelChain struct {
	Name     string
	Rating   float64
	IsLuxury bool
}

type AccommodationCatalog struct {
	Chains     []HotelChain
	HotelTypes []string
	RoomTypes  map[string][]string // tier -> room names
	Amenities  map[int][]string    // whole-star rating band -> amenity set
}

func DefaultAccommodationCatalog() AccommodationCatalog {
	return AccommodationCatalog{
		Chains: []HotelChain{
			{Name: "Ritz-Carlton", Rating: 5, IsLuxury: true},
			{Name: "Four Seasons", Rating: 5, IsLuxury: true},
			{Name: "St. Regis", Rating: 5, IsLuxury: true},
			{Name: "Waldorf Astoria", Rating: 5, IsLuxury: true},
			{Name: "Mandarin Oriental", Rating: 5, IsLuxury: true},
			{Name: "Marriott", Rating: 4, IsLuxury: false},
			{Name: "Hilton", Rating: 4, IsLuxury: false},
			{Name: "Hyatt", Rating: 4, IsLuxury: false},
			{Name: "InterContinental", Rating: 4, IsLuxury: false},
			{Name: "Sheraton", Rating: 3.5, IsLuxury: false},
			{Name: "Holiday Inn", Rating: 3, IsLuxury: false},
			{Name: "Ibis", Rating: 2.5, IsLuxury: false},
		},
		HotelTypes: []string{"Hotel", "Resort", "Boutique Hotel", "Apartment", "Villa"},
		RoomTypes: map[string][]string{
			"luxury":   {"Presidential Suite", "Royal Suite", "Executive Suite", "Luxury Suite", "Penthouse"},
			"moderate": {"Junior Suite", "Deluxe Room", "Executive Room", "Premium Room"},
			"budget":   {"Standard Room", "Economy Room", "Twin Room", "Single Room"},
		},
		Amenities: map[int][]string{
			5: {"Swimming Pool", "Spa", "Fitness Center", "Multiple Restaurants", "Concierge", "Room Service",
				"Business Center", "Valet Parking", "Airport Transfer", "Butler Service", "Private Beach"},
			4: {"Swimming Pool", "Spa", "Fitness Center", "Restaurant", "Concierge", "Room Service",
				"Business Center", "Parking"},
			3: {"Restaurant", "Fitness Center", "Parking", "Wi-Fi"},
			2: {"Wi-Fi", "Breakfast", "Parking"},
		},
	}
}

// accommodationOffersPerSearch is the generation pool size before filters.
const accommodationOffersPerSearch = 8

type AccommodationSearchCriteria struct {
	Destination       travel_models.Location
	CheckInDate       time.Time
	CheckOutDate      time.Time
	Guests            int
	RoomCount         int
	MinRating         float64
	MaxPricePerNight  float64 // 0 means no ceiling
	RequiredAmenities []string
	PrioritizeLuxury  bool
}

type AccommodationServiceInterface interface {
	SearchAccommodations(ctx context.Context, criteria AccommodationSearchCriteria) ([]travel_models.Accommodation, error)
	BookAccommodation(ctx context.Context, accommodation travel_models.Accommodation, guest travel_models.TravelerDetails) (*travel_models.Booking, error)
}

type AccommodationService struct {
	catalog AccommodationCatalog
	rand    *utils.RandSource
}

func NewAccommodationService(catalog AccommodationCatalog, rand *utils.RandSource) AccommodationServiceInterface {
	return &AccommodationService{
		catalog: catalog,
		rand:    rand,
	}
}

// SearchAccommodations generates synthetic offers and drops any that break a
// ceiling: an offer over MaxPricePerNight, under MinRating, or missing a
// required amenity is excluded, not reordered.
func (a *AccommodationService) SearchAccommodations(ctx context.Context, criteria AccommodationSearchCriteria) ([]travel_models.Accommodation, error) {
	log.Printf("Searching accommodations in %s from %s to %s",
		criteria.Destination.City,
		criteria.CheckInDate.Format("2006-01-02"),
		criteria.CheckOutDate.Format("2006-01-02"))

	if criteria.RoomCount < 1 {
		criteria.RoomCount = 1
	}
	nights := utils.DaysBetween(criteria.CheckInDate, criteria.CheckOutDate)

	accommodations := make([]travel_models.Accommodation, 0, accommodationOffersPerSearch)
	for i := 0; i < accommodationOffersPerSearch; i++ {
		chain := a.catalog.Chains[a.rand.IntN(len(a.catalog.Chains))]

		if chain.Rating < criteria.MinRating {
			continue
		}

		var hotelType string
		if chain.IsLuxury {
			// Luxury chains run hotels and resorts, not apartments.
			hotelType = a.catalog.HotelTypes[a.rand.IntN(3)]
		} else {
			hotelType = a.catalog.HotelTypes[a.rand.IntN(len(a.catalog.HotelTypes))]
		}

		hotelName := chain.Name + " " + criteria.Destination.City
		if hotelType != "Hotel" {
			hotelName += " " + hotelType
		}

		roomTier := "budget"
		if chain.IsLuxury {
			roomTier = "luxury"
		} else if chain.Rating >= 4 {
			roomTier = "moderate"
		}
		roomTypes := a.catalog.RoomTypes[roomTier]
		roomType := roomTypes[a.rand.IntN(len(roomTypes))]

		basePrice := a.rand.FloatBetween(50, 150)
		ratingMultiplier := chain.Rating / 2.5
		luxuryMultiplier := 1.0
		if chain.IsLuxury {
			luxuryMultiplier = 2.0
		}
		pricePerNight := basePrice * ratingMultiplier * luxuryMultiplier * roomTierMultiplier(roomTier)

		if criteria.MaxPricePerNight > 0 && pricePerNight > criteria.MaxPricePerNight {
			continue
		}

		totalPrice := pricePerNight * float64(nights) * float64(criteria.RoomCount)

		amenities := a.catalog.Amenities[int(chain.Rating)]
		if !hasAllAmenities(amenities, criteria.RequiredAmenities) {
			continue
		}

		accommodations = append(accommodations, travel_models.Accommodation{
			AccommodationID: utils.GenerateID("H"),
			Name:            hotelName,
			Type:            strings.ToLower(hotelType),
			Location:        a.jitterLocation(criteria.Destination),
			CheckInDate:     criteria.CheckInDate,
			CheckOutDate:    criteria.CheckOutDate,
			Rating:          chain.Rating,
			PricePerNight:   utils.Round2(pricePerNight),
			TotalPrice:      utils.Round2(totalPrice),
			Amenities:       amenities,
			RoomType:        roomType,
			Refundable:      a.rand.Bool(),
			BookingURL:      "https://example.com/book/hotel/" + utils.GenerateID(""),
			Images: []string{
				"https://example.com/images/hotel1.jpg",
				"https://example.com/images/hotel2.jpg",
				"https://example.com/images/hotel3.jpg",
			},
		})
	}

	if criteria.PrioritizeLuxury {
		sort.SliceStable(accommodations, func(i, j int) bool {
			if accommodations[i].Rating != accommodations[j].Rating {
				return accommodations[i].Rating > accommodations[j].Rating
			}
			return accommodations[i].PricePerNight < accommodations[j].PricePerNight
		})
	} else {
		sort.SliceStable(accommodations, func(i, j int) bool {
			if accommodations[i].PricePerNight != accommodations[j].PricePerNight {
				return accommodations[i].PricePerNight < accommodations[j].PricePerNight
			}
			return accommodations[i].Rating > accommodations[j].Rating
		})
	}

	return accommodations, nil
}

func (a *AccommodationService) BookAccommodation(ctx context.Context, accommodation travel_models.Accommodation, guest travel_models.TravelerDetails) (*travel_models.Booking, error) {
	log.Printf("Booking accommodation at %s", accommodation.Name)

	paymentMethod := guest.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "Credit Card"
	}

	cancellationPolicy := "Non-refundable booking."
	if accommodation.Refundable {
		cancellationPolicy = "Free cancellation up to 24 hours before check-in."
	}

	return &travel_models.Booking{
		BookingID:         utils.GenerateID("B"),
		BookingType:       travel_models.BookingTypeAccommodation,
		Provider:          accommodation.Name,
		Status:            travel_models.BookingStatusConfirmed,
		BookingDate:       time.Now(),
		ReferenceNumber:   utils.GenerateID(utils.InitialsCode(accommodation.Name, 2)),
		ConfirmationEmail: guest.Email,
		PaymentDetails: &travel_models.PaymentSummary{
			Amount:        accommodation.TotalPrice,
			Currency:      "USD",
			PaymentMethod: paymentMethod,
			IsPaid:        true,
		},
		CancellationPolicy: cancellationPolicy,
	}, nil
}

// jitterLocation scatters the hotel within ~5km of the destination center
// when coordinates are known.
func (a *AccommodationService) jitterLocation(destination travel_models.Location) travel_models.Location {
	loc := travel_models.Location{
		City:    destination.City,
		Country: destination.Country,
		Region:  destination.Region,
	}
	if destination.Latitude != nil {
		lat := *destination.Latitude + a.rand.FloatBetween(-0.05, 0.05)
		loc.Latitude = &lat
	}
	if destination.Longitude != nil {
		lon := *destination.Longitude + a.rand.FloatBetween(-0.05, 0.05)
		loc.Longitude = &lon
	}
	return loc
}

func roomTierMultiplier(tier string) float64 {
	switch tier {
	case "luxury":
		return 2.5
	case "moderate":
		return 1.5
	default:
		return 1.0
	}
}

func hasAllAmenities(available, required []string) bool {
	for _, want := range required {
		found := false
		for _, have := range available {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
