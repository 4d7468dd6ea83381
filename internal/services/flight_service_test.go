package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"roamai/internal/models/travel_models"
	"roamai/pkg/utils"
)

func newFlightService(seed int64) (FlightServiceInterface, FlightCatalog) {
	catalog := DefaultFlightCatalog()
	return NewFlightService(catalog, utils.NewRandSource(seed)), catalog
}

func TestSearchFlightsReturnsFixedPool(t *testing.T) {
	svc, _ := newFlightService(42)

	flights, err := svc.SearchFlights(context.Background(), FlightSearchCriteria{
		Origin:        "New York",
		Destination:   "Dubai",
		DepartureDate: time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC),
		Passengers:    2,
	})
	require.NoError(t, err)
	assert.Len(t, flights, 5)

	for _, f := range flights {
		assert.Equal(t, "JFK", f.DepartureAirport)
		assert.Equal(t, "DXB", f.ArrivalAirport)
		assert.Equal(t, CabinEconomy, f.CabinClass)
		assert.True(t, f.ArrivalTime.After(f.DepartureTime))
		assert.NotEmpty(t, f.FlightID)
		assert.NotEmpty(t, f.BaggageAllowance["cabin"])
		assert.NotEmpty(t, f.BaggageAllowance["checked"])
	}
}

func TestSearchFlightsPriceBounds(t *testing.T) {
	svc, catalog := newFlightService(7)

	luxury := make(map[string]bool)
	for _, a := range catalog.Airlines {
		luxury[a.Name] = a.IsLuxury
	}

	flights, err := svc.SearchFlights(context.Background(), FlightSearchCriteria{
		Origin:        "London",
		Destination:   "Doha",
		DepartureDate: time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC),
		Passengers:    2,
		CabinClass:    CabinBusiness,
	})
	require.NoError(t, err)

	// Business base is 250-500 per passenger times the 3.5 cabin multiplier,
	// with luxury carriers another 1.5x on top.
	for _, f := range flights {
		min, max := 250*3.5*2.0, 500*3.5*2.0
		if luxury[f.Airline] {
			min, max = min*1.5, max*1.5
		}
		assert.GreaterOrEqual(t, f.Price, min-0.01)
		assert.LessOrEqual(t, f.Price, max+0.01)
	}
}

func TestSearchFlightsLuxuryRanking(t *testing.T) {
	svc, catalog := newFlightService(3)

	luxury := make(map[string]bool)
	for _, a := range catalog.Airlines {
		luxury[a.Name] = a.IsLuxury
	}

	flights, err := svc.SearchFlights(context.Background(), FlightSearchCriteria{
		Origin:           "New York",
		Destination:      "Dubai",
		DepartureDate:    time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC),
		Passengers:       1,
		CabinClass:       CabinBusiness,
		PrioritizeLuxury: true,
	})
	require.NoError(t, err)

	// No standard carrier may rank above a luxury one.
	seenStandard := false
	for _, f := range flights {
		if !luxury[f.Airline] {
			seenStandard = true
		} else {
			assert.False(t, seenStandard, "luxury carrier ranked below a standard one")
		}
	}
}

func TestSearchFlightsPriceRanking(t *testing.T) {
	svc, _ := newFlightService(11)

	flights, err := svc.SearchFlights(context.Background(), FlightSearchCriteria{
		Origin:        "Paris",
		Destination:   "Singapore",
		DepartureDate: time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC),
		Passengers:    1,
	})
	require.NoError(t, err)

	for i := 1; i < len(flights); i++ {
		assert.LessOrEqual(t, flights[i-1].Price, flights[i].Price)
	}
}

func TestSearchFlightsUnknownCityFallsBackToPrefixCode(t *testing.T) {
	svc, _ := newFlightService(1)

	flights, err := svc.SearchFlights(context.Background(), FlightSearchCriteria{
		Origin:        "Springfield",
		Destination:   "DXB",
		DepartureDate: time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC),
		Passengers:    1,
	})
	require.NoError(t, err)
	require.NotEmpty(t, flights)
	assert.Equal(t, "SPR", flights[0].DepartureAirport)
	assert.Equal(t, "DXB", flights[0].ArrivalAirport)
}

func TestBookFlight(t *testing.T) {
	svc, _ := newFlightService(5)

	flight := travel_models.Flight{
		FlightID:     "FL12345678",
		Airline:      "Qatar Airways",
		FlightNumber: "QA123",
		Price:        1480.5,
	}
	traveler := travel_models.TravelerDetails{Name: "Sara Malik", Email: "sara@example.com"}

	booking, err := svc.BookFlight(context.Background(), flight, traveler)
	require.NoError(t, err)
	require.NotNil(t, booking)

	assert.Equal(t, travel_models.BookingTypeFlight, booking.BookingType)
	assert.Equal(t, travel_models.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, "Qatar Airways", booking.Provider)
	assert.Equal(t, "sara@example.com", booking.ConfirmationEmail)
	assert.Equal(t, "QA", booking.ReferenceNumber[:2])
	assert.Len(t, booking.ReferenceNumber, 10)
	require.NotNil(t, booking.PaymentDetails)
	assert.Equal(t, 1480.5, booking.PaymentDetails.Amount)
	assert.Equal(t, "Credit Card", booking.PaymentDetails.PaymentMethod)
	assert.True(t, booking.PaymentDetails.IsPaid)
}
