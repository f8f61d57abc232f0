//go:build unit

package deeplink

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/dto"
	"github.com/stretchr/testify/assert"
)

func TestHotelLinks(t *testing.T) {
	hotelLinks := func(query string, star dto.Star, want dto.HotelDeeplinks) func(t *testing.T) {
		return func(t *testing.T) {
			got := HotelLinks(query, "2025-06-10", "2025-06-12", star)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("HotelLinks() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("five_star_exact", hotelLinks("Los Angeles", dto.Star5, dto.HotelDeeplinks{
		Booking: "https://www.booking.com/searchresults.html?ss=Los%20Angeles&checkin=2025-06-10&checkout=2025-06-12&nflt=class%3D5",
		Hotels:  "https://www.hotels.com/Hotel-Search?destination=Los%20Angeles&startDate=2025-06-10&endDate=2025-06-12&star=50-50",
		Expedia: "https://www.expedia.com/Hotel-Search?destination=Los%20Angeles&startDate=2025-06-10&endDate=2025-06-12&star=50",
		Agoda:   "https://www.agoda.com/search?checkIn=2025-06-10&checkOut=2025-06-12&text=Los%20Angeles&hotelStarRating=5",
	}))

	t.Run("four_star_and_up", hotelLinks("Paris", dto.Star4, dto.HotelDeeplinks{
		Booking: "https://www.booking.com/searchresults.html?ss=Paris&checkin=2025-06-10&checkout=2025-06-12&nflt=class%3D4%3Bclass%3D5",
		Hotels:  "https://www.hotels.com/Hotel-Search?destination=Paris&startDate=2025-06-10&endDate=2025-06-12&star=40-50",
		Expedia: "https://www.expedia.com/Hotel-Search?destination=Paris&startDate=2025-06-10&endDate=2025-06-12&star=40%2C50",
		Agoda:   "https://www.agoda.com/search?checkIn=2025-06-10&checkOut=2025-06-12&text=Paris&hotelStarRating=4%2C5",
	}))

	t.Run("three_star_and_up", hotelLinks("Paris", dto.Star3, dto.HotelDeeplinks{
		Booking: "https://www.booking.com/searchresults.html?ss=Paris&checkin=2025-06-10&checkout=2025-06-12&nflt=class%3D3%3Bclass%3D4%3Bclass%3D5",
		Hotels:  "https://www.hotels.com/Hotel-Search?destination=Paris&startDate=2025-06-10&endDate=2025-06-12&star=30-50",
		Expedia: "https://www.expedia.com/Hotel-Search?destination=Paris&startDate=2025-06-10&endDate=2025-06-12&star=30%2C40%2C50",
		Agoda:   "https://www.agoda.com/search?checkIn=2025-06-10&checkOut=2025-06-12&text=Paris&hotelStarRating=3%2C4%2C5",
	}))

	t.Run("no_star_filter", hotelLinks("Paris", dto.StarNone, dto.HotelDeeplinks{
		Booking: "https://www.booking.com/searchresults.html?ss=Paris&checkin=2025-06-10&checkout=2025-06-12",
		Hotels:  "https://www.hotels.com/Hotel-Search?destination=Paris&startDate=2025-06-10&endDate=2025-06-12",
		Expedia: "https://www.expedia.com/Hotel-Search?destination=Paris&startDate=2025-06-10&endDate=2025-06-12",
		Agoda:   "https://www.agoda.com/search?checkIn=2025-06-10&checkOut=2025-06-12&text=Paris",
	}))
}

func TestFlightLinks(t *testing.T) {
	oneWay := Route{Origin: "JFK", Destination: "LAX", DepartDate: "2025-06-10"}
	roundTrip := Route{Origin: "JFK", Destination: "LAX", DepartDate: "2025-06-10", ReturnDate: "2025-06-15"}

	assert.Equal(t,
		"https://www.google.com/travel/flights?q=Flights%20from%20JFK%20to%20LAX%20on%202025-06-10",
		GoogleFlights(oneWay))
	assert.Equal(t,
		"https://www.google.com/travel/flights?q=Flights%20from%20JFK%20to%20LAX%20on%202025-06-10%20return%202025-06-15",
		GoogleFlights(roundTrip))

	assert.Equal(t, "https://www.skyscanner.com/transport/flights/jfk/lax/20250610/", Skyscanner(oneWay))
	assert.Equal(t, "https://www.skyscanner.com/transport/flights/jfk/lax/20250610/20250615", Skyscanner(roundTrip))
}

func TestAirlineSite(t *testing.T) {
	site := AirlineSite("ua")
	if assert.NotNil(t, site) {
		assert.Equal(t, "https://www.united.com/", *site)
	}

	assert.Nil(t, AirlineSite("ZZ"))
	assert.Nil(t, AirlineSite(""))
}

func TestCheckoutLink(t *testing.T) {
	checkout := Checkout{
		FlightID:   "amadeus_1",
		Carrier:    "UA",
		Route:      Route{Origin: "JFK", Destination: "LAX", DepartDate: "2025-06-10", ReturnDate: "2025-06-15"},
		HotelName:  "The Plaza & Spa",
		Currency:   "USD",
		Total:      1234.5,
		Passengers: 2,
		Cabin:      "ECONOMY",
	}

	assert.Equal(t,
		"http://localhost:3000/book?flightId=amadeus_1&carrier=UA&origin=JFK&destination=LAX&depart=2025-06-10&return=2025-06-15&hotel=The%20Plaza%20%26%20Spa&currency=USD&total=1234.5&pax=2&cabin=ECONOMY",
		CheckoutLink("http://localhost:3000/", checkout))

	checkout.Route.ReturnDate = ""
	checkout.HotelName = ""
	assert.Equal(t,
		"http://localhost:3000/book?flightId=amadeus_1&carrier=UA&origin=JFK&destination=LAX&depart=2025-06-10&currency=USD&total=1234.5&pax=2&cabin=ECONOMY",
		CheckoutLink("http://localhost:3000", checkout))
}
