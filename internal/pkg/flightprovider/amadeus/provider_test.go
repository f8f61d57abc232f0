//go:build unit

package amadeus

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/dto"
	amadeusapi "github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/amadeus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func segment(from, to, depart, arrive, carrier, number, duration string) amadeusapi.Segment {
	s := amadeusapi.Segment{
		Departure:   amadeusapi.Endpoint{IATACode: from, At: depart},
		Arrival:     amadeusapi.Endpoint{IATACode: to, At: arrive},
		CarrierCode: carrier,
		Number:      number,
		Duration:    duration,
	}
	return s
}

func TestProvider_Search(t *testing.T) {
	ptrInt := func(i int) *int { return &i }
	ptrFloat := func(f float64) *float64 { return &f }

	params := dto.FlightSearchParams{
		Origin:      "JFK",
		Destination: "LAX",
		DepartDate:  "2025-06-10",
		Passengers:  1,
		Cabin:       "ECONOMY",
		Currency:    "USD",
	}

	result := amadeusapi.FlightOffersResult{
		Carriers: map[string]string{"UA": "UNITED AIRLINES"},
		Offers: []amadeusapi.FlightOffer{
			{
				ID:                     "1",
				Price:                  amadeusapi.Price{Currency: "USD", Total: "250.00", GrandTotal: "250.00"},
				ValidatingAirlineCodes: []string{"UA"},
				PricingOptions:         amadeusapi.PricingOptions{RefundableFare: true},
				Itineraries: []amadeusapi.Itinerary{{
					Duration: "PT6H",
					Segments: []amadeusapi.Segment{
						segment("JFK", "LAX", "2025-06-10T08:00:00", "2025-06-10T11:00:00", "UA", "100", "PT6H"),
					},
				}},
			},
			{
				ID:    "2",
				Price: amadeusapi.Price{Currency: "EUR", GrandTotal: "180.5"},
				Itineraries: []amadeusapi.Itinerary{{
					Duration: "PT8H30M",
					Segments: []amadeusapi.Segment{
						segment("JFK", "ORD", "2025-06-10T06:00:00", "2025-06-10T07:30:00", "AA", "1", "PT2H30M"),
						segment("ORD", "LAX", "2025-06-10T09:00:00", "2025-06-10T11:30:00", "AA", "2", "PT4H30M"),
					},
				}},
			},
		},
	}

	searchRequest := func(params dto.FlightSearchParams, setupMock func(m *MockOffersClient), want []dto.FlightOffer, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockOffersClient(t)
			setupMock(m)

			p := NewProvider(m)
			got, err := p.Search(context.Background(), params)
			if wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("Search() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	direct := dto.FlightOffer{
		ID:                "1",
		Provider:          "amadeus",
		Carrier:           "UA",
		CarrierName:       "UNITED AIRLINES",
		Cabin:             "ECONOMY",
		DurationMinutes:   ptrInt(360),
		DurationFormatted: "6h",
		Stops:             0,
		Refundable:        true,
		Currency:          "USD",
		Price:             250,
		PriceUSD:          ptrFloat(250),
		Itineraries: []dto.Itinerary{{
			DurationMinutes: ptrInt(360),
			Segments: []dto.Segment{{
				From: "JFK", To: "LAX",
				DepartTime: "2025-06-10T08:00:00", ArriveTime: "2025-06-10T11:00:00",
				FlightNumber: "UA100", MarketingCarrier: "UA",
				DurationMinutes: ptrInt(360),
			}},
		}},
	}

	connecting := dto.FlightOffer{
		ID:                "2",
		Provider:          "amadeus",
		Carrier:           "AA",
		CarrierName:       "AA",
		Cabin:             "ECONOMY",
		DurationMinutes:   ptrInt(510),
		DurationFormatted: "8h 30m",
		Stops:             1,
		Currency:          "EUR",
		Price:             180.5,
		Itineraries: []dto.Itinerary{{
			DurationMinutes: ptrInt(510),
			Segments: []dto.Segment{
				{
					From: "JFK", To: "ORD",
					DepartTime: "2025-06-10T06:00:00", ArriveTime: "2025-06-10T07:30:00",
					FlightNumber: "AA1", MarketingCarrier: "AA",
					DurationMinutes: ptrInt(150), LayoverMinutes: ptrInt(90),
				},
				{
					From: "ORD", To: "LAX",
					DepartTime: "2025-06-10T09:00:00", ArriveTime: "2025-06-10T11:30:00",
					FlightNumber: "AA2", MarketingCarrier: "AA",
					DurationMinutes: ptrInt(270),
				},
			},
		}},
	}

	t.Run("normalizes_offers", searchRequest(params, func(m *MockOffersClient) {
		m.On("SearchFlightOffers", mock.Anything, mock.MatchedBy(func(q amadeusapi.FlightOffersQuery) bool {
			return q.Origin == "JFK" && q.Destination == "LAX" && !q.NonStop && q.Max == maxOffers
		})).Return(result, nil)
	}, []dto.FlightOffer{direct, connecting}, false))

	nonStop := params
	nonStop.MaxStops = ptrInt(0)
	t.Run("max_stops_zero_filters_connections", searchRequest(nonStop, func(m *MockOffersClient) {
		m.On("SearchFlightOffers", mock.Anything, mock.MatchedBy(func(q amadeusapi.FlightOffersQuery) bool {
			return q.NonStop
		})).Return(result, nil)
	}, []dto.FlightOffer{direct}, false))

	t.Run("client_error", searchRequest(params, func(m *MockOffersClient) {
		m.On("SearchFlightOffers", mock.Anything, mock.Anything).
			Return(amadeusapi.FlightOffersResult{}, errors.New("boom"))
	}, nil, true))
}
