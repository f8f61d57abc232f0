package amadeus

import (
	"context"
	"fmt"
	"strings"

	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/dto"
	amadeusapi "github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/amadeus"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/flightprovider/providerutils"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/utils"
)

const (
	ProviderName = "amadeus"
	maxOffers    = 20
)

type OffersClient interface {
	SearchFlightOffers(ctx context.Context, q amadeusapi.FlightOffersQuery) (amadeusapi.FlightOffersResult, error)
}

type Provider struct {
	Name   string
	client OffersClient
}

func NewProvider(client OffersClient) *Provider {
	return &Provider{
		Name:   ProviderName,
		client: client,
	}
}

// Search queries Flight Offers Search and normalizes the offers.
func (p *Provider) Search(ctx context.Context, params dto.FlightSearchParams) ([]dto.FlightOffer, error) {
	res, err := p.client.SearchFlightOffers(ctx, amadeusapi.FlightOffersQuery{
		Origin:      params.Origin,
		Destination: params.Destination,
		DepartDate:  params.DepartDate,
		ReturnDate:  params.ReturnDate,
		Adults:      params.Passengers,
		Cabin:       params.Cabin,
		NonStop:     params.MaxStops != nil && *params.MaxStops == 0,
		Currency:    params.Currency,
		Max:         maxOffers,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search %s flight offers: %w", p.Name, err)
	}

	flights := p.flightToDTO(res, params.Cabin)
	return providerutils.FilterByMaxStops(flights, params.MaxStops), nil
}

func (p *Provider) flightToDTO(res amadeusapi.FlightOffersResult, requestedCabin string) []dto.FlightOffer {
	results := make([]dto.FlightOffer, 0, len(res.Offers))
	for _, offer := range res.Offers {
		price := utils.ParseAmount(offer.Price.GrandTotal)
		if price == 0 {
			price = utils.ParseAmount(offer.Price.Total)
		}
		if price < 0 {
			continue
		}

		currency := strings.ToUpper(offer.Price.Currency)
		carrier := p.carrier(offer)

		carrierName := res.Carriers[carrier]
		if carrierName == "" {
			carrierName = carrier
		}

		itineraries, duration := p.itinerariesToDTO(offer.Itineraries)

		flight := dto.FlightOffer{
			ID:          offer.ID,
			Provider:    p.Name,
			Carrier:     carrier,
			CarrierName: carrierName,
			Cabin:       p.cabin(offer, requestedCabin),
			Stops:       providerutils.MaxStops(itineraries),
			Refundable:  offer.PricingOptions.RefundableFare,
			Currency:    currency,
			Price:       price,
			Itineraries: itineraries,
		}

		if duration != nil {
			flight.DurationMinutes = duration
			flight.DurationFormatted = utils.ConvertMinutesToDuration(int64(*duration))
		}

		if currency == dto.DefaultCurrency {
			usd := price
			flight.PriceUSD = &usd
		}

		results = append(results, flight)
	}

	return results
}

// itinerariesToDTO returns the directions and their summed duration, nil when none parsed.
func (p *Provider) itinerariesToDTO(in []amadeusapi.Itinerary) ([]dto.Itinerary, *int) {
	var (
		total  int
		parsed bool
	)

	out := make([]dto.Itinerary, 0, len(in))
	for _, it := range in {
		itinerary := dto.Itinerary{Segments: make([]dto.Segment, 0, len(it.Segments))}
		if minutes, ok := utils.ParseISODuration(it.Duration); ok {
			itinerary.DurationMinutes = &minutes
			total += minutes
			parsed = true
		}

		for _, s := range it.Segments {
			segment := dto.Segment{
				From:             s.Departure.IATACode,
				To:               s.Arrival.IATACode,
				DepartTime:       s.Departure.At,
				ArriveTime:       s.Arrival.At,
				FlightNumber:     s.CarrierCode + s.Number,
				MarketingCarrier: s.CarrierCode,
				OperatingCarrier: s.Operating.CarrierCode,
			}
			if minutes, ok := utils.ParseISODuration(s.Duration); ok {
				segment.DurationMinutes = &minutes
			}

			itinerary.Segments = append(itinerary.Segments, segment)
		}

		providerutils.AttachLayovers(&itinerary, utils.MinutesBetween)
		out = append(out, itinerary)
	}

	if !parsed {
		return out, nil
	}

	return out, &total
}

func (p *Provider) carrier(offer amadeusapi.FlightOffer) string {
	if len(offer.ValidatingAirlineCodes) > 0 && offer.ValidatingAirlineCodes[0] != "" {
		return offer.ValidatingAirlineCodes[0]
	}

	for _, it := range offer.Itineraries {
		if len(it.Segments) > 0 {
			return it.Segments[0].CarrierCode
		}
	}

	return ""
}

func (p *Provider) cabin(offer amadeusapi.FlightOffer, requested string) string {
	for _, tp := range offer.TravelerPricings {
		for _, fare := range tp.FareDetailsBySegment {
			if fare.Cabin != "" {
				return strings.ToUpper(fare.Cabin)
			}
		}
	}

	return strings.ToUpper(requested)
}
