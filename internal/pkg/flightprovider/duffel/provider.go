package duffel

import (
	"context"
	"fmt"
	"strings"

	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/dto"
	duffelapi "github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/duffel"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/flightprovider/providerutils"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/utils"
)

const ProviderName = "duffel"

type OffersClient interface {
	CreateOfferRequest(ctx context.Context, req duffelapi.OfferRequest) (string, error)
	ListOffers(ctx context.Context, offerRequestID string) ([]duffelapi.Offer, error)
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

// Search creates an offer request and lists its offers.
func (p *Provider) Search(ctx context.Context, params dto.FlightSearchParams) ([]dto.FlightOffer, error) {
	slices := []duffelapi.Slice{{
		Origin:        params.Origin,
		Destination:   params.Destination,
		DepartureDate: params.DepartDate,
	}}
	if params.ReturnDate != "" {
		slices = append(slices, duffelapi.Slice{
			Origin:        params.Destination,
			Destination:   params.Origin,
			DepartureDate: params.ReturnDate,
		})
	}

	requestID, err := p.client.CreateOfferRequest(ctx, duffelapi.OfferRequest{
		Slices:         slices,
		Passengers:     duffelapi.Adults(params.Passengers),
		CabinClass:     strings.ToLower(params.Cabin),
		MaxConnections: duffelapi.MaxConnections,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s offer request: %w", p.Name, err)
	}

	if requestID == "" {
		return []dto.FlightOffer{}, nil
	}

	offers, err := p.client.ListOffers(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s offers: %w", p.Name, err)
	}

	flights := p.flightToDTO(offers, params.Cabin)
	return providerutils.FilterByMaxStops(flights, params.MaxStops), nil
}

func (p *Provider) flightToDTO(offers []duffelapi.Offer, requestedCabin string) []dto.FlightOffer {
	results := make([]dto.FlightOffer, 0, len(offers))
	for _, offer := range offers {
		price := utils.ParseAmount(offer.TotalAmount)
		if price < 0 {
			continue
		}

		currency := strings.ToUpper(offer.TotalCurrency)
		if currency == "" {
			currency = dto.DefaultCurrency
		}

		carrier := offer.Owner.IATACode
		if carrier == "" && len(offer.Slices) > 0 && len(offer.Slices[0].Segments) > 0 {
			carrier = offer.Slices[0].Segments[0].MarketingCarrier.IATACode
		}

		carrierName := offer.Owner.Name
		if carrierName == "" {
			carrierName = carrier
		}

		itineraries, cabin, total := p.slicesToDTO(offer.Slices)
		if cabin == "" {
			cabin = requestedCabin
		}

		flight := dto.FlightOffer{
			ID:          offer.ID,
			Provider:    p.Name,
			Carrier:     carrier,
			CarrierName: carrierName,
			Cabin:       strings.ToUpper(cabin),
			Stops:       providerutils.MaxStops(itineraries),
			Refundable:  offer.Conditions.RefundBeforeDeparture != nil && offer.Conditions.RefundBeforeDeparture.Allowed,
			Currency:    currency,
			Price:       price,
			Itineraries: itineraries,
		}

		if total > 0 {
			flight.DurationMinutes = &total
			flight.DurationFormatted = utils.ConvertMinutesToDuration(int64(total))
		}

		if currency == dto.DefaultCurrency {
			usd := price
			flight.PriceUSD = &usd
		}

		results = append(results, flight)
	}

	return results
}

// slicesToDTO returns the directions, the first cabin seen and the summed slice duration.
func (p *Provider) slicesToDTO(slices []duffelapi.OfferSlice) ([]dto.Itinerary, string, int) {
	var (
		cabin string
		total int
	)

	out := make([]dto.Itinerary, 0, len(slices))
	for _, sl := range slices {
		itinerary := dto.Itinerary{Segments: make([]dto.Segment, 0, len(sl.Segments))}
		if minutes, ok := utils.ParseISODuration(sl.Duration); ok {
			itinerary.DurationMinutes = &minutes
			total += minutes
		}

		for _, s := range sl.Segments {
			segment := dto.Segment{
				From:             s.Origin.IATACode,
				To:               s.Destination.IATACode,
				DepartTime:       s.DepartingAt,
				ArriveTime:       s.ArrivingAt,
				FlightNumber:     s.MarketingCarrier.IATACode + s.MarketingCarrierFlightNumber,
				MarketingCarrier: s.MarketingCarrier.IATACode,
				OperatingCarrier: s.OperatingCarrier.IATACode,
			}
			if minutes, ok := utils.ParseISODuration(s.Duration); ok {
				segment.DurationMinutes = &minutes
			}

			if cabin == "" && len(s.Passengers) > 0 {
				cabin = s.Passengers[0].CabinClass
			}

			itinerary.Segments = append(itinerary.Segments, segment)
		}

		providerutils.AttachLayovers(&itinerary, utils.MinutesBetween)
		out = append(out, itinerary)
	}

	return out, cabin, total
}
