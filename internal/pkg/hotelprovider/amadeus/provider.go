package amadeus

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/dto"
	amadeusapi "github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/amadeus"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/utils"
)

const ProviderName = "amadeus"

type HotelsClient interface {
	HotelsByCity(ctx context.Context, cityCode string) ([]amadeusapi.HotelListing, error)
	HotelOffers(ctx context.Context, hotelIDs []string, checkIn, checkOut, currency string) ([]amadeusapi.HotelOffers, error)
}

type Provider struct {
	Name   string
	client HotelsClient
}

func NewProvider(client HotelsClient) *Provider {
	return &Provider{
		Name:   ProviderName,
		client: client,
	}
}

// Search lists the hotels of the city then prices them for the stay. Records
// with a USD total come first, cheapest first. The rest keep upstream order
// since totals in different currencies cannot be compared.
func (p *Provider) Search(ctx context.Context, params dto.HotelSearchParams) ([]dto.HotelRecord, error) {
	listings, err := p.client.HotelsByCity(ctx, params.CityCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s hotels: %w", p.Name, err)
	}

	if len(listings) == 0 {
		return []dto.HotelRecord{}, nil
	}

	ratings := make(map[string]float64, len(listings))
	ids := make([]string, 0, len(listings))
	for _, l := range listings {
		ratings[l.HotelID] = float64(l.Rating)
		ids = append(ids, l.HotelID)
	}

	offers, err := p.client.HotelOffers(ctx, ids, params.CheckIn, params.CheckOut, params.Currency)
	if err != nil {
		return nil, fmt.Errorf("failed to price %s hotels: %w", p.Name, err)
	}

	records := p.hotelToDTO(offers, ratings, params)
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].TotalUSD, records[j].TotalUSD
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		return *a < *b
	})

	return records, nil
}

func (p *Provider) hotelToDTO(offers []amadeusapi.HotelOffers, ratings map[string]float64, params dto.HotelSearchParams) []dto.HotelRecord {
	records := make([]dto.HotelRecord, 0, len(offers))
	for _, item := range offers {
		if !item.Available || len(item.Offers) == 0 {
			continue
		}

		total := utils.ParseAmount(item.Offers[0].Price.Total)
		if total <= 0 {
			continue
		}

		rating := ratings[item.Hotel.HotelID]
		if rating == 0 {
			rating = float64(item.Hotel.Rating)
		}

		currency := strings.ToUpper(item.Offers[0].Price.Currency)
		record := dto.HotelRecord{
			HotelID:  item.Hotel.HotelID,
			Name:     item.Hotel.Name,
			Rating:   rating,
			City:     item.Hotel.CityCode,
			Currency: currency,
			Total:    total,
		}

		if currency == dto.DefaultCurrency {
			totalUSD := total
			nightly := total
			if params.Nights > 0 {
				nightly = utils.RoundCents(total / float64(params.Nights))
			}
			record.TotalUSD = &totalUSD
			record.PriceUSD = &nightly
		}

		records = append(records, record)
	}

	return records
}
