package location

import (
	"context"
	"fmt"
	"strings"

	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/dto"
	amadeusapi "github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/amadeus"
)

// Lookup searches cities and airports by free text.
type Lookup interface {
	Search(ctx context.Context, query string) ([]dto.Location, error)
}

type LocationsClient interface {
	SearchLocations(ctx context.Context, keyword string) ([]amadeusapi.Location, error)
}

// AmadeusLookup serves lookups from the amadeus locations API.
type AmadeusLookup struct {
	client LocationsClient
}

func NewAmadeusLookup(client LocationsClient) *AmadeusLookup {
	return &AmadeusLookup{client: client}
}

func (l *AmadeusLookup) Search(ctx context.Context, query string) ([]dto.Location, error) {
	items, err := l.client.SearchLocations(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search locations: %w", err)
	}

	results := make([]dto.Location, 0, len(items))
	for _, item := range items {
		locationType := item.SubType
		if locationType == "" {
			locationType = item.Type
		}

		cityCode := item.Address.CityCode
		if cityCode == "" {
			cityCode = item.IATACode
		}

		cityName := item.Address.CityName
		if cityName == "" {
			cityName = item.Name
		}

		results = append(results, dto.Location{
			Type:        strings.ToUpper(locationType),
			IATACode:    item.IATACode,
			CityCode:    cityCode,
			Name:        item.Name,
			CityName:    cityName,
			CountryName: item.Address.CountryName,
		})
	}

	return results, nil
}
