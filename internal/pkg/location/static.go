package location

import (
	"context"
	"strings"

	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/dto"
)

const DefaultLimit = 20

type airport struct {
	iata     string
	name     string
	city     string
	cityIATA string
	country  string
}

var builtInAirports = []airport{
	{iata: "DFW", name: "Dallas/Fort Worth Intl", city: "Dallas", cityIATA: "DFW", country: "United States"},
	{iata: "DAL", name: "Dallas Love Field", city: "Dallas", cityIATA: "DFW", country: "United States"},
	{iata: "AUS", name: "Austin-Bergstrom Intl", city: "Austin", cityIATA: "AUS", country: "United States"},
	{iata: "LAS", name: "Harry Reid Intl", city: "Las Vegas", cityIATA: "LAS", country: "United States"},
	{iata: "LAX", name: "Los Angeles Intl", city: "Los Angeles", cityIATA: "LAX", country: "United States"},
	{iata: "SFO", name: "San Francisco Intl", city: "San Francisco", cityIATA: "SFO", country: "United States"},
	{iata: "JFK", name: "John F. Kennedy Intl", city: "New York", cityIATA: "NYC", country: "United States"},
	{iata: "EWR", name: "Newark Liberty Intl", city: "Newark", cityIATA: "NYC", country: "United States"},
	{iata: "LHR", name: "Heathrow", city: "London", cityIATA: "LON", country: "United Kingdom"},
	{iata: "CDG", name: "Charles de Gaulle", city: "Paris", cityIATA: "PAR", country: "France"},
	{iata: "DEL", name: "Indira Gandhi Intl", city: "Delhi", cityIATA: "DEL", country: "India"},
	{iata: "BOM", name: "Chhatrapati Shivaji Maharaj Intl", city: "Mumbai", cityIATA: "BOM", country: "India"},
	{iata: "DXB", name: "Dubai Intl", city: "Dubai", cityIATA: "DXB", country: "United Arab Emirates"},
	{iata: "SIN", name: "Changi", city: "Singapore", cityIATA: "SIN", country: "Singapore"},
	{iata: "NRT", name: "Narita", city: "Tokyo", cityIATA: "TYO", country: "Japan"},
	{iata: "HND", name: "Haneda", city: "Tokyo", cityIATA: "TYO", country: "Japan"},
}

// StaticIndex is an in-memory airport index used when no lookup API is configured.
// Entries whose haystack starts with the query rank before entries that only contain it.
type StaticIndex struct {
	airports []airport
	limit    int
}

func NewStaticIndex() *StaticIndex {
	seen := make(map[string]struct{}, len(builtInAirports))
	airports := make([]airport, 0, len(builtInAirports))
	for _, a := range builtInAirports {
		if len(a.iata) != 3 {
			continue
		}

		if _, ok := seen[a.iata]; ok {
			continue
		}
		seen[a.iata] = struct{}{}

		airports = append(airports, a)
	}

	return &StaticIndex{airports: airports, limit: DefaultLimit}
}

func (s *StaticIndex) Search(_ context.Context, query string) ([]dto.Location, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []dto.Location{}, nil
	}

	var starts, contains []dto.Location
	for _, a := range s.airports {
		haystack := strings.ToLower(a.iata + " " + a.city + " " + a.name + " " + a.country)

		switch {
		case strings.HasPrefix(haystack, q) || strings.ToLower(a.iata) == q:
			starts = append(starts, a.toLocation())
		case strings.Contains(haystack, q):
			contains = append(contains, a.toLocation())
		}
	}

	results := append(starts, contains...)
	if len(results) > s.limit {
		results = results[:s.limit]
	}

	if results == nil {
		results = []dto.Location{}
	}

	return results, nil
}

func (a airport) toLocation() dto.Location {
	return dto.Location{
		Type:        dto.LocationTypeAirport,
		IATACode:    a.iata,
		CityCode:    a.cityIATA,
		Name:        a.name,
		CityName:    a.city,
		CountryName: a.country,
	}
}
