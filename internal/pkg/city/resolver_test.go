//go:build unit

package city

import (
	"context"
	"errors"
	"testing"

	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/dto"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/location"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestResolver_ResolveCode(t *testing.T) {
	resolveRequest := func(input string, setupMock func(m *location.MockLookup), want string) func(t *testing.T) {
		return func(t *testing.T) {
			m := location.NewMockLookup(t)
			setupMock(m)

			got := NewResolver(m).ResolveCode(context.Background(), input)
			assert.Equal(t, want, got)
		}
	}

	t.Run("code_passes_through_without_lookup", resolveRequest(" par ", func(m *location.MockLookup) {}, "PAR"))
	t.Run("four_letter_code", resolveRequest("NYCX", func(m *location.MockLookup) {}, "NYCX"))
	t.Run("empty_input", resolveRequest("", func(m *location.MockLookup) {}, ""))

	t.Run("prefers_city_entry", resolveRequest("new york", func(m *location.MockLookup) {
		m.On("Search", mock.Anything, "NEW YORK").Return([]dto.Location{
			{Type: dto.LocationTypeAirport, IATACode: "JFK", CityCode: "JFK"},
			{Type: dto.LocationTypeCity, IATACode: "NYC", CityCode: "NYC"},
		}, nil)
	}, "NYC"))

	t.Run("falls_back_to_any_code", resolveRequest("heathrow", func(m *location.MockLookup) {
		m.On("Search", mock.Anything, "HEATHROW").Return([]dto.Location{
			{Type: dto.LocationTypeCity, Name: "London"},
			{Type: dto.LocationTypeAirport, IATACode: "LHR", CityCode: "LON"},
		}, nil)
	}, "LON"))

	t.Run("lookup_failure_is_empty", resolveRequest("paris france", func(m *location.MockLookup) {
		m.On("Search", mock.Anything, "PARIS FRANCE").Return(nil, errors.New("down"))
	}, ""))

	t.Run("no_match_is_empty", resolveRequest("atlantis", func(m *location.MockLookup) {
		m.On("Search", mock.Anything, "ATLANTIS").Return([]dto.Location{}, nil)
	}, ""))
}

func TestResolver_ResolveName(t *testing.T) {
	resolveRequest := func(input string, setupMock func(m *location.MockLookup), want string) func(t *testing.T) {
		return func(t *testing.T) {
			m := location.NewMockLookup(t)
			setupMock(m)

			got := NewResolver(m).ResolveName(context.Background(), input)
			assert.Equal(t, want, got)
		}
	}

	t.Run("city_name", resolveRequest("PAR", func(m *location.MockLookup) {
		m.On("Search", mock.Anything, "PAR").Return([]dto.Location{
			{Type: dto.LocationTypeAirport, Name: "Charles de Gaulle"},
			{Type: dto.LocationTypeCity, Name: "Paris"},
		}, nil)
	}, "Paris"))

	t.Run("any_name", resolveRequest("CDG", func(m *location.MockLookup) {
		m.On("Search", mock.Anything, "CDG").Return([]dto.Location{
			{Type: dto.LocationTypeAirport, Name: "Charles de Gaulle"},
		}, nil)
	}, "Charles de Gaulle"))

	t.Run("failure_echoes_input", resolveRequest(" Atlantis ", func(m *location.MockLookup) {
		m.On("Search", mock.Anything, "Atlantis").Return(nil, errors.New("down"))
	}, "Atlantis"))

	t.Run("empty_input", resolveRequest("", func(m *location.MockLookup) {}, ""))
}
