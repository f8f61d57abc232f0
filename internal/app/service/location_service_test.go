//go:build unit

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/dto"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/location"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLocationService_SearchLocations(t *testing.T) {
	items := []dto.Location{
		{Type: dto.LocationTypeAirport, IATACode: "JFK", CityCode: "NYC"},
		{Type: dto.LocationTypeAirport, IATACode: "EWR", CityCode: "NYC"},
		{Type: dto.LocationTypeCity, IATACode: "NYC", CityCode: "NYC"},
	}

	searchRequest := func(req dto.LocationQuery, setupMock func(m *location.MockLookup), want dto.LocationResponse, wantErr error) func(t *testing.T) {
		return func(t *testing.T) {
			m := location.NewMockLookup(t)
			setupMock(m)

			got, err := NewLocationService(m).SearchLocations(context.Background(), req)
			if wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, wantErr))
				return
			}

			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("SearchLocations() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("empty query skips lookup", searchRequest(dto.LocationQuery{}, func(m *location.MockLookup) {},
		dto.LocationResponse{Items: []dto.Location{}}, nil))

	t.Run("all items", searchRequest(dto.LocationQuery{Query: "new york"}, func(m *location.MockLookup) {
		m.On("Search", mock.Anything, "new york").Return(items, nil)
	}, dto.LocationResponse{Items: items}, nil))

	t.Run("limited", searchRequest(dto.LocationQuery{Query: "new york", Limit: 2}, func(m *location.MockLookup) {
		m.On("Search", mock.Anything, "new york").Return(items, nil)
	}, dto.LocationResponse{Items: items[:2]}, nil))

	t.Run("no match", searchRequest(dto.LocationQuery{Query: "zzz"}, func(m *location.MockLookup) {
		m.On("Search", mock.Anything, "zzz").Return(nil, nil)
	}, dto.LocationResponse{Items: []dto.Location{}}, nil))

	t.Run("lookup failure", searchRequest(dto.LocationQuery{Query: "paris"}, func(m *location.MockLookup) {
		m.On("Search", mock.Anything, "paris").Return(nil, errors.New("boom"))
	}, dto.LocationResponse{}, ErrLocationsFailed))
}

func TestFXService_Convert(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		m := NewMockRateConverter(t)
		m.On("Convert", mock.Anything, 100.0, "USD", "EUR").Return(90.0, 0.9, nil)

		got, err := NewFXService(m).Convert(context.Background(), dto.ConvertRequest{Amount: 100, From: "USD", To: "EUR"})
		require.NoError(t, err)
		assert.Equal(t, dto.ConvertResponse{Amount: 100, From: "USD", To: "EUR", Rate: 0.9, Converted: 90}, got)
	})

	t.Run("upstream failure", func(t *testing.T) {
		m := NewMockRateConverter(t)
		m.On("Convert", mock.Anything, 1.0, "USD", "EUR").Return(0.0, 0.0, errors.New("down"))

		_, err := NewFXService(m).Convert(context.Background(), dto.ConvertRequest{Amount: 1, From: "USD", To: "EUR"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrFXUpstreamFailed))
	})
}

func TestHealthService_Health(t *testing.T) {
	s := NewHealthService(dto.HealthResponse{FlightProvider: "duffel", DuffelConfigured: true, DuffelReady: true})

	got := s.Health(context.Background())
	assert.True(t, got.OK)
	assert.Equal(t, "duffel", got.FlightProvider)
}
