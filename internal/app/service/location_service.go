package service

import (
	"context"
	"log/slog"

	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/dto"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/location"
)

type LocationService struct {
	Lookup location.Lookup
}

func NewLocationService(lookup location.Lookup) *LocationService {
	return &LocationService{Lookup: lookup}
}

// SearchLocations godoc
// @Summary      Search locations
// @Tags         Locations
// @Param        q      query     string  false  "Free text"
// @Param        limit  query     int     false  "Max items"
// @Success      200    {object}  dto.LocationResponse
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /api/v1/locations [get]
func (s *LocationService) SearchLocations(ctx context.Context, req dto.LocationQuery) (dto.LocationResponse, error) {
	if req.Query == "" {
		return dto.LocationResponse{Items: []dto.Location{}}, nil
	}

	items, err := s.Lookup.Search(ctx, req.Query)
	if err != nil {
		slog.ErrorContext(ctx, "location lookup failed", slog.String("query", req.Query), slog.Any("error", err))
		return dto.LocationResponse{}, ErrLocationsFailed.Wrap(err)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = location.DefaultLimit
	}
	if len(items) > limit {
		items = items[:limit]
	}

	if items == nil {
		items = []dto.Location{}
	}

	return dto.LocationResponse{Items: items}, nil
}
