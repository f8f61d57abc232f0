package hotelprovider

import (
	"context"

	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/dto"
)

// HotelProvider returns priced hotel records for a city and stay.
type HotelProvider interface {
	Search(ctx context.Context, params dto.HotelSearchParams) ([]dto.HotelRecord, error)
}
