package hotel

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sync"

	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/dto"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/deeplink"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/hotelprovider"
)

const (
	WarningNoLiveForStar = "No live offers for that star. Showing curated choices with booking links."
	WarningPartialBands  = "Some stars had no live offers. Filled with curated choices."
	WarningUnavailable   = "Hotel offers are temporarily unavailable. Showing curated choices by star with booking links."
)

var errCityUnresolved = errors.New("could not resolve hotel city")

type CityResolver interface {
	ResolveCode(ctx context.Context, input string) string
	ResolveName(ctx context.Context, input string) string
}

// BandRequest describes the stay to band hotels for.
type BandRequest struct {
	// Place is resolved to the hotel city code.
	Place string
	// Destination is resolved to the city display name.
	Destination string
	CheckIn     string
	CheckOut    string
	Nights      int
	Currency    string
	MinStar     dto.Star
}

type BandBuilder struct {
	provider hotelprovider.HotelProvider
	cities   CityResolver
}

func NewBandBuilder(provider hotelprovider.HotelProvider, cities CityResolver) *BandBuilder {
	return &BandBuilder{
		provider: provider,
		cities:   cities,
	}
}

// Build groups live hotel offers into star bands, filling gaps with curated offers.
// It never fails: any provider problem turns into curated bands and a warning.
func (b *BandBuilder) Build(ctx context.Context, req BandRequest) (*dto.StarBands, string) {
	city := sync.OnceValue(func() string {
		return b.cities.ResolveName(ctx, req.Destination)
	})

	records, err := b.search(ctx, req)
	if err != nil {
		slog.WarnContext(ctx, "hotel search failed, using curated choices", slog.Any("error", err))
		return b.unavailable(req, city()), WarningUnavailable
	}

	buckets := b.bucket(records, req, city)

	if req.MinStar.Valid() {
		bands := &dto.StarBands{}
		if len(buckets.Band(req.MinStar)) == 0 {
			bands.Set(req.MinStar, CuratedBand(city(), req.MinStar, req.CheckIn, req.CheckOut))
			return bands, WarningNoLiveForStar
		}

		bands.Set(req.MinStar, buckets.Band(req.MinStar))
		return bands, ""
	}

	warning := ""
	for _, star := range dto.Stars {
		if len(buckets.Band(star)) > 0 {
			continue
		}

		buckets.Set(star, CuratedBand(city(), star, req.CheckIn, req.CheckOut))
		warning = WarningPartialBands
	}

	return buckets, warning
}

func (b *BandBuilder) search(ctx context.Context, req BandRequest) ([]dto.HotelRecord, error) {
	cityCode := b.cities.ResolveCode(ctx, req.Place)
	if cityCode == "" {
		return nil, errCityUnresolved
	}

	return b.provider.Search(ctx, dto.HotelSearchParams{
		CityCode: cityCode,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Nights:   req.Nights,
		Currency: req.Currency,
	})
}

// bucket keeps the first MaxBandSize records of each star in provider order.
func (b *BandBuilder) bucket(records []dto.HotelRecord, req BandRequest, city func() string) *dto.StarBands {
	bands := &dto.StarBands{}
	for _, r := range records {
		star, ok := StarOf(r.Rating)
		if !ok {
			continue
		}

		if len(bands.Band(star)) >= dto.MaxBandSize {
			continue
		}

		price := r.Total
		bands.Add(star, dto.HotelOffer{
			HotelID:   r.HotelID,
			Name:      r.Name,
			Star:      star,
			City:      city(),
			Currency:  r.Currency,
			Price:     &price,
			PriceUSD:  r.PriceUSD,
			TotalUSD:  r.TotalUSD,
			IsReal:    true,
			Deeplinks: deeplink.HotelLinks(r.Name+" "+city(), req.CheckIn, req.CheckOut, star),
		})
	}

	return bands
}

func (b *BandBuilder) unavailable(req BandRequest, city string) *dto.StarBands {
	bands := &dto.StarBands{}
	if req.MinStar.Valid() {
		bands.Set(req.MinStar, CuratedBand(city, req.MinStar, req.CheckIn, req.CheckOut))
		return bands
	}

	for _, star := range dto.Stars {
		bands.Set(star, CuratedBand(city, star, req.CheckIn, req.CheckOut))
	}

	return bands
}

// StarOf rounds a rating to its band. Ratings above 5 count as 5, below 3 have no band.
func StarOf(rating float64) (dto.Star, bool) {
	if math.IsNaN(rating) {
		return dto.StarNone, false
	}

	rounded := math.Round(rating)
	if rounded < float64(dto.Star3) {
		return dto.StarNone, false
	}

	if rounded > float64(dto.Star5) {
		return dto.Star5, true
	}

	return dto.Star(rounded), true
}
