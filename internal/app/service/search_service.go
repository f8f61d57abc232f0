package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/dto"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/flightprovider"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/fx"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/hotel"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/trippackage"
)

type HotelBandBuilder interface {
	Build(ctx context.Context, req hotel.BandRequest) (*dto.StarBands, string)
}

type CurrencyConverter interface {
	ConvertUSD(ctx context.Context, amountUSD float64, currency string) (float64, error)
}

type SearchService struct {
	Flights   flightprovider.FlightProvider
	Hotels    HotelBandBuilder
	Assembler *trippackage.Assembler
	// Converter is nil when FX conversion is disabled.
	Converter CurrencyConverter
}

func NewSearchService(
	flights flightprovider.FlightProvider,
	hotels HotelBandBuilder,
	assembler *trippackage.Assembler,
	converter CurrencyConverter,
) *SearchService {
	return &SearchService{
		Flights:   flights,
		Hotels:    hotels,
		Assembler: assembler,
		Converter: converter,
	}
}

// Search validates the request, fetches flights and hotel bands, then assembles,
// filters and orders the packages.
// Search godoc
// @Summary      Search trip packages
// @Tags         Search
// @Description  Search flights, group hotels by star and return ranked flight + hotel packages
// @Param        request  body      dto.SearchRequest  true  "Search Request"
// @Success      200      {object}  dto.SearchResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/search [post]
func (s *SearchService) Search(ctx context.Context, req dto.SearchRequest) (dto.SearchResponse, error) {
	startTime := time.Now()

	req.Normalize()
	if err := req.Validate(); err != nil {
		return dto.SearchResponse{}, err
	}

	flights, err := s.Flights.Search(ctx, req.FlightParams())
	if err != nil {
		slog.ErrorContext(ctx, "flight search failed", slog.Any("error", err))
		return dto.SearchResponse{}, ErrSearchFailed.Wrap(err)
	}

	trip := trippackage.Trip{
		Origin:       req.Origin,
		Destination:  req.Destination,
		DepartDate:   req.DepartDate,
		ReturnDate:   req.ReturnDate,
		RoundTrip:    req.RoundTrip,
		Currency:     req.Currency,
		Passengers:   req.Passengers,
		Cabin:        req.Cabin,
		Nights:       req.NightsValue(),
		IncludeHotel: req.IncludeHotel,
		SelectedStar: req.MinHotelStar,
	}

	var (
		groups  *dto.StarBands
		warning *string
	)

	if req.IncludeHotel {
		checkIn, checkOut := req.HotelDates()
		bands, msg := s.Hotels.Build(ctx, hotel.BandRequest{
			Place:       req.HotelPlace(),
			Destination: req.Destination,
			CheckIn:     checkIn,
			CheckOut:    checkOut,
			Nights:      trip.StayNights(),
			Currency:    req.Currency,
			MinStar:     req.MinHotelStar,
		})

		groups = bands
		if msg != "" {
			warning = &msg
		}
	}

	packages := s.Assembler.Assemble(flights, groups, trip)
	s.convert(ctx, packages, req.Currency)

	packages = trippackage.FilterPackages(packages, req.MinBudget.Ptr(), req.MaxBudget.Ptr())
	packages = trippackage.RankPackages(packages)
	packages = trippackage.SortPackages(packages, req.Sort)

	slog.InfoContext(ctx, "search completed",
		slog.Int("flights", len(flights)),
		slog.Int("results", len(packages)),
		slog.Bool("hotel_warning", warning != nil),
		slog.Int64("search_time_ms", time.Since(startTime).Milliseconds()))

	return dto.SearchResponse{
		Results:      packages,
		HotelWarning: warning,
	}, nil
}

// convert fills the converted totals and flight prices for non USD requests.
// Amounts are applied only when every conversion succeeds, so a response never
// mixes converted and unconverted packages.
func (s *SearchService) convert(ctx context.Context, packages []dto.Package, currency string) {
	if s.Converter == nil || currency == "" || currency == fx.BaseCurrency {
		return
	}

	totals := make([]float64, len(packages))
	prices := make([]*float64, len(packages))

	for i := range packages {
		total, err := s.Converter.ConvertUSD(ctx, packages[i].TotalCost, currency)
		if err != nil {
			slog.WarnContext(ctx, "fx conversion failed", slog.String("currency", currency), slog.Any("error", err))
			return
		}
		totals[i] = total

		if usd := packages[i].Flight.PriceUSD; usd != nil {
			price, err := s.Converter.ConvertUSD(ctx, *usd, currency)
			if err != nil {
				slog.WarnContext(ctx, "fx conversion failed", slog.String("currency", currency), slog.Any("error", err))
				return
			}
			prices[i] = &price
		}
	}

	for i := range packages {
		packages[i].TotalCostConverted = &totals[i]
		packages[i].Flight.PriceConverted = prices[i]
	}
}
