package trippackage

import (
	"github.com/google/uuid"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/dto"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/deeplink"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/utils"
)

// bestHotelOrder is the band scan order when no star is selected.
var bestHotelOrder = [...]dto.Star{dto.Star5, dto.Star4, dto.Star3}

// Trip is the request context every package echoes.
type Trip struct {
	Origin       string
	Destination  string
	DepartDate   string
	ReturnDate   string
	RoundTrip    bool
	Currency     string
	Passengers   int
	Cabin        string
	Nights       int
	IncludeHotel bool
	SelectedStar dto.Star
}

func (t Trip) route() deeplink.Route {
	r := deeplink.Route{
		Origin:      t.Origin,
		Destination: t.Destination,
		DepartDate:  t.DepartDate,
	}
	if t.RoundTrip {
		r.ReturnDate = t.ReturnDate
	}

	return r
}

// StayNights falls back to one night for round trips and none for one way trips.
func (t Trip) StayNights() int {
	if t.Nights > 0 {
		return t.Nights
	}

	if t.RoundTrip && t.ReturnDate != "" {
		return 1
	}

	return 0
}

type Assembler struct {
	clientBaseURL string
}

func NewAssembler(clientBaseURL string) *Assembler {
	return &Assembler{clientBaseURL: clientBaseURL}
}

// BestHotel returns the first real offer scanning 5, 4 then 3 stars, or only the
// selected star when one is set. Curated offers are never returned.
func BestHotel(groups *dto.StarBands, selected dto.Star) *dto.HotelOffer {
	if groups == nil {
		return nil
	}

	order := bestHotelOrder[:]
	if selected.Valid() {
		order = []dto.Star{selected}
	}

	for _, star := range order {
		for _, offer := range groups.Band(star) {
			if offer.IsReal {
				best := offer
				return &best
			}
		}
	}

	return nil
}

// HotelUSD prefers the stay total, then the nightly price, then 0.
func HotelUSD(h *dto.HotelOffer) float64 {
	switch {
	case h == nil:
		return 0
	case h.TotalUSD != nil:
		return *h.TotalUSD
	case h.PriceUSD != nil:
		return *h.PriceUSD
	default:
		return 0
	}
}

// Assemble pairs every flight with the best hotel. Every package shares the same hotel and bands.
func (a *Assembler) Assemble(flights []dto.FlightOffer, groups *dto.StarBands, trip Trip) []dto.Package {
	var (
		hotel       *dto.HotelOffer
		hotelGroups *dto.StarBands
		selected    *dto.Star
	)

	if trip.IncludeHotel {
		hotel = BestHotel(groups, trip.SelectedStar)
		hotelGroups = groups
		if trip.SelectedStar.Valid() {
			star := trip.SelectedStar
			selected = &star
		}
	}

	var returnDate *string
	if trip.ReturnDate != "" {
		rd := trip.ReturnDate
		returnDate = &rd
	}

	route := trip.route()
	hotelUSD := HotelUSD(hotel)

	packages := make([]dto.Package, 0, len(flights))
	for _, f := range flights {
		flightUSD := 0.0
		if f.PriceUSD != nil {
			flightUSD = *f.PriceUSD
		}
		total := utils.RoundCents(flightUSD + hotelUSD)

		checkout := deeplink.Checkout{
			FlightID:   f.ID,
			Carrier:    f.Carrier,
			Route:      route,
			Currency:   trip.Currency,
			Total:      total,
			Passengers: trip.Passengers,
			Cabin:      trip.Cabin,
		}
		if hotel != nil {
			checkout.HotelName = hotel.Name
		}

		f.BookingLinks = &dto.BookingLinks{
			AirlineSite:   deeplink.AirlineSite(f.Carrier),
			GoogleFlights: deeplink.GoogleFlights(route),
			Skyscanner:    deeplink.Skyscanner(route),
			Checkout:      deeplink.CheckoutLink(a.clientBaseURL, checkout),
		}

		id := f.ID
		if id == "" {
			id = uuid.NewString()
		}

		packages = append(packages, dto.Package{
			ID:                id,
			Origin:            trip.Origin,
			Destination:       trip.Destination,
			DepartDate:        trip.DepartDate,
			ReturnDate:        returnDate,
			Currency:          trip.Currency,
			Passengers:        trip.Passengers,
			Cabin:             trip.Cabin,
			TotalCost:         total,
			Flight:            f,
			Hotel:             hotel,
			HotelGroups:       hotelGroups,
			HotelSelectedStar: selected,
			Nights:            trip.StayNights(),
		})
	}

	return packages
}
