package dto

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/exception"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/utils"
)

const (
	DefaultCurrency   = "USD"
	DefaultCabin      = "ECONOMY"
	DefaultPassengers = 1
	DefaultNights     = 1
)

type SortStrategy string

const (
	SortBest     SortStrategy = "best"
	SortCheapest SortStrategy = "cheapest"
	SortFastest  SortStrategy = "fastest"
	SortFlexible SortStrategy = "flexible"
)

var (
	ErrMissingRequiredFields = exception.BadRequest("Missing required fields")
	ErrReturnDateRequired    = exception.BadRequest("Return date is required for round-trip searches")
	ErrDepartureInPast       = exception.BadRequest("Departure date cannot be in the past")
	ErrReturnBeforeDeparture = exception.BadRequest("Return date cannot be before departure date")
	ErrMissingHotelDates     = exception.BadRequest("Missing hotel dates (check-in/check-out)")
	ErrHotelCheckOutOrder    = exception.BadRequest("Hotel check-out must be after check-in")
	ErrBudgetOrder           = exception.BadRequest("maxBudget must be greater than or equal to minBudget")
)

// timeNow is replaced in tests.
var timeNow = time.Now

// SearchRequest is the body of POST /search.
type SearchRequest struct {
	Origin             string         `json:"origin" validate:"required,min=3,max=64"`
	Destination        string         `json:"destination" validate:"required,min=3,max=64"`
	DepartDate         string         `json:"departDate" validate:"required,datetime=2006-01-02"`
	ReturnDate         string         `json:"returnDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	RoundTrip          bool           `json:"roundTrip"`
	Passengers         int            `json:"passengers" validate:"min=1,max=9"`
	Cabin              string         `json:"cabin" validate:"oneof=ECONOMY PREMIUM_ECONOMY BUSINESS FIRST"`
	IncludeHotel       bool           `json:"includeHotel"`
	Nights             *int           `json:"nights,omitempty" validate:"omitempty,min=0,max=30"`
	HotelCheckIn       string         `json:"hotelCheckIn,omitempty" validate:"omitempty,datetime=2006-01-02"`
	HotelCheckOut      string         `json:"hotelCheckOut,omitempty" validate:"omitempty,datetime=2006-01-02"`
	HotelPlaceID       string         `json:"hotelPlaceId,omitempty"`
	DestinationPlaceID string         `json:"destinationPlaceId,omitempty"`
	MinHotelStar       Star           `json:"minHotelStar" validate:"omitempty,oneof=3 4 5"`
	Currency           string         `json:"currency" validate:"len=3,alpha"`
	Sort               SortStrategy   `json:"sort" validate:"oneof=best cheapest fastest flexible"`
	MaxStops           *int           `json:"maxStops,omitempty" validate:"omitempty,min=0"`
	MinBudget          OptionalAmount `json:"minBudget" validate:"omitempty,gte=0"`
	MaxBudget          OptionalAmount `json:"maxBudget" validate:"omitempty,gte=0"`
}

func (s *SearchRequest) Bind(r *http.Request) error {
	s.Normalize()

	if err := s.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

// Normalize uppercases codes and fills defaults for absent fields.
func (s *SearchRequest) Normalize() {
	s.Origin = strings.ToUpper(strings.TrimSpace(s.Origin))
	s.Destination = strings.ToUpper(strings.TrimSpace(s.Destination))
	s.DepartDate = strings.TrimSpace(s.DepartDate)
	s.ReturnDate = strings.TrimSpace(s.ReturnDate)
	s.HotelCheckIn = strings.TrimSpace(s.HotelCheckIn)
	s.HotelCheckOut = strings.TrimSpace(s.HotelCheckOut)
	s.HotelPlaceID = strings.TrimSpace(s.HotelPlaceID)
	s.DestinationPlaceID = strings.TrimSpace(s.DestinationPlaceID)

	if s.Passengers == 0 {
		s.Passengers = DefaultPassengers
	}

	s.Cabin = strings.ToUpper(strings.TrimSpace(s.Cabin))
	if s.Cabin == "" {
		s.Cabin = DefaultCabin
	}

	s.Currency = strings.ToUpper(strings.TrimSpace(s.Currency))
	if s.Currency == "" {
		s.Currency = DefaultCurrency
	}

	s.Sort = SortStrategy(strings.ToLower(strings.TrimSpace(string(s.Sort))))
	if s.Sort == "" {
		s.Sort = SortBest
	}

	if s.Nights == nil {
		nights := DefaultNights
		s.Nights = &nights
	}
}

// Validate runs the request checks in order and returns the first failure.
// Every check runs before any provider is called.
func (s *SearchRequest) Validate() error {
	if s.Origin == "" || s.Destination == "" || s.DepartDate == "" {
		return ErrMissingRequiredFields
	}

	if err := ValidateSingleError(s); err != nil {
		return exception.BadRequest(err.Error())
	}

	if s.RoundTrip && s.ReturnDate == "" {
		return ErrReturnDateRequired
	}

	today := timeNow().UTC().Format(utils.DateLayout)
	if s.DepartDate < today {
		return ErrDepartureInPast
	}

	if s.ReturnDate != "" && s.ReturnDate < s.DepartDate {
		return ErrReturnBeforeDeparture
	}

	if s.MinBudget.Valid && s.MaxBudget.Valid && s.MaxBudget.Value < s.MinBudget.Value {
		return ErrBudgetOrder
	}

	if s.IncludeHotel {
		checkIn, checkOut := s.HotelDates()
		if checkIn == "" || checkOut == "" {
			return ErrMissingHotelDates
		}

		if checkOut <= checkIn {
			return ErrHotelCheckOutOrder
		}
	}

	return nil
}

// NightsValue is the requested night count, 0 when absent.
func (s *SearchRequest) NightsValue() int {
	if s.Nights == nil {
		return 0
	}

	return *s.Nights
}

// HotelDates derives the hotel stay. Check-in falls back to the departure date,
// check-out to the return date of a round trip, then to check-in plus nights.
func (s *SearchRequest) HotelDates() (checkIn, checkOut string) {
	checkIn = s.HotelCheckIn
	if checkIn == "" {
		checkIn = s.DepartDate
	}

	checkOut = s.HotelCheckOut
	if checkOut == "" && s.RoundTrip && s.ReturnDate != "" {
		checkOut = s.ReturnDate
	}

	if checkOut == "" && checkIn != "" && s.NightsValue() > 0 {
		if derived, err := utils.AddDays(checkIn, s.NightsValue()); err == nil {
			checkOut = derived
		}
	}

	return checkIn, checkOut
}

// HotelPlace is the place used to find hotels, falling back to the destination.
func (s *SearchRequest) HotelPlace() string {
	switch {
	case s.HotelPlaceID != "":
		return s.HotelPlaceID
	case s.DestinationPlaceID != "":
		return s.DestinationPlaceID
	default:
		return s.Destination
	}
}

// EffectiveReturnDate is the return date only for round trips.
func (s *SearchRequest) EffectiveReturnDate() string {
	if s.RoundTrip {
		return s.ReturnDate
	}

	return ""
}

func (s *SearchRequest) FlightParams() FlightSearchParams {
	return FlightSearchParams{
		Origin:      s.Origin,
		Destination: s.Destination,
		DepartDate:  s.DepartDate,
		ReturnDate:  s.EffectiveReturnDate(),
		Passengers:  s.Passengers,
		Cabin:       s.Cabin,
		MaxStops:    s.MaxStops,
		Currency:    s.Currency,
	}
}
