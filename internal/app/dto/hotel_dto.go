package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/exception"
)

// Star is a hotel star band. Only Star3, Star4 and Star5 are valid.
type Star int

const (
	StarNone Star = 0
	Star3    Star = 3
	Star4    Star = 4
	Star5    Star = 5
)

var ErrInvalidStar = exception.BadRequest("minHotelStar must be 3, 4, 5 or none")

// MaxBandSize caps the number of offers kept per star band.
const MaxBandSize = 3

// Stars lists the valid bands in ascending order.
var Stars = [...]Star{Star3, Star4, Star5}

func (s Star) Valid() bool {
	return s >= Star3 && s <= Star5
}

func (s Star) String() string {
	return strconv.Itoa(int(s))
}

// UnmarshalJSON accepts a number or a numeric string. null, "" and "none"
// mean no star filter.
func (s *Star) UnmarshalJSON(data []byte) error {
	text, err := scalarText(data)
	if err != nil {
		return ErrInvalidStar
	}

	if text == "" || strings.EqualFold(text, "none") {
		*s = StarNone
		return nil
	}

	n, err := strconv.Atoi(text)
	if err != nil {
		return ErrInvalidStar
	}

	*s = Star(n)
	return nil
}

func (s Star) index() int {
	return int(s - Star3)
}

// HotelSearchParams is what the hotel provider receives.
type HotelSearchParams struct {
	CityCode string
	CheckIn  string
	CheckOut string
	Nights   int
	Currency string
}

// HotelRecord is a raw hotel provider result before banding.
type HotelRecord struct {
	HotelID  string
	Name     string
	Rating   float64
	City     string
	Currency string
	Total    float64
	PriceUSD *float64
	TotalUSD *float64
}

// HotelOffer is a real or curated hotel shown in a star band.
type HotelOffer struct {
	HotelID   string         `json:"hotel_id,omitempty"`
	Name      string         `json:"name"`
	Star      Star           `json:"star"`
	City      string         `json:"city"`
	Currency  string         `json:"currency,omitempty"`
	Price     *float64       `json:"price,omitempty"`
	PriceUSD  *float64       `json:"price_usd,omitempty"`
	TotalUSD  *float64       `json:"total_usd,omitempty"`
	IsReal    bool           `json:"isReal"`
	Deeplinks HotelDeeplinks `json:"deeplinks"`
}

// HotelDeeplinks holds the hotel search links, one per booking site.
type HotelDeeplinks struct {
	Booking string `json:"booking"`
	Hotels  string `json:"hotels"`
	Expedia string `json:"expedia"`
	Agoda   string `json:"agoda"`
}

// Complete reports whether every booking site has a link.
func (d HotelDeeplinks) Complete() bool {
	return d.Booking != "" && d.Hotels != "" && d.Expedia != "" && d.Agoda != ""
}

// StarBands groups hotel offers by star. The zero value has three empty bands.
type StarBands struct {
	bands [len(Stars)][]HotelOffer
}

// Band returns the offers of star s, nil for an invalid star.
func (b *StarBands) Band(s Star) []HotelOffer {
	if !s.Valid() {
		return nil
	}

	return b.bands[s.index()]
}

// Set replaces band s, truncating to MaxBandSize.
func (b *StarBands) Set(s Star, offers []HotelOffer) {
	if !s.Valid() {
		return
	}

	if len(offers) > MaxBandSize {
		offers = offers[:MaxBandSize]
	}

	b.bands[s.index()] = offers
}

// Add appends offer to band s and reports false once the band is full.
func (b *StarBands) Add(s Star, offer HotelOffer) bool {
	if !s.Valid() || len(b.bands[s.index()]) >= MaxBandSize {
		return false
	}

	b.bands[s.index()] = append(b.bands[s.index()], offer)

	return true
}

func (b StarBands) MarshalJSON() ([]byte, error) {
	out := make(map[string][]HotelOffer, len(Stars))
	for _, s := range Stars {
		offers := b.bands[s.index()]
		if offers == nil {
			offers = []HotelOffer{}
		}
		out[s.String()] = offers
	}

	return json.Marshal(out)
}

func (b *StarBands) UnmarshalJSON(data []byte) error {
	var in map[string][]HotelOffer
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	for key, offers := range in {
		n, err := strconv.Atoi(key)
		if err != nil || !Star(n).Valid() {
			return fmt.Errorf("invalid star band %q", key)
		}
		b.Set(Star(n), offers)
	}

	return nil
}
