package dto

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/exception"
)

const (
	LocationTypeCity    = "CITY"
	LocationTypeAirport = "AIRPORT"
)

// Location is one Location Lookup entry.
type Location struct {
	Type        string `json:"type"`
	IATACode    string `json:"iataCode"`
	CityCode    string `json:"cityCode"`
	Name        string `json:"name"`
	CityName    string `json:"cityName"`
	CountryName string `json:"countryName"`
}

// LocationQuery is the GET /locations query.
type LocationQuery struct {
	Query string `json:"q" validate:"max=64"`
	Limit int    `json:"limit" validate:"gte=0,lte=50"`
}

func (q *LocationQuery) Bind(r *http.Request) error {
	q.Query = strings.TrimSpace(r.URL.Query().Get("q"))
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return exception.BadRequest("limit must be a number")
		}
		q.Limit = limit
	}

	if err := ValidateSingleError(q); err != nil {
		return exception.BadRequest(err.Error())
	}

	return nil
}

type LocationResponse struct {
	Items []Location `json:"items"`
}
