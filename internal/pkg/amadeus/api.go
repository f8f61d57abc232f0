package amadeus

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// MaxHotelIDs bounds a single hotel offers request.
const MaxHotelIDs = 20

// SearchLocations looks up cities and airports by keyword.
func (c *Client) SearchLocations(ctx context.Context, keyword string) ([]Location, error) {
	query := url.Values{}
	query.Set("subType", "CITY,AIRPORT")
	query.Set("keyword", keyword)

	var resp locationsResponse
	if err := c.get(ctx, "/v1/reference-data/locations", query, &resp); err != nil {
		return nil, fmt.Errorf("locations lookup failed: %w", err)
	}

	return resp.Data, nil
}

// SearchFlightOffers calls Flight Offers Search v2.
func (c *Client) SearchFlightOffers(ctx context.Context, q FlightOffersQuery) (FlightOffersResult, error) {
	query := url.Values{}
	query.Set("originLocationCode", q.Origin)
	query.Set("destinationLocationCode", q.Destination)
	query.Set("departureDate", q.DepartDate)
	if q.ReturnDate != "" {
		query.Set("returnDate", q.ReturnDate)
	}
	query.Set("adults", strconv.Itoa(max(1, q.Adults)))
	if q.Cabin != "" {
		query.Set("travelClass", strings.ToUpper(q.Cabin))
	}
	if q.NonStop {
		query.Set("nonStop", "true")
	}
	if q.Currency != "" {
		query.Set("currencyCode", q.Currency)
	}
	if q.Max > 0 {
		query.Set("max", strconv.Itoa(q.Max))
	}

	var resp flightOffersResponse
	if err := c.get(ctx, "/v2/shopping/flight-offers", query, &resp); err != nil {
		return FlightOffersResult{}, fmt.Errorf("flight search failed: %w", err)
	}

	return FlightOffersResult{
		Offers:   resp.Data,
		Carriers: resp.Dictionaries.Carriers,
	}, nil
}

// HotelsByCity lists hotels of a city code rated 3 stars and above.
func (c *Client) HotelsByCity(ctx context.Context, cityCode string) ([]HotelListing, error) {
	query := url.Values{}
	query.Set("cityCode", cityCode)
	query.Set("ratings", "3,4,5")
	query.Set("hotelSource", "ALL")

	var resp hotelListResponse
	if err := c.get(ctx, "/v1/reference-data/locations/hotels/by-city", query, &resp); err != nil {
		return nil, fmt.Errorf("hotel list failed: %w", err)
	}

	return resp.Data, nil
}

// HotelOffers fetches the best rate of each hotel for the stay.
func (c *Client) HotelOffers(ctx context.Context, hotelIDs []string, checkIn, checkOut, currency string) ([]HotelOffers, error) {
	if len(hotelIDs) == 0 {
		return nil, nil
	}

	if len(hotelIDs) > MaxHotelIDs {
		hotelIDs = hotelIDs[:MaxHotelIDs]
	}

	query := url.Values{}
	query.Set("hotelIds", strings.Join(hotelIDs, ","))
	query.Set("checkInDate", checkIn)
	query.Set("checkOutDate", checkOut)
	query.Set("adults", "1")
	query.Set("roomQuantity", "1")
	query.Set("bestRateOnly", "true")
	if currency != "" {
		query.Set("currency", currency)
	}

	var resp hotelOffersResponse
	if err := c.get(ctx, "/v3/shopping/hotel-offers", query, &resp); err != nil {
		return nil, fmt.Errorf("hotel offers failed: %w", err)
	}

	return resp.Data, nil
}
