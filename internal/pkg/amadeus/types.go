package amadeus

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Location is one entry of /v1/reference-data/locations.
type Location struct {
	Type     string `json:"type"`
	SubType  string `json:"subType"`
	Name     string `json:"name"`
	IATACode string `json:"iataCode"`
	Address  struct {
		CityName    string `json:"cityName"`
		CityCode    string `json:"cityCode"`
		CountryName string `json:"countryName"`
	} `json:"address"`
}

type locationsResponse struct {
	Data []Location `json:"data"`
}

// FlightOffersQuery maps to the query of /v2/shopping/flight-offers.
type FlightOffersQuery struct {
	Origin      string
	Destination string
	DepartDate  string
	ReturnDate  string
	Adults      int
	Cabin       string
	NonStop     bool
	Currency    string
	Max         int
}

type FlightOffersResult struct {
	Offers   []FlightOffer
	Carriers map[string]string
}

type flightOffersResponse struct {
	Data         []FlightOffer `json:"data"`
	Dictionaries struct {
		Carriers map[string]string `json:"carriers"`
	} `json:"dictionaries"`
}

type FlightOffer struct {
	ID                     string          `json:"id"`
	Source                 string          `json:"source"`
	Itineraries            []Itinerary     `json:"itineraries"`
	Price                  Price           `json:"price"`
	PricingOptions         PricingOptions  `json:"pricingOptions"`
	ValidatingAirlineCodes []string        `json:"validatingAirlineCodes"`
	TravelerPricings       []TravelerPrice `json:"travelerPricings"`
}

type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Departure   Endpoint `json:"departure"`
	Arrival     Endpoint `json:"arrival"`
	CarrierCode string   `json:"carrierCode"`
	Number      string   `json:"number"`
	Operating   struct {
		CarrierCode string `json:"carrierCode"`
	} `json:"operating"`
	Duration string `json:"duration"`
}

type Endpoint struct {
	IATACode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

type Price struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	GrandTotal string `json:"grandTotal"`
}

type PricingOptions struct {
	RefundableFare bool `json:"refundableFare"`
}

type TravelerPrice struct {
	FareDetailsBySegment []struct {
		Cabin string `json:"cabin"`
	} `json:"fareDetailsBySegment"`
}

// Rating accepts amadeus ratings sent either as a number or a string.
type Rating float64

func (r *Rating) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*r = 0
		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*r = 0
		return nil
	}

	*r = Rating(v)
	return nil
}

func (r Rating) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(r))
}

// HotelListing is one entry of /v1/reference-data/locations/hotels/by-city.
type HotelListing struct {
	HotelID  string `json:"hotelId"`
	Name     string `json:"name"`
	IATACode string `json:"iataCode"`
	Rating   Rating `json:"rating"`
	Address  struct {
		CountryCode string `json:"countryCode"`
		CityName    string `json:"cityName"`
	} `json:"address"`
}

type hotelListResponse struct {
	Data []HotelListing `json:"data"`
}

// HotelOffers is one hotel of /v3/shopping/hotel-offers.
type HotelOffers struct {
	Hotel struct {
		HotelID  string `json:"hotelId"`
		Name     string `json:"name"`
		CityCode string `json:"cityCode"`
		Rating   Rating `json:"rating"`
	} `json:"hotel"`
	Available bool `json:"available"`
	Offers    []struct {
		ID    string `json:"id"`
		Price struct {
			Currency string `json:"currency"`
			Base     string `json:"base"`
			Total    string `json:"total"`
		} `json:"price"`
	} `json:"offers"`
}

type hotelOffersResponse struct {
	Data []HotelOffers `json:"data"`
}
