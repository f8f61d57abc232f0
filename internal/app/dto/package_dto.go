package dto

// Package is one assembled flight + hotel result.
type Package struct {
	ID                 string      `json:"id"`
	Origin             string      `json:"origin"`
	Destination        string      `json:"destination"`
	DepartDate         string      `json:"departDate"`
	ReturnDate         *string     `json:"returnDate"`
	Currency           string      `json:"currency"`
	Passengers         int         `json:"passengers"`
	Cabin              string      `json:"cabin"`
	TotalCost          float64     `json:"total_cost"`
	TotalCostConverted *float64    `json:"total_cost_converted,omitempty"`
	Score              float64     `json:"score"`
	Flight             FlightOffer `json:"flight"`
	Hotel              *HotelOffer `json:"hotel"`
	HotelGroups        *StarBands  `json:"hotelGroups"`
	HotelSelectedStar  *Star       `json:"hotelSelectedStar,omitempty"`
	Nights             int         `json:"nights"`
}

// SearchResponse is the response struct for the search endpoint
type SearchResponse struct {
	Results      []Package `json:"results"`
	HotelWarning *string   `json:"hotelWarning"`
}
