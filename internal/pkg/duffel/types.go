package duffel

type envelope[T any] struct {
	Data T `json:"data"`
}

type OfferRequest struct {
	Slices         []Slice     `json:"slices"`
	Passengers     []Passenger `json:"passengers"`
	CabinClass     string      `json:"cabin_class,omitempty"`
	MaxConnections int         `json:"max_connections"`
}

type Slice struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
}

type Passenger struct {
	Type string `json:"type"`
}

// Adults builds n adult passengers, at least one.
func Adults(n int) []Passenger {
	passengers := make([]Passenger, max(1, n))
	for i := range passengers {
		passengers[i] = Passenger{Type: "adult"}
	}

	return passengers
}

type Offer struct {
	ID            string       `json:"id"`
	TotalAmount   string       `json:"total_amount"`
	TotalCurrency string       `json:"total_currency"`
	Owner         Airline      `json:"owner"`
	Slices        []OfferSlice `json:"slices"`
	Conditions    struct {
		RefundBeforeDeparture *struct {
			Allowed bool `json:"allowed"`
		} `json:"refund_before_departure"`
	} `json:"conditions"`
}

type Airline struct {
	IATACode string `json:"iata_code"`
	Name     string `json:"name"`
}

type Place struct {
	IATACode string `json:"iata_code"`
}

type OfferSlice struct {
	Duration string         `json:"duration"`
	Segments []OfferSegment `json:"segments"`
}

type OfferSegment struct {
	Origin                       Place              `json:"origin"`
	Destination                  Place              `json:"destination"`
	DepartingAt                  string             `json:"departing_at"`
	ArrivingAt                   string             `json:"arriving_at"`
	Duration                     string             `json:"duration"`
	MarketingCarrier             Airline            `json:"marketing_carrier"`
	MarketingCarrierFlightNumber string             `json:"marketing_carrier_flight_number"`
	OperatingCarrier             Airline            `json:"operating_carrier"`
	Passengers                   []SegmentPassenger `json:"passengers"`
}

type SegmentPassenger struct {
	CabinClass string `json:"cabin_class"`
}
