package dto

// FlightSearchParams is what the active flight provider receives.
type FlightSearchParams struct {
	Origin      string
	Destination string
	DepartDate  string
	ReturnDate  string
	Passengers  int
	Cabin       string
	MaxStops    *int
	Currency    string
}

// FlightOffer is the provider independent shape of a flight offer.
type FlightOffer struct {
	ID                string        `json:"id"`
	Provider          string        `json:"provider"`
	Carrier           string        `json:"carrier"`
	CarrierName       string        `json:"carrier_name"`
	Cabin             string        `json:"cabin"`
	DurationMinutes   *int          `json:"duration_minutes,omitempty"`
	DurationFormatted string        `json:"duration_formatted,omitempty"`
	Stops             int           `json:"stops"`
	Refundable        bool          `json:"refundable"`
	Currency          string        `json:"currency"`
	Price             float64       `json:"price"`
	PriceUSD          *float64      `json:"price_usd,omitempty"`
	PriceConverted    *float64      `json:"price_converted,omitempty"`
	Itineraries       []Itinerary   `json:"itineraries"`
	BookingLinks      *BookingLinks `json:"bookingLinks,omitempty"`
}

// Itinerary is one direction of a trip.
type Itinerary struct {
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
	Segments        []Segment `json:"segments"`
}

type Segment struct {
	From             string `json:"from"`
	To               string `json:"to"`
	DepartTime       string `json:"depart_time"`
	ArriveTime       string `json:"arrive_time"`
	FlightNumber     string `json:"flight_number"`
	MarketingCarrier string `json:"marketing_carrier,omitempty"`
	OperatingCarrier string `json:"operating_carrier,omitempty"`
	DurationMinutes  *int   `json:"duration_minutes,omitempty"`
	// LayoverMinutes is the connection time after this segment, nil on the last one.
	LayoverMinutes *int `json:"layover_minutes,omitempty"`
}

// BookingLinks are the outbound links attached to every packaged flight.
type BookingLinks struct {
	AirlineSite   *string `json:"airlineSite"`
	GoogleFlights string  `json:"googleFlights"`
	Skyscanner    string  `json:"skyscanner"`
	Checkout      string  `json:"checkout"`
}
