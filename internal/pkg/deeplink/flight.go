package deeplink

import (
	"strconv"
	"strings"

	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/utils"
)

var airlineSites = map[string]string{
	"UA": "https://www.united.com/",
	"AA": "https://www.aa.com/",
	"DL": "https://www.delta.com/",
	"BA": "https://www.ba.com/",
	"AC": "https://www.aircanada.com/",
	"AS": "https://www.alaskaair.com/",
	"B6": "https://www.jetblue.com/",
	"LH": "https://www.lufthansa.com/",
	"AF": "https://www.airfrance.com/",
	"IB": "https://www.iberia.com/",
}

// AirlineSite returns the carrier home page, nil for carriers we have no site for.
func AirlineSite(carrier string) *string {
	site, ok := airlineSites[strings.ToUpper(carrier)]
	if !ok {
		return nil
	}

	return &site
}

// Route is the searched trip. ReturnDate is empty for one way trips.
type Route struct {
	Origin      string
	Destination string
	DepartDate  string
	ReturnDate  string
}

func GoogleFlights(r Route) string {
	link := "https://www.google.com/travel/flights?q=Flights%20from%20" + utils.EncodeComponent(r.Origin) +
		"%20to%20" + utils.EncodeComponent(r.Destination) +
		"%20on%20" + utils.EncodeComponent(r.DepartDate)

	if r.ReturnDate != "" {
		link += "%20return%20" + utils.EncodeComponent(r.ReturnDate)
	}

	return link
}

// Skyscanner uses compact YYYYMMDD dates. One way links end with a slash.
func Skyscanner(r Route) string {
	link := "https://www.skyscanner.com/transport/flights/" +
		utils.EncodeComponent(strings.ToLower(r.Origin)) + "/" +
		utils.EncodeComponent(strings.ToLower(r.Destination)) + "/" +
		utils.CompactDate(r.DepartDate)

	if r.ReturnDate != "" {
		return link + "/" + utils.CompactDate(r.ReturnDate)
	}

	return link + "/"
}

// Checkout is the internal continuation link of a package.
type Checkout struct {
	FlightID   string
	Carrier    string
	Route      Route
	HotelName  string
	Currency   string
	Total      float64
	Passengers int
	Cabin      string
}

// CheckoutLink renders c against the client base url. Parameter order is fixed.
func CheckoutLink(baseURL string, c Checkout) string {
	var b strings.Builder

	b.WriteString(strings.TrimRight(baseURL, "/"))
	b.WriteString("/book?flightId=")
	b.WriteString(utils.EncodeComponent(c.FlightID))
	b.WriteString("&carrier=")
	b.WriteString(utils.EncodeComponent(c.Carrier))
	b.WriteString("&origin=")
	b.WriteString(utils.EncodeComponent(c.Route.Origin))
	b.WriteString("&destination=")
	b.WriteString(utils.EncodeComponent(c.Route.Destination))
	b.WriteString("&depart=")
	b.WriteString(utils.EncodeComponent(c.Route.DepartDate))

	if c.Route.ReturnDate != "" {
		b.WriteString("&return=")
		b.WriteString(utils.EncodeComponent(c.Route.ReturnDate))
	}

	if c.HotelName != "" {
		b.WriteString("&hotel=")
		b.WriteString(utils.EncodeComponent(c.HotelName))
	}

	b.WriteString("&currency=")
	b.WriteString(utils.EncodeComponent(c.Currency))
	b.WriteString("&total=")
	b.WriteString(utils.EncodeComponent(utils.FormatAmount(c.Total)))
	b.WriteString("&pax=")
	b.WriteString(strconv.Itoa(c.Passengers))
	b.WriteString("&cabin=")
	b.WriteString(utils.EncodeComponent(c.Cabin))

	return b.String()
}
