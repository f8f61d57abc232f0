package deeplink

import (
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/dto"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/utils"
)

// Star filters per site, indexed by star - 3. Each band asks for its star and above.
var (
	bookingStarFilter = [...]string{
		"nflt=class%3D3%3Bclass%3D4%3Bclass%3D5",
		"nflt=class%3D4%3Bclass%3D5",
		"nflt=class%3D5",
	}
	hotelsStarFilter = [...]string{
		"star=30-50",
		"star=40-50",
		"star=50-50",
	}
	expediaStarFilter = [...]string{
		"star=30%2C40%2C50",
		"star=40%2C50",
		"star=50",
	}
	agodaStarFilter = [...]string{
		"hotelStarRating=3%2C4%2C5",
		"hotelStarRating=4%2C5",
		"hotelStarRating=5",
	}
)

// HotelLinks builds the search link of every booking site for query and stay.
// An invalid star produces links without a star filter.
func HotelLinks(query, checkIn, checkOut string, star dto.Star) dto.HotelDeeplinks {
	q := utils.EncodeComponent(query)

	links := dto.HotelDeeplinks{
		Booking: "https://www.booking.com/searchresults.html?ss=" + q + "&checkin=" + checkIn + "&checkout=" + checkOut,
		Hotels:  "https://www.hotels.com/Hotel-Search?destination=" + q + "&startDate=" + checkIn + "&endDate=" + checkOut,
		Expedia: "https://www.expedia.com/Hotel-Search?destination=" + q + "&startDate=" + checkIn + "&endDate=" + checkOut,
		Agoda:   "https://www.agoda.com/search?checkIn=" + checkIn + "&checkOut=" + checkOut + "&text=" + q,
	}

	if !star.Valid() {
		return links
	}

	i := int(star - dto.Star3)
	links.Booking += "&" + bookingStarFilter[i]
	links.Hotels += "&" + hotelsStarFilter[i]
	links.Expedia += "&" + expediaStarFilter[i]
	links.Agoda += "&" + agodaStarFilter[i]

	return links
}
