package hotel

import (
	"fmt"

	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/dto"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/deeplink"
)

// curatedLabels are indexed by star - 3, then slot.
var curatedLabels = [...][dto.MaxBandSize]string{
	{"Downtown", "Riverside", "Airport"},
	{"Central", "Boutique", "Harbor"},
	{"Luxury", "Grand", "Signature"},
}

// CuratedName renders "<Label> <City> • <star>★".
func CuratedName(label, city string, star dto.Star) string {
	return fmt.Sprintf("%s %s • %d★", label, city, star)
}

// CuratedBand builds the placeholder offers of a star band. They carry no price
// and link to each booking site filtered to the band.
func CuratedBand(city string, star dto.Star, checkIn, checkOut string) []dto.HotelOffer {
	if !star.Valid() {
		return nil
	}

	links := deeplink.HotelLinks(city, checkIn, checkOut, star)
	labels := curatedLabels[star-dto.Star3]

	offers := make([]dto.HotelOffer, 0, len(labels))
	for _, label := range labels {
		offers = append(offers, dto.HotelOffer{
			Name:      CuratedName(label, city, star),
			Star:      star,
			City:      city,
			IsReal:    false,
			Deeplinks: links,
		})
	}

	return offers
}
