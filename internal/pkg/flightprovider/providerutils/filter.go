package providerutils

import (
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/dto"
)

// StopsPassThrough is the ceiling from which the stop filter keeps every offer.
const StopsPassThrough = 2

// FilterByMaxStops keeps offers with at most maxStops stops.
// A nil ceiling or one of StopsPassThrough or more keeps everything.
func FilterByMaxStops(flights []dto.FlightOffer, maxStops *int) []dto.FlightOffer {
	if maxStops == nil || *maxStops >= StopsPassThrough {
		return flights
	}

	results := make([]dto.FlightOffer, 0, len(flights))
	for _, flight := range flights {
		if flight.Stops > *maxStops {
			continue
		}

		results = append(results, flight)
	}

	return results
}

// MaxStops is the largest per direction stop count, each direction counting segments - 1.
func MaxStops(itineraries []dto.Itinerary) int {
	stops := 0
	for _, it := range itineraries {
		stops = max(stops, len(it.Segments)-1)
	}

	return stops
}

// AttachLayovers sets the connection time after every segment but the last of a direction.
// Segment times are airport local, so only same airport connections are measured.
func AttachLayovers(it *dto.Itinerary, minutesBetween func(start, end string) (int, bool)) {
	for i := 0; i < len(it.Segments)-1; i++ {
		if it.Segments[i].To != it.Segments[i+1].From {
			continue
		}

		if layover, ok := minutesBetween(it.Segments[i].ArriveTime, it.Segments[i+1].DepartTime); ok {
			it.Segments[i].LayoverMinutes = &layover
		}
	}
}
