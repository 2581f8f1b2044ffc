// Package dataset derives flight attributes the raw schedule files leave out.
package dataset

import (
	"math"
	"time"

	"github.com/Domenick1991/routeplanner/internal/domain"
)

const (
	earthRadiusKm     = 6371.0
	cruiseSpeedKmH    = 852.0
	shortHaulLimitKm  = 463.0  // ~250 NM
	mediumHaulLimitKm = 1852.0 // ~1000 NM
)

// DistanceKm is the great-circle distance between two airports.
func DistanceKm(a, b domain.Airport) float64 {
	lat1, lat2 := a.Latitude*math.Pi/180, b.Latitude*math.Pi/180
	dLat := lat2 - lat1
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// FlightDuration estimates block time from distance: cruise time plus a fixed
// taxi/climb overhead of 30, 24 or 21 minutes depending on the haul.
func FlightDuration(distanceKm float64) time.Duration {
	overhead := 0.35
	switch {
	case distanceKm < shortHaulLimitKm:
		overhead = 0.5
	case distanceKm < mediumHaulLimitKm:
		overhead = 0.4
	}
	hours := distanceKm/cruiseSpeedKmH + overhead
	return time.Duration(math.Round(hours*60)) * time.Minute
}

func hasCoordinates(a domain.Airport) bool {
	return a.Latitude != 0 || a.Longitude != 0
}

// Complete fills distance, duration and arrival time when the source row did not
// carry them. from and to are the flight's endpoints. Only a zero duration counts
// as missing; a negative one is kept so the graph builder rejects it.
func Complete(f domain.Flight, from, to domain.Airport, hasArrival bool) domain.Flight {
	if f.DistanceKm == 0 && hasCoordinates(from) && hasCoordinates(to) {
		f.DistanceKm = DistanceKm(from, to)
	}
	if f.DurationMinutes == 0 {
		f.DurationMinutes = int(FlightDuration(f.DistanceKm) / time.Minute)
	}
	if !hasArrival {
		f.ArrivalTime = f.DepartureTime.Add(time.Duration(f.DurationMinutes) * time.Minute)
	}
	return f
}
