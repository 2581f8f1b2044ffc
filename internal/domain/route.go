package domain

import (
	"fmt"
	"strings"
)

// Criterion is the axis a search optimizes.
type Criterion string

const (
	CriterionPrice    Criterion = "price"
	CriterionDuration Criterion = "duration"
)

// ParseCriterion maps an optimizeBy value to a Criterion. Empty means price.
func ParseCriterion(s string) (Criterion, error) {
	switch Criterion(strings.ToLower(strings.TrimSpace(s))) {
	case "", CriterionPrice:
		return CriterionPrice, nil
	case CriterionDuration:
		return CriterionDuration, nil
	default:
		return "", fmt.Errorf("unknown criterion %q", s)
	}
}

// Metric returns the value of f that c minimizes.
func (c Criterion) Metric(f Flight) int64 {
	if c == CriterionDuration {
		return int64(f.DurationMinutes)
	}
	return f.Price
}

// Leg is one traversal of an edge inside an itinerary. Flights is shared with the
// graph and must not be modified; BestIndex is -1 when the edge has no flights.
type Leg struct {
	From      Airport
	To        Airport
	Flights   []Flight
	BestIndex int
}

func (l Leg) Feasible() bool {
	return l.BestIndex >= 0 && l.BestIndex < len(l.Flights)
}

// Best returns the flight selected for this leg.
func (l Leg) Best() (Flight, bool) {
	if !l.Feasible() {
		return Flight{}, false
	}
	return l.Flights[l.BestIndex], true
}

type Route struct {
	Airports    []string
	Legs        []Leg
	TotalMetric int64
	Criterion   Criterion
}

type MultiCityResult struct {
	From      string
	Criterion Criterion
	Routes    []Route
}

type CheapestRoute struct {
	Destination     string `json:"destination"`
	DestinationName string `json:"destinationName"`
	CheapestPrice   int64  `json:"cheapestPrice"`
}

type CheapestResult struct {
	From   string          `json:"from"`
	Routes []CheapestRoute `json:"routes"`
}
