// Package graph holds the static airport network: airports as vertices and
// directed edges carrying the flights scheduled between two airports.
//
// A Graph is built once by a Builder and never mutated afterwards, so it is
// safe for concurrent readers without locking.
package graph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Domenick1991/routeplanner/internal/domain"
)

var ErrUnknownAirport = errors.New("unknown airport")

// Edge is a directed airport pair with at least one flight.
type Edge struct {
	From     string
	To       string
	Flights  []domain.Flight
	MinPrice int64
}

type Graph struct {
	airports []domain.Airport
	index    map[string]int
	edges    map[string]map[string]*Edge
	// outgoing keeps edges per origin in the order they first appear in the dataset.
	outgoing    map[string][]*Edge
	flightCount int
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// LookupAirport returns the airport with the given code.
func (g *Graph) LookupAirport(code string) (domain.Airport, error) {
	i, ok := g.index[normalize(code)]
	if !ok {
		return domain.Airport{}, fmt.Errorf("%w: %s", ErrUnknownAirport, normalize(code))
	}
	return g.airports[i], nil
}

func (g *Graph) HasAirport(code string) bool {
	_, ok := g.index[normalize(code)]
	return ok
}

// LookupFlights returns the flights on the edge from→to in dataset order.
// The slice is shared and must be treated as read-only. Unknown codes or a
// missing edge yield an empty result.
func (g *Graph) LookupFlights(from, to string) []domain.Flight {
	e, ok := g.edges[normalize(from)][normalize(to)]
	if !ok {
		return nil
	}
	return e.Flights
}

// DirectFlights is LookupFlights with both codes validated.
func (g *Graph) DirectFlights(from, to string) ([]domain.Flight, error) {
	if _, err := g.LookupAirport(from); err != nil {
		return nil, err
	}
	if _, err := g.LookupAirport(to); err != nil {
		return nil, err
	}
	return g.LookupFlights(from, to), nil
}

// Airports returns all airports in dataset order.
func (g *Graph) Airports() []domain.Airport {
	out := make([]domain.Airport, len(g.airports))
	copy(out, g.airports)
	return out
}

// Edges returns the outgoing edges of an airport.
func (g *Graph) Edges(from string) []*Edge {
	return g.outgoing[normalize(from)]
}

func (g *Graph) AirportCount() int { return len(g.airports) }
func (g *Graph) FlightCount() int  { return g.flightCount }
