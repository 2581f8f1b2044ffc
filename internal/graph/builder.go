package graph

import (
	"errors"
	"fmt"

	"github.com/Domenick1991/routeplanner/internal/domain"
)

var ErrInvalidDataset = errors.New("invalid dataset")

// Builder collects airports and flights and validates them into a Graph.
// Airports must be added before the flights that reference them.
type Builder struct {
	g    *Graph
	errs []error
}

func NewBuilder() *Builder {
	return &Builder{g: &Graph{
		index:    make(map[string]int),
		edges:    make(map[string]map[string]*Edge),
		outgoing: make(map[string][]*Edge),
	}}
}

func (b *Builder) AddAirport(a domain.Airport) *Builder {
	a.Code = normalize(a.Code)
	if len(a.Code) != 3 {
		b.errs = append(b.errs, fmt.Errorf("airport code %q must have 3 letters", a.Code))
		return b
	}
	if _, dup := b.g.index[a.Code]; dup {
		b.errs = append(b.errs, fmt.Errorf("duplicate airport %s", a.Code))
		return b
	}
	b.g.index[a.Code] = len(b.g.airports)
	b.g.airports = append(b.g.airports, a)
	return b
}

func (b *Builder) AddFlight(f domain.Flight) *Builder {
	f.Origin = normalize(f.Origin)
	f.Destination = normalize(f.Destination)

	switch {
	case f.FlightNumber == "":
		b.errs = append(b.errs, fmt.Errorf("flight %s-%s has no flight number", f.Origin, f.Destination))
		return b
	case !b.g.HasAirport(f.Origin):
		b.errs = append(b.errs, fmt.Errorf("flight %s: %w: %s", f.FlightNumber, ErrUnknownAirport, f.Origin))
		return b
	case !b.g.HasAirport(f.Destination):
		b.errs = append(b.errs, fmt.Errorf("flight %s: %w: %s", f.FlightNumber, ErrUnknownAirport, f.Destination))
		return b
	case f.Origin == f.Destination:
		b.errs = append(b.errs, fmt.Errorf("flight %s starts and ends at %s", f.FlightNumber, f.Origin))
		return b
	case f.Price < 0:
		b.errs = append(b.errs, fmt.Errorf("flight %s has negative price %d", f.FlightNumber, f.Price))
		return b
	case f.DurationMinutes <= 0:
		b.errs = append(b.errs, fmt.Errorf("flight %s has non-positive duration %d", f.FlightNumber, f.DurationMinutes))
		return b
	}

	byDest, ok := b.g.edges[f.Origin]
	if !ok {
		byDest = make(map[string]*Edge)
		b.g.edges[f.Origin] = byDest
	}
	e, ok := byDest[f.Destination]
	if !ok {
		e = &Edge{From: f.Origin, To: f.Destination, MinPrice: f.Price}
		byDest[f.Destination] = e
		b.g.outgoing[f.Origin] = append(b.g.outgoing[f.Origin], e)
	}
	e.Flights = append(e.Flights, f)
	if f.Price < e.MinPrice {
		e.MinPrice = f.Price
	}
	b.g.flightCount++
	return b
}

// Build returns the graph, or every integrity violation found while adding data.
// The builder must not be used afterwards.
func (b *Builder) Build() (*Graph, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, errors.Join(b.errs...))
	}
	g := b.g
	b.g = nil
	return g, nil
}
