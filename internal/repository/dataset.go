package repository

import (
	"context"
	"fmt"
	"log"

	"github.com/Domenick1991/routeplanner/internal/domain"
	"github.com/Domenick1991/routeplanner/internal/graph"
)

// DatasetRepository supplies the airports and flight schedule the route graph is
// built from. Airports are returned in dataset order.
type DatasetRepository interface {
	Airports(ctx context.Context) ([]domain.Airport, error)
	Flights(ctx context.Context) ([]domain.Flight, error)
}

// LoadGraph reads the whole dataset and validates it into an immutable graph.
func LoadGraph(ctx context.Context, repo DatasetRepository) (*graph.Graph, error) {
	airports, err := repo.Airports(ctx)
	if err != nil {
		return nil, fmt.Errorf("load airports: %w", err)
	}
	flights, err := repo.Flights(ctx)
	if err != nil {
		return nil, fmt.Errorf("load flights: %w", err)
	}

	b := graph.NewBuilder()
	for _, a := range airports {
		b.AddAirport(a)
	}
	for _, f := range flights {
		b.AddFlight(f)
	}
	g, err := b.Build()
	if err != nil {
		return nil, err
	}

	log.Printf("dataset loaded: %d airports, %d flights", g.AirportCount(), g.FlightCount())
	return g, nil
}
