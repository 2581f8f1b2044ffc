package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/Domenick1991/routeplanner/internal/domain"
	"github.com/Domenick1991/routeplanner/internal/graph"
	"github.com/stretchr/testify/require"
)

func testFlight(number, from, to string, price int64, minutes int) domain.Flight {
	dep := domain.NewTimeOfDay(9, 0, 0)
	return domain.Flight{
		FlightNumber:    number,
		Origin:          from,
		Destination:     to,
		Price:           price,
		DepartureTime:   dep,
		ArrivalTime:     dep.Add(time.Duration(minutes) * time.Minute),
		DurationMinutes: minutes,
	}
}

// scenarioGraph: JFK→LAX (AA100 $200, AA101 $180), JFK→ORD ($150), ORD→LAX ($90).
func scenarioGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.NewBuilder().
		AddAirport(domain.Airport{Code: "JFK", Name: "John F. Kennedy International", City: "New York", Country: "USA"}).
		AddAirport(domain.Airport{Code: "LAX", Name: "Los Angeles International", City: "Los Angeles", Country: "USA"}).
		AddAirport(domain.Airport{Code: "ORD", Name: "O'Hare International", City: "Chicago", Country: "USA"}).
		AddFlight(testFlight("AA100", "JFK", "LAX", 200, 330)).
		AddFlight(testFlight("AA101", "JFK", "LAX", 180, 345)).
		AddFlight(testFlight("UA150", "JFK", "ORD", 150, 150)).
		AddFlight(testFlight("UA900", "ORD", "LAX", 90, 260)).
		Build()
	require.NoError(t, err)
	return g
}

// completeGraph connects every ordered pair of codes with one flight whose price
// is given by price(from, to).
func completeGraph(t *testing.T, codes []string, price func(from, to string) int64) *graph.Graph {
	t.Helper()
	b := graph.NewBuilder()
	for _, c := range codes {
		b.AddAirport(domain.Airport{Code: c, City: c})
	}
	for _, from := range codes {
		for _, to := range codes {
			if from == to {
				continue
			}
			b.AddFlight(testFlight(fmt.Sprintf("%s%s1", from, to), from, to, price(from, to), 60))
		}
	}
	g, err := b.Build()
	require.NoError(t, err)
	return g
}
