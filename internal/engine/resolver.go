package engine

import (
	"sync"

	"github.com/Domenick1991/routeplanner/internal/domain"
	"github.com/Domenick1991/routeplanner/internal/graph"
	"golang.org/x/sync/singleflight"
)

type legKey struct {
	from, to  string
	criterion domain.Criterion
}

func (k legKey) String() string {
	return k.from + ">" + k.to + ":" + string(k.criterion)
}

// LegCache memoizes resolved legs for the lifetime of one search request.
// It is safe for concurrent use; each distinct key is resolved at most once.
type LegCache struct {
	mu      sync.RWMutex
	entries map[legKey]domain.Leg
	group   singleflight.Group
	misses  int
}

func NewLegCache() *LegCache {
	return &LegCache{entries: make(map[legKey]domain.Leg)}
}

func (c *LegCache) get(k legKey) (domain.Leg, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	leg, ok := c.entries[k]
	return leg, ok
}

// Misses returns how many legs were actually resolved against the graph.
func (c *LegCache) Misses() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.misses
}

// Resolver turns an airport pair into a Leg with its best flight selected.
type Resolver struct {
	graph *graph.Graph
}

func NewResolver(g *graph.Graph) *Resolver {
	return &Resolver{graph: g}
}

// ResolveLeg returns the leg from→to. A nil cache disables memoization.
// Both airports must exist in the graph.
func (r *Resolver) ResolveLeg(cache *LegCache, from, to domain.Airport, criterion domain.Criterion) domain.Leg {
	if cache == nil {
		return r.resolve(from, to, criterion)
	}

	k := legKey{from: from.Code, to: to.Code, criterion: criterion}
	if leg, ok := cache.get(k); ok {
		return leg
	}

	v, _, _ := cache.group.Do(k.String(), func() (interface{}, error) {
		if leg, ok := cache.get(k); ok {
			return leg, nil
		}
		leg := r.resolve(from, to, criterion)
		cache.mu.Lock()
		cache.entries[k] = leg
		cache.misses++
		cache.mu.Unlock()
		return leg, nil
	})
	return v.(domain.Leg)
}

func (r *Resolver) resolve(from, to domain.Airport, criterion domain.Criterion) domain.Leg {
	flights := r.graph.LookupFlights(from.Code, to.Code)
	return domain.Leg{
		From:      from,
		To:        to,
		Flights:   flights,
		BestIndex: BestFlight(flights, criterion),
	}
}

// BestFlight returns the index of the flight minimizing criterion, ties going to
// the lexicographically smallest flight number, or -1 for an empty list.
func BestFlight(flights []domain.Flight, criterion domain.Criterion) int {
	best := -1
	for i, f := range flights {
		if best < 0 {
			best = i
			continue
		}
		m, bm := criterion.Metric(f), criterion.Metric(flights[best])
		if m < bm || (m == bm && f.FlightNumber < flights[best].FlightNumber) {
			best = i
		}
	}
	return best
}
