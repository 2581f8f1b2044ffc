// Package engine is the route optimization core: it ranks every visiting order
// of a destination set and computes cheapest prices from one airport to all others.
package engine

import (
	"context"
	"runtime"
	"strings"

	"github.com/Domenick1991/routeplanner/internal/domain"
	"github.com/Domenick1991/routeplanner/internal/graph"
	"golang.org/x/sync/errgroup"
)

type Optimizer struct {
	graph       *graph.Graph
	resolver    *Resolver
	parallelism int
}

type OptimizerOption func(*Optimizer)

// WithParallelism bounds how many permutations are evaluated concurrently.
// Values below 1 evaluate sequentially.
func WithParallelism(n int) OptimizerOption {
	return func(o *Optimizer) {
		o.parallelism = n
	}
}

func NewOptimizer(g *graph.Graph, opts ...OptimizerOption) *Optimizer {
	o := &Optimizer{
		graph:       g,
		resolver:    NewResolver(g),
		parallelism: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.parallelism < 1 {
		o.parallelism = 1
	}
	return o
}

func (o *Optimizer) Graph() *graph.Graph { return o.graph }

// Optimize ranks every feasible visiting order of destinations starting at home.
// Routes containing a leg without flights are left out; when none is feasible the
// result has an empty route list and no error.
func (o *Optimizer) Optimize(ctx context.Context, home string, destinations []string, criterion domain.Criterion) (*domain.MultiCityResult, error) {
	return o.OptimizeWithCache(ctx, NewLegCache(), home, destinations, criterion)
}

// OptimizeWithCache is Optimize with a caller-supplied per-request leg cache.
func (o *Optimizer) OptimizeWithCache(ctx context.Context, cache *LegCache, home string, destinations []string, criterion domain.Criterion) (*domain.MultiCityResult, error) {
	if err := ValidateDestinations(home, destinations); err != nil {
		return nil, err
	}
	if criterion == "" {
		criterion = domain.CriterionPrice
	}

	origin, err := o.graph.LookupAirport(home)
	if err != nil {
		return nil, err
	}
	stops := make([]domain.Airport, len(destinations))
	for i, code := range destinations {
		if stops[i], err = o.graph.LookupAirport(strings.TrimSpace(code)); err != nil {
			return nil, err
		}
	}

	var perms [][]domain.Airport
	for p := range Permutations(stops) {
		perms = append(perms, p)
	}

	candidates := make([]*domain.Route, len(perms))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallelism)
	for i, p := range perms {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			candidates[i] = o.buildRoute(cache, origin, p, criterion)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	routes := make([]domain.Route, 0, len(candidates))
	for _, r := range candidates {
		if r != nil {
			routes = append(routes, *r)
		}
	}
	RankRoutes(routes)

	return &domain.MultiCityResult{
		From:      origin.Code,
		Criterion: criterion,
		Routes:    routes,
	}, nil
}

// buildRoute returns nil when any leg of the ordering has no flights.
func (o *Optimizer) buildRoute(cache *LegCache, origin domain.Airport, order []domain.Airport, criterion domain.Criterion) *domain.Route {
	route := &domain.Route{
		Airports:  make([]string, 0, len(order)+1),
		Legs:      make([]domain.Leg, 0, len(order)),
		Criterion: criterion,
	}
	route.Airports = append(route.Airports, origin.Code)

	prev := origin
	for _, next := range order {
		leg := o.resolver.ResolveLeg(cache, prev, next, criterion)
		best, ok := leg.Best()
		if !ok {
			return nil
		}
		route.Legs = append(route.Legs, leg)
		route.Airports = append(route.Airports, next.Code)
		route.TotalMetric += criterion.Metric(best)
		prev = next
	}
	return route
}

// Cheapest returns the cheapest price from origin to every reachable airport,
// ranked by price with ties in dataset order.
func (o *Optimizer) Cheapest(ctx context.Context, origin string) (*domain.CheapestResult, error) {
	if strings.TrimSpace(origin) == "" {
		return nil, ErrMissingOrigin
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prices, err := CheapestFromAll(o.graph, origin)
	if err != nil {
		return nil, err
	}

	src, _ := o.graph.LookupAirport(origin)
	entries := make([]domain.CheapestRoute, 0, len(prices))
	for _, a := range o.graph.Airports() {
		price, ok := prices[a.Code]
		if !ok {
			continue
		}
		entries = append(entries, domain.CheapestRoute{
			Destination:     a.Code,
			DestinationName: a.DisplayName(),
			CheapestPrice:   price,
		})
	}
	RankCheapest(entries)

	return &domain.CheapestResult{From: src.Code, Routes: entries}, nil
}
