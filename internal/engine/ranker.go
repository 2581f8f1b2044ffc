package engine

import (
	"sort"

	"github.com/Domenick1991/routeplanner/internal/domain"
)

// RankRoutes orders routes by ascending TotalMetric. The sort is stable, so
// routes with equal metrics keep the order in which they were enumerated.
func RankRoutes(routes []domain.Route) {
	sort.SliceStable(routes, func(i, j int) bool {
		return routes[i].TotalMetric < routes[j].TotalMetric
	})
}

// RankCheapest orders entries by ascending price, ties keeping input order.
func RankCheapest(entries []domain.CheapestRoute) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CheapestPrice < entries[j].CheapestPrice
	})
}
