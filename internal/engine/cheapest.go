package engine

import (
	"container/heap"

	"github.com/Domenick1991/routeplanner/internal/graph"
)

// CheapestFromAll returns the cheapest total price from origin to every airport
// reachable from it, using Dijkstra over edges weighted by their cheapest flight.
// The origin itself and unreachable airports are absent from the result.
// Flight prices are non-negative by dataset invariant.
func CheapestFromAll(g *graph.Graph, origin string) (map[string]int64, error) {
	src, err := g.LookupAirport(origin)
	if err != nil {
		return nil, err
	}

	dist := map[string]int64{src.Code: 0}
	visited := make(map[string]bool, g.AirportCount())

	pq := &priceQueue{{code: src.Code, price: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(priceItem)
		if visited[item.code] {
			continue
		}
		visited[item.code] = true

		for _, e := range g.Edges(item.code) {
			if visited[e.To] {
				continue
			}
			nd := item.price + e.MinPrice
			if d, ok := dist[e.To]; !ok || nd < d {
				dist[e.To] = nd
				heap.Push(pq, priceItem{code: e.To, price: nd})
			}
		}
	}

	delete(dist, src.Code)
	return dist, nil
}

type priceItem struct {
	code  string
	price int64
}

type priceQueue []priceItem

func (pq priceQueue) Len() int            { return len(pq) }
func (pq priceQueue) Less(i, j int) bool  { return pq[i].price < pq[j].price }
func (pq priceQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priceQueue) Push(x interface{}) { *pq = append(*pq, x.(priceItem)) }
func (pq *priceQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
