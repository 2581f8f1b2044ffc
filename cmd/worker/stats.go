package main

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Domenick1991/routeplanner/internal/kafka"
)

// searchStats aggregates search events between two reports.
type searchStats struct {
	mu      sync.Mutex
	current report
	origins map[string]int
}

type report struct {
	Searches   int
	CacheHits  int
	Empty      int
	TotalMs    int64
	ByType     map[string]int
	TopOrigins []string
}

func newSearchStats() *searchStats {
	return &searchStats{
		current: report{ByType: make(map[string]int)},
		origins: make(map[string]int),
	}
}

func (s *searchStats) record(ev kafka.SearchEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current.Searches++
	s.current.ByType[ev.Type]++
	s.current.TotalMs += ev.DurationMs
	if ev.CacheHit {
		s.current.CacheHits++
	}
	if ev.RouteCount == 0 {
		s.current.Empty++
	}
	s.origins[ev.From]++
}

// flush returns the report collected so far and starts a new one.
func (s *searchStats) flush() report {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.current
	r.TopOrigins = topKeys(s.origins, 3)
	s.current = report{ByType: make(map[string]int)}
	s.origins = make(map[string]int)
	return r
}

func topKeys(counts map[string]int, n int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

func (r report) String() string {
	avg := int64(0)
	if r.Searches > 0 {
		avg = r.TotalMs / int64(r.Searches)
	}
	return fmt.Sprintf("searches=%d multicity=%d cheapest=%d cache_hits=%d empty=%d avg_ms=%d top_origins=%s",
		r.Searches, r.ByType[kafka.EventMultiCitySearch], r.ByType[kafka.EventCheapestSearch],
		r.CacheHits, r.Empty, avg, strings.Join(r.TopOrigins, ","))
}
