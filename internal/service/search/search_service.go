package search

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/Domenick1991/routeplanner/internal/domain"
	"github.com/Domenick1991/routeplanner/internal/engine"
	"github.com/Domenick1991/routeplanner/internal/kafka"
	"github.com/google/uuid"
)

var ErrMissingDestination = errors.New("destination airport is required")

type SearchUseCase interface {
	Airports(ctx context.Context) []domain.Airport
	DirectFlights(ctx context.Context, from, to string) ([]domain.Flight, error)
	MultiCity(ctx context.Context, from string, destinations []string, criterion domain.Criterion) (*domain.MultiCityResult, error)
	Cheapest(ctx context.Context, from string) (*domain.CheapestResult, error)
}

// ResultCache stores finished searches. A nil cache disables caching.
type ResultCache interface {
	GetMultiCity(ctx context.Context, from string, destinations []string, criterion domain.Criterion) (*domain.MultiCityResult, error)
	SetMultiCity(ctx context.Context, result *domain.MultiCityResult, destinations []string) error
	GetCheapest(ctx context.Context, from string) (*domain.CheapestResult, error)
	SetCheapest(ctx context.Context, result *domain.CheapestResult) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, payload interface{}) error
}

type SearchService struct {
	optimizer *engine.Optimizer
	cache     ResultCache
	events    EventPublisher
	topic     string
	now       func() time.Time
}

func NewSearchService(optimizer *engine.Optimizer, cache ResultCache, events EventPublisher, topic string) *SearchService {
	return &SearchService{
		optimizer: optimizer,
		cache:     cache,
		events:    events,
		topic:     topic,
		now:       time.Now,
	}
}

func (s *SearchService) Airports(ctx context.Context) []domain.Airport {
	return s.optimizer.Graph().Airports()
}

func (s *SearchService) DirectFlights(ctx context.Context, from, to string) ([]domain.Flight, error) {
	from, to = normalizeCode(from), normalizeCode(to)
	if from == "" {
		return nil, engine.ErrMissingOrigin
	}
	if to == "" {
		return nil, ErrMissingDestination
	}
	return s.optimizer.Graph().DirectFlights(from, to)
}

func (s *SearchService) MultiCity(ctx context.Context, from string, destinations []string, criterion domain.Criterion) (*domain.MultiCityResult, error) {
	started := s.now()
	from = normalizeCode(from)
	destinations = normalizeCodes(destinations)
	if criterion == "" {
		criterion = domain.CriterionPrice
	}

	if err := engine.ValidateDestinations(from, destinations); err != nil {
		return nil, err
	}

	if s.cache != nil {
		cached, err := s.cache.GetMultiCity(ctx, from, destinations, criterion)
		if err != nil {
			log.Printf("result cache read failed: %v", err)
		} else if cached != nil {
			s.publish(ctx, kafka.SearchEvent{
				Type:         kafka.EventMultiCitySearch,
				From:         from,
				Destinations: destinations,
				Criterion:    string(criterion),
				RouteCount:   len(cached.Routes),
				CacheHit:     true,
			}, started)
			return cached, nil
		}
	}

	result, err := s.optimizer.Optimize(ctx, from, destinations, criterion)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetMultiCity(ctx, result, destinations); err != nil {
			log.Printf("result cache write failed: %v", err)
		}
	}
	s.publish(ctx, kafka.SearchEvent{
		Type:         kafka.EventMultiCitySearch,
		From:         from,
		Destinations: destinations,
		Criterion:    string(criterion),
		RouteCount:   len(result.Routes),
	}, started)
	return result, nil
}

func (s *SearchService) Cheapest(ctx context.Context, from string) (*domain.CheapestResult, error) {
	started := s.now()
	from = normalizeCode(from)
	if from == "" {
		return nil, engine.ErrMissingOrigin
	}

	if s.cache != nil {
		cached, err := s.cache.GetCheapest(ctx, from)
		if err != nil {
			log.Printf("result cache read failed: %v", err)
		} else if cached != nil {
			s.publish(ctx, kafka.SearchEvent{
				Type:       kafka.EventCheapestSearch,
				From:       from,
				RouteCount: len(cached.Routes),
				CacheHit:   true,
			}, started)
			return cached, nil
		}
	}

	result, err := s.optimizer.Cheapest(ctx, from)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetCheapest(ctx, result); err != nil {
			log.Printf("result cache write failed: %v", err)
		}
	}
	s.publish(ctx, kafka.SearchEvent{
		Type:       kafka.EventCheapestSearch,
		From:       from,
		RouteCount: len(result.Routes),
	}, started)
	return result, nil
}

// publish never fails the search it reports on.
func (s *SearchService) publish(ctx context.Context, ev kafka.SearchEvent, started time.Time) {
	if s.events == nil {
		return
	}
	ev.SearchID = uuid.NewString()
	ev.At = s.now()
	ev.DurationMs = ev.At.Sub(started).Milliseconds()
	if err := s.events.Publish(ctx, s.topic, ev.From, ev); err != nil {
		log.Printf("failed to publish search event %s: %v", ev.SearchID, err)
	}
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// normalizeCodes upper-cases codes and drops blank entries.
func normalizeCodes(codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if c = normalizeCode(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

var _ SearchUseCase = (*SearchService)(nil)
