package events

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"eventscout/cache"
	"eventscout/ticketmaster"
)

// ErrNotFound is returned by EventDetail when the upstream has no such
// event, or when the upstream could not be reached. A missing single entity
// cannot degrade to an empty collection the way a search can.
var ErrNotFound = errors.New("event not found")

// Fetcher is the upstream collaborator. *ticketmaster.Client satisfies it;
// tests substitute a fake.
type Fetcher interface {
	SearchEvents(ctx context.Context, q ticketmaster.SearchQuery) (*ticketmaster.SearchResponse, error)
	GetEvent(ctx context.Context, eventID string) (*ticketmaster.Event, error)
}

// ServiceOptions carries the service's collaborators and policy knobs.
// Everything is explicit; the service holds no global state.
type ServiceOptions struct {
	Fetcher   Fetcher
	Store     cache.Store
	Logger    zerolog.Logger
	SearchTTL time.Duration
	DetailTTL time.Duration
	MinRadius int // miles
	MaxRadius int // miles
	PageSize  int
}

// Service coordinates the search and detail flows: validate, derive key,
// check cache, fetch upstream on a miss, map, cache, return.
type Service struct {
	tm    Fetcher
	store cache.Store
	log   zerolog.Logger

	searchTTL time.Duration
	detailTTL time.Duration
	minRadius int
	maxRadius int
	pageSize  int
}

func NewService(opts ServiceOptions) *Service {
	s := &Service{
		tm:        opts.Fetcher,
		store:     opts.Store,
		log:       opts.Logger,
		searchTTL: opts.SearchTTL,
		detailTTL: opts.DetailTTL,
		minRadius: opts.MinRadius,
		maxRadius: opts.MaxRadius,
		pageSize:  opts.PageSize,
	}
	if s.minRadius <= 0 {
		s.minRadius = 5
	}
	if s.maxRadius <= 0 {
		s.maxRadius = 200
	}
	if s.searchTTL <= 0 {
		s.searchTTL = 5 * time.Minute
	}
	if s.detailTTL <= 0 {
		s.detailTTL = 15 * time.Minute
	}
	return s
}

// Search returns events matching the criteria, serving from cache within
// the search TTL. Upstream failures degrade to an empty list: they are
// logged, never cached, and never surfaced as errors. Only validation
// failures produce a non-nil error.
func (s *Service) Search(ctx context.Context, criteria SearchCriteria) ([]Event, error) {
	if err := s.validate(criteria); err != nil {
		return nil, err
	}

	key := cache.SearchKey(criteria.City, criteria.Radius, criteria.EventTypes, criteria.StartDate, criteria.EndDate)
	if cached, ok := cache.Get[[]Event](s.store, key); ok {
		s.log.Debug().Str("key", key).Msg("search cache hit")
		return cached, nil
	}

	resp, err := s.tm.SearchEvents(ctx, ticketmaster.SearchQuery{
		Latitude:    criteria.Latitude,
		Longitude:   criteria.Longitude,
		RadiusMiles: criteria.Radius,
		EventTypes:  criteria.EventTypes,
		StartDate:   criteria.StartDate,
		EndDate:     criteria.EndDate,
		Size:        s.pageSize,
	})
	if err != nil {
		s.log.Error().Err(err).Str("city", criteria.City).Msg("ticketmaster search failed")
		return []Event{}, nil
	}

	mapped := FromSearchResponse(resp)
	cache.Set(s.store, key, mapped, s.searchTTL)
	return mapped, nil
}

// EventDetail returns a single event by its upstream identifier, serving
// from cache within the detail TTL. A genuine upstream 404 and an upstream
// failure both surface as ErrNotFound; neither outcome is cached, so the
// next identical call asks upstream again.
func (s *Service) EventDetail(ctx context.Context, eventID string) (*EventDetail, error) {
	if strings.TrimSpace(eventID) == "" {
		return nil, &ValidationError{Field: "id", Reason: "event ID is required"}
	}

	key := cache.DetailKey(eventID)
	if cached, ok := cache.Get[EventDetail](s.store, key); ok {
		s.log.Debug().Str("key", key).Msg("detail cache hit")
		return &cached, nil
	}

	ev, err := s.tm.GetEvent(ctx, eventID)
	switch {
	case errors.Is(err, ticketmaster.ErrNotFound):
		return nil, ErrNotFound
	case err != nil:
		s.log.Error().Err(err).Str("eventID", eventID).Msg("ticketmaster detail fetch failed")
		return nil, ErrNotFound
	}

	detail := FromEventDetail(ev)
	cache.Set(s.store, key, *detail, s.detailTTL)
	return detail, nil
}

func (s *Service) validate(criteria SearchCriteria) error {
	if strings.TrimSpace(criteria.City) == "" {
		return &ValidationError{Field: "city", Reason: "city is required"}
	}
	if criteria.Radius < s.minRadius || criteria.Radius > s.maxRadius {
		return &ValidationError{
			Field:  "radius",
			Reason: fmt.Sprintf("radius must be between %d and %d miles", s.minRadius, s.maxRadius),
		}
	}
	return nil
}
