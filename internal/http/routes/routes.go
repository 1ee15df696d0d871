// Package routes wires the HTTP API: event search, event detail, and the
// static city list the frontend's autocomplete runs on.
package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"eventscout/internal/cities"
	"eventscout/internal/events"
	appmw "eventscout/internal/http/middleware"
)

// Service is the inbound interface to the search/detail orchestration.
// *events.Service satisfies it; tests substitute a fake.
type Service interface {
	Search(ctx context.Context, criteria events.SearchCriteria) ([]events.Event, error)
	EventDetail(ctx context.Context, eventID string) (*events.EventDetail, error)
}

type Server struct {
	Router *chi.Mux
	Events Service
	Log    zerolog.Logger
}

type ServerOptions struct {
	Events      Service
	Log         zerolog.Logger
	CORSOrigins []string
}

func New(opts ServerOptions) *Server {
	r := chi.NewRouter()
	r.Use(appmw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	s := &Server{Router: r, Events: opts.Events, Log: opts.Log}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("ok")); err != nil {
			s.Log.Error().Err(err).Msg("write health check response")
		}
	})

	r.Route("/api", func(api chi.Router) {
		api.Get("/cities", s.handleCities)
		api.Route("/events", func(ev chi.Router) {
			ev.Get("/search", s.handleSearch)
			ev.Get("/{id}", s.handleEventDetail)
		})
	})

	return s
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	criteria := events.SearchCriteria{
		City:       q.Get("city"),
		EventTypes: q["eventTypes"],
		StartDate:  q.Get("startDate"),
		EndDate:    q.Get("endDate"),
	}

	var err error
	if criteria.Radius, err = intParam(q.Get("radius")); err != nil {
		s.writeError(w, http.StatusBadRequest, "radius must be an integer")
		return
	}
	if criteria.Latitude, err = floatParam(q.Get("latitude")); err != nil {
		s.writeError(w, http.StatusBadRequest, "latitude must be a number")
		return
	}
	if criteria.Longitude, err = floatParam(q.Get("longitude")); err != nil {
		s.writeError(w, http.StatusBadRequest, "longitude must be a number")
		return
	}

	result, err := s.Events.Search(r.Context(), criteria)
	if err != nil {
		var verr *events.ValidationError
		if errors.As(err, &verr) {
			s.writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		s.Log.Error().Err(err).Str("requestID", appmw.GetRequestID(r.Context())).Msg("search failed")
		s.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleEventDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	detail, err := s.Events.EventDetail(r.Context(), id)
	switch {
	case err == nil:
		s.writeJSON(w, http.StatusOK, detail)
	case errors.Is(err, events.ErrNotFound):
		s.writeError(w, http.StatusNotFound, "no such event")
	default:
		var verr *events.ValidationError
		if errors.As(err, &verr) {
			s.writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		s.Log.Error().Err(err).Str("eventID", id).Str("requestID", appmw.GetRequestID(r.Context())).Msg("detail lookup failed")
		s.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (s *Server) handleCities(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, cities.All())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Log.Error().Err(err).Msg("encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

func intParam(raw string) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func floatParam(raw string) (float64, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}
