// Package api serves read-only queries over the newest snapshot of each
// kind. It never writes: snapshots are produced by the scraper binary and
// selected here by newest filename. A missing snapshot is a not-found
// condition for callers, never a crash.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Kazuglobal/npb-data-visualization/scrape"
)

// Service answers read queries from the snapshot directory.
type Service struct {
	dataDir string
	logger  *slog.Logger
}

// New creates a Service over a snapshot directory.
func New(dataDir string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{dataDir: dataDir, logger: logger}
}

// Router builds a chi router with the standard middleware stack and all
// endpoints registered.
func (s *Service) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	s.RegisterHTTP(r)
	return r
}

// RegisterHTTP registers all endpoints on an existing router.
func (s *Service) RegisterHTTP(r chi.Router) {
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/teams", s.handleTeamSummaries)
	r.Get("/players/{teamID}", s.handleTeamPlayers)
	r.Get("/player/{playerID}", s.handlePlayer)
	r.Get("/statistics", s.handleStatistics)

	r.Route("/stats", func(r chi.Router) {
		r.Get("/team/{metric}", s.handleStatsCategory(categoryTeam))
		r.Get("/individual/{metric}", s.handleStatsCategory(categoryIndividual))
		r.Get("/leaders/{metric}", s.handleLeaders)
		r.Get("/last_updated", s.handleLastUpdated(scrape.KindStats))
	})

	r.Route("/league", func(r chi.Router) {
		r.Get("/teams", s.handleAllLeagues)
		r.Get("/teams/{league}", s.handleLeague)
		r.Get("/last_updated", s.handleLastUpdated(scrape.KindTeams))
	})
}

// latest loads the newest snapshot of a kind into v and returns its path.
func (s *Service) latest(kind scrape.Kind, v any) (string, error) {
	path, err := scrape.LatestSnapshot(s.dataDir, kind)
	if err != nil {
		return "", err
	}
	if err := scrape.ReadSnapshot(path, v); err != nil {
		return "", err
	}
	return path, nil
}

// respondLoadError maps snapshot load failures: absent snapshot is 404,
// anything else is a 500 with the detail kept server-side.
func (s *Service) respondLoadError(w http.ResponseWriter, err error) {
	if errors.Is(err, scrape.ErrNoSnapshot) {
		writeError(w, http.StatusNotFound, "no snapshot available")
		return
	}
	s.logger.Error("api: snapshot load failed", "error", err)
	writeError(w, http.StatusInternalServerError, "snapshot load failed")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
