package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Kazuglobal/npb-data-visualization/scrape"
)

const (
	categoryTeam       = "team"
	categoryIndividual = "individual"
)

// TeamSummary is the /teams response item, derived from the players
// snapshot rather than the teams snapshot: ids outside the registry never
// appear, and empty rosters are skipped.
type TeamSummary struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	League      scrape.League `json:"league"`
	PlayerCount int           `json:"player_count"`
}

func (s *Service) handleTeamSummaries(w http.ResponseWriter, _ *http.Request) {
	var snap scrape.PlayersSnapshot
	if _, err := s.latest(scrape.KindPlayers, &snap); err != nil {
		s.respondLoadError(w, err)
		return
	}

	summaries := []TeamSummary{}
	for _, id := range scrape.TeamIDs() {
		players := snap[id]
		if len(players) == 0 {
			continue
		}
		info, _ := scrape.LookupTeam(id)
		summaries = append(summaries, TeamSummary{
			ID:          id,
			Name:        info.Name,
			League:      info.League,
			PlayerCount: len(players),
		})
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Service) handleTeamPlayers(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")

	var snap scrape.PlayersSnapshot
	if _, err := s.latest(scrape.KindPlayers, &snap); err != nil {
		s.respondLoadError(w, err)
		return
	}

	players, ok := snap[teamID]
	if !ok {
		writeError(w, http.StatusNotFound, "team not found")
		return
	}
	writeJSON(w, http.StatusOK, players)
}

func (s *Service) handlePlayer(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	var snap scrape.PlayersSnapshot
	if _, err := s.latest(scrape.KindPlayers, &snap); err != nil {
		s.respondLoadError(w, err)
		return
	}

	// First match wins; player ids are not guaranteed unique across teams.
	for _, teamID := range scrape.TeamIDs() {
		for _, p := range snap[teamID] {
			if p.ID == playerID {
				writeJSON(w, http.StatusOK, p)
				return
			}
		}
	}
	writeError(w, http.StatusNotFound, "player not found")
}

// Statistics is the /statistics summary response.
type Statistics struct {
	TotalPlayers int    `json:"total_players"`
	Teams        int    `json:"teams"`
	LastUpdated  string `json:"last_updated"`
}

func (s *Service) handleStatistics(w http.ResponseWriter, _ *http.Request) {
	var snap scrape.PlayersSnapshot
	path, err := s.latest(scrape.KindPlayers, &snap)
	if err != nil {
		s.respondLoadError(w, err)
		return
	}

	total := 0
	for _, players := range snap {
		total += len(players)
	}

	stats := Statistics{TotalPlayers: total, Teams: len(snap)}
	if ts, err := scrape.SnapshotTime(path); err == nil {
		stats.LastUpdated = ts.Format(time.RFC3339)
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Service) handleStatsCategory(category string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metric := chi.URLParam(r, "metric")
		if !scrape.ValidMetric(metric) {
			writeError(w, http.StatusBadRequest, "invalid stats type")
			return
		}

		var snap scrape.StatsSnapshot
		if _, err := s.latest(scrape.KindStats, &snap); err != nil {
			s.respondLoadError(w, err)
			return
		}

		rows := snap.Team[scrape.Metric(metric)]
		if category == categoryIndividual {
			rows = snap.Individual[scrape.Metric(metric)]
		}
		if rows == nil {
			rows = []scrape.StatRow{}
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

func (s *Service) handleLeaders(w http.ResponseWriter, r *http.Request) {
	metric := chi.URLParam(r, "metric")
	if !scrape.ValidMetric(metric) {
		writeError(w, http.StatusBadRequest, "invalid stats type")
		return
	}

	var snap scrape.StatsSnapshot
	if _, err := s.latest(scrape.KindStats, &snap); err != nil {
		s.respondLoadError(w, err)
		return
	}

	leaders := snap.Leaders[scrape.Metric(metric)]
	if leaders == nil {
		leaders = []scrape.LeaderEntry{}
	}
	writeJSON(w, http.StatusOK, leaders)
}

func (s *Service) handleAllLeagues(w http.ResponseWriter, _ *http.Request) {
	var snap scrape.TeamsSnapshot
	if _, err := s.latest(scrape.KindTeams, &snap); err != nil {
		s.respondLoadError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Service) handleLeague(w http.ResponseWriter, r *http.Request) {
	league := chi.URLParam(r, "league")

	var snap scrape.TeamsSnapshot
	switch league {
	case "central", "pacific":
	default:
		writeError(w, http.StatusBadRequest, "invalid league")
		return
	}
	if _, err := s.latest(scrape.KindTeams, &snap); err != nil {
		s.respondLoadError(w, err)
		return
	}

	records := snap.Central
	if league == "pacific" {
		records = snap.Pacific
	}
	if records == nil {
		records = []scrape.TeamRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Service) handleLastUpdated(kind scrape.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		path, err := scrape.LatestSnapshot(s.dataDir, kind)
		if err != nil {
			s.respondLoadError(w, err)
			return
		}
		ts, err := scrape.SnapshotTime(path)
		if err != nil {
			s.logger.Error("api: bad snapshot name", "path", path, "error", err)
			writeError(w, http.StatusInternalServerError, "bad snapshot name")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"last_updated": ts.Format(time.RFC3339)})
	}
}
