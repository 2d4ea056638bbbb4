package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"github.com/Kazuglobal/npb-data-visualization/browser"
)

// Runner drives one extraction run per snapshot kind: acquire a session,
// iterate work items sequentially, fold per-item outcomes into the
// aggregate, and hand it to the snapshot writer.
//
// Items are processed one at a time to keep load on the source site polite
// and error isolation simple. No retries anywhere: a failed item is logged
// at error severity and contributes an empty result, never re-attempted
// within the same run.
type Runner struct {
	cfg *Config
}

// NewRunner builds a Runner. A nil config gets defaults.
func NewRunner(cfg *Config) *Runner {
	if cfg == nil {
		cfg = &Config{}
	}
	cfg.applyDefaults()
	return &Runner{cfg: cfg}
}

// runLogger tags all of one run's log lines with a fresh run id.
func (r *Runner) runLogger(kind Kind) *slog.Logger {
	return r.cfg.Logger.With("run_id", uuid.NewString(), "kind", string(kind))
}

// teamResult is the outcome of one team's roster-and-profiles unit of work.
type teamResult struct {
	teamID  string
	players []PlayerRecord
	err     error
}

// RunPlayers fetches every registered team's roster, then each player's
// profile, and writes the players snapshot. A failed team or player never
// aborts the run; it folds in as an empty result.
func (r *Runner) RunPlayers(ctx context.Context) (string, error) {
	log := r.runLogger(KindPlayers)
	f := NewFetcher(r.cfg)

	results := make([]teamResult, 0, len(teamOrder))
	for _, teamID := range TeamIDs() {
		res := r.fetchTeam(ctx, f, log, teamID)
		if res.err != nil {
			log.Error("scrape: team roster failed", "team", teamID, "error", res.err)
		} else {
			log.Info("scrape: team complete", "team", teamID, "players", len(res.players))
		}
		results = append(results, res)
	}

	path, err := WriteSnapshot(r.cfg.DataDir, KindPlayers, collectPlayers(results))
	if err != nil {
		return "", err
	}
	log.Info("scrape: snapshot written", "path", path)
	return path, nil
}

// fetchTeam fetches one roster and then, sequentially, each listed
// player's profile. Players without a profile link are kept as-is with no
// detail fetch attempted.
func (r *Runner) fetchTeam(ctx context.Context, f *Fetcher, log *slog.Logger, teamID string) teamResult {
	doc, err := f.Document(ctx, r.cfg.PlayersURL+"?team="+teamID)
	if err != nil {
		return teamResult{teamID: teamID, err: err}
	}

	players := ParseRoster(doc, teamID, r.cfg.BaseURL)
	for i := range players {
		p := &players[i]
		if p.ProfileURL == nil {
			continue
		}
		detail, err := f.Document(ctx, *p.ProfileURL)
		if err != nil {
			// Isolated: this player keeps an empty detail mapping.
			log.Error("scrape: player profile failed", "team", teamID, "player", p.ID, "error", err)
			continue
		}
		details, stats := ParseProfile(detail)
		if len(details) > 0 {
			p.Details = details
		}
		p.Statistics = stats
	}
	return teamResult{teamID: teamID, players: players}
}

// collectPlayers folds per-team outcomes into the aggregate. Pure: a
// failed or empty team contributes an empty roster under its id.
func collectPlayers(results []teamResult) PlayersSnapshot {
	snap := make(PlayersSnapshot, len(results))
	for _, res := range results {
		if res.err != nil || res.players == nil {
			snap[res.teamID] = []PlayerRecord{}
			continue
		}
		snap[res.teamID] = res.players
	}
	return snap
}

// endpointResult is the outcome of one of the nine stats endpoints.
type endpointResult struct {
	category string
	metric   Metric
	rows     []StatRow
	leaders  []LeaderEntry
	err      error
}

// statsCategories fixes endpoint iteration order.
var statsCategories = []string{"team", "individual", "leaders"}

// RunStats fetches the nine stats endpoints and writes the stats snapshot.
// Each endpoint is isolated: a failure yields an empty sequence for just
// that (category, metric) pair while the rest keep collecting.
func (r *Runner) RunStats(ctx context.Context) (string, error) {
	log := r.runLogger(KindStats)
	f := NewFetcher(r.cfg)

	var results []endpointResult
	for _, category := range statsCategories {
		for _, metric := range Metrics() {
			res := r.fetchStatsPage(ctx, f, category, metric)
			if res.err != nil {
				log.Error("scrape: stats endpoint failed",
					"category", category, "metric", string(metric), "error", res.err)
			}
			results = append(results, res)
		}
	}

	path, err := WriteSnapshot(r.cfg.DataDir, KindStats, collectStats(results))
	if err != nil {
		return "", err
	}
	log.Info("scrape: snapshot written", "path", path)
	return path, nil
}

func (r *Runner) fetchStatsPage(ctx context.Context, f *Fetcher, category string, metric Metric) endpointResult {
	res := endpointResult{category: category, metric: metric}

	doc, err := f.Document(ctx, r.cfg.StatsBaseURL+statsPages[category][metric])
	if err != nil {
		res.err = err
		return res
	}

	if category == "leaders" {
		res.leaders = ParseLeaders(doc)
	} else {
		res.rows = ParseStatsTable(doc)
	}
	return res
}

// collectStats folds endpoint outcomes into the aggregate. Pure: all nine
// (category, metric) keys are always present, failures as empty sequences.
func collectStats(results []endpointResult) *StatsSnapshot {
	snap := &StatsSnapshot{
		Team:       make(map[Metric][]StatRow, len(Metrics())),
		Individual: make(map[Metric][]StatRow, len(Metrics())),
		Leaders:    make(map[Metric][]LeaderEntry, len(Metrics())),
	}
	for _, m := range Metrics() {
		snap.Team[m] = []StatRow{}
		snap.Individual[m] = []StatRow{}
		snap.Leaders[m] = []LeaderEntry{}
	}

	for _, res := range results {
		if res.err != nil {
			continue
		}
		switch res.category {
		case "team":
			if res.rows != nil {
				snap.Team[res.metric] = res.rows
			}
		case "individual":
			if res.rows != nil {
				snap.Individual[res.metric] = res.rows
			}
		case "leaders":
			if res.leaders != nil {
				snap.Leaders[res.metric] = res.leaders
			}
		}
	}
	return snap
}

// RunTeams renders the teams page in a scoped browser session and writes
// the teams snapshot. This artifact is all-or-nothing: a page load failure
// is fatal for this run (no snapshot), but isolated from the other kinds.
func (r *Runner) RunTeams(ctx context.Context) (string, error) {
	log := r.runLogger(KindTeams)

	bcfg := r.cfg.Browser
	bcfg.Logger = r.cfg.Logger

	sess, err := browser.Open(ctx, bcfg)
	if err != nil {
		return "", fmt.Errorf("scrape: teams run aborted: %w", err)
	}
	defer sess.Close()

	rendered, err := sess.RenderHTML(ctx, r.cfg.TeamsURL)
	if err != nil {
		return "", fmt.Errorf("scrape: teams page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rendered))
	if err != nil {
		return "", fmt.Errorf("scrape: teams page parse: %w", err)
	}

	snap := ParseTeamsPage(doc)
	log.Info("scrape: teams extracted",
		"central", len(snap.Central), "pacific", len(snap.Pacific))

	path, err := WriteSnapshot(r.cfg.DataDir, KindTeams, snap)
	if err != nil {
		return "", err
	}
	log.Info("scrape: snapshot written", "path", path)
	return path, nil
}
