// Package scrape extracts NPB rosters, player profiles, league statistics
// and team metadata from npb.jp and writes timestamped JSON snapshots.
//
// The site's markup is irregular and unversioned: tables vary in column
// count, optional elements go missing, and the teams page only renders
// through JavaScript. The extractors here tolerate missing elements by
// substituting empty values and drop malformed rows instead of failing a
// whole run.
package scrape

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// League is one of the two NPB leagues.
type League string

const (
	Central League = "Central"
	Pacific League = "Pacific"
)

// StatRow is one table row as an ordered header→value mapping. The column
// set comes from the source table's header, not from a fixed schema, and
// column order is preserved through JSON so repeated extraction of the same
// markup is byte-identical.
type StatRow struct {
	cols []string
	vals map[string]string
}

// zipRow pairs headers with cell values positionally. Callers must have
// verified len(headers) == len(values).
func zipRow(headers, values []string) StatRow {
	vals := make(map[string]string, len(headers))
	cols := make([]string, len(headers))
	copy(cols, headers)
	for i, h := range headers {
		vals[h] = values[i]
	}
	return StatRow{cols: cols, vals: vals}
}

// Columns returns the column headers in source document order.
func (r StatRow) Columns() []string { return r.cols }

// Get returns the cell value for a column header, or "" if absent.
func (r StatRow) Get(col string) string { return r.vals[col] }

// Len returns the number of columns.
func (r StatRow) Len() int { return len(r.cols) }

// MarshalJSON writes the row as a JSON object with keys in column order.
func (r StatRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.cols {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeJSONString(&buf, c); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeJSONString(&buf, r.vals[c]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object preserving its key order.
func (r *StatRow) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("scrape: stat row: expected object, got %v", tok)
	}

	row := StatRow{vals: make(map[string]string)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("scrape: stat row: non-string key %v", keyTok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return err
		}
		val, ok := valTok.(string)
		if !ok {
			return fmt.Errorf("scrape: stat row: non-string value for %q", key)
		}
		row.cols = append(row.cols, key)
		row.vals[key] = val
	}
	*r = row
	return nil
}

// encodeJSONString writes s as a JSON string without HTML escaping, so
// Japanese text and URLs survive untouched.
func encodeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode appends a newline; strip it.
	buf.Truncate(buf.Len() - 1)
	return nil
}

// PlayerRecord is one player as extracted from a roster page, optionally
// enriched with profile details and statistics. Team and League are always
// injected from the registry, never scraped, so they stay consistent even
// when the per-player page omits them. IDs come from the source markup and
// are not guaranteed globally unique across teams.
type PlayerRecord struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Number     string            `json:"number"`
	Position   string            `json:"position"`
	Team       string            `json:"team"`
	League     League            `json:"league"`
	TeamID     string            `json:"team_id"`
	ProfileURL *string           `json:"profile_url"`
	Details    map[string]string `json:"details,omitempty"`
	Statistics []StatRow         `json:"statistics,omitempty"`
}

// PlayersSnapshot maps team id to that team's extracted players.
type PlayersSnapshot map[string][]PlayerRecord

// LeaderEntry is one ranking category with its rows in the order the source
// presents them. Rank order is positional and never re-sorted.
type LeaderEntry struct {
	Category string    `json:"category"`
	Rankings []StatRow `json:"rankings"`
}

// StatsSnapshot aggregates the nine stats endpoints: three categories by
// three metrics (batting, pitching, fielding).
type StatsSnapshot struct {
	Team       map[Metric][]StatRow     `json:"team"`
	Individual map[Metric][]StatRow     `json:"individual"`
	Leaders    map[Metric][]LeaderEntry `json:"leaders"`
}

// TeamName is the bilingual display name pair extracted from the rendered
// teams page. It is a separate schema from PlayerRecord.Team (a single
// string) — the two are produced by independent components and never merged.
type TeamName struct {
	Ja string `json:"ja"`
	En string `json:"en"`
}

// TeamRecord is one team's metadata from the rendered teams page.
type TeamRecord struct {
	Name    TeamName          `json:"name"`
	Details map[string]string `json:"details"`
	LogoURL string            `json:"logo_url,omitempty"`
}

// TeamsSnapshot holds both leagues' team metadata from one page render.
type TeamsSnapshot struct {
	Central []TeamRecord `json:"central"`
	Pacific []TeamRecord `json:"pacific"`
}
