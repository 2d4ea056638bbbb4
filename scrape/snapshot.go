package scrape

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Kind names one snapshot artifact family.
type Kind string

const (
	KindPlayers Kind = "players"
	KindStats   Kind = "stats"
	KindTeams   Kind = "teams"
)

// timestampLayout is fixed-width, second granularity, so lexicographic
// filename order equals chronological order for in-order writes.
const timestampLayout = "20060102150405"

// ErrNoSnapshot is returned when no artifact of the requested kind exists.
var ErrNoSnapshot = errors.New("scrape: no snapshot available")

// prefix returns the artifact filename prefix for a kind.
func (k Kind) prefix() string { return "npb_" + string(k) + "_" }

// SnapshotName builds the artifact filename for a kind at a timestamp.
func SnapshotName(kind Kind, ts time.Time) string {
	return kind.prefix() + ts.Format(timestampLayout) + ".json"
}

// WriteSnapshot serialises one run's aggregate to a timestamp-named JSON
// file in dir and returns the written path. Snapshots are never updated in
// place; every run produces a new name. The write is not atomic against
// concurrent readers — accepted, since readers select by newest name.
func WriteSnapshot(dir string, kind Kind, v any) (string, error) {
	return writeSnapshotAt(dir, kind, v, time.Now())
}

func writeSnapshotAt(dir string, kind Kind, v any, ts time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("scrape: create data dir: %w", err)
	}

	path := filepath.Join(dir, SnapshotName(kind, ts))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("scrape: create snapshot: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("scrape: encode snapshot: %w", err)
	}
	// A failed close can mean a failed flush; a truncated file must not
	// survive to be selected as the newest artifact.
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("scrape: close snapshot: %w", err)
	}
	return path, nil
}

// LatestSnapshot returns the path of the newest artifact of a kind.
//
// Selection is by lexicographic filename order, which the fixed-width
// timestamp makes equivalent to extraction order. Filesystem creation time
// is deliberately not consulted: copied or touched files would reorder
// under it, while names stay stable.
func LatestSnapshot(dir string, kind Kind) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoSnapshot
		}
		return "", fmt.Errorf("scrape: read data dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.Type().IsRegular() && strings.HasPrefix(name, kind.prefix()) && strings.HasSuffix(name, ".json") {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", ErrNoSnapshot
	}

	sort.Strings(names)
	return filepath.Join(dir, names[len(names)-1]), nil
}

// SnapshotTime parses the extraction timestamp out of an artifact path.
func SnapshotTime(path string) (time.Time, error) {
	name := strings.TrimSuffix(filepath.Base(path), ".json")
	i := strings.LastIndex(name, "_")
	if i < 0 {
		return time.Time{}, fmt.Errorf("scrape: no timestamp in %q", name)
	}
	ts, err := time.ParseInLocation(timestampLayout, name[i+1:], time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("scrape: parse timestamp in %q: %w", name, err)
	}
	return ts, nil
}

// ReadSnapshot decodes an artifact file into v.
func ReadSnapshot(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("scrape: read snapshot: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("scrape: decode snapshot %s: %w", path, err)
	}
	return nil
}
