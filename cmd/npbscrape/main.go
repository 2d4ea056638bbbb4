// Command npbscrape runs extraction and writes timestamped snapshots.
//
// Usage:
//
//	npbscrape -kind players            # one snapshot kind
//	npbscrape -kind all -config c.yaml # all kinds, configured run
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Kazuglobal/npb-data-visualization/scrape"
)

func main() {
	kind := flag.String("kind", "all", "snapshot kind: players, stats, teams or all")
	configPath := flag.String("config", "", "path to YAML config file")
	dataDir := flag.String("data-dir", "", "override snapshot output directory")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(*logLevel),
	}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, *kind, *configPath, *dataDir); err != nil {
		logger.Error("npbscrape: fatal", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, kind, configPath, dataDir string) error {
	cfg := scrape.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = scrape.LoadConfigFile(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	cfg.Logger = logger

	runner := scrape.NewRunner(cfg)

	var kinds []scrape.Kind
	switch kind {
	case "players":
		kinds = []scrape.Kind{scrape.KindPlayers}
	case "stats":
		kinds = []scrape.Kind{scrape.KindStats}
	case "teams":
		kinds = []scrape.Kind{scrape.KindTeams}
	case "all":
		kinds = []scrape.Kind{scrape.KindPlayers, scrape.KindStats, scrape.KindTeams}
	default:
		return fmt.Errorf("unknown kind %q", kind)
	}

	// Kinds are independent runs: one failing never stops the others.
	var failed int
	for _, k := range kinds {
		if _, err := runKind(ctx, runner, k); err != nil {
			logger.Error("npbscrape: run failed", "kind", string(k), "error", err)
			failed++
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	if failed == len(kinds) {
		return fmt.Errorf("all %d runs failed", failed)
	}
	return nil
}

func runKind(ctx context.Context, runner *scrape.Runner, kind scrape.Kind) (string, error) {
	switch kind {
	case scrape.KindPlayers:
		return runner.RunPlayers(ctx)
	case scrape.KindStats:
		return runner.RunStats(ctx)
	case scrape.KindTeams:
		return runner.RunTeams(ctx)
	}
	return "", fmt.Errorf("unknown kind %q", kind)
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
