package scrape

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Kazuglobal/npb-data-visualization/browser"
)

// Config is the scraper configuration. Zero values are filled in by
// defaults, so an empty Config is usable as-is against the live site.
type Config struct {
	// BaseURL is the site origin, used to absolutise profile links.
	BaseURL string

	// PlayersURL is the roster listing endpoint; the team id goes in the
	// "team" query parameter.
	PlayersURL string

	// StatsBaseURL is the directory holding the nine stats pages.
	StatsBaseURL string

	// TeamsURL is the JavaScript-rendered team metadata page.
	TeamsURL string

	// DataDir receives snapshot artifacts. Default: "data".
	DataDir string

	// Timeout bounds a single HTTP request. Default: 30s.
	Timeout time.Duration

	// UserAgent for HTTP requests.
	UserAgent string

	Browser browser.Config

	Logger *slog.Logger
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://npb.jp"
	}
	if c.PlayersURL == "" {
		c.PlayersURL = "https://npb.jp/bis/players/"
	}
	if c.StatsBaseURL == "" {
		c.StatsBaseURL = "https://npb.jp/bis/2024/stats/"
	}
	if c.TeamsURL == "" {
		c.TeamsURL = "https://npb.jp/teams/"
	}
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.UserAgent == "" {
		c.UserAgent = "Mozilla/5.0 (compatible; npb-data/1.0)"
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// fileConfig is the YAML shape of Config. Durations are strings in
// time.ParseDuration format ("30s", "2m").
type fileConfig struct {
	BaseURL      string `yaml:"base_url"`
	PlayersURL   string `yaml:"players_url"`
	StatsBaseURL string `yaml:"stats_base_url"`
	TeamsURL     string `yaml:"teams_url"`
	DataDir      string `yaml:"data_dir"`
	Timeout      string `yaml:"timeout"`
	UserAgent    string `yaml:"user_agent"`

	Browser struct {
		Remote  string `yaml:"remote"`
		Headful bool   `yaml:"headful"`
		Timeout string `yaml:"timeout"`
	} `yaml:"browser"`
}

// LoadConfigFile reads a YAML configuration file and applies defaults.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scrape: read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("scrape: parse config: %w", err)
	}

	cfg := &Config{
		BaseURL:      fc.BaseURL,
		PlayersURL:   fc.PlayersURL,
		StatsBaseURL: fc.StatsBaseURL,
		TeamsURL:     fc.TeamsURL,
		DataDir:      fc.DataDir,
		UserAgent:    fc.UserAgent,
		Browser: browser.Config{
			Remote:  fc.Browser.Remote,
			Headful: fc.Browser.Headful,
		},
	}

	if cfg.Timeout, err = parseDuration(fc.Timeout); err != nil {
		return nil, fmt.Errorf("scrape: config timeout: %w", err)
	}
	if cfg.Browser.Timeout, err = parseDuration(fc.Browser.Timeout); err != nil {
		return nil, fmt.Errorf("scrape: config browser timeout: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}
