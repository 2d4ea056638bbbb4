// Package browser provides a scoped Chrome session for pages that only
// render through JavaScript. One session per run: open, render, close.
// The session is never shared between runs and is released on every exit
// path, including errors.
package browser

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"
)

// Config configures a browser session.
type Config struct {
	// Remote is the WebSocket URL of an external Chrome instance.
	// Empty = launch a local Chrome via launcher.
	Remote string

	// Headful disables headless mode for local debugging.
	Headful bool

	// Timeout bounds a single navigate-and-render cycle. Default: 60s.
	Timeout time.Duration

	Logger *slog.Logger
}

func (c *Config) defaults() {
	if c.Timeout <= 0 {
		c.Timeout = 60 * time.Second
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Session owns one Chrome instance for the duration of a run.
type Session struct {
	cfg     Config
	browser *rod.Browser
	lnch    *launcher.Launcher
}

// Open launches Chrome (or connects to a remote instance) and returns the
// session. Callers must Close it on every path.
func Open(ctx context.Context, cfg Config) (*Session, error) {
	cfg.defaults()
	log := cfg.Logger

	var wsURL string
	s := &Session{cfg: cfg}

	if cfg.Remote != "" {
		wsURL = cfg.Remote
		log.Info("browser: connecting to remote", "url", wsURL)
	} else {
		l := launcher.New().
			Headless(!cfg.Headful).
			Set("disable-blink-features", "AutomationControlled")
		u, err := l.Launch()
		if err != nil {
			return nil, fmt.Errorf("browser: launch: %w", err)
		}
		wsURL = u
		s.lnch = l
		log.Info("browser: launched local chrome", "headful", cfg.Headful)
	}

	b := rod.New().ControlURL(wsURL).Context(ctx)
	if err := b.Connect(); err != nil {
		s.cleanup()
		return nil, fmt.Errorf("browser: connect: %w", err)
	}
	s.browser = b

	return s, nil
}

// RenderHTML navigates to a URL, waits for load and network idle, and
// returns the rendered DOM as outer HTML. The tab is closed before return.
func (s *Session) RenderHTML(ctx context.Context, pageURL string) (string, error) {
	page, err := stealth.Page(s.browser)
	if err != nil {
		return "", fmt.Errorf("browser: create tab: %w", err)
	}
	defer page.Close()

	navCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	if err := page.Context(navCtx).Navigate(pageURL); err != nil {
		return "", fmt.Errorf("browser: navigate %s: %w", pageURL, err)
	}
	if err := page.Context(navCtx).WaitLoad(); err != nil {
		return "", fmt.Errorf("browser: wait load %s: %w", pageURL, err)
	}
	// Idle wait lets late XHR-driven content settle before serialisation.
	if err := page.Context(navCtx).WaitIdle(s.cfg.Timeout); err != nil {
		s.cfg.Logger.Warn("browser: wait idle", "url", pageURL, "error", err)
	}

	res, err := page.Context(navCtx).Eval(`() => document.documentElement.outerHTML`)
	if err != nil {
		return "", fmt.Errorf("browser: serialise DOM %s: %w", pageURL, err)
	}
	return res.Value.Str(), nil
}

// Close shuts down Chrome and the launcher.
func (s *Session) Close() error {
	s.cleanup()
	return nil
}

func (s *Session) cleanup() {
	if s.browser != nil {
		s.browser.Close()
		s.browser = nil
	}
	if s.lnch != nil {
		s.lnch.Cleanup()
		s.lnch = nil
	}
}
