package scrape

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// Fetcher performs the plain-HTTP acquisition path and parses responses
// into goquery documents. JS-rendered pages go through the browser package
// instead.
type Fetcher struct {
	client *resty.Client
	logger *slog.Logger
}

// NewFetcher builds a Fetcher from the Config's transport settings.
func NewFetcher(cfg *Config) *Fetcher {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	return &Fetcher{client: client, logger: cfg.Logger}
}

// Document GETs a URL and parses the body as HTML.
func (f *Fetcher) Document(ctx context.Context, pageURL string) (*goquery.Document, error) {
	res, err := f.client.R().SetContext(ctx).Get(pageURL)
	if err != nil {
		return nil, fmt.Errorf("scrape: fetch %s: %w", pageURL, err)
	}
	if res.StatusCode() >= 400 {
		return nil, fmt.Errorf("scrape: fetch %s: status %d", pageURL, res.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return nil, fmt.Errorf("scrape: parse %s: %w", pageURL, err)
	}

	f.logger.Debug("scrape: fetched", "url", pageURL, "status", res.StatusCode(), "size", len(res.Body()))
	return doc, nil
}
