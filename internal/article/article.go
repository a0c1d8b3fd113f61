// Package article fetches a story's linked page and extracts its readable
// text with a readability-style extractor.
package article

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
)

// Article is the readable content extracted from a page.
type Article struct {
	Title    string `json:"title"`
	Byline   string `json:"byline,omitempty"`
	SiteName string `json:"site_name,omitempty"`
	Excerpt  string `json:"excerpt,omitempty"`
	Text     string `json:"text"`
	Length   int    `json:"length"`
}

// Extractor fetches pages and runs readability extraction over them.
type Extractor struct {
	httpClient *http.Client
}

// NewExtractor creates a new Extractor with the given transport timeout.
func NewExtractor(timeout time.Duration) *Extractor {
	return &Extractor{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Extract fetches pageURL and returns its readable content. Unlike the
// Hacker News fetch path, failures here are real errors: the caller asked
// for this specific page and needs to know why it could not be read.
func (e *Extractor) Extract(ctx context.Context, pageURL string) (*Article, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse url %q: %w", pageURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", pageURL, resp.StatusCode)
	}

	parsed, err := readability.FromReader(resp.Body, parsedURL)
	if err != nil {
		return nil, fmt.Errorf("extract readable content from %s: %w", pageURL, err)
	}

	text := strings.TrimSpace(parsed.TextContent)
	if text == "" {
		return nil, fmt.Errorf("no readable content found at %s", pageURL)
	}

	return &Article{
		Title:    strings.TrimSpace(parsed.Title),
		Byline:   strings.TrimSpace(parsed.Byline),
		SiteName: strings.TrimSpace(parsed.SiteName),
		Excerpt:  strings.TrimSpace(parsed.Excerpt),
		Text:     text,
		Length:   len(text),
	}, nil
}
