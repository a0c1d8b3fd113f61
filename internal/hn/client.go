// Package hn is a read-only client for the Hacker News Firebase API and the
// Algolia search API.
//
// The client owns no state beyond its HTTP transport: every accessor is a
// pure function of its inputs plus the origin system's current state. There
// is no caching, no retrying, and no write path.
package hn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/quarklabs/mcp-hackernews/internal/logger"
)

// Client fetches Hacker News data.
type Client struct {
	httpClient *http.Client
	apiBase    string
	searchBase string
	log        logger.Logger
}

// NewClient creates a new Hacker News client.
func NewClient(apiBaseURL, searchBaseURL string, timeout time.Duration, log logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		apiBase:    apiBaseURL,
		searchBase: searchBaseURL,
		log:        log,
	}
}

// getJSON performs a GET and decodes the body into T.
//
// Absence is the nil, nil return: any non-2xx status, any transport failure,
// and the Firebase convention of a 200 with a literal "null" body all
// collapse into it. The origin system does not let us distinguish "does not
// exist" from "temporarily unreachable", so neither do we. A 2xx body that
// fails to parse is the one fatal case and propagates as an error.
func getJSON[T any](ctx context.Context, c *Client, rawURL string) (*T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug("fetch failed", logger.String("url", rawURL), logger.Error(err))
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.log.Debug("non-success status",
			logger.String("url", rawURL),
			logger.Int("status", resp.StatusCode))
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", rawURL, err)
	}

	var v *T
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("parse response from %s: %w", rawURL, err)
	}

	// v stays nil when the body was "null".
	return v, nil
}

// GetItem fetches an item by id. Returns nil for a missing or unreachable
// item.
func (c *Client) GetItem(ctx context.Context, id int) (*Item, error) {
	return getJSON[Item](ctx, c, fmt.Sprintf("%s/item/%d.json", c.apiBase, id))
}

// GetUser fetches a user by username. The username is treated as an opaque,
// case-sensitive key.
func (c *Client) GetUser(ctx context.Context, username string) (*User, error) {
	return getJSON[User](ctx, c, fmt.Sprintf("%s/user/%s.json", c.apiBase, url.PathEscape(username)))
}

// GetStoryIDs fetches the ordered id list for a category. Absence coerces to
// an empty list, never an error.
func (c *Client) GetStoryIDs(ctx context.Context, category Category) ([]int, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("unknown category: %q", category)
	}

	ids, err := getJSON[[]int](ctx, c, fmt.Sprintf("%s/%s.json", c.apiBase, category.endpoint()))
	if err != nil {
		return nil, err
	}
	if ids == nil {
		return []int{}, nil
	}
	return *ids, nil
}
