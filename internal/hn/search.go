package hn

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// SearchOptions are the optional parameters of the Algolia search endpoint.
// No clamping happens here; hits-per-page bounds are the tool layer's job.
type SearchOptions struct {
	// Tags filters results, e.g. "story", "comment", "author_pg", or an
	// and-combination like "story,author_pg".
	Tags string
	// Page is the zero-based result page index.
	Page int
	// HitsPerPage is the page size.
	HitsPerPage int
	// NumericFilters is a filter expression like "points>100,num_comments>10".
	NumericFilters string
}

// Search queries the Algolia HN search API. Returns nil on any failure,
// which the caller surfaces as a generic request failure.
func (c *Client) Search(ctx context.Context, query string, opts SearchOptions) (*SearchResult, error) {
	params := url.Values{}
	params.Set("query", query)
	if opts.Tags != "" {
		params.Set("tags", opts.Tags)
	}
	if opts.Page > 0 {
		params.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.HitsPerPage > 0 {
		params.Set("hitsPerPage", strconv.Itoa(opts.HitsPerPage))
	}
	if opts.NumericFilters != "" {
		params.Set("numericFilters", opts.NumericFilters)
	}

	return getJSON[SearchResult](ctx, c, fmt.Sprintf("%s/search?%s", c.searchBase, params.Encode()))
}
