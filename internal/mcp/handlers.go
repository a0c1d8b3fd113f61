package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/quarklabs/mcp-hackernews/internal/hn"
	"github.com/quarklabs/mcp-hackernews/internal/logger"
)

// Tool handlers. Parameter validation lives here: the fetch core trusts its
// inputs, so every bound (positive ids, depth, limit, hits-per-page) is
// enforced before a call crosses into internal/hn.

func (s *Server) handleGetStories(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		Category string `json:"category"`
		Limit    int    `json:"limit"`
		Offset   int    `json:"offset"`
	}

	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}

	category := hn.Category(args.Category)
	if !category.Valid() {
		return s.errorResponse(id, InvalidParams, "category must be one of: top, new, best, ask, show, job")
	}

	if args.Limit == 0 {
		args.Limit = s.limits.DefaultStoriesLimit
	}
	if args.Limit < 1 || args.Limit > s.limits.MaxStoriesLimit {
		return s.errorResponse(id, InvalidParams,
			fmt.Sprintf("limit must be between 1 and %d", s.limits.MaxStoriesLimit))
	}
	if args.Offset < 0 {
		return s.errorResponse(id, InvalidParams, "offset must be non-negative")
	}

	page, err := s.hn.GetStories(ctx, category, args.Limit, args.Offset)
	if err != nil {
		s.log.Error("get stories failed", logger.String("category", args.Category), logger.Error(err))
		return s.errorResponse(id, InternalError, fmt.Sprintf("Failed to get stories: %v", err))
	}

	return s.textResult(id, formatStoryPage(category, page), false)
}

func (s *Server) handleGetStoryIDs(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		Category string `json:"category"`
	}

	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}

	category := hn.Category(args.Category)
	if !category.Valid() {
		return s.errorResponse(id, InvalidParams, "category must be one of: top, new, best, ask, show, job")
	}

	ids, err := s.hn.GetStoryIDs(ctx, category)
	if err != nil {
		return s.errorResponse(id, InternalError, fmt.Sprintf("Failed to get story ids: %v", err))
	}

	return s.textResult(id, formatJSON(map[string]any{
		"category": args.Category,
		"ids":      ids,
		"count":    len(ids),
	}), false)
}

func (s *Server) handleGetItem(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		ID int `json:"id"`
	}

	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}
	if args.ID < 1 {
		return s.errorResponse(id, InvalidParams, "id must be a positive integer")
	}

	item, err := s.hn.GetItem(ctx, args.ID)
	if err != nil {
		return s.errorResponse(id, InternalError, fmt.Sprintf("Failed to get item: %v", err))
	}
	if item == nil {
		return s.textResult(id, fmt.Sprintf("Item %d not found", args.ID), true)
	}

	return s.textResult(id, formatItem(item), false)
}

func (s *Server) handleGetUser(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		Username string `json:"username"`
	}

	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}
	if args.Username == "" {
		return s.errorResponse(id, InvalidParams, "username is required")
	}

	user, err := s.hn.GetUser(ctx, args.Username)
	if err != nil {
		return s.errorResponse(id, InternalError, fmt.Sprintf("Failed to get user: %v", err))
	}
	if user == nil {
		return s.textResult(id, fmt.Sprintf("User %q not found", args.Username), true)
	}

	return s.textResult(id, formatUser(user), false)
}

func (s *Server) handleGetCommentTree(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		ID    int `json:"id"`
		Depth int `json:"depth"`
	}

	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}
	if args.ID < 1 {
		return s.errorResponse(id, InvalidParams, "id must be a positive integer")
	}
	if args.Depth == 0 {
		args.Depth = s.limits.DefaultCommentDepth
	}
	if args.Depth < 1 || args.Depth > s.limits.MaxCommentDepth {
		return s.errorResponse(id, InvalidParams,
			fmt.Sprintf("depth must be between 1 and %d", s.limits.MaxCommentDepth))
	}

	root, err := s.hn.GetCommentTree(ctx, args.ID, args.Depth)
	if err != nil {
		s.log.Error("get comment tree failed", logger.Int("item_id", args.ID), logger.Error(err))
		return s.errorResponse(id, InternalError, fmt.Sprintf("Failed to get comment tree: %v", err))
	}
	if root == nil {
		return s.textResult(id, fmt.Sprintf("Item %d not found", args.ID), true)
	}

	return s.textResult(id, formatCommentTree(root), false)
}

func (s *Server) handleSearch(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		Query          string `json:"query"`
		Tags           string `json:"tags"`
		NumericFilters string `json:"numeric_filters"`
		Page           int    `json:"page"`
		HitsPerPage    int    `json:"hits_per_page"`
	}

	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}
	if args.Query == "" {
		return s.errorResponse(id, InvalidParams, "query is required")
	}
	if args.Page < 0 {
		return s.errorResponse(id, InvalidParams, "page must be non-negative")
	}

	// The search core does no clamping; it happens here.
	if args.HitsPerPage == 0 {
		args.HitsPerPage = s.limits.DefaultHitsPerPage
	}
	if args.HitsPerPage < 1 {
		args.HitsPerPage = 1
	}
	if args.HitsPerPage > s.limits.MaxHitsPerPage {
		args.HitsPerPage = s.limits.MaxHitsPerPage
	}

	result, err := s.hn.Search(ctx, args.Query, hn.SearchOptions{
		Tags:           args.Tags,
		Page:           args.Page,
		HitsPerPage:    args.HitsPerPage,
		NumericFilters: args.NumericFilters,
	})
	if err != nil {
		return s.errorResponse(id, InternalError, fmt.Sprintf("Search failed: %v", err))
	}
	if result == nil {
		return s.textResult(id, "Search request failed", true)
	}

	return s.textResult(id, formatSearchResult(args.Query, result), false)
}

func (s *Server) handleReadArticle(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		ID int `json:"id"`
	}

	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}
	if args.ID < 1 {
		return s.errorResponse(id, InvalidParams, "id must be a positive integer")
	}

	item, err := s.hn.GetItem(ctx, args.ID)
	if err != nil {
		return s.errorResponse(id, InternalError, fmt.Sprintf("Failed to get item: %v", err))
	}
	if item == nil {
		return s.textResult(id, fmt.Sprintf("Item %d not found", args.ID), true)
	}
	if item.URL == "" {
		return s.textResult(id, fmt.Sprintf("Item %d has no linked URL to read", args.ID), true)
	}

	art, err := s.extractor.Extract(ctx, item.URL)
	if err != nil {
		s.log.Warn("article extraction failed", logger.String("url", item.URL), logger.Error(err))
		return s.textResult(id, fmt.Sprintf("Could not read article at %s: %v", item.URL, err), true)
	}

	return s.textResult(id, formatArticle(item, art), false)
}
