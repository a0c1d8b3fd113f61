package mcp

import (
	"fmt"

	"github.com/quarklabs/mcp-hackernews/internal/config"
	"github.com/quarklabs/mcp-hackernews/internal/hn"
)

// getAllTools returns all available MCP tools.
func getAllTools(limits config.LimitsConfig) []Tool {
	categories := make([]string, len(hn.Categories))
	for i, c := range hn.Categories {
		categories[i] = string(c)
	}

	return []Tool{
		{
			Name: "get_stories",
			Description: "Get a page of Hacker News stories from one of the fixed listings " +
				"(top, new, best, ask, show, job), resolved to full items.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"category": map[string]any{
						"type":        "string",
						"description": "Listing to read from",
						"enum":        categories,
					},
					"limit": map[string]any{
						"type":        "integer",
						"description": fmt.Sprintf("Number of stories to return (1-%d, default %d)", limits.MaxStoriesLimit, limits.DefaultStoriesLimit),
						"minimum":     1,
						"maximum":     limits.MaxStoriesLimit,
					},
					"offset": map[string]any{
						"type":        "integer",
						"description": "Number of stories to skip (default 0)",
						"minimum":     0,
					},
				},
				"required": []string{"category"},
			},
		},
		{
			Name:        "get_story_ids",
			Description: "Get the raw ordered id list for a listing category, without resolving items.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"category": map[string]any{
						"type":        "string",
						"description": "Listing to read from",
						"enum":        categories,
					},
				},
				"required": []string{"category"},
			},
		},
		{
			Name:        "get_item",
			Description: "Get a single Hacker News item (story, comment, job, poll, or poll option) by id.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "integer",
						"description": "The item id",
						"minimum":     1,
					},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "get_user",
			Description: "Get a Hacker News user profile by username. Usernames are case-sensitive.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"username": map[string]any{
						"type":        "string",
						"description": "The username (case-sensitive)",
					},
				},
				"required": []string{"username"},
			},
		},
		{
			Name: "get_comment_tree",
			Description: "Get the comment tree under a story or comment, fetched recursively " +
				"down to the requested depth. Deleted branches are omitted.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "integer",
						"description": "Id of the story or comment at the root of the tree",
						"minimum":     1,
					},
					"depth": map[string]any{
						"type":        "integer",
						"description": fmt.Sprintf("Levels of replies to expand (1-%d, default %d)", limits.MaxCommentDepth, limits.DefaultCommentDepth),
						"minimum":     1,
						"maximum":     limits.MaxCommentDepth,
					},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "search_hn",
			Description: "Full-text search over Hacker News stories and comments via the Algolia API.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "Search query string",
					},
					"tags": map[string]any{
						"type":        "string",
						"description": "Tag filter, e.g. 'story', 'comment', or 'story,author_pg'",
					},
					"numeric_filters": map[string]any{
						"type":        "string",
						"description": "Numeric filter expression, e.g. 'points>100,num_comments>10'",
					},
					"page": map[string]any{
						"type":        "integer",
						"description": "Zero-based page index (default 0)",
						"minimum":     0,
					},
					"hits_per_page": map[string]any{
						"type":        "integer",
						"description": fmt.Sprintf("Results per page (1-%d, default %d)", limits.MaxHitsPerPage, limits.DefaultHitsPerPage),
						"minimum":     1,
						"maximum":     limits.MaxHitsPerPage,
					},
				},
				"required": []string{"query"},
			},
		},
		{
			Name: "read_article",
			Description: "Fetch the web page a story links to and extract its readable text. " +
				"Only works for stories that carry a URL.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "integer",
						"description": "Id of the story whose linked page should be read",
						"minimum":     1,
					},
				},
				"required": []string{"id"},
			},
		},
	}
}
