package mcp

import (
	"fmt"
	"strings"
)

const hackernewsScheme = "hackernews://"

// getAllResources returns the list of static resource metadata.
func getAllResources() []ResourceListItem {
	return []ResourceListItem{
		{
			URI:         "hackernews://docs/tool-reference",
			Name:        "Tool Reference",
			Description: "List of tools and when to use them",
			MimeType:    "text/plain",
		},
		{
			URI:         "hackernews://docs/categories",
			Name:        "Listing Categories",
			Description: "The six story-listing buckets and what they contain",
			MimeType:    "text/plain",
		},
		{
			URI:         "hackernews://docs/search-syntax",
			Name:        "Search Syntax",
			Description: "Tags and numeric filters accepted by search_hn",
			MimeType:    "text/plain",
		},
	}
}

// readResource returns content for a known URI.
func readResource(uri string) ([]ResourceContent, error) {
	if !strings.HasPrefix(uri, hackernewsScheme) {
		return nil, fmt.Errorf("resource not found: %s", uri)
	}
	path := strings.Trim(strings.TrimPrefix(uri, hackernewsScheme), "/")
	switch path {
	case "docs/tool-reference":
		return []ResourceContent{{URI: uri, MimeType: "text/plain", Text: staticToolReference}}, nil
	case "docs/categories":
		return []ResourceContent{{URI: uri, MimeType: "text/plain", Text: staticCategories}}, nil
	case "docs/search-syntax":
		return []ResourceContent{{URI: uri, MimeType: "text/plain", Text: staticSearchSyntax}}, nil
	default:
		return nil, fmt.Errorf("resource not found: %s", uri)
	}
}

const staticToolReference = `get_stories: One page of a listing resolved to full items (category, limit, offset). get_story_ids: The raw id list of a listing. get_item: One item by id. get_user: One profile by username (case-sensitive). get_comment_tree: Discussion under an item, expanded to a depth between 1 and 5. search_hn: Full-text search with optional tags, numeric filters, and paging. read_article: Readable text of the page a story links to.`

const staticCategories = `top: The front page ranking. new: Newest submissions. best: Highest-voted recent stories. ask: Ask HN posts (text questions to the community). show: Show HN posts (things people made). job: Job postings from YC companies.`

const staticSearchSyntax = `tags filters results and ANDs comma-separated values: story, comment, poll, job, ask_hn, show_hn, front_page, author_USERNAME, story_ID. Parentheses OR them: (story,poll). numeric_filters ANDs comma-separated conditions on created_at_i, points, num_comments with <, <=, =, >, >=, e.g. points>100,num_comments>10. Results are paged with page (zero-based) and hits_per_page.`
