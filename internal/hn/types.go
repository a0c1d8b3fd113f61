package hn

// Item represents a Hacker News item (story, comment, job, poll, or pollopt).
// Items are immutable snapshots of origin state at fetch time.
type Item struct {
	ID          int    `json:"id"`
	Deleted     bool   `json:"deleted,omitempty"`
	Type        string `json:"type,omitempty"`
	By          string `json:"by,omitempty"`
	Time        int64  `json:"time,omitempty"`
	Text        string `json:"text,omitempty"`
	Dead        bool   `json:"dead,omitempty"`
	Parent      int    `json:"parent,omitempty"`
	Poll        int    `json:"poll,omitempty"`
	Kids        []int  `json:"kids,omitempty"`
	URL         string `json:"url,omitempty"`
	Score       int    `json:"score,omitempty"`
	Title       string `json:"title,omitempty"`
	Parts       []int  `json:"parts,omitempty"`
	Descendants int    `json:"descendants,omitempty"`
}

// User represents a Hacker News account. The username is a case-sensitive
// primary key and is never normalized.
type User struct {
	ID        string `json:"id"`
	Created   int64  `json:"created"`
	Karma     int    `json:"karma"`
	About     string `json:"about,omitempty"`
	Submitted []int  `json:"submitted,omitempty"`
}

// CommentNode is a transient projection of an Item and its recursively
// resolved children, bounded by a depth limit. A leaf and a depth-truncated
// node are indistinguishable: both carry an empty child list.
type CommentNode struct {
	ID       int            `json:"id"`
	By       string         `json:"by"`
	Text     string         `json:"text"`
	Time     int64          `json:"time"`
	Children []*CommentNode `json:"children"`
}

// DeletedAuthor is the author label used when an item has no "by" field.
const DeletedAuthor = "[deleted]"

// StoryPage is one page of a category listing. Total is the full id-list
// length before slicing, so callers can render pagination.
type StoryPage struct {
	Items  []Item `json:"items"`
	Total  int    `json:"total"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

// SearchHit is a single result from the Algolia HN search API.
type SearchHit struct {
	ObjectID    string   `json:"objectID"`
	Title       string   `json:"title,omitempty"`
	URL         string   `json:"url,omitempty"`
	Author      string   `json:"author"`
	Points      *int     `json:"points,omitempty"`
	NumComments *int     `json:"num_comments,omitempty"`
	CreatedAt   string   `json:"created_at"`
	StoryText   string   `json:"story_text,omitempty"`
	CommentText string   `json:"comment_text,omitempty"`
	StoryID     *int64   `json:"story_id,omitempty"`
	ParentID    *int64   `json:"parent_id,omitempty"`
	Tags        []string `json:"_tags,omitempty"`
}

// SearchResult is one page of search hits. len(Hits) <= HitsPerPage.
type SearchResult struct {
	Hits             []SearchHit `json:"hits"`
	NbHits           int         `json:"nbHits"`
	Page             int         `json:"page"`
	NbPages          int         `json:"nbPages"`
	HitsPerPage      int         `json:"hitsPerPage"`
	ProcessingTimeMS int         `json:"processingTimeMS"`
}
