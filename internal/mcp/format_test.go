package mcp

import (
	"strings"
	"testing"

	"github.com/quarklabs/mcp-hackernews/internal/hn"
)

func TestCleanText_UnescapesAndStripsMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"entities", "don&#x27;t &amp; won&#x27;t", "don't & won't"},
		{"paragraphs", "first<p>second", "first\n\nsecond"},
		{"anchors", `see <a href="https://example.com" rel="nofollow">this link</a> here`, "see this link here"},
		{"italics", "<i>emphasis</i>", "emphasis"},
		{"plain", "untouched text", "untouched text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanText(tt.in); got != tt.want {
				t.Errorf("cleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncate_RespectsRuneBoundaries(t *testing.T) {
	if got := truncate("short", 100); got != "short" {
		t.Errorf("expected unchanged string, got %q", got)
	}
	got := truncate("héllo wörld", 7)
	if !strings.HasSuffix(got, "…") {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
	if strings.ContainsRune(got, '�') {
		t.Errorf("truncate split a rune: %q", got)
	}
}

func TestFormatCommentTree_NestsChildren(t *testing.T) {
	root := &hn.CommentNode{
		ID: 1, By: "alice", Time: 1700000000,
		Children: []*hn.CommentNode{
			{ID: 2, By: "bob", Text: "first reply", Children: []*hn.CommentNode{
				{ID: 4, By: "[deleted]", Children: nil},
			}},
			{ID: 3, By: "carol", Text: "second reply"},
		},
	}
	out := formatCommentTree(root)

	for _, want := range []string{"[1] alice", "  [2] bob", "    [4] [deleted]", "  [3] carol"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Index(out, "[2]") > strings.Index(out, "[3]") {
		t.Error("children rendered out of order")
	}
}

func TestFormatSearchResult_RendersHits(t *testing.T) {
	points := 42
	comments := 7
	result := &hn.SearchResult{
		Hits: []hn.SearchHit{
			{ObjectID: "100", Title: "A story", Author: "alice", Points: &points, NumComments: &comments, CreatedAt: "2024-01-01T00:00:00Z"},
			{ObjectID: "101", CommentText: "just a comment", Author: "bob", CreatedAt: "2024-01-02T00:00:00Z"},
		},
		NbHits: 25, Page: 0, NbPages: 3, HitsPerPage: 10,
	}
	out := formatSearchResult("rust", result)

	for _, want := range []string{"25 hits", "page 1 of 3", "A story", "42 points", "just a comment", "by bob"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestFormatStoryPage_EmptyRange(t *testing.T) {
	out := formatStoryPage(hn.CategoryTop, &hn.StoryPage{Items: nil, Total: 5, Limit: 10, Offset: 7})
	if !strings.Contains(out, "No stories in this range") {
		t.Errorf("expected empty-range message, got:\n%s", out)
	}
	if !strings.Contains(out, "of 5") {
		t.Errorf("expected total in header, got:\n%s", out)
	}
}
