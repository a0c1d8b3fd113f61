package mcp

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/quarklabs/mcp-hackernews/internal/article"
	"github.com/quarklabs/mcp-hackernews/internal/hn"
)

// Result formatting: tools return human-readable text blocks, not raw JSON,
// so the host can show them directly.

const articleTextLimit = 8000

// formatStoryPage renders a listing page with pagination info.
func formatStoryPage(category hn.Category, page *hn.StoryPage) string {
	var b strings.Builder
	title := strings.ToUpper(string(category[:1])) + string(category[1:])

	if len(page.Items) == 0 {
		fmt.Fprintf(&b, "%s stories (offset %d of %d): No stories in this range.\n",
			title, page.Offset, page.Total)
		return b.String()
	}

	fmt.Fprintf(&b, "%s stories (%d-%d of %d):\n",
		title, page.Offset+1, page.Offset+len(page.Items), page.Total)

	for i, item := range page.Items {
		fmt.Fprintf(&b, "\n%d. %s\n", page.Offset+i+1, item.Title)
		if item.URL != "" {
			fmt.Fprintf(&b, "   %s\n", item.URL)
		}
		fmt.Fprintf(&b, "   %d points by %s | %d comments | id %d | %s\n",
			item.Score, item.By, item.Descendants, item.ID, formatTime(item.Time))
	}
	return b.String()
}

// formatItem renders a single item.
func formatItem(item *hn.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Item %d (%s)\n", item.ID, item.Type)
	if item.Title != "" {
		fmt.Fprintf(&b, "Title: %s\n", item.Title)
	}
	if item.URL != "" {
		fmt.Fprintf(&b, "URL: %s\n", item.URL)
	}
	by := item.By
	if by == "" {
		by = hn.DeletedAuthor
	}
	fmt.Fprintf(&b, "By: %s | %s\n", by, formatTime(item.Time))
	if item.Score > 0 {
		fmt.Fprintf(&b, "Score: %d\n", item.Score)
	}
	if item.Descendants > 0 {
		fmt.Fprintf(&b, "Comments: %d\n", item.Descendants)
	}
	if item.Parent != 0 {
		fmt.Fprintf(&b, "Parent: %d\n", item.Parent)
	}
	if item.Deleted {
		b.WriteString("Deleted: true\n")
	}
	if item.Dead {
		b.WriteString("Dead: true\n")
	}
	if item.Text != "" {
		fmt.Fprintf(&b, "\n%s\n", cleanText(item.Text))
	}
	return b.String()
}

// formatUser renders a user card.
func formatUser(user *hn.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "User: %s\n", user.ID)
	fmt.Fprintf(&b, "Created: %s\n", formatTime(user.Created))
	fmt.Fprintf(&b, "Karma: %d\n", user.Karma)
	fmt.Fprintf(&b, "Submissions: %d\n", len(user.Submitted))
	if user.About != "" {
		fmt.Fprintf(&b, "\nAbout: %s\n", cleanText(user.About))
	}
	return b.String()
}

// formatCommentTree renders the tree with two-space indentation per level.
func formatCommentTree(root *hn.CommentNode) string {
	var b strings.Builder
	writeCommentNode(&b, root, 0)
	return b.String()
}

func writeCommentNode(b *strings.Builder, node *hn.CommentNode, level int) {
	indent := strings.Repeat("  ", level)
	fmt.Fprintf(b, "%s[%d] %s | %s\n", indent, node.ID, node.By, formatTime(node.Time))
	if text := cleanText(node.Text); text != "" {
		for _, line := range strings.Split(text, "\n") {
			fmt.Fprintf(b, "%s    %s\n", indent, line)
		}
	}
	for _, child := range node.Children {
		writeCommentNode(b, child, level+1)
	}
}

// formatSearchResult renders one search page.
func formatSearchResult(query string, result *hn.SearchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Search %q: %d hits, page %d of %d (%d per page)\n",
		query, result.NbHits, result.Page+1, result.NbPages, result.HitsPerPage)

	for i, hit := range result.Hits {
		fmt.Fprintf(&b, "\n%d. ", result.Page*result.HitsPerPage+i+1)
		switch {
		case hit.Title != "":
			fmt.Fprintf(&b, "%s\n", hit.Title)
		case hit.CommentText != "":
			fmt.Fprintf(&b, "%s\n", truncate(cleanText(hit.CommentText), 200))
		default:
			b.WriteString("(untitled)\n")
		}
		if hit.URL != "" {
			fmt.Fprintf(&b, "   %s\n", hit.URL)
		}
		fmt.Fprintf(&b, "   by %s | id %s | %s", hit.Author, hit.ObjectID, hit.CreatedAt)
		if hit.Points != nil {
			fmt.Fprintf(&b, " | %d points", *hit.Points)
		}
		if hit.NumComments != nil {
			fmt.Fprintf(&b, " | %d comments", *hit.NumComments)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// formatArticle renders extracted article text with its story context.
func formatArticle(item *hn.Item, art *article.Article) string {
	var b strings.Builder
	title := art.Title
	if title == "" {
		title = item.Title
	}
	fmt.Fprintf(&b, "%s\n", title)
	if art.Byline != "" {
		fmt.Fprintf(&b, "By %s\n", art.Byline)
	}
	if art.SiteName != "" {
		fmt.Fprintf(&b, "Source: %s\n", art.SiteName)
	}
	fmt.Fprintf(&b, "URL: %s\nStory id: %d\n\n", item.URL, item.ID)
	b.WriteString(truncate(art.Text, articleTextLimit))
	b.WriteString("\n")
	return b.String()
}

// formatJSON is the fallback renderer for structural results.
func formatJSON(data any) string {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(jsonData)
}

// htmlTags maps the markup HN actually emits in text bodies.
var htmlTags = strings.NewReplacer(
	"<p>", "\n\n",
	"</p>", "",
	"<i>", "",
	"</i>", "",
	"<b>", "",
	"</b>", "",
	"<pre>", "\n",
	"</pre>", "\n",
	"<code>", "",
	"</code>", "",
)

// cleanText converts HN's HTML-ish text bodies to plain text.
func cleanText(s string) string {
	s = htmlTags.Replace(s)
	// Anchor tags carry the target in the href; the visible text is enough.
	for {
		start := strings.Index(s, "<a ")
		if start < 0 {
			break
		}
		end := strings.Index(s[start:], ">")
		if end < 0 {
			break
		}
		s = s[:start] + s[start+end+1:]
	}
	s = strings.ReplaceAll(s, "</a>", "")
	return strings.TrimSpace(html.UnescapeString(s))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}

func formatTime(unix int64) string {
	if unix == 0 {
		return "unknown time"
	}
	return time.Unix(unix, 0).UTC().Format("2006-01-02 15:04")
}
