package hn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarklabs/mcp-hackernews/internal/logger"
)

func TestSearch_BuildsQueryParameters(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{"hits":[],"nbHits":0,"page":0,"nbPages":0,"hitsPerPage":10}`))
	}))
	defer srv.Close()
	c := NewClient(srv.URL, srv.URL, 5*time.Second, logger.NewNop())

	_, err := c.Search(context.Background(), "rust compiler", SearchOptions{
		Tags:           "story",
		Page:           2,
		HitsPerPage:    25,
		NumericFilters: "points>100,num_comments>10",
	})
	require.NoError(t, err)
	assert.Equal(t, "rust compiler", got.Get("query"))
	assert.Equal(t, "story", got.Get("tags"))
	assert.Equal(t, "2", got.Get("page"))
	assert.Equal(t, "25", got.Get("hitsPerPage"))
	assert.Equal(t, "points>100,num_comments>10", got.Get("numericFilters"))
}

func TestSearch_OmitsUnsetOptions(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{"hits":[],"nbHits":0}`))
	}))
	defer srv.Close()
	c := NewClient(srv.URL, srv.URL, 5*time.Second, logger.NewNop())

	_, err := c.Search(context.Background(), "go", SearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, "go", got.Get("query"))
	assert.False(t, got.Has("tags"))
	assert.False(t, got.Has("page"))
	assert.False(t, got.Has("hitsPerPage"))
	assert.False(t, got.Has("numericFilters"))
}

func TestSearch_ParsesResultPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{
			"hits": [
				{"objectID":"100","title":"A story","author":"alice","points":42,"num_comments":7,"created_at":"2024-01-01T00:00:00Z","_tags":["story"]},
				{"objectID":"101","comment_text":"a comment","author":"bob","created_at":"2024-01-02T00:00:00Z","story_id":100,"_tags":["comment"]}
			],
			"nbHits": 25, "page": 0, "nbPages": 3, "hitsPerPage": 10, "processingTimeMS": 2
		}`))
	}))
	defer srv.Close()
	c := NewClient(srv.URL, srv.URL, 5*time.Second, logger.NewNop())

	result, err := c.Search(context.Background(), "anything", SearchOptions{HitsPerPage: 10})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 25, result.NbHits)
	assert.Equal(t, 3, result.NbPages)
	assert.Equal(t, 10, result.HitsPerPage)
	require.Len(t, result.Hits, 2)
	assert.LessOrEqual(t, len(result.Hits), result.HitsPerPage)

	story := result.Hits[0]
	assert.Equal(t, "100", story.ObjectID)
	require.NotNil(t, story.Points)
	assert.Equal(t, 42, *story.Points)

	comment := result.Hits[1]
	assert.Equal(t, "a comment", comment.CommentText)
	require.NotNil(t, comment.StoryID)
	assert.Equal(t, int64(100), *comment.StoryID)
	assert.Nil(t, comment.Points)
}

func TestSearch_FailureIsAbsence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()
	c := NewClient(srv.URL, srv.URL, 5*time.Second, logger.NewNop())

	result, err := c.Search(context.Background(), "go", SearchOptions{})
	require.NoError(t, err)
	assert.Nil(t, result)
}
