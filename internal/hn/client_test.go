package hn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarklabs/mcp-hackernews/internal/logger"
)

// fakeOrigin serves canned item/user/listing payloads and records every
// request path it sees.
type fakeOrigin struct {
	mu        sync.Mutex
	items     map[int]Item
	responses map[string]string // path -> raw body, takes precedence
	statuses  map[string]int    // path -> forced status
	requests  []string
}

func newFakeOrigin() *fakeOrigin {
	return &fakeOrigin{
		items:     map[int]Item{},
		responses: map[string]string{},
		statuses:  map[string]int{},
	}
}

func (f *fakeOrigin) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.URL.Path)
		status, forced := f.statuses[r.URL.Path]
		body, canned := f.responses[r.URL.Path]
		f.mu.Unlock()

		if forced {
			w.WriteHeader(status)
			return
		}
		if canned {
			fmt.Fprint(w, body)
			return
		}

		var id int
		if _, err := fmt.Sscanf(r.URL.Path, "/item/%d.json", &id); err == nil {
			f.mu.Lock()
			item, ok := f.items[id]
			f.mu.Unlock()
			if !ok {
				fmt.Fprint(w, "null")
				return
			}
			_ = json.NewEncoder(w).Encode(item)
			return
		}

		http.NotFound(w, r)
	}
}

func (f *fakeOrigin) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func newTestClient(t *testing.T, origin *fakeOrigin) *Client {
	t.Helper()
	srv := httptest.NewServer(origin.handler())
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, srv.URL, 5*time.Second, logger.NewNop())
}

func TestGetItem_ReturnsItem(t *testing.T) {
	origin := newFakeOrigin()
	origin.items[8863] = Item{
		ID: 8863, Type: "story", By: "dhouston", Time: 1175714200,
		Title: "My YC app: Dropbox", Score: 111, Kids: []int{8952, 9224},
	}
	c := newTestClient(t, origin)

	item, err := c.GetItem(context.Background(), 8863)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, 8863, item.ID)
	assert.Equal(t, "dhouston", item.By)
	assert.Equal(t, []int{8952, 9224}, item.Kids)
}

func TestGetItem_NullBodyIsAbsence(t *testing.T) {
	origin := newFakeOrigin()
	c := newTestClient(t, origin)

	item, err := c.GetItem(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestGetItem_NonSuccessStatusIsAbsence(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusBadGateway} {
		t.Run(fmt.Sprintf("status_%d", status), func(t *testing.T) {
			origin := newFakeOrigin()
			origin.statuses["/item/1.json"] = status
			c := newTestClient(t, origin)

			item, err := c.GetItem(context.Background(), 1)
			require.NoError(t, err)
			assert.Nil(t, item)
		})
	}
}

func TestGetItem_MalformedBodyIsFatal(t *testing.T) {
	origin := newFakeOrigin()
	origin.responses["/item/1.json"] = `{"id": 1,` // truncated
	c := newTestClient(t, origin)

	item, err := c.GetItem(context.Background(), 1)
	require.Error(t, err)
	assert.Nil(t, item)
}

func TestGetUser_UsernameIsOpaqueAndCaseSensitive(t *testing.T) {
	origin := newFakeOrigin()
	origin.responses["/user/PG.json"] = `{"id":"PG","created":1160418092,"karma":100}`
	c := newTestClient(t, origin)

	user, err := c.GetUser(context.Background(), "PG")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "PG", user.ID)
	assert.Equal(t, 100, user.Karma)

	// The lowercase key is a different user and must not resolve.
	user, err = c.GetUser(context.Background(), "pg")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestGetStoryIDs_ReturnsOrderedList(t *testing.T) {
	origin := newFakeOrigin()
	origin.responses["/topstories.json"] = `[10,11,12,13,14]`
	c := newTestClient(t, origin)

	ids, err := c.GetStoryIDs(context.Background(), CategoryTop)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11, 12, 13, 14}, ids)
}

func TestGetStoryIDs_AbsenceCoercesToEmpty(t *testing.T) {
	origin := newFakeOrigin()
	origin.statuses["/jobstories.json"] = http.StatusServiceUnavailable
	c := newTestClient(t, origin)

	ids, err := c.GetStoryIDs(context.Background(), CategoryJob)
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.NotNil(t, ids)
}

func TestGetStoryIDs_UnknownCategory(t *testing.T) {
	origin := newFakeOrigin()
	c := newTestClient(t, origin)

	_, err := c.GetStoryIDs(context.Background(), Category("past"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestCategory_Valid(t *testing.T) {
	for _, category := range Categories {
		assert.True(t, category.Valid(), "category %q", category)
	}
	assert.False(t, Category("front").Valid())
	assert.False(t, Category("").Valid())
	assert.False(t, Category("Top").Valid())
}
