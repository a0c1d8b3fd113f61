package article

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>How We Scaled Postgres</title></head>
<body>
<article>
<h1>How We Scaled Postgres</h1>
<p>When our write volume tripled last year we had to rethink the whole
storage layer. This post walks through the partitioning scheme we ended up
with and the migration that got us there without downtime.</p>
<p>The first thing we tried was simply throwing hardware at the problem.
That bought us six months, but the replication lag kept growing and the
vacuum cycles started to interfere with peak traffic.</p>
<p>Partitioning by tenant turned out to be the right call. Each partition
stays small enough for indexes to fit in memory, and dropping expired data
became a metadata operation instead of a bulk delete.</p>
</article>
</body>
</html>`

func TestExtract_ReturnsReadableText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	e := NewExtractor(5 * time.Second)
	art, err := e.Extract(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, art.Title, "Postgres")
	assert.Contains(t, art.Text, "partitioning scheme")
	assert.Positive(t, art.Length)
}

func TestExtract_NonSuccessStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	e := NewExtractor(5 * time.Second)
	_, err := e.Extract(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestExtract_BadURL(t *testing.T) {
	e := NewExtractor(time.Second)
	_, err := e.Extract(context.Background(), "http://127.0.0.1:1/unreachable")
	require.Error(t, err)
}
