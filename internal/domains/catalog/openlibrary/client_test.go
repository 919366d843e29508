package openlibrary

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(n int64) *int64 { return &n }
func intPtr(n int) *int       { return &n }

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search.json", r.URL.Path)
		assert.Equal(t, "dune", r.URL.Query().Get("q"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))

		payload := SearchResponse{
			NumFound: 1,
			Docs: []Doc{{
				Title:            "Dune",
				AuthorName:       []string{"Frank Herbert"},
				FirstPublishYear: intPtr(1965),
				ISBN:             []string{"9780441013593"},
				Key:              "/works/OL893415W",
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	resp, err := client.Search(context.Background(), "dune", 10, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.NumFound)
	require.Len(t, resp.Docs, 1)
	assert.Equal(t, "Dune", resp.Docs[0].Title)
}

func TestSearchUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	_, err := client.Search(context.Background(), "dune", 10, 1)
	assert.Error(t, err)
}

func TestNormalizeCoverFallbacks(t *testing.T) {
	tests := []struct {
		name  string
		doc   Doc
		cover string
	}{
		{
			"cover id wins",
			Doc{Title: "a", CoverID: int64Ptr(42), ISBN: []string{"111"}, CoverEditionKey: "OL1M"},
			"https://covers.openlibrary.org/b/id/42-M.jpg",
		},
		{
			"isbn fallback",
			Doc{Title: "b", ISBN: []string{"111", "222"}, CoverEditionKey: "OL1M"},
			"https://covers.openlibrary.org/b/isbn/111-M.jpg",
		},
		{
			"olid fallback",
			Doc{Title: "c", CoverEditionKey: "OL1M"},
			"https://covers.openlibrary.org/b/olid/OL1M-M.jpg",
		},
		{
			"no cover",
			Doc{Title: "d"},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := Normalize([]Doc{tt.doc})
			require.Len(t, refs, 1)
			if tt.cover == "" {
				assert.Nil(t, refs[0].CoverURL)
			} else {
				require.NotNil(t, refs[0].CoverURL)
				assert.Equal(t, tt.cover, *refs[0].CoverURL)
			}
		})
	}
}

func TestNormalizeFirstISBN(t *testing.T) {
	refs := Normalize([]Doc{{Title: "a", ISBN: []string{"111", "222"}, Key: "/works/OL1W"}})
	require.Len(t, refs, 1)
	require.NotNil(t, refs[0].ISBN)
	assert.Equal(t, "111", *refs[0].ISBN)
	require.NotNil(t, refs[0].OpenLibraryKey)
	assert.Equal(t, "/works/OL1W", *refs[0].OpenLibraryKey)
}

func TestSearchCancelledDuringRateLimit(t *testing.T) {
	limiter := &rateLimiter{interval: time.Hour, lastCall: time.Now()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := limiter.wait(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second, "a cancelled wait should return immediately")
}
