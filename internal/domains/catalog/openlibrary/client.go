package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"litshelf-backend/internal/domains/catalog/model"
	"litshelf-backend/pkg/logger"
)

const coversBaseURL = "https://covers.openlibrary.org"

// Client queries the OpenLibrary search API. Calls are rate limited because
// OpenLibrary throttles aggressive clients by IP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rateLimiter
}

type rateLimiter struct {
	mu       sync.Mutex
	lastCall time.Time
	interval time.Duration
}

func (r *rateLimiter) wait(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	since := time.Since(r.lastCall)
	if since < r.interval {
		timer := time.NewTimer(r.interval - since)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	r.lastCall = time.Now()
	return nil
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		limiter:    &rateLimiter{interval: 200 * time.Millisecond},
	}
}

// SearchResponse is the subset of the OpenLibrary search payload we read.
type SearchResponse struct {
	NumFound int   `json:"numFound"`
	Docs     []Doc `json:"docs"`
}

type Doc struct {
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	FirstPublishYear *int     `json:"first_publish_year"`
	ISBN             []string `json:"isbn"`
	Key              string   `json:"key"`
	CoverID          *int64   `json:"cover_i"`
	CoverEditionKey  string   `json:"cover_edition_key"`
}

// Search runs a text query against /search.json with paging.
func (c *Client) Search(ctx context.Context, q string, limit, page int) (*SearchResponse, error) {
	if err := c.limiter.wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", q)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("page", strconv.Itoa(page))

	searchURL := fmt.Sprintf("%s/search.json?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Litshelf/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openlibrary search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("openlibrary search failed", map[string]interface{}{
			"status": resp.StatusCode,
			"query":  q,
		})
		return nil, fmt.Errorf("openlibrary search: unexpected status %d", resp.StatusCode)
	}

	var payload SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode openlibrary response: %w", err)
	}

	return &payload, nil
}

// Normalize converts raw search docs into catalog refs. Cover resolution
// tries cover_i, then the first ISBN, then the cover edition OLID.
func Normalize(docs []Doc) []model.CatalogRef {
	refs := make([]model.CatalogRef, 0, len(docs))
	for _, d := range docs {
		ref := model.CatalogRef{
			Title:            d.Title,
			Authors:          d.AuthorName,
			FirstPublishYear: d.FirstPublishYear,
		}

		if len(d.ISBN) > 0 {
			isbn := d.ISBN[0]
			ref.ISBN = &isbn
		}
		if d.Key != "" {
			key := d.Key
			ref.OpenLibraryKey = &key
		}
		if cover := coverURL(d); cover != "" {
			ref.CoverURL = &cover
		}

		refs = append(refs, ref)
	}
	return refs
}

func coverURL(d Doc) string {
	switch {
	case d.CoverID != nil:
		return fmt.Sprintf("%s/b/id/%d-M.jpg", coversBaseURL, *d.CoverID)
	case len(d.ISBN) > 0:
		return fmt.Sprintf("%s/b/isbn/%s-M.jpg", coversBaseURL, d.ISBN[0])
	case d.CoverEditionKey != "":
		return fmt.Sprintf("%s/b/olid/%s-M.jpg", coversBaseURL, d.CoverEditionKey)
	}
	return ""
}
