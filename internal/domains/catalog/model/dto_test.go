package model

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSearchBooksRequestDefaults(t *testing.T) {
	values := url.Values{}
	values.Set("search", "dune")

	req, err := ParseSearchBooksRequest(values)
	require.NoError(t, err)

	assert.Equal(t, "dune", req.Search)
	assert.Equal(t, DefaultLimit, req.Limit)
	assert.Equal(t, 1, req.Page)
	assert.Nil(t, req.MinRating)
	assert.Nil(t, req.MaxRating)
	assert.Nil(t, req.PubDateStart)
	assert.Nil(t, req.PubDateEnd)
}

func TestParseSearchBooksRequestRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
	}{
		{"missing search", url.Values{}},
		{"non-integer limit", url.Values{"search": {"dune"}, "limit": {"many"}}},
		{"limit too large", url.Values{"search": {"dune"}, "limit": {"500"}}},
		{"page below one", url.Values{"search": {"dune"}, "page": {"0"}}},
		{"rating out of range", url.Values{"search": {"dune"}, "minRating": {"6"}}},
		{"bad date bound", url.Values{"search": {"dune"}, "pubDateStart": {"not-a-date"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSearchBooksRequest(tt.values)
			var catErr *CatalogError
			require.ErrorAs(t, err, &catErr)
			assert.Equal(t, ErrCodeValidation, catErr.Code)
		})
	}
}

// Encoding a filter state and parsing it back must reproduce it exactly,
// which is what makes searches bookmarkable.
func TestSearchBooksRequestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		req  SearchBooksRequest
	}{
		{
			"full filter state",
			SearchBooksRequest{
				Search:       "dune",
				Limit:        5,
				Page:         3,
				MinRating:    intPtr(3),
				MaxRating:    intPtr(5),
				PubDateStart: strPtr("1960-01-01"),
				PubDateEnd:   strPtr("1990"),
			},
		},
		{
			"optional filters absent",
			SearchBooksRequest{Search: "dune", Limit: DefaultLimit, Page: 1},
		},
		{
			"partial filters",
			SearchBooksRequest{Search: "le guin", Limit: 20, Page: 2, MinRating: intPtr(3), PubDateStart: strPtr("1960-01-01")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseSearchBooksRequest(tt.req.QueryValues())
			require.NoError(t, err)
			assert.Equal(t, tt.req, parsed)
		})
	}
}

func TestQueryValuesOmitsAbsentFilters(t *testing.T) {
	req := SearchBooksRequest{Search: "dune", Limit: 10, Page: 1}
	values := req.QueryValues()

	for _, key := range []string{"minRating", "maxRating", "pubDateStart", "pubDateEnd"} {
		_, present := values[key]
		assert.False(t, present, "absent filter %q must be omitted, not sent empty", key)
	}
}
