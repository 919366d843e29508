package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYear(t *testing.T) {
	tests := []struct {
		input string
		year  int
		ok    bool
	}{
		{"1960", 1960, true},
		{"1960-01-01", 1960, true},
		{"2021-06-15", 2021, true},
		{"", 0, false},
		{"undefined", 0, false},
		{"null", 0, false},
		{"  1984  ", 1984, true},
		{"19x4", 0, false},
		{"196", 0, false},
		{"1960/01/01", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			year, ok := ParseYear(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.year, year)
		})
	}
}

func yearBook(title string, year int) BookResult {
	return BookResult{CatalogRef: CatalogRef{Title: title, FirstPublishYear: &year}}
}

func ratedBook(title string, avg float64, count int) BookResult {
	return BookResult{
		CatalogRef: CatalogRef{Title: title},
		Rating:     RatingAggregate{Average: &avg, Count: count},
	}
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestFilterBooksYearRange(t *testing.T) {
	books := []BookResult{
		yearBook("old", 1950),
		yearBook("mid", 1965),
		yearBook("new", 1990),
		{CatalogRef: CatalogRef{Title: "undated"}},
	}

	filtered := FilterBooks(books, SearchBooksRequest{
		PubDateStart: strPtr("1960-01-01"),
		PubDateEnd:   strPtr("1970"),
	})

	require.Len(t, filtered, 1)
	assert.Equal(t, "mid", filtered[0].Title)
}

func TestFilterBooksRatingBounds(t *testing.T) {
	books := []BookResult{
		ratedBook("low", 1.5, 4),
		ratedBook("mid", 3.2, 10),
		ratedBook("high", 4.8, 2),
		{CatalogRef: CatalogRef{Title: "unrated"}},
	}

	filtered := FilterBooks(books, SearchBooksRequest{MinRating: intPtr(3)})
	require.Len(t, filtered, 2)
	assert.Equal(t, "mid", filtered[0].Title)
	assert.Equal(t, "high", filtered[1].Title)

	filtered = FilterBooks(books, SearchBooksRequest{MinRating: intPtr(3), MaxRating: intPtr(4)})
	require.Len(t, filtered, 1)
	assert.Equal(t, "mid", filtered[0].Title)
}

func TestFilterBooksNoFilters(t *testing.T) {
	books := []BookResult{yearBook("a", 1950), {CatalogRef: CatalogRef{Title: "b"}}}
	assert.Equal(t, books, FilterBooks(books, SearchBooksRequest{}))
}

func TestPaginate(t *testing.T) {
	books := make([]BookResult, 23)
	for i := range books {
		books[i] = BookResult{CatalogRef: CatalogRef{Title: fmt.Sprintf("b%d", i+1)}}
	}

	slice, total := Paginate(books, 3, 5)
	assert.Equal(t, 5, total)
	require.Len(t, slice, 5)
	assert.Equal(t, "b11", slice[0].Title)
	assert.Equal(t, "b15", slice[4].Title)
}

func TestPaginateLastPartialPage(t *testing.T) {
	books := make([]BookResult, 23)
	slice, total := Paginate(books, 5, 5)
	assert.Equal(t, 5, total)
	assert.Len(t, slice, 3)
}

func TestPaginateOutOfRange(t *testing.T) {
	books := make([]BookResult, 7)

	slice, total := Paginate(books, 0, 5)
	assert.Equal(t, 2, total)
	assert.Empty(t, slice)

	slice, total = Paginate(books, 3, 5)
	assert.Equal(t, 2, total)
	assert.Empty(t, slice)
}

func TestPaginateEmpty(t *testing.T) {
	slice, total := Paginate([]BookResult{}, 1, 5)
	assert.Zero(t, total)
	assert.Empty(t, slice)
}
