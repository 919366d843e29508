package model

import (
	"strconv"
	"strings"
)

// ParseYear extracts a year from a "YYYY" or "YYYY-MM-DD" bound. The literal
// strings "undefined" and "null" arrive from sloppy clients and count as
// absent.
func ParseYear(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	lower := strings.ToLower(s)
	if lower == "undefined" || lower == "null" {
		return 0, false
	}

	if len(s) >= 4 {
		if year, err := strconv.Atoi(s[:4]); err == nil {
			if len(s) == 4 || s[4] == '-' {
				return year, true
			}
		}
	}

	return 0, false
}

// FilterBooks applies the publish-year range and rating bounds to enriched
// search results. A book with no publish year fails any year bound; a book
// with no local rating fails any rating bound.
func FilterBooks(results []BookResult, req SearchBooksRequest) []BookResult {
	var startYear, endYear *int
	if req.PubDateStart != nil {
		if y, ok := ParseYear(*req.PubDateStart); ok {
			startYear = &y
		}
	}
	if req.PubDateEnd != nil {
		if y, ok := ParseYear(*req.PubDateEnd); ok {
			endYear = &y
		}
	}

	keep := func(b BookResult) bool {
		year := b.FirstPublishYear
		if startYear != nil && (year == nil || *year < *startYear) {
			return false
		}
		if endYear != nil && (year == nil || *year > *endYear) {
			return false
		}

		avg := b.Rating.Average
		if req.MinRating != nil && (avg == nil || *avg < float64(*req.MinRating)) {
			return false
		}
		if req.MaxRating != nil && (avg == nil || *avg > float64(*req.MaxRating)) {
			return false
		}

		return true
	}

	filtered := make([]BookResult, 0, len(results))
	for _, b := range results {
		if keep(b) {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// Paginate slices a full result set into the requested page. The slice covers
// 1-indexed overall positions ((page-1)*size, page*size]; pages past the end
// come back empty; navigation controls are expected to clamp, not this
// function.
func Paginate[T any](items []T, page, size int) (pageSlice []T, pageTotal int) {
	if size <= 0 {
		return nil, 0
	}

	pageTotal = (len(items) + size - 1) / size

	if page < 1 || page > pageTotal {
		return []T{}, pageTotal
	}

	start := (page - 1) * size
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], pageTotal
}
