package model

import (
	"net/url"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	DefaultLimit = 10
	MaxLimit     = 50
	// BrowsePageSize is the fixed page size of the browse view.
	BrowsePageSize = 5
)

// SearchBooksRequest is the full filter state of a catalog search. It
// round-trips through URL query parameters so a search is bookmarkable:
// ParseSearchBooksRequest(r.QueryValues()) must reproduce r exactly.
// Optional filters are pointers; absent means "omit the key", not null.
type SearchBooksRequest struct {
	Search string `json:"search"`
	Limit  int    `json:"limit"`
	Page   int    `json:"page"`

	MinRating    *int    `json:"minRating,omitempty"`
	MaxRating    *int    `json:"maxRating,omitempty"`
	PubDateStart *string `json:"pubDateStart,omitempty"`
	PubDateEnd   *string `json:"pubDateEnd,omitempty"`
}

// ParseSearchBooksRequest decodes the filter state from URL query values.
// Missing limit/page fall back to defaults; missing optional filters stay nil.
func ParseSearchBooksRequest(values url.Values) (SearchBooksRequest, error) {
	req := SearchBooksRequest{
		Search: values.Get("search"),
		Limit:  DefaultLimit,
		Page:   1,
	}

	if v := values.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return req, NewValidationError("limit must be an integer")
		}
		req.Limit = limit
	}
	if v := values.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return req, NewValidationError("page must be an integer")
		}
		req.Page = page
	}

	for key, dst := range map[string]**int{"minRating": &req.MinRating, "maxRating": &req.MaxRating} {
		if v := values.Get(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return req, NewValidationError(key + " must be an integer")
			}
			*dst = &n
		}
	}

	if v := values.Get("pubDateStart"); v != "" {
		req.PubDateStart = &v
	}
	if v := values.Get("pubDateEnd"); v != "" {
		req.PubDateEnd = &v
	}

	return req, req.Validate()
}

// QueryValues encodes the filter state back into URL query values,
// omitting absent optional filters entirely.
func (r SearchBooksRequest) QueryValues() url.Values {
	values := url.Values{}
	values.Set("search", r.Search)
	values.Set("limit", strconv.Itoa(r.Limit))
	values.Set("page", strconv.Itoa(r.Page))

	if r.MinRating != nil {
		values.Set("minRating", strconv.Itoa(*r.MinRating))
	}
	if r.MaxRating != nil {
		values.Set("maxRating", strconv.Itoa(*r.MaxRating))
	}
	if r.PubDateStart != nil {
		values.Set("pubDateStart", *r.PubDateStart)
	}
	if r.PubDateEnd != nil {
		values.Set("pubDateEnd", *r.PubDateEnd)
	}

	return values
}

func (r SearchBooksRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Search, validation.Required.Error("search is required")),
		validation.Field(&r.Limit, validation.Min(1), validation.Max(MaxLimit)),
		validation.Field(&r.Page, validation.Min(1)),
		validation.Field(&r.MinRating, validation.Min(1), validation.Max(5)),
		validation.Field(&r.MaxRating, validation.Min(1), validation.Max(5)),
		validation.Field(&r.PubDateStart, validation.By(validYearBound)),
		validation.Field(&r.PubDateEnd, validation.By(validYearBound)),
	)
	if err != nil {
		return NewValidationError(err.Error())
	}
	return nil
}

func validYearBound(value interface{}) error {
	s, _ := value.(*string)
	if s == nil {
		return nil
	}
	if _, ok := ParseYear(*s); !ok {
		return NewValidationError("date bound must be YYYY or YYYY-MM-DD")
	}
	return nil
}

// SearchBooksResponse is the paginated, filtered search result.
type SearchBooksResponse struct {
	Total   int          `json:"total"`
	Page    int          `json:"page"`
	Limit   int          `json:"limit"`
	Pages   int          `json:"pages"`
	Results []BookResult `json:"results"`
}
