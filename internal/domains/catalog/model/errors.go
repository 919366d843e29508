package model

import (
	"errors"
	"fmt"
)

const (
	ErrCodeValidation   = "CAT001"
	ErrCodeBookNotFound = "CAT002"
	ErrCodeUpstream     = "CAT003"
)

var (
	ErrBookNotFound = errors.New("book not found")
	ErrUpstream     = errors.New("catalog service unavailable")
)

// CatalogError is the coded error surfaced by the catalog domain.
type CatalogError struct {
	Code    string
	Message string
	Err     error
}

func (e *CatalogError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *CatalogError {
	return &CatalogError{
		Code:    ErrCodeValidation,
		Message: message,
	}
}

func NewBookNotFoundError() *CatalogError {
	return &CatalogError{
		Code:    ErrCodeBookNotFound,
		Message: "Book not found",
		Err:     ErrBookNotFound,
	}
}

func NewUpstreamError(err error) *CatalogError {
	return &CatalogError{
		Code:    ErrCodeUpstream,
		Message: "Catalog search is temporarily unavailable",
		Err:     errors.Join(ErrUpstream, err),
	}
}
