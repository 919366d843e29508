package model

import (
	"errors"
	"fmt"
)

const (
	ErrCodeValidation         = "COL001"
	ErrCodeCollectionNotFound = "COL002"
	ErrCodeEntryNotFound      = "COL003"
	ErrCodeDuplicateName      = "COL004"
	ErrCodeDuplicateEntry     = "COL005"
	ErrCodeNotOwner           = "COL006"
)

var (
	ErrCollectionNotFound = errors.New("collection not found")
	ErrEntryNotFound      = errors.New("book is not in this collection")
	ErrDuplicateName      = errors.New("collection name already used")
	ErrDuplicateEntry     = errors.New("book is already in this collection")
	ErrNotOwner           = errors.New("collection belongs to another user")
)

// CollectionError is the coded error surfaced by the collection domain.
type CollectionError struct {
	Code    string
	Message string
	Err     error
}

func (e *CollectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CollectionError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *CollectionError {
	return &CollectionError{Code: ErrCodeValidation, Message: message}
}

func NewCollectionNotFoundError() *CollectionError {
	return &CollectionError{
		Code:    ErrCodeCollectionNotFound,
		Message: "Collection not found",
		Err:     ErrCollectionNotFound,
	}
}

func NewEntryNotFoundError() *CollectionError {
	return &CollectionError{
		Code:    ErrCodeEntryNotFound,
		Message: "Book is not in this collection",
		Err:     ErrEntryNotFound,
	}
}

func NewDuplicateNameError() *CollectionError {
	return &CollectionError{
		Code:    ErrCodeDuplicateName,
		Message: "You already have a collection with this name",
		Err:     ErrDuplicateName,
	}
}

func NewDuplicateEntryError() *CollectionError {
	return &CollectionError{
		Code:    ErrCodeDuplicateEntry,
		Message: "Book is already in this collection",
		Err:     ErrDuplicateEntry,
	}
}

func NewNotOwnerError() *CollectionError {
	return &CollectionError{
		Code:    ErrCodeNotOwner,
		Message: "Collection belongs to another user",
		Err:     ErrNotOwner,
	}
}
