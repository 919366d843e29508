package model

import (
	"errors"
	"fmt"
)

const (
	ErrCodeValidation = "RDL001"
	ErrCodeNotTracked = "RDL002"
)

var ErrNotTracked = errors.New("book is not on the reading list")

// ReadingListError is the coded error surfaced by the reading-list domain.
type ReadingListError struct {
	Code    string
	Message string
	Err     error
}

func (e *ReadingListError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ReadingListError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *ReadingListError {
	return &ReadingListError{Code: ErrCodeValidation, Message: message}
}

func NewNotTrackedError() *ReadingListError {
	return &ReadingListError{
		Code:    ErrCodeNotTracked,
		Message: "Book is not on the reading list",
		Err:     ErrNotTracked,
	}
}
