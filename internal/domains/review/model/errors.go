package model

import (
	"errors"
	"fmt"
)

const (
	ErrCodeValidation      = "REV001"
	ErrCodeReviewNotFound  = "REV002"
	ErrCodeDuplicateReview = "REV003"
	ErrCodeNotOwner        = "REV004"
)

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrDuplicateReview = errors.New("user already reviewed this book")
	ErrNotOwner        = errors.New("review belongs to another user")
)

// ReviewError is the coded error surfaced by the review domain.
type ReviewError struct {
	Code    string
	Message string
	Err     error
}

func (e *ReviewError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ReviewError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *ReviewError {
	return &ReviewError{Code: ErrCodeValidation, Message: message}
}

func NewReviewNotFoundError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeReviewNotFound,
		Message: "Review not found",
		Err:     ErrReviewNotFound,
	}
}

func NewDuplicateReviewError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeDuplicateReview,
		Message: "You already reviewed this book",
		Err:     ErrDuplicateReview,
	}
}

func NewNotOwnerError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeNotOwner,
		Message: "Review belongs to another user",
		Err:     ErrNotOwner,
	}
}
