package model

import (
	"errors"
	"fmt"
)

const (
	ErrCodeValidation      = "PRO001"
	ErrCodeProfileNotFound = "PRO002"
	ErrCodeDuplicateFollow = "PRO003"
	ErrCodeSelfFollow      = "PRO004"
	ErrCodeNotFollowing    = "PRO005"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrDuplicateFollow = errors.New("already following this user")
	ErrNotFollowing    = errors.New("not following this user")
)

// ProfileError is the coded error surfaced by the profile domain.
type ProfileError struct {
	Code    string
	Message string
	Err     error
}

func (e *ProfileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProfileError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *ProfileError {
	return &ProfileError{Code: ErrCodeValidation, Message: message}
}

func NewProfileNotFoundError() *ProfileError {
	return &ProfileError{
		Code:    ErrCodeProfileNotFound,
		Message: "Profile not found",
		Err:     ErrProfileNotFound,
	}
}

func NewDuplicateFollowError() *ProfileError {
	return &ProfileError{
		Code:    ErrCodeDuplicateFollow,
		Message: "Already following this user",
		Err:     ErrDuplicateFollow,
	}
}

func NewSelfFollowError() *ProfileError {
	return &ProfileError{
		Code:    ErrCodeSelfFollow,
		Message: "You cannot follow yourself",
	}
}

func NewNotFollowingError() *ProfileError {
	return &ProfileError{
		Code:    ErrCodeNotFollowing,
		Message: "Not following this user",
		Err:     ErrNotFollowing,
	}
}
