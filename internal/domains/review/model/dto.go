package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	catalogModel "litshelf-backend/internal/domains/catalog/model"
)

// SubmitReviewRequest creates a review for a catalog hit, registering the
// book first when it has no stable id yet. The rating is validated before
// anything is written.
type SubmitReviewRequest struct {
	Book   catalogModel.CatalogRef `json:"book"`
	Rating int                     `json:"rating"`
	Text   *string                 `json:"text,omitempty"`
}

func (r SubmitReviewRequest) Validate() error {
	if !r.Book.Valid() {
		return NewValidationError("book title is required")
	}
	if err := validateRating(r.Rating); err != nil {
		return err
	}
	return validateText(r.Text)
}

// EditReviewRequest overwrites an existing review's rating and text.
type EditReviewRequest struct {
	Rating int     `json:"rating"`
	Text   *string `json:"text,omitempty"`
}

func (r EditReviewRequest) Validate() error {
	if err := validateRating(r.Rating); err != nil {
		return err
	}
	return validateText(r.Text)
}

func validateRating(rating int) error {
	err := validation.Validate(rating,
		validation.Required.Error("rating is required"),
		validation.Min(MinRating).Error("rating must be between 1 and 5"),
		validation.Max(MaxRating).Error("rating must be between 1 and 5"),
	)
	if err != nil {
		return NewValidationError(err.Error())
	}
	return nil
}

func validateText(text *string) error {
	if text == nil {
		return nil
	}
	if len(*text) > MaxTextLength {
		return NewValidationError("review text is too long")
	}
	return nil
}
