package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// UpdateProfileRequest overwrites the editable parts of a profile. Username
// is fixed at signup and not editable here.
type UpdateProfileRequest struct {
	Bio            *string  `json:"bio,omitempty"`
	FavoriteGenres []string `json:"favorite_genres"`
	FavoriteBook   *string  `json:"favorite_book,omitempty"`
	AvatarChoice   int      `json:"avatar_choice"`
}

func (r UpdateProfileRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.AvatarChoice,
			validation.Min(MinAvatarChoice).Error("unknown avatar"),
			validation.Max(MaxAvatarChoice).Error("unknown avatar"),
		),
	)
	if err != nil {
		return NewValidationError(err.Error())
	}
	if r.Bio != nil && len(*r.Bio) > MaxBioLength {
		return NewValidationError("bio is too long")
	}
	return nil
}
