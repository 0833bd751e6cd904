package model

import (
	"encoding/json"
	"time"
)

// Review is a customer review. Besides the typed fields a review keeps
// whatever else the client submitted.
type Review struct {
	Base        `bson:",inline"`
	Name        string    `bson:"name,omitempty" json:"name,omitempty"`
	Email       string    `bson:"email,omitempty" json:"email,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Rating      float64   `bson:"rating" json:"rating"`
	Image       string    `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`

	Extra map[string]interface{} `bson:",inline" json:"-"`
}

// reviewKnown are the stored keys of the typed fields. The inline map must
// never repeat one of them.
var reviewKnown = []string{"_id", "name", "email", "description", "rating", "image", "createdAt"}

// MarshalJSON flattens Extra next to the typed fields.
func (r Review) MarshalJSON() ([]byte, error) {
	type plain Review
	return withExtra(plain(r), r.Extra)
}

type CreateReviewRequest struct {
	Name        string  `json:"name" validate:"max=120"`
	Email       string  `json:"email" validate:"omitempty,email"`
	Description string  `json:"description" validate:"max=2000"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
	Image       string  `json:"image" validate:"omitempty,url"`

	// Extra holds the remaining top-level body fields, stored as sent.
	Extra map[string]interface{} `json:"-"`
}

func (r *CreateReviewRequest) UnmarshalJSON(data []byte) error {
	type plain CreateReviewRequest
	if err := json.Unmarshal(data, (*plain)(r)); err != nil {
		return err
	}

	extra, err := extraFields(data, reviewKnown...)
	if err != nil {
		return err
	}
	r.Extra = extra
	return nil
}

func (r *CreateReviewRequest) Validate() error {
	return validate(r)
}

// Document builds the stored review. now is injected so callers control the clock.
func (r *CreateReviewRequest) Document(now time.Time) *Review {
	return &Review{
		Name:        r.Name,
		Email:       r.Email,
		Description: r.Description,
		Rating:      r.Rating,
		Image:       r.Image,
		CreatedAt:   now.UTC(),
		Extra:       r.Extra,
	}
}
