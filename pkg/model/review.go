package model

import "time"

// Review references its room by title, not by id. CreatedAt is set
// server-side at insert time and is the recency sort key for listing.
type Review struct {
	ID            string    `json:"_id,omitempty" bson:"_id,omitempty"`
	RoomTitle     string    `json:"room_title" bson:"room_title" validate:"required,min=1,max=200"`
	Rating        float64   `json:"rating" bson:"rating" validate:"required,min=1,max=5"`
	Comment       string    `json:"comment" bson:"comment" validate:"max=2000"`
	ReviewerName  string    `json:"reviewer_name,omitempty" bson:"reviewer_name,omitempty" validate:"omitempty,max=120"`
	ReviewerEmail string    `json:"reviewer_email,omitempty" bson:"reviewer_email,omitempty" validate:"omitempty,email"`
	CreatedAt     time.Time `json:"created_at,omitempty" bson:"created_at"`
}
