package model

import "time"

const (
	ArtworkAvailable = "available"
	ArtworkSold      = "sold"
)

type Artwork struct {
	ID          string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Title       string    `json:"title" bson:"title" validate:"required,min=3,max=200"`
	Artist      string    `json:"artist" bson:"artist" validate:"required,min=3,max=100"`
	Description string    `json:"description" bson:"description" validate:"required,min=10,max=5000"`
	Price       float64   `json:"price" bson:"price" validate:"gte=0"`
	ImageURL    string    `json:"imageUrl" bson:"image_url" validate:"required,image_ref"`
	Dimensions  string    `json:"dimensions,omitempty" bson:"dimensions,omitempty" validate:"omitempty,max=100"`
	Medium      string    `json:"medium,omitempty" bson:"medium,omitempty" validate:"omitempty,max=100"`
	Year        int       `json:"year,omitempty" bson:"year,omitempty" validate:"omitempty,min=1000,not_future_year"`
	Status      string    `json:"status" bson:"status" validate:"required,oneof=available sold"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at" validate:"omitempty"`
}

// ArtworkUpdate carries a partial edit; nil or empty fields are left as stored.
type ArtworkUpdate struct {
	Title       string   `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Artist      string   `json:"artist,omitempty" validate:"omitempty,min=3,max=100"`
	Description string   `json:"description,omitempty" validate:"omitempty,min=10,max=5000"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	ImageURL    string   `json:"imageUrl,omitempty" validate:"omitempty,image_ref"`
	Dimensions  *string  `json:"dimensions,omitempty" validate:"omitempty,max=100"`
	Medium      *string  `json:"medium,omitempty" validate:"omitempty,max=100"`
	Year        *int     `json:"year,omitempty" validate:"omitempty,min=1000,not_future_year"`
	Status      string   `json:"status,omitempty" validate:"omitempty,oneof=available sold"`
}
