package model

import "time"

const (
	ExhibitionUpcoming = "upcoming"
	ExhibitionOngoing  = "ongoing"
	ExhibitionPast     = "past"
)

// DateLayout is the calendar-date format exhibitions are exchanged in.
const DateLayout = "2006-01-02"

type Exhibition struct {
	ID             string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Title          string    `json:"title" bson:"title" validate:"required,min=3,max=200"`
	Description    string    `json:"description" bson:"description" validate:"required,min=10,max=5000"`
	Location       string    `json:"location" bson:"location" validate:"required,min=3,max=200"`
	StartDate      string    `json:"startDate" bson:"start_date" validate:"required,calendar_date"`
	EndDate        string    `json:"endDate" bson:"end_date" validate:"required,calendar_date,date_not_before=StartDate"`
	TicketPrice    float64   `json:"ticketPrice" bson:"ticket_price" validate:"gte=0"`
	ImageURL       string    `json:"imageUrl" bson:"image_url" validate:"required,image_ref"`
	TotalSlots     int       `json:"totalSlots" bson:"total_slots" validate:"required,min=1,max=100000"`
	AvailableSlots int       `json:"availableSlots" bson:"available_slots" validate:"min=0,ltefield=TotalSlots"`
	Status         string    `json:"status" bson:"status" validate:"required,oneof=upcoming ongoing past"`
	CreatedAt      time.Time `json:"createdAt" bson:"created_at" validate:"omitempty"`
}

type ExhibitionUpdate struct {
	Title          string   `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description    string   `json:"description,omitempty" validate:"omitempty,min=10,max=5000"`
	Location       string   `json:"location,omitempty" validate:"omitempty,min=3,max=200"`
	StartDate      string   `json:"startDate,omitempty" validate:"omitempty,calendar_date"`
	EndDate        string   `json:"endDate,omitempty" validate:"omitempty,calendar_date"`
	TicketPrice    *float64 `json:"ticketPrice,omitempty" validate:"omitempty,gte=0"`
	ImageURL       string   `json:"imageUrl,omitempty" validate:"omitempty,image_ref"`
	TotalSlots     *int     `json:"totalSlots,omitempty" validate:"omitempty,min=1,max=100000"`
	AvailableSlots *int     `json:"availableSlots,omitempty" validate:"omitempty,min=0"`
	Status         string   `json:"status,omitempty" validate:"omitempty,oneof=upcoming ongoing past"`
}
