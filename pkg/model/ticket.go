package model

import "time"

const (
	TicketReserved  = "reserved"
	TicketCancelled = "cancelled"
)

type Ticket struct {
	ID           string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	ExhibitionID string    `json:"exhibitionId" bson:"exhibition_id" validate:"required,mongodb"`
	Name         string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Email        string    `json:"email" bson:"email" validate:"required,email"`
	Phone        string    `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,e164"`
	Quantity     int       `json:"quantity" bson:"quantity" validate:"required,min=1"`
	UnitPrice    float64   `json:"unitPrice" bson:"unit_price" validate:"gte=0"`
	TotalPrice   float64   `json:"totalPrice" bson:"total_price" validate:"gte=0"`
	Status       string    `json:"status" bson:"status" validate:"required,oneof=reserved cancelled"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at" validate:"omitempty"`
}

// TicketRequest is what a visitor submits to reserve tickets.
type TicketRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,e164"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}
