package model

import "time"

const (
	MessageNew     = "new"
	MessageRead    = "read"
	MessageReplied = "replied"

	DefaultContactSource = "contact_form"
)

type ContactMessage struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name      string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Email     string    `json:"email" bson:"email" validate:"required,email"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,e164"`
	Subject   string    `json:"subject,omitempty" bson:"subject,omitempty" validate:"omitempty,max=200"`
	Message   string    `json:"message" bson:"message" validate:"required,min=10,max=5000"`
	Source    string    `json:"source" bson:"source" validate:"required,max=50"`
	Status    string    `json:"status" bson:"status" validate:"required,oneof=new read replied"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at" validate:"omitempty"`
}

type MessageStatusUpdate struct {
	Status string `json:"status" validate:"required,oneof=new read replied"`
}
