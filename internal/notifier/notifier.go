// Package notifier turns gallery events into staff notifications. Today a
// notification is a structured log line that the on-call channel tails.
package notifier

import (
	"context"

	ticketsservice "gallery/internal/tickets/service"
	"gallery/pkg/events"
	"gallery/pkg/kafka"
	"gallery/pkg/logger"
	"gallery/pkg/model"
)

type Notifier struct {
	log *logger.Logger
}

func New(log *logger.Logger) *Notifier {
	return &Notifier{log: log}
}

// Handle is a kafka.MessageHandler. Payloads that cannot be decoded are
// permanent failures and end up in the DLQ.
func (n *Notifier) Handle(ctx context.Context, msg kafka.Message) error {
	switch msg.GetEventType() {
	case events.ContactReceived:
		var m model.ContactMessage
		if err := msg.DecodeValue(&m); err != nil {
			return kafka.NewPermanentError("invalid contact payload", err)
		}
		n.log.InfoContext(ctx, "New contact message",
			"id", m.ID,
			"name", m.Name,
			"email", m.Email,
			"subject", m.Subject,
			"source", m.Source,
		)

	case events.TicketReserved:
		var r ticketsservice.Reservation
		if err := msg.DecodeValue(&r); err != nil || r.Ticket == nil {
			return kafka.NewPermanentError("invalid reservation payload", err)
		}
		n.log.InfoContext(ctx, "Tickets reserved",
			"exhibition", r.ExhibitionTitle,
			"exhibition_id", r.Ticket.ExhibitionID,
			"name", r.Ticket.Name,
			"email", r.Ticket.Email,
			"quantity", r.Ticket.Quantity,
			"total_price", r.Ticket.TotalPrice,
		)

	case events.UserRegistered:
		var u model.User
		if err := msg.DecodeValue(&u); err != nil {
			return kafka.NewPermanentError("invalid user payload", err)
		}
		n.log.InfoContext(ctx, "New visitor account", "id", u.ID, "email", u.Email)

	default:
		n.log.DebugContext(ctx, "Ignoring event", "event_type", msg.GetEventType(), "key", msg.Key)
	}
	return nil
}
