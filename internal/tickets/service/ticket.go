package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	exhibitionsservice "gallery/internal/exhibitions/service"
	ticketserrors "gallery/internal/tickets/errors"
	"gallery/internal/tickets/repository"
	"gallery/internal/tickets/validator"
	"gallery/pkg/config"
	apperrors "gallery/pkg/errors"
	"gallery/pkg/events"
	"gallery/pkg/model"
	"gallery/pkg/sanitizer"
	"gallery/pkg/validation"
)

type TicketService interface {
	Reserve(ctx context.Context, exhibitionID string, req *model.TicketRequest) (*model.Ticket, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Ticket, int64, error)
}

// Reservation is the payload of a ticket.reserved event.
type Reservation struct {
	Ticket          *model.Ticket `json:"ticket"`
	ExhibitionTitle string        `json:"exhibitionTitle"`
}

type ticketService struct {
	repo      repository.TicketRepository
	validator *validator.TicketValidator
	publisher events.Publisher
	cfg       *config.Config
	now       func() time.Time
}

func NewTicketService(
	repo repository.TicketRepository,
	validator *validator.TicketValidator,
	publisher events.Publisher,
	cfg *config.Config,
) TicketService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &ticketService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Reserve takes the requested slots and records the ticket in one
// transaction, so a failed insert never leaves slots taken.
func (s *ticketService) Reserve(ctx context.Context, exhibitionID string, req *model.TicketRequest) (*model.Ticket, error) {
	if exhibitionID == "" {
		return nil, apperrors.InvalidInput("Exhibition ID cannot be empty")
	}

	s.sanitize(req)
	if err := s.validator.ValidateRequest(req); err != nil {
		s.cfg.Log.Warn("Ticket request validation failed",
			"exhibition_id", exhibitionID,
			"quantity", req.Quantity,
			"error", err,
		)
		var verrs validation.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, apperrors.Validation("Ticket request validation failed", verrs.Details())
		}
		return nil, apperrors.Validation("Ticket request validation failed", map[string]any{"error": err.Error()})
	}

	var ticket *model.Ticket
	var exhibitionTitle string
	err := s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		exhibition, err := s.repo.FindExhibition(sessCtx, exhibitionID)
		if err != nil {
			return err
		}
		// The stored status is only refreshed on writes, so the dates decide too.
		if exhibition.Status == model.ExhibitionPast ||
			exhibitionsservice.StatusFor(exhibition.StartDate, exhibition.EndDate, s.now()) == model.ExhibitionPast {
			return apperrors.Conflict("Exhibition has already ended")
		}

		if err := s.repo.TakeSlots(sessCtx, exhibitionID, req.Quantity); err != nil {
			if errors.Is(err, ticketserrors.ErrInsufficientSlots) {
				return apperrors.Conflict(fmt.Sprintf(
					"Only %d slot(s) left for this exhibition", exhibition.AvailableSlots,
				)).WithDetails(map[string]any{
					"available": exhibition.AvailableSlots,
					"requested": req.Quantity,
				})
			}
			return err
		}

		ticket = &model.Ticket{
			ExhibitionID: exhibitionID,
			Name:         req.Name,
			Email:        req.Email,
			Phone:        req.Phone,
			Quantity:     req.Quantity,
			UnitPrice:    exhibition.TicketPrice,
			TotalPrice:   float64(req.Quantity) * exhibition.TicketPrice,
			Status:       model.TicketReserved,
		}
		exhibitionTitle = exhibition.Title
		return s.repo.Create(sessCtx, ticket)
	})

	if err != nil {
		switch {
		case apperrors.IsAppError(err):
			return nil, err
		case errors.Is(err, ticketserrors.ErrExhibitionNotFound):
			return nil, apperrors.NotFoundWithID("Exhibition", exhibitionID)
		case errors.Is(err, ticketserrors.ErrInvalidID):
			return nil, apperrors.InvalidInput("Invalid exhibition ID format")
		}
		s.cfg.Log.Error("Failed to reserve tickets",
			"exhibition_id", exhibitionID,
			"quantity", req.Quantity,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to reserve tickets", err)
	}

	s.cfg.Log.Info("Tickets reserved successfully",
		"id", ticket.ID,
		"exhibition_id", exhibitionID,
		"quantity", ticket.Quantity,
		"total_price", ticket.TotalPrice,
	)
	events.PublishQuietly(ctx, s.publisher, s.cfg.Log.Logger, events.TicketReserved, exhibitionID,
		Reservation{Ticket: ticket, ExhibitionTitle: exhibitionTitle})

	return ticket, nil
}

func (s *ticketService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Ticket, int64, error) {
	limit = config.NormalizePaginationLimit(limit)
	offset = config.NormalizeOffset(offset)

	var count int64
	var tickets []*model.Ticket
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		var err error
		count, err = s.repo.Count(ctx)
		if err != nil {
			s.cfg.Log.Error("Failed to count tickets", "error", err)
			errCount = apperrors.Internal("Failed to count tickets", err)
		}
	}()

	go func() {
		defer wg.Done()
		var err error
		tickets, err = s.repo.FindAll(ctx, limit, offset)
		if err != nil {
			s.cfg.Log.Error("Failed to get all tickets", "error", err)
			errFind = apperrors.Internal("Failed to retrieve tickets", err)
		}
	}()
	wg.Wait()

	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}
	return tickets, count, nil
}

func (s *ticketService) sanitize(req *model.TicketRequest) {
	req.Name = sanitizer.NormalizeName(req.Name)
	req.Email = sanitizer.SanitizeEmail(req.Email)
	req.Phone = sanitizer.NormalizePhone(req.Phone)
}
