package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	contactserrors "gallery/internal/contacts/errors"
	"gallery/internal/contacts/repository"
	"gallery/internal/contacts/validator"
	"gallery/pkg/config"
	apperrors "gallery/pkg/errors"
	"gallery/pkg/events"
	"gallery/pkg/model"
	"gallery/pkg/sanitizer"
	"gallery/pkg/validation"
)

type ContactService interface {
	Submit(ctx context.Context, m *model.ContactMessage) error
	GetAll(ctx context.Context, status string, limit int, offset int64) ([]*model.ContactMessage, int64, error)
	UpdateStatus(ctx context.Context, id string, update *model.MessageStatusUpdate) error
}

type contactService struct {
	repo      repository.ContactRepository
	validator *validator.ContactValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewContactService(
	repo repository.ContactRepository,
	validator *validator.ContactValidator,
	publisher events.Publisher,
	cfg *config.Config,
) ContactService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &contactService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Submit stores a visitor message. New messages always start unread,
// whatever status the client sent.
func (s *contactService) Submit(ctx context.Context, m *model.ContactMessage) error {
	s.sanitize(m)
	m.Status = model.MessageNew

	if err := s.validator.Validate(m); err != nil {
		s.cfg.Log.Warn("Contact message validation failed",
			"email", m.Email,
			"source", m.Source,
			"error", err,
		)
		return validationError(err)
	}

	if err := s.repo.Create(ctx, m); err != nil {
		s.cfg.Log.Error("Failed to store contact message",
			"email", m.Email,
			"error", err,
		)
		return apperrors.Internal("Failed to send message", err)
	}

	s.cfg.Log.Info("Contact message received",
		"id", m.ID,
		"source", m.Source,
	)
	events.PublishQuietly(ctx, s.publisher, s.cfg.Log.Logger, events.ContactReceived, m.ID, m)
	return nil
}

func (s *contactService) GetAll(ctx context.Context, status string, limit int, offset int64) ([]*model.ContactMessage, int64, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if status != "" {
		if err := s.validator.ValidateStatus(&model.MessageStatusUpdate{Status: status}); err != nil {
			return nil, 0, apperrors.InvalidInput("invalid status filter: " + status)
		}
	}
	limit = config.NormalizePaginationLimit(limit)
	offset = config.NormalizeOffset(offset)

	var count int64
	var messages []*model.ContactMessage
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		var err error
		count, err = s.repo.Count(ctx, status)
		if err != nil {
			s.cfg.Log.Error("Failed to count contact messages", "error", err)
			errCount = apperrors.Internal("Failed to count messages", err)
		}
	}()

	go func() {
		defer wg.Done()
		var err error
		messages, err = s.repo.FindAll(ctx, status, limit, offset)
		if err != nil {
			s.cfg.Log.Error("Failed to get contact messages", "error", err)
			errFind = apperrors.Internal("Failed to retrieve messages", err)
		}
	}()
	wg.Wait()

	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}
	return messages, count, nil
}

func (s *contactService) UpdateStatus(ctx context.Context, id string, update *model.MessageStatusUpdate) error {
	if id == "" {
		return apperrors.InvalidInput("Message ID cannot be empty")
	}

	update.Status = strings.ToLower(strings.TrimSpace(update.Status))
	if err := s.validator.ValidateStatus(update); err != nil {
		return validationError(err)
	}

	if err := s.repo.UpdateStatus(ctx, id, update.Status); err != nil {
		switch {
		case errors.Is(err, contactserrors.ErrNotFound):
			return apperrors.NotFoundWithID("Message", id)
		case errors.Is(err, contactserrors.ErrInvalidID):
			return apperrors.InvalidInput("Invalid message ID format")
		}
		s.cfg.Log.Error("Failed to update contact message", "id", id, "error", err)
		return apperrors.Internal("Failed to update message", err)
	}

	s.cfg.Log.Info("Contact message status updated", "id", id, "status", update.Status)
	return nil
}

func (s *contactService) sanitize(m *model.ContactMessage) {
	m.Name = sanitizer.NormalizeName(m.Name)
	m.Email = sanitizer.SanitizeEmail(m.Email)
	m.Phone = sanitizer.NormalizePhone(m.Phone)
	m.Subject = sanitizer.TrimAndNormalize(m.Subject)
	m.Message = sanitizer.SanitizeMultiline(m.Message)
	m.Source = sanitizer.SanitizeSource(m.Source)
	if m.Source == "" {
		m.Source = model.DefaultContactSource
	}
}

func validationError(err error) error {
	var verrs validation.ValidationErrors
	if errors.As(err, &verrs) {
		return apperrors.Validation("Message validation failed", verrs.Details())
	}
	return apperrors.Validation("Message validation failed", map[string]any{"error": err.Error()})
}
