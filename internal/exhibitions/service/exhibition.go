package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	exhibitionserrors "gallery/internal/exhibitions/errors"
	"gallery/internal/exhibitions/repository"
	"gallery/internal/exhibitions/validator"
	"gallery/internal/uploads"
	"gallery/pkg/config"
	apperrors "gallery/pkg/errors"
	"gallery/pkg/events"
	"gallery/pkg/model"
	"gallery/pkg/sanitizer"
	"gallery/pkg/validation"
)

type ExhibitionService interface {
	Create(ctx context.Context, e *model.Exhibition) error
	GetByID(ctx context.Context, id string) (*model.Exhibition, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Exhibition, int64, error)
	Update(ctx context.Context, id string, updates *model.ExhibitionUpdate) (*model.Exhibition, error)
	Delete(ctx context.Context, id string) error
}

type ImageStore interface {
	Resolve(ctx context.Context, imageRef string) (string, error)
}

type exhibitionService struct {
	repo      repository.ExhibitionRepository
	validator *validator.ExhibitionValidator
	images    ImageStore
	publisher events.Publisher
	cfg       *config.Config
	now       func() time.Time
}

func NewExhibitionService(
	repo repository.ExhibitionRepository,
	validator *validator.ExhibitionValidator,
	images ImageStore,
	publisher events.Publisher,
	cfg *config.Config,
) ExhibitionService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &exhibitionService{
		repo:      repo,
		validator: validator,
		images:    images,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *exhibitionService) Create(ctx context.Context, e *model.Exhibition) error {
	s.sanitize(e)
	s.applyDefaults(e)

	if err := s.validator.Validate(e); err != nil {
		s.cfg.Log.Warn("Exhibition validation failed",
			"title", e.Title,
			"error", err,
		)
		return validationError(err)
	}

	ref, err := s.images.Resolve(ctx, e.ImageURL)
	if err != nil {
		s.cfg.Log.Warn("Exhibition image rejected", "title", e.Title, "error", err)
		return uploads.ToAppError(err)
	}
	e.ImageURL = ref

	if err := s.repo.Create(ctx, e); err != nil {
		s.cfg.Log.Error("Failed to create exhibition",
			"title", e.Title,
			"error", err,
		)
		return apperrors.Internal("Failed to create exhibition", err)
	}

	s.cfg.Log.Info("Exhibition created successfully",
		"id", e.ID,
		"title", e.Title,
		"start_date", e.StartDate,
		"total_slots", e.TotalSlots,
	)
	events.PublishQuietly(ctx, s.publisher, s.cfg.Log.Logger, events.ExhibitionCreated, e.ID, e)

	s.present(e)
	return nil
}

func (s *exhibitionService) GetByID(ctx context.Context, id string) (*model.Exhibition, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Exhibition ID cannot be empty")
	}

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError(err, id, "Failed to retrieve exhibition")
	}

	s.present(e)
	return e, nil
}

func (s *exhibitionService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Exhibition, int64, error) {
	limit = config.NormalizePaginationLimit(limit)
	offset = config.NormalizeOffset(offset)

	var count int64
	var exhibitions []*model.Exhibition
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		var err error
		count, err = s.repo.Count(ctx)
		if err != nil {
			s.cfg.Log.Error("Failed to count exhibitions", "error", err)
			errCount = apperrors.Internal("Failed to count exhibitions", err)
		}
	}()

	go func() {
		defer wg.Done()
		var err error
		exhibitions, err = s.repo.FindAll(ctx, limit, offset)
		if err != nil {
			s.cfg.Log.Error("Failed to get all exhibitions",
				"limit", limit,
				"offset", offset,
				"error", err,
			)
			errFind = apperrors.Internal("Failed to retrieve exhibitions", err)
		}
	}()
	wg.Wait()

	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	for _, e := range exhibitions {
		s.present(e)
	}
	return exhibitions, count, nil
}

func (s *exhibitionService) Update(ctx context.Context, id string, updates *model.ExhibitionUpdate) (*model.Exhibition, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Exhibition ID cannot be empty")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError(err, id, "Failed to check exhibition existence")
	}

	s.sanitizeUpdate(updates)
	if err := s.validator.ValidateUpdate(updates); err != nil {
		return nil, validationError(err)
	}

	merged := mergeExhibitionUpdates(existing, updates)
	if err := s.validator.Validate(merged); err != nil {
		s.cfg.Log.Warn("Exhibition validation failed",
			"id", id,
			"error", err,
		)
		return nil, validationError(err)
	}

	if updates.ImageURL != "" {
		ref, err := s.images.Resolve(ctx, merged.ImageURL)
		if err != nil {
			return nil, uploads.ToAppError(err)
		}
		merged.ImageURL = ref
	}

	slotsDelta := merged.AvailableSlots - existing.AvailableSlots
	if err := s.repo.Update(ctx, id, merged, slotsDelta); err != nil {
		return nil, s.mapRepoError(err, id, "Failed to update exhibition")
	}

	s.cfg.Log.Info("Exhibition updated successfully",
		"id", id,
		"title", merged.Title,
	)
	events.PublishQuietly(ctx, s.publisher, s.cfg.Log.Logger, events.ExhibitionUpdated, id, merged)

	s.present(merged)
	return merged, nil
}

func (s *exhibitionService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Exhibition ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapRepoError(err, id, "Failed to delete exhibition")
	}

	s.cfg.Log.Info("Exhibition deleted successfully", "id", id)
	events.PublishQuietly(ctx, s.publisher, s.cfg.Log.Logger, events.ExhibitionDeleted, id, map[string]string{"id": id})
	return nil
}

// applyDefaults opens every slot of a new exhibition and derives its status
// from the dates when none was given.
func (s *exhibitionService) applyDefaults(e *model.Exhibition) {
	if e.AvailableSlots == 0 {
		e.AvailableSlots = e.TotalSlots
	}
	if e.Status == "" {
		e.Status = StatusFor(e.StartDate, e.EndDate, s.now())
	}
}

// StatusFor places today relative to an exhibition's run. Unparseable dates
// count as upcoming; validation reports them.
func StatusFor(startDate, endDate string, now time.Time) string {
	today := now.UTC().Format(model.DateLayout)
	if _, err := time.Parse(model.DateLayout, startDate); err != nil {
		return model.ExhibitionUpcoming
	}
	switch {
	case today < startDate:
		return model.ExhibitionUpcoming
	case endDate != "" && today > endDate:
		return model.ExhibitionPast
	default:
		return model.ExhibitionOngoing
	}
}

func (s *exhibitionService) present(e *model.Exhibition) {
	if StatusFor(e.StartDate, e.EndDate, s.now()) == model.ExhibitionPast {
		e.Status = model.ExhibitionPast
	}
	if s.cfg.Images != nil {
		s.cfg.Images.NormalizeFields(&e.ImageURL)
	}
}

func (s *exhibitionService) mapRepoError(err error, id, internalMsg string) error {
	switch {
	case errors.Is(err, exhibitionserrors.ErrNotFound):
		return apperrors.NotFoundWithID("Exhibition", id)
	case errors.Is(err, exhibitionserrors.ErrInvalidID):
		return apperrors.InvalidInput("Invalid exhibition ID format")
	case errors.Is(err, exhibitionserrors.ErrSlotsChanged):
		return apperrors.Conflict("Tickets were reserved while editing; reload and retry")
	}
	s.cfg.Log.Error(internalMsg, "id", id, "error", err)
	return apperrors.Internal(internalMsg, err)
}

func (s *exhibitionService) sanitize(e *model.Exhibition) {
	e.Title = sanitizer.NormalizeTitle(e.Title)
	e.Description = sanitizer.SanitizeMultiline(e.Description)
	e.Location = sanitizer.TrimAndNormalize(e.Location)
	e.StartDate = strings.TrimSpace(e.StartDate)
	e.EndDate = strings.TrimSpace(e.EndDate)
	e.ImageURL = strings.TrimSpace(e.ImageURL)
	e.Status = strings.ToLower(strings.TrimSpace(e.Status))
}

func (s *exhibitionService) sanitizeUpdate(u *model.ExhibitionUpdate) {
	u.Title = sanitizer.NormalizeTitle(u.Title)
	u.Description = sanitizer.SanitizeMultiline(u.Description)
	u.Location = sanitizer.TrimAndNormalize(u.Location)
	u.StartDate = strings.TrimSpace(u.StartDate)
	u.EndDate = strings.TrimSpace(u.EndDate)
	u.ImageURL = strings.TrimSpace(u.ImageURL)
	u.Status = strings.ToLower(strings.TrimSpace(u.Status))
}

// mergeExhibitionUpdates applies a partial edit. Resizing an exhibition
// without naming availableSlots shifts the open slots by the same amount.
func mergeExhibitionUpdates(existing *model.Exhibition, u *model.ExhibitionUpdate) *model.Exhibition {
	merged := *existing
	if u.Title != "" {
		merged.Title = u.Title
	}
	if u.Description != "" {
		merged.Description = u.Description
	}
	if u.Location != "" {
		merged.Location = u.Location
	}
	if u.StartDate != "" {
		merged.StartDate = u.StartDate
	}
	if u.EndDate != "" {
		merged.EndDate = u.EndDate
	}
	if u.TicketPrice != nil {
		merged.TicketPrice = *u.TicketPrice
	}
	if u.ImageURL != "" {
		merged.ImageURL = u.ImageURL
	}
	if u.TotalSlots != nil {
		delta := *u.TotalSlots - existing.TotalSlots
		merged.TotalSlots = *u.TotalSlots
		if u.AvailableSlots == nil {
			merged.AvailableSlots = max(0, existing.AvailableSlots+delta)
		}
	}
	if u.AvailableSlots != nil {
		merged.AvailableSlots = *u.AvailableSlots
	}
	if u.Status != "" {
		merged.Status = u.Status
	}
	return &merged
}

func validationError(err error) error {
	var verrs validation.ValidationErrors
	if errors.As(err, &verrs) {
		return apperrors.Validation("Exhibition validation failed", verrs.Details())
	}
	return apperrors.Validation("Exhibition validation failed", map[string]any{"error": err.Error()})
}
