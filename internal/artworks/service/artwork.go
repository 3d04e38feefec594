package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	artworkserrors "gallery/internal/artworks/errors"
	"gallery/internal/artworks/repository"
	"gallery/internal/artworks/validator"
	"gallery/internal/uploads"
	"gallery/pkg/config"
	apperrors "gallery/pkg/errors"
	"gallery/pkg/events"
	"gallery/pkg/model"
	"gallery/pkg/sanitizer"
	"gallery/pkg/validation"
)

type ArtworkService interface {
	Create(ctx context.Context, a *model.Artwork) error
	GetByID(ctx context.Context, id string) (*model.Artwork, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Artwork, int64, error)
	Update(ctx context.Context, id string, updates *model.ArtworkUpdate) (*model.Artwork, error)
	Delete(ctx context.Context, id string) error
}

// ImageStore turns an uploaded data URI into a stored server path.
type ImageStore interface {
	Resolve(ctx context.Context, imageRef string) (string, error)
}

type artworkService struct {
	repo      repository.ArtworkRepository
	validator *validator.ArtworkValidator
	images    ImageStore
	publisher events.Publisher
	cfg       *config.Config
}

func NewArtworkService(
	repo repository.ArtworkRepository,
	validator *validator.ArtworkValidator,
	images ImageStore,
	publisher events.Publisher,
	cfg *config.Config,
) ArtworkService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &artworkService{
		repo:      repo,
		validator: validator,
		images:    images,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *artworkService) Create(ctx context.Context, a *model.Artwork) error {
	s.sanitize(a)
	if a.Status == "" {
		a.Status = model.ArtworkAvailable
	}

	if err := s.validator.Validate(a); err != nil {
		s.cfg.Log.Warn("Artwork validation failed",
			"title", a.Title,
			"artist", a.Artist,
			"error", err,
		)
		return validationError(err)
	}

	ref, err := s.images.Resolve(ctx, a.ImageURL)
	if err != nil {
		s.cfg.Log.Warn("Artwork image rejected", "title", a.Title, "error", err)
		return uploads.ToAppError(err)
	}
	a.ImageURL = ref

	if err := s.repo.Create(ctx, a); err != nil {
		s.cfg.Log.Error("Failed to create artwork",
			"title", a.Title,
			"error", err,
		)
		return apperrors.Internal("Failed to create artwork", err)
	}

	s.cfg.Log.Info("Artwork created successfully",
		"id", a.ID,
		"title", a.Title,
		"artist", a.Artist,
	)
	events.PublishQuietly(ctx, s.publisher, s.cfg.Log.Logger, events.ArtworkCreated, a.ID, a)

	s.present(a)
	return nil
}

func (s *artworkService) GetByID(ctx context.Context, id string) (*model.Artwork, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Artwork ID cannot be empty")
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError(err, id, "Failed to retrieve artwork")
	}

	s.present(a)
	return a, nil
}

func (s *artworkService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Artwork, int64, error) {
	limit = config.NormalizePaginationLimit(limit)
	offset = config.NormalizeOffset(offset)

	var count int64
	var artworks []*model.Artwork
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		var err error
		count, err = s.repo.Count(ctx)
		if err != nil {
			s.cfg.Log.Error("Failed to count artworks", "error", err)
			errCount = apperrors.Internal("Failed to count artworks", err)
		}
	}()

	go func() {
		defer wg.Done()
		var err error
		artworks, err = s.repo.FindAll(ctx, limit, offset)
		if err != nil {
			s.cfg.Log.Error("Failed to get all artworks",
				"limit", limit,
				"offset", offset,
				"error", err,
			)
			errFind = apperrors.Internal("Failed to retrieve artworks", err)
		}
	}()
	wg.Wait()

	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	for _, a := range artworks {
		s.present(a)
	}
	return artworks, count, nil
}

func (s *artworkService) Update(ctx context.Context, id string, updates *model.ArtworkUpdate) (*model.Artwork, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Artwork ID cannot be empty")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError(err, id, "Failed to check artwork existence")
	}

	s.sanitizeUpdate(updates)
	if err := s.validator.ValidateUpdate(updates); err != nil {
		return nil, validationError(err)
	}

	merged := mergeArtworkUpdates(existing, updates)
	if err := s.validator.Validate(merged); err != nil {
		s.cfg.Log.Warn("Artwork validation failed",
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

	if err := s.repo.Update(ctx, id, merged); err != nil {
		return nil, s.mapRepoError(err, id, "Failed to update artwork")
	}

	s.cfg.Log.Info("Artwork updated successfully",
		"id", id,
		"title", merged.Title,
	)
	events.PublishQuietly(ctx, s.publisher, s.cfg.Log.Logger, events.ArtworkUpdated, id, merged)

	s.present(merged)
	return merged, nil
}

func (s *artworkService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Artwork ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapRepoError(err, id, "Failed to delete artwork")
	}

	s.cfg.Log.Info("Artwork deleted successfully", "id", id)
	events.PublishQuietly(ctx, s.publisher, s.cfg.Log.Logger, events.ArtworkDeleted, id, map[string]string{"id": id})
	return nil
}

// present rewrites stored image references into URLs a browser can load.
func (s *artworkService) present(a *model.Artwork) {
	if s.cfg.Images != nil {
		s.cfg.Images.NormalizeFields(&a.ImageURL)
	}
}

func (s *artworkService) mapRepoError(err error, id, internalMsg string) error {
	switch {
	case errors.Is(err, artworkserrors.ErrNotFound):
		return apperrors.NotFoundWithID("Artwork", id)
	case errors.Is(err, artworkserrors.ErrInvalidID):
		return apperrors.InvalidInput("Invalid artwork ID format")
	}
	s.cfg.Log.Error(internalMsg, "id", id, "error", err)
	return apperrors.Internal(internalMsg, err)
}

func (s *artworkService) sanitize(a *model.Artwork) {
	a.Title = sanitizer.NormalizeTitle(a.Title)
	a.Artist = sanitizer.NormalizeName(a.Artist)
	a.Description = sanitizer.SanitizeMultiline(a.Description)
	a.ImageURL = strings.TrimSpace(a.ImageURL)
	a.Dimensions = sanitizer.TrimAndNormalize(a.Dimensions)
	a.Medium = sanitizer.TrimAndNormalize(a.Medium)
	a.Status = strings.ToLower(strings.TrimSpace(a.Status))
}

func (s *artworkService) sanitizeUpdate(u *model.ArtworkUpdate) {
	u.Title = sanitizer.NormalizeTitle(u.Title)
	u.Artist = sanitizer.NormalizeName(u.Artist)
	u.Description = sanitizer.SanitizeMultiline(u.Description)
	u.ImageURL = strings.TrimSpace(u.ImageURL)
	sanitizer.NormalizeOptional(u.Dimensions)
	sanitizer.NormalizeOptional(u.Medium)
	u.Status = strings.ToLower(strings.TrimSpace(u.Status))
}

func mergeArtworkUpdates(existing *model.Artwork, u *model.ArtworkUpdate) *model.Artwork {
	merged := *existing
	if u.Title != "" {
		merged.Title = u.Title
	}
	if u.Artist != "" {
		merged.Artist = u.Artist
	}
	if u.Description != "" {
		merged.Description = u.Description
	}
	if u.Price != nil {
		merged.Price = *u.Price
	}
	if u.ImageURL != "" {
		merged.ImageURL = u.ImageURL
	}
	if u.Dimensions != nil {
		merged.Dimensions = *u.Dimensions
	}
	if u.Medium != nil {
		merged.Medium = *u.Medium
	}
	if u.Year != nil {
		merged.Year = *u.Year
	}
	if u.Status != "" {
		merged.Status = u.Status
	}
	return &merged
}

func validationError(err error) error {
	var verrs validation.ValidationErrors
	if errors.As(err, &verrs) {
		return apperrors.Validation("Artwork validation failed", verrs.Details())
	}
	return apperrors.Validation("Artwork validation failed", map[string]any{"error": err.Error()})
}
