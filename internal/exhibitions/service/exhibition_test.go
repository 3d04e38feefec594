package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	exhibitionserrors "gallery/internal/exhibitions/errors"
	"gallery/internal/exhibitions/validator"
	"gallery/pkg/config"
	apperrors "gallery/pkg/errors"
	"gallery/pkg/imageurl"
	"gallery/pkg/logger"
	"gallery/pkg/model"
)

type mockExhibitionRepository struct {
	createFunc   func(ctx context.Context, e *model.Exhibition) error
	findByIDFunc func(ctx context.Context, id string) (*model.Exhibition, error)
	findAllFunc  func(ctx context.Context, limit int, offset int64) ([]*model.Exhibition, error)
	updateFunc   func(ctx context.Context, id string, e *model.Exhibition, slotsDelta int) error
}

func (m *mockExhibitionRepository) Create(ctx context.Context, e *model.Exhibition) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, e)
	}
	return nil
}

func (m *mockExhibitionRepository) FindByID(ctx context.Context, id string) (*model.Exhibition, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errors.New("not configured")
}

func (m *mockExhibitionRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Exhibition, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, limit, offset)
	}
	return []*model.Exhibition{}, nil
}

func (m *mockExhibitionRepository) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

func (m *mockExhibitionRepository) Update(ctx context.Context, id string, e *model.Exhibition, slotsDelta int) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, e, slotsDelta)
	}
	return nil
}

func (m *mockExhibitionRepository) Delete(ctx context.Context, id string) error {
	return nil
}

type passthroughImages struct{}

func (passthroughImages) Resolve(_ context.Context, ref string) (string, error) { return ref, nil }

func newTestService(repo *mockExhibitionRepository) *exhibitionService {
	cfg := &config.Config{
		Log:    logger.Discard(),
		Images: imageurl.MustNew("http://api.test"),
	}
	svc := NewExhibitionService(repo, validator.NewExhibitionValidator(logger.Discard()), passthroughImages{}, nil, cfg).(*exhibitionService)
	svc.now = func() time.Time { return time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC) }
	return svc
}

func newExhibition() *model.Exhibition {
	return &model.Exhibition{
		Title:       "Traditions & Transitions",
		Description: "Traditional Kenyan art forms in the 21st century.",
		Location:    "Karen Village Art Center",
		StartDate:   "2025-06-10",
		EndDate:     "2025-07-10",
		TicketPrice: 1500,
		ImageURL:    "/static/uploads/traditions.jpg",
		TotalSlots:  300,
	}
}

func TestCreate_Defaults(t *testing.T) {
	var stored model.Exhibition
	repo := &mockExhibitionRepository{
		createFunc: func(ctx context.Context, e *model.Exhibition) error {
			stored = *e
			return nil
		},
	}

	e := newExhibition()
	if err := newTestService(repo).Create(context.Background(), e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.AvailableSlots != 300 {
		t.Errorf("expected availableSlots to default to totalSlots, got %d", stored.AvailableSlots)
	}
	if stored.Status != model.ExhibitionOngoing {
		t.Errorf("expected ongoing status, got %q", stored.Status)
	}
	if stored.ImageURL != "/static/uploads/traditions.jpg" {
		t.Errorf("stored image must stay server-relative, got %q", stored.ImageURL)
	}
	if e.ImageURL != "http://api.test/static/uploads/traditions.jpg" {
		t.Errorf("expected normalized output, got %q", e.ImageURL)
	}
}

func TestCreate_EndBeforeStart(t *testing.T) {
	e := newExhibition()
	e.EndDate = "2025-06-01"
	err := newTestService(&mockExhibitionRepository{}).Create(context.Background(), e)
	if err == nil || apperrors.AsAppError(err).StatusCode() != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestStatusFor(t *testing.T) {
	now := time.Date(2025, 6, 20, 23, 0, 0, 0, time.UTC)
	tests := []struct {
		start, end, want string
	}{
		{"2025-07-01", "2025-07-31", model.ExhibitionUpcoming},
		{"2025-06-20", "2025-06-20", model.ExhibitionOngoing},
		{"2025-06-01", "2025-06-30", model.ExhibitionOngoing},
		{"2025-05-01", "2025-06-19", model.ExhibitionPast},
		{"garbage", "2025-06-19", model.ExhibitionUpcoming},
	}
	for _, tt := range tests {
		if got := StatusFor(tt.start, tt.end, now); got != tt.want {
			t.Errorf("StatusFor(%s, %s) = %s, want %s", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestGetByID_EndedExhibitionReadsAsPast(t *testing.T) {
	stored := newExhibition()
	stored.ID = "507f1f77bcf86cd799439011"
	stored.StartDate = "2020-01-01"
	stored.EndDate = "2020-02-01"
	stored.Status = model.ExhibitionUpcoming

	repo := &mockExhibitionRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Exhibition, error) {
			c := *stored
			return &c, nil
		},
	}
	e, err := newTestService(repo).GetByID(context.Background(), stored.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Status != model.ExhibitionPast {
		t.Errorf("expected past status, got %q", e.Status)
	}
}

func TestUpdate_ResizeShiftsAvailableSlots(t *testing.T) {
	existing := newExhibition()
	existing.ID = "507f1f77bcf86cd799439011"
	existing.AvailableSlots = 220
	existing.Status = model.ExhibitionUpcoming

	tests := []struct {
		name          string
		update        model.ExhibitionUpdate
		wantTotal     int
		wantAvailable int
		wantDelta     int
		wantStatus    int
	}{
		{"grow", model.ExhibitionUpdate{TotalSlots: ptr(350)}, 350, 270, 50, 0},
		{"shrink", model.ExhibitionUpdate{TotalSlots: ptr(100)}, 100, 20, -200, 0},
		{"shrink below sold", model.ExhibitionUpdate{TotalSlots: ptr(50)}, 50, 0, -220, 0},
		{"explicit available", model.ExhibitionUpdate{TotalSlots: ptr(400), AvailableSlots: ptr(400)}, 400, 400, 180, 0},
		{"title only", model.ExhibitionUpdate{Title: "Renamed"}, 300, 220, 0, 0},
		{"available above total", model.ExhibitionUpdate{AvailableSlots: ptr(301)}, 0, 0, 0, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var saved *model.Exhibition
			var delta int
			repo := &mockExhibitionRepository{
				findByIDFunc: func(ctx context.Context, id string) (*model.Exhibition, error) {
					c := *existing
					return &c, nil
				},
				updateFunc: func(ctx context.Context, id string, e *model.Exhibition, slotsDelta int) error {
					saved = e
					delta = slotsDelta
					return nil
				},
			}

			update := tt.update
			_, err := newTestService(repo).Update(context.Background(), existing.ID, &update)
			if tt.wantStatus != 0 {
				if err == nil || apperrors.AsAppError(err).StatusCode() != tt.wantStatus {
					t.Fatalf("expected status %d, got %v", tt.wantStatus, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if saved.TotalSlots != tt.wantTotal || saved.AvailableSlots != tt.wantAvailable {
				t.Errorf("got total=%d available=%d", saved.TotalSlots, saved.AvailableSlots)
			}
			if delta != tt.wantDelta {
				t.Errorf("expected slot delta %d, got %d", tt.wantDelta, delta)
			}
		})
	}
}

func TestUpdate_SlotsTakenDuringEdit(t *testing.T) {
	existing := newExhibition()
	existing.ID = "507f1f77bcf86cd799439011"
	existing.AvailableSlots = 220

	repo := &mockExhibitionRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Exhibition, error) {
			c := *existing
			return &c, nil
		},
		updateFunc: func(ctx context.Context, id string, e *model.Exhibition, slotsDelta int) error {
			return fmt.Errorf("%w: %s", exhibitionserrors.ErrSlotsChanged, id)
		},
	}

	_, err := newTestService(repo).Update(context.Background(), existing.ID, &model.ExhibitionUpdate{TotalSlots: ptr(10)})
	if err == nil || apperrors.AsAppError(err).StatusCode() != http.StatusConflict {
		t.Fatalf("expected 409, got %v", err)
	}
}

func ptr[T any](v T) *T { return &v }
