package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	contactserrors "gallery/internal/contacts/errors"
	"gallery/internal/contacts/validator"
	"gallery/pkg/config"
	apperrors "gallery/pkg/errors"
	"gallery/pkg/logger"
	"gallery/pkg/model"
)

type mockContactRepository struct {
	createFunc       func(ctx context.Context, m *model.ContactMessage) error
	findAllFunc      func(ctx context.Context, status string, limit int, offset int64) ([]*model.ContactMessage, error)
	updateStatusFunc func(ctx context.Context, id, status string) error
}

func (m *mockContactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, msg)
	}
	msg.ID = "507f1f77bcf86cd799439011"
	return nil
}

func (m *mockContactRepository) FindAll(ctx context.Context, status string, limit int, offset int64) ([]*model.ContactMessage, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, status, limit, offset)
	}
	return []*model.ContactMessage{}, nil
}

func (m *mockContactRepository) Count(ctx context.Context, status string) (int64, error) {
	return 0, nil
}

func (m *mockContactRepository) UpdateStatus(ctx context.Context, id, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

type capturePublisher struct {
	eventType string
	payload   any
}

func (p *capturePublisher) Publish(_ context.Context, eventType, _ string, payload any) error {
	p.eventType, p.payload = eventType, payload
	return errors.New("broker down")
}

func newTestService(repo *mockContactRepository, pub *capturePublisher) ContactService {
	cfg := &config.Config{Log: logger.Discard()}
	if pub == nil {
		return NewContactService(repo, validator.NewContactValidator(cfg.Log), nil, cfg)
	}
	return NewContactService(repo, validator.NewContactValidator(cfg.Log), pub, cfg)
}

func TestSubmit(t *testing.T) {
	var stored model.ContactMessage
	repo := &mockContactRepository{
		createFunc: func(ctx context.Context, m *model.ContactMessage) error {
			stored = *m
			m.ID = "abc"
			return nil
		},
	}
	pub := &capturePublisher{}

	msg := &model.ContactMessage{
		Name:    "  Peter   Kamau ",
		Email:   " PETER@Example.com ",
		Phone:   "+254 722 123456",
		Message: "I would like to ask about Wildlife of Amboseli.  \r\n",
		Source:  "Artwork Inquiry",
		Status:  model.MessageReplied,
	}
	if err := newTestService(repo, pub).Submit(context.Background(), msg); err != nil {
		t.Fatalf("publishing failures must not fail the request: %v", err)
	}

	if stored.Name != "Peter Kamau" || stored.Email != "peter@example.com" {
		t.Errorf("not sanitized: %+v", stored)
	}
	if stored.Phone != "+254722123456" {
		t.Errorf("expected E.164 phone, got %q", stored.Phone)
	}
	if stored.Source != "artwork_inquiry" {
		t.Errorf("expected snake_case source, got %q", stored.Source)
	}
	if stored.Status != model.MessageNew {
		t.Errorf("expected new status, got %q", stored.Status)
	}
	if pub.eventType != "contact.received" {
		t.Errorf("expected contact.received, got %q", pub.eventType)
	}
}

func TestSubmit_DefaultSource(t *testing.T) {
	msg := &model.ContactMessage{Name: "Ann", Email: "ann@example.com", Message: "Hello, are you open on Sundays?"}
	if err := newTestService(&mockContactRepository{}, nil).Submit(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Source != model.DefaultContactSource {
		t.Errorf("expected default source, got %q", msg.Source)
	}
}

func TestSubmit_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		msg   model.ContactMessage
		field string
	}{
		{"bad email", model.ContactMessage{Name: "Ann", Email: "nope", Message: "A long enough message"}, "email"},
		{"short message", model.ContactMessage{Name: "Ann", Email: "a@b.co", Message: "hi"}, "message"},
		{"bad phone", model.ContactMessage{Name: "Ann", Email: "a@b.co", Phone: "12", Message: "A long enough message"}, "phone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.msg
			err := newTestService(&mockContactRepository{}, nil).Submit(context.Background(), &msg)
			appErr := apperrors.AsAppError(err)
			if appErr.StatusCode() != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %v", err)
			}
			if _, ok := appErr.Details[tt.field]; !ok {
				t.Errorf("expected %s in details, got %v", tt.field, appErr.Details)
			}
		})
	}
}

func TestGetAll_StatusFilter(t *testing.T) {
	var gotStatus string
	repo := &mockContactRepository{
		findAllFunc: func(ctx context.Context, status string, limit int, offset int64) ([]*model.ContactMessage, error) {
			gotStatus = status
			return []*model.ContactMessage{}, nil
		},
	}
	svc := newTestService(repo, nil)

	if _, _, err := svc.GetAll(context.Background(), " NEW ", 10, 0); err != nil {
		t.Fatal(err)
	}
	if gotStatus != "new" {
		t.Errorf("expected normalized filter, got %q", gotStatus)
	}

	_, _, err := svc.GetAll(context.Background(), "archived", 10, 0)
	if apperrors.AsAppError(err).StatusCode() != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown status, got %v", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		repoErr error
		want    int
	}{
		{"ok", "Read", nil, 0},
		{"unknown status", "archived", nil, http.StatusUnprocessableEntity},
		{"not found", "read", fmt.Errorf("%w: x", contactserrors.ErrNotFound), http.StatusNotFound},
		{"invalid id", "read", fmt.Errorf("%w: x", contactserrors.ErrInvalidID), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockContactRepository{
				updateStatusFunc: func(ctx context.Context, id, status string) error {
					if status != "read" {
						t.Errorf("expected lower-case status, got %q", status)
					}
					return tt.repoErr
				},
			}
			err := newTestService(repo, nil).UpdateStatus(context.Background(), "x", &model.MessageStatusUpdate{Status: tt.status})
			if tt.want == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if got := apperrors.AsAppError(err).StatusCode(); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
