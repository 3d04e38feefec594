package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"

	"gallery/pkg/auth"
	apperrors "gallery/pkg/errors"
	httputil "gallery/pkg/http"
	"gallery/pkg/logger"
	"gallery/pkg/model"
)

type mockContactService struct {
	submitFunc       func(ctx context.Context, m *model.ContactMessage) error
	getAllFunc       func(ctx context.Context, status string, limit int, offset int64) ([]*model.ContactMessage, int64, error)
	updateStatusFunc func(ctx context.Context, id string, update *model.MessageStatusUpdate) error
}

func (m *mockContactService) Submit(ctx context.Context, msg *model.ContactMessage) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, msg)
	}
	return nil
}

func (m *mockContactService) GetAll(ctx context.Context, status string, limit int, offset int64) ([]*model.ContactMessage, int64, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx, status, limit, offset)
	}
	return []*model.ContactMessage{}, 0, nil
}

func (m *mockContactService) UpdateStatus(ctx context.Context, id string, update *model.MessageStatusUpdate) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, update)
	}
	return nil
}

type stubTokens map[string]auth.Principal

func (s stubTokens) Parse(token string) (auth.Principal, error) {
	p, ok := s[token]
	if !ok {
		return auth.Principal{}, auth.ErrUnauthorized
	}
	return p, nil
}

var tokens = stubTokens{
	"admin":   {ID: "1", Name: "Admin", IsAdmin: true},
	"visitor": {ID: "2", Name: "Visitor"},
}

func newRouter(svc *mockContactService) *httprouter.Router {
	router := httprouter.New()
	NewContactHandler(svc, tokens, logger.Discard()).RegisterRoutes(router)
	return router
}

func TestSubmit(t *testing.T) {
	svc := &mockContactService{
		submitFunc: func(ctx context.Context, m *model.ContactMessage) error {
			m.ID = "c1"
			m.Status = model.MessageNew
			return nil
		},
	}

	body := `{"name":"Mumbua Kioko","email":"mumbua@example.com","message":"Is the Lamu series still available?"}`
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, ContactPath, strings.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Data    model.ContactMessage `json:"data"`
		Message string               `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Message sent successfully" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.Data.ID != "c1" || resp.Data.Status != model.MessageNew {
		t.Errorf("data = %+v", resp.Data)
	}
}

func TestSubmit_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
	}{
		{"malformed body", `{"name":`, nil, http.StatusBadRequest},
		{"validation", `{"name":"x"}`, apperrors.Validation("Invalid contact message", map[string]any{"email": "email is required"}), http.StatusBadRequest},
		{"storage failure", `{"name":"Kip"}`, apperrors.Internal("Failed to send message", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockContactService{
				submitFunc: func(ctx context.Context, m *model.ContactMessage) error { return tt.err },
			}
			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, ContactPath, strings.NewReader(tt.body)))

			if rec.Code != tt.wantCode {
				t.Errorf("expected %d, got %d: %s", tt.wantCode, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestGetAll_RequiresAdmin(t *testing.T) {
	var gotStatus string
	svc := &mockContactService{
		getAllFunc: func(ctx context.Context, status string, limit int, offset int64) ([]*model.ContactMessage, int64, error) {
			gotStatus = status
			return []*model.ContactMessage{{ID: "c1"}}, 1, nil
		},
	}

	tests := []struct {
		name     string
		token    string
		wantCode int
	}{
		{"anonymous", "", http.StatusUnauthorized},
		{"visitor", "visitor", http.StatusForbidden},
		{"admin", "admin", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/messages?status=new", nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d: %s", tt.wantCode, rec.Code, rec.Body.String())
			}
			if tt.wantCode != http.StatusOK {
				return
			}
			var page httputil.PaginatedResponse
			if err := json.NewDecoder(rec.Body).Decode(&page); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if page.TotalCount != 1 || gotStatus != "new" {
				t.Errorf("total=%d status=%q", page.TotalCount, gotStatus)
			}
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	var gotID, gotStatus string
	svc := &mockContactService{
		updateStatusFunc: func(ctx context.Context, id string, update *model.MessageStatusUpdate) error {
			gotID, gotStatus = id, update.Status
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/api/messages/c9", strings.NewReader(`{"status":"read"}`))
	req.Header.Set("Authorization", "Bearer admin")
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotID != "c9" || gotStatus != model.MessageRead {
		t.Errorf("service got id=%q status=%q", gotID, gotStatus)
	}
}
