package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"strings"
	"testing"

	apperrors "gallery/pkg/errors"
)

func TestExtractLimitOffset(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int64
		wantErr    bool
	}{
		{name: "defaults", query: "", wantLimit: 10, wantOffset: 0},
		{name: "explicit", query: "?limit=25&offset=50", wantLimit: 25, wantOffset: 50},
		{name: "clamped limit", query: "?limit=1000", wantLimit: 100, wantOffset: 0},
		{name: "negative offset", query: "?offset=-3", wantLimit: 10, wantOffset: 0},
		{name: "alphabetic limit", query: "?limit=abc", wantErr: true},
		{name: "alphabetic offset", query: "?offset=xyz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/artworks"+tt.query, nil)
			limit, offset, err := ExtractLimitOffset(req)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if limit != tt.wantLimit || offset != tt.wantOffset {
				t.Errorf("got limit=%d offset=%d, want limit=%d offset=%d", limit, offset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestClientIP(t *testing.T) {
	proxies := []netip.Prefix{netip.MustParsePrefix("10.0.0.0/8")}

	tests := []struct {
		name    string
		remote  string
		xff     string
		realIP  string
		trusted []netip.Prefix
		want    string
	}{
		{name: "peer only", remote: "10.0.0.1:5555", want: "10.0.0.1"},
		{name: "untrusted peer ignores forwarded for", remote: "198.51.100.7:5555", xff: "203.0.113.9", trusted: proxies, want: "198.51.100.7"},
		{name: "no proxies configured", remote: "10.0.0.1:5555", xff: "203.0.113.9", want: "10.0.0.1"},
		{name: "trusted peer", remote: "10.0.0.1:5555", xff: "203.0.113.9", trusted: proxies, want: "203.0.113.9"},
		{name: "spoofed leftmost hop", remote: "10.0.0.1:5555", xff: "1.2.3.4, 203.0.113.9, 10.0.0.2", trusted: proxies, want: "203.0.113.9"},
		{name: "all hops trusted", remote: "10.0.0.1:5555", xff: "10.0.0.3, 10.0.0.2", trusted: proxies, want: "10.0.0.3"},
		{name: "real ip from trusted peer", remote: "10.0.0.1:5555", realIP: "203.0.113.5", trusted: proxies, want: "203.0.113.5"},
		{name: "real ip from untrusted peer", remote: "198.51.100.7:5555", realIP: "203.0.113.5", trusted: proxies, want: "198.51.100.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
			req.RemoteAddr = tt.remote
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}
			if got := ClientIP(req, tt.trusted); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{name: "not found", err: apperrors.NotFoundWithID("Artwork", "1"), wantStatus: http.StatusNotFound, wantError: "Artwork not found"},
		{name: "forbidden", err: apperrors.Forbidden("Admin privileges required"), wantStatus: http.StatusForbidden, wantError: "Admin privileges required"},
		{name: "plain error hidden", err: errors.New("mongo exploded"), wantStatus: http.StatusInternalServerError, wantError: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			if err := WriteError(w, tt.err); err != nil {
				t.Fatalf("WriteError: %v", err)
			}
			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			var resp ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Error != tt.wantError {
				t.Errorf("expected error %q, got %q", tt.wantError, resp.Error)
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Title string `json:"title"`
	}

	req := httptest.NewRequest(http.MethodPost, "/api/artworks", strings.NewReader(`{"title":"Sunset"}`))
	if err := DecodeJSON(req, &dst); err != nil || dst.Title != "Sunset" {
		t.Fatalf("DecodeJSON() = %v, title %q", err, dst.Title)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/artworks", strings.NewReader(`{"title":`))
	err := DecodeJSON(req, &dst)
	if apperrors.AsAppError(err).Code != apperrors.CodeInvalidInput {
		t.Errorf("expected invalid input, got %v", err)
	}

	w := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/artworks", strings.NewReader(`{"title":"`+strings.Repeat("a", 64)+`"}`))
	req.Body = http.MaxBytesReader(w, req.Body, 16)
	err = DecodeJSON(req, &dst)
	if apperrors.AsAppError(err).Code != apperrors.CodeTooLarge {
		t.Errorf("expected payload too large, got %v", err)
	}
}
