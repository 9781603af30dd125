package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/character-service/internal/adapters/http/middleware"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		inbound  string
		wantSame bool
	}{
		{name: "generated when absent", inbound: ""},
		{name: "reused when well formed", inbound: "incoming-123", wantSame: true},
		{name: "replaced when too long", inbound: strings.Repeat("a", 129)},
		{name: "replaced when it has spaces", inbound: "two words"},
		{name: "replaced when not ascii", inbound: "idé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotID string
			handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				gotID = middleware.RequestIDFromContext(r.Context())
			}))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/characters", http.NoBody)
			if tt.inbound != "" {
				req.Header.Set("X-Request-ID", tt.inbound)
			}
			handler.ServeHTTP(rec, req)

			if tt.wantSame {
				if gotID != tt.inbound {
					t.Errorf("RequestIDFromContext = %q, want %q", gotID, tt.inbound)
				}
			} else if _, err := uuid.Parse(gotID); err != nil {
				t.Errorf("RequestIDFromContext = %q, want a generated UUID", gotID)
			}
			if respID := rec.Header().Get("X-Request-ID"); respID != gotID {
				t.Errorf("response X-Request-ID = %q, want %q", respID, gotID)
			}
		})
	}
}

func TestRequestID_UniquenessAcrossRequests(t *testing.T) {
	t.Parallel()

	ids := make(map[string]bool)
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ids[middleware.RequestIDFromContext(r.Context())] = true
	}))

	for range 100 {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	}

	if len(ids) != 100 {
		t.Errorf("unique IDs = %d, want 100", len(ids))
	}
}

func TestCorrelationID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		requestID string
		inbound   string
		want      string
	}{
		{name: "reused from header", requestID: "req-1", inbound: "corr-abc", want: "corr-abc"},
		{name: "falls back to request id", requestID: "req-1", want: "req-1"},
		{name: "malformed header falls back", requestID: "req-1", inbound: "bad\tvalue", want: "req-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotID string
			handler := middleware.RequestID()(middleware.CorrelationID()(
				http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
					gotID = middleware.CorrelationIDFromContext(r.Context())
				}),
			))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/characters", http.NoBody)
			req.Header.Set("X-Request-ID", tt.requestID)
			if tt.inbound != "" {
				req.Header.Set("X-Correlation-ID", tt.inbound)
			}
			handler.ServeHTTP(rec, req)

			if gotID != tt.want {
				t.Errorf("CorrelationIDFromContext = %q, want %q", gotID, tt.want)
			}
			if respID := rec.Header().Get("X-Correlation-ID"); respID != tt.want {
				t.Errorf("response X-Correlation-ID = %q, want %q", respID, tt.want)
			}
		})
	}
}

func TestCorrelationID_WithoutRequestID(t *testing.T) {
	t.Parallel()

	var gotID string
	handler := middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotID = middleware.CorrelationIDFromContext(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if _, err := uuid.Parse(gotID); err != nil {
		t.Errorf("CorrelationIDFromContext = %q, want a generated UUID", gotID)
	}
}

func TestContextIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if got := middleware.RequestIDFromContext(ctx); got != "" {
		t.Errorf("RequestIDFromContext(empty) = %q", got)
	}
	if got := middleware.CorrelationIDFromContext(ctx); got != "" {
		t.Errorf("CorrelationIDFromContext(empty) = %q", got)
	}

	ctx = middleware.WithCorrelationID(middleware.WithRequestID(ctx, "req-9"), "corr-9")
	if got := middleware.RequestIDFromContext(ctx); got != "req-9" {
		t.Errorf("RequestIDFromContext = %q, want req-9", got)
	}
	if got := middleware.CorrelationIDFromContext(ctx); got != "corr-9" {
		t.Errorf("CorrelationIDFromContext = %q, want corr-9", got)
	}
}
