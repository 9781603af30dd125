package dto_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/character-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/character-service/internal/domain"
	"github.com/jsamuelsen11/character-service/internal/platform/logging"
)

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
	}{
		{name: "not found", err: fmt.Errorf("character x: %w", domain.ErrNotFound), wantStatus: http.StatusNotFound, wantTitle: "Not Found"},
		{name: "validation", err: &domain.ValidationError{Fields: map[string]string{"name": "is required"}}, wantStatus: http.StatusBadRequest, wantTitle: dto.ValidationTitle},
		{name: "conflict", err: domain.ErrConflict, wantStatus: http.StatusConflict, wantTitle: "Conflict"},
		{name: "unavailable", err: fmt.Errorf("%w: storage-mongodb", domain.ErrUnavailable), wantStatus: http.StatusServiceUnavailable, wantTitle: "Service Unavailable"},
		{name: "deadline", err: fmt.Errorf("list: %w", context.DeadlineExceeded), wantStatus: http.StatusGatewayTimeout, wantTitle: "Gateway Timeout"},
		{name: "unknown", err: errors.New("oops"), wantStatus: http.StatusInternalServerError, wantTitle: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/api/characters/x", http.NoBody)
			resp := dto.NewErrorResponse(r, tt.err)

			if resp.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", resp.Status, tt.wantStatus)
			}
			if resp.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", resp.Title, tt.wantTitle)
			}
			if resp.Type != dto.TypeFor(tt.wantStatus) {
				t.Errorf("Type = %q, want %q", resp.Type, dto.TypeFor(tt.wantStatus))
			}
			if resp.Instance != "/api/characters/x" {
				t.Errorf("Instance = %q, want request path", resp.Instance)
			}
		})
	}
}

func TestNewErrorResponse_ServerErrorsHideDetail(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/characters", http.NoBody)
	resp := dto.NewErrorResponse(r, fmt.Errorf("%w: dial tcp 10.0.0.5:27017: connection refused", domain.ErrUnavailable))

	if strings.Contains(resp.Detail, "10.0.0.5") {
		t.Errorf("Detail = %q, leaks the underlying error", resp.Detail)
	}
	if resp.Errors != nil {
		t.Errorf("Errors = %v, want none", resp.Errors)
	}
}

func TestNewErrorResponse_ValidationErrors(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPut, "/api/characters/x", http.NoBody)
	resp := dto.NewErrorResponse(r, &domain.ValidationError{Fields: map[string]string{
		"name": "is required",
	}})

	if got := resp.Errors["name"]; len(got) != 1 || got[0] != "is required" {
		t.Errorf("Errors[name] = %v, want [is required]", got)
	}
}

func TestNewValidationProblem(t *testing.T) {
	t.Parallel()

	p := dto.NewValidationProblem("Payload validation failed", map[string][]string{"name": {"too long"}})

	if p.Status != http.StatusBadRequest || p.Type != "https://httpstatuses.com/400" {
		t.Errorf("problem = %+v", p)
	}
	if p.Title != "Request validation failed" {
		t.Errorf("Title = %q", p.Title)
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/characters/x", http.NoBody)
	rec := httptest.NewRecorder()

	dto.WriteErrorResponse(rec, r, fmt.Errorf("character x: %w", domain.ErrNotFound))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}

	var body dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Status != http.StatusNotFound || body.Detail == "" {
		t.Errorf("body = %+v", body)
	}
}

func TestWriteErrorResponse_LogsServerErrors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := httptest.NewRequest(http.MethodGet, "/api/characters", http.NoBody)
	r = r.WithContext(logging.WithLogger(context.Background(), logger))
	rec := httptest.NewRecorder()

	dto.WriteErrorResponse(rec, r, errors.New("disk on fire"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "disk on fire") {
		t.Errorf("body = %s, leaks the error", rec.Body.String())
	}
	if !strings.Contains(buf.String(), "disk on fire") {
		t.Errorf("log = %q, want the error logged", buf.String())
	}
}

func TestWriteProblem_FillsInstance(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/characters", http.NoBody)
	rec := httptest.NewRecorder()

	dto.WriteProblem(rec, r, dto.NewValidationProblem("Payload validation failed", map[string][]string{
		"name": {"The 'name' field is required."},
	}))

	var body dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Instance != "/api/characters" {
		t.Errorf("Instance = %q, want /api/characters", body.Instance)
	}
	if body.Errors["name"][0] != "The 'name' field is required." {
		t.Errorf("Errors = %v", body.Errors)
	}
}
