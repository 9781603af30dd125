package dto

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/character-service/internal/domain"
	"github.com/jsamuelsen11/character-service/internal/platform/logging"
)

// ValidationTitle is the title of every 400 problem.
const ValidationTitle = "Request validation failed"

// genericServerDetail replaces the detail of 5xx responses.
const genericServerDetail = "An unexpected error occurred while processing the request."

// ErrorResponse represents an RFC 9457 Problem Details response. Errors maps
// a field name to every message reported for it.
type ErrorResponse struct {
	Type     string              `json:"type"`
	Title    string              `json:"title"`
	Status   int                 `json:"status"`
	Detail   string              `json:"detail,omitempty"`
	Instance string              `json:"instance,omitempty"`
	Errors   map[string][]string `json:"errors,omitempty"`
}

// TypeFor returns the problem type URI used for status.
func TypeFor(status int) string {
	return fmt.Sprintf("https://httpstatuses.com/%d", status)
}

// NewValidationProblem builds a 400 problem with field errors.
func NewValidationProblem(detail string, errs map[string][]string) *ErrorResponse {
	return &ErrorResponse{
		Type:   TypeFor(http.StatusBadRequest),
		Title:  ValidationTitle,
		Status: http.StatusBadRequest,
		Detail: detail,
		Errors: errs,
	}
}

// NewErrorResponse creates a problem from a domain error. Server-side
// failures get a generic detail so internals never reach the client.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := domainErrorToStatus(err)

	resp := ErrorResponse{
		Type:     TypeFor(status),
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.URL.Path,
	}

	if status >= http.StatusInternalServerError {
		resp.Detail = genericServerDetail
		return resp
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Title = ValidationTitle
		resp.Errors = make(map[string][]string, len(verr.Fields))
		for field, msg := range verr.Fields {
			resp.Errors[field] = []string{msg}
		}
	}

	return resp
}

// WriteErrorResponse writes the problem for err. 5xx errors are logged with
// the request-scoped logger before the generic response goes out.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	if resp.Status >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", resp.Status),
			slog.String("error", err.Error()),
		)
	}

	WriteProblem(w, r, &resp)
}

// WriteProblem writes resp as application/problem+json, filling in the
// instance from the request when it is empty.
func WriteProblem(w http.ResponseWriter, r *http.Request, resp *ErrorResponse) {
	if resp.Instance == "" {
		resp.Instance = r.URL.Path
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

func domainErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
