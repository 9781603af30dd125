package characterapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/character-service/internal/domain"
)

// maxErrorBodySize limits how much of an error response body is read.
const maxErrorBodySize = 1 << 20

// problemDTO is the problem+json body the character API sends on failure.
type problemDTO struct {
	Title  string              `json:"title"`
	Detail string              `json:"detail"`
	Errors map[string][]string `json:"errors"`
}

// TranslateHTTPError maps a failed API response to a domain error. A 400
// carrying field errors becomes a *domain.ValidationError.
func TranslateHTTPError(resp *http.Response) error {
	pd := parseProblem(resp)

	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		if fields := firstMessages(pd.Errors); len(fields) > 0 {
			return &domain.ValidationError{Fields: fields}
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

func parseProblem(resp *http.Response) problemDTO {
	if resp.Body == nil {
		return problemDTO{}
	}
	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/problem+json") && !strings.HasPrefix(ct, "application/json") {
		return problemDTO{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDTO{}
	}

	var pd problemDTO
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDTO{}
	}
	return pd
}
