package middleware_test

import (
	"net/http"
	"testing"

	"github.com/jsamuelsen11/character-service/internal/adapters/http/middleware"
)

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers http.Header
		want    map[string]string
	}{
		{name: "empty", headers: http.Header{}, want: map[string]string{}},
		{
			name:    "credentials",
			headers: http.Header{"Authorization": {"Bearer secret"}, "X-Api-Key": {"k"}, "Cookie": {"session=abc"}},
			want:    map[string]string{"Authorization": "[REDACTED]", "X-Api-Key": "[REDACTED]", "Cookie": "[REDACTED]"},
		},
		{
			name:    "non canonical key",
			headers: http.Header{"proxy-authorization": {"Basic Zm9vOmJhcg=="}},
			want:    map[string]string{"proxy-authorization": "[REDACTED]"},
		},
		{
			name:    "multi value",
			headers: http.Header{"Accept": {"application/problem+json", "application/json"}},
			want:    map[string]string{"Accept": "application/problem+json,application/json"},
		},
		{
			name:    "mixed",
			headers: http.Header{"Authorization": {"Bearer secret"}, "Content-Type": {"application/json"}},
			want:    map[string]string{"Authorization": "[REDACTED]", "Content-Type": "application/json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			attrs := middleware.RedactHeaders(tt.headers)
			if len(attrs) != len(tt.want) {
				t.Fatalf("len(attrs) = %d, want %d", len(attrs), len(tt.want))
			}
			for _, a := range attrs {
				if got := a.Value.String(); got != tt.want[a.Key] {
					t.Errorf("%s = %q, want %q", a.Key, got, tt.want[a.Key])
				}
			}
		})
	}
}

func TestRedactHeaders_SortedByName(t *testing.T) {
	t.Parallel()

	attrs := middleware.RedactHeaders(http.Header{"X-Request-Id": {"1"}, "Accept": {"*/*"}, "Content-Type": {"text/plain"}})

	want := []string{"Accept", "Content-Type", "X-Request-Id"}
	for i, a := range attrs {
		if a.Key != want[i] {
			t.Errorf("attrs[%d] = %q, want %q", i, a.Key, want[i])
		}
	}
}
