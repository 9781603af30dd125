package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/character-service/internal/platform/logging"
)

// RedactHeaders turns headers into log attributes sorted by name, with
// credential-bearing values replaced by logging.Redacted and multiple values
// joined by commas.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for _, name := range slices.Sorted(maps.Keys(headers)) {
		if logging.IsSensitiveHeader(name) {
			attrs = append(attrs, slog.String(name, logging.Redacted))
			continue
		}
		attrs = append(attrs, slog.String(name, strings.Join(headers[name], ",")))
	}
	return attrs
}
