package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/character-service/internal/platform/httpclient"
)

const (
	headerRequestID     = "X-Request-ID"
	headerCorrelationID = "X-Correlation-ID"

	// maxInboundIDLength caps caller-supplied IDs before they reach logs and
	// response headers.
	maxInboundIDLength = 128
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores id in ctx. The ID is also handed to httpclient so
// outbound calls made on behalf of the request carry X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey{}, id)
	return httpclient.WithRequestID(ctx, id)
}

// RequestIDFromContext returns the request ID, or "" if none is set.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithCorrelationID stores id in ctx and hands it to httpclient.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, correlationIDKey{}, id)
	return httpclient.WithCorrelationID(ctx, id)
}

// CorrelationIDFromContext returns the correlation ID, or "" if none is set.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// RequestID returns middleware that reuses a well-formed inbound
// X-Request-ID or generates a UUID v4. The ID is echoed in the response.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := inboundID(r.Header, headerRequestID)
			if !ok {
				id = uuid.NewString()
			}
			w.Header().Set(headerRequestID, id)
			next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
		})
	}
}

// CorrelationID returns middleware that reuses a well-formed inbound
// X-Correlation-ID, falling back to the request ID. It must run after
// RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := inboundID(r.Header, headerCorrelationID)
			if !ok {
				id = RequestIDFromContext(r.Context())
			}
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(headerCorrelationID, id)
			next.ServeHTTP(w, r.WithContext(WithCorrelationID(r.Context(), id)))
		})
	}
}

// inboundID returns the named header when it is non-empty, bounded and
// made of visible ASCII only.
func inboundID(h http.Header, name string) (string, bool) {
	v := strings.TrimSpace(h.Get(name))
	if v == "" || len(v) > maxInboundIDLength {
		return "", false
	}
	for i := range len(v) {
		if v[i] < '!' || v[i] > '~' {
			return "", false
		}
	}
	return v, true
}
