package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/character-service/internal/adapters/http/dto"
)

// errPanic stands in for the panic value in the client response; the value
// and stack only go to the log.
var errPanic = errors.New("handler panicked")

// Recovery returns middleware that turns a handler panic into a generic 500
// problem. http.ErrAbortHandler is re-raised so net/http can abort the
// connection as intended. When the handler already started the response only
// the log entry is written.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity, as net/http does
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if !rw.headerWritten {
					resp := dto.NewErrorResponse(r, errPanic)
					dto.WriteProblem(rw, r, &resp)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
