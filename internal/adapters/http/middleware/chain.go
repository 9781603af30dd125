package middleware

import "net/http"

// Chain composes middlewares so the first argument is the outermost:
// Chain(Recovery, RequestID)(h) is Recovery(RequestID(h)).
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			h = middlewares[i](h)
		}
		return h
	}
}
