package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		write       func(*responseWriter)
		wantStatus  int
		wantWritten int64
		wantHeader  bool
	}{
		{name: "untouched", write: func(*responseWriter) {}, wantStatus: http.StatusOK},
		{
			name:       "explicit status",
			write:      func(rw *responseWriter) { rw.WriteHeader(http.StatusNotFound) },
			wantStatus: http.StatusNotFound,
			wantHeader: true,
		},
		{
			name: "first status wins",
			write: func(rw *responseWriter) {
				rw.WriteHeader(http.StatusBadRequest)
				rw.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus: http.StatusBadRequest,
			wantHeader: true,
		},
		{
			name: "implicit ok on write",
			write: func(rw *responseWriter) {
				_, _ = rw.Write([]byte("Pong"))
				_, _ = rw.Write([]byte("!"))
			},
			wantStatus:  http.StatusOK,
			wantWritten: 5,
			wantHeader:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rw := newResponseWriter(httptest.NewRecorder())
			tt.write(rw)

			if rw.statusCode != tt.wantStatus {
				t.Errorf("statusCode = %d, want %d", rw.statusCode, tt.wantStatus)
			}
			if rw.written != tt.wantWritten {
				t.Errorf("written = %d, want %d", rw.written, tt.wantWritten)
			}
			if rw.headerWritten != tt.wantHeader {
				t.Errorf("headerWritten = %v, want %v", rw.headerWritten, tt.wantHeader)
			}
		})
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	if newResponseWriter(rec).Unwrap() != rec {
		t.Error("Unwrap() did not return the wrapped writer")
	}
}
