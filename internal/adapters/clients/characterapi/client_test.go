package characterapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsamuelsen11/character-service/internal/domain"
	"github.com/jsamuelsen11/character-service/internal/domain/character"
	"github.com/jsamuelsen11/character-service/internal/platform/config"
	"github.com/jsamuelsen11/character-service/internal/platform/httpclient"
)

const korvaID = "3f2504e0-4f89-11d3-9a0c-0305e82c3301"

// newTestClient points a Client at ts with retries disabled.
func newTestClient(t *testing.T, ts *httptest.Server) *Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: ts.URL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
	logger := slog.New(slog.DiscardHandler)

	return New(httpclient.New(cfg, "character-api-test", nil, logger), logger)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("failed to encode response: %v", err)
	}
}

func writeProblem(t *testing.T, w http.ResponseWriter, status int, detail string, errs map[string][]string) {
	t.Helper()

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]any{
		"title": http.StatusText(status), "status": status, "detail": detail, "errors": errs,
	}); err != nil {
		t.Errorf("failed to encode problem: %v", err)
	}
}

func mustID(t *testing.T, s string) character.ID {
	t.Helper()

	id, err := character.ParseID(s)
	if err != nil {
		t.Fatalf("ParseID(%q) error = %v", s, err)
	}
	return id
}

func TestClient_ListCharacters(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/characters" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, map[string]any{
			"items": []map[string]any{
				{"id": korvaID, "name": "Korva", "class": "tactician"},
				{"id": "6ba7b810-9dad-11d1-80b4-00c04fd430c8", "name": "Vasha"},
			},
		})
	}))
	t.Cleanup(ts.Close)

	got, err := newTestClient(t, ts).ListCharacters(context.Background())
	if err != nil {
		t.Fatalf("ListCharacters() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Name != "Korva" || got[0].Class != character.ClassTactician {
		t.Errorf("got[0] = %+v, want Korva the tactician", got[0])
	}
	if got[0].ID.String() != korvaID {
		t.Errorf("got[0].ID = %s, want %s", got[0].ID, korvaID)
	}
	if got[1].Class != character.ClassNone {
		t.Errorf("got[1].Class = %q, want none", got[1].Class)
	}
}

func TestClient_ListCharacters_BadIdentifier(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"items": []map[string]any{{"id": "42", "name": "Korva"}}})
	}))
	t.Cleanup(ts.Close)

	if _, err := newTestClient(t, ts).ListCharacters(context.Background()); err == nil {
		t.Fatal("ListCharacters() error = nil, want identifier parse error")
	}
}

func TestClient_GetCharacter(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/characters/"+korvaID {
			t.Errorf("path = %s", r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"id": korvaID, "name": "Korva"})
	}))
	t.Cleanup(ts.Close)

	got, err := newTestClient(t, ts).GetCharacter(context.Background(), mustID(t, korvaID))
	if err != nil {
		t.Fatalf("GetCharacter() error = %v", err)
	}
	if got.Name != "Korva" {
		t.Errorf("Name = %q, want %q", got.Name, "Korva")
	}
}

func TestClient_GetCharacter_NotFound(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeProblem(t, w, http.StatusNotFound, "character not found", nil)
	}))
	t.Cleanup(ts.Close)

	_, err := newTestClient(t, ts).GetCharacter(context.Background(), mustID(t, korvaID))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetCharacter() error = %v, want ErrNotFound", err)
	}
}

func TestClient_CreateCharacter(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		if _, ok := body["id"]; ok {
			t.Error("create body carries an id")
		}
		if body["name"] != "Korva" || body["class"] != "warrior" {
			t.Errorf("body = %v", body)
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"id": korvaID, "name": "Korva", "class": "warrior"})
	}))
	t.Cleanup(ts.Close)

	got, err := newTestClient(t, ts).CreateCharacter(context.Background(),
		character.CreateCommand{Name: "Korva", Class: character.ClassWarrior})
	if err != nil {
		t.Fatalf("CreateCharacter() error = %v", err)
	}
	if got.ID.String() != korvaID || got.Class != character.ClassWarrior {
		t.Errorf("got = %+v", got)
	}
}

func TestClient_CreateCharacter_ValidationProblem(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeProblem(t, w, http.StatusBadRequest, "Payload validation failed", map[string][]string{
			"name": {"The 'name' field must be between 1 and 100 characters."},
		})
	}))
	t.Cleanup(ts.Close)

	_, err := newTestClient(t, ts).CreateCharacter(context.Background(), character.CreateCommand{Name: "x"})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("CreateCharacter() error = %v, want *domain.ValidationError", err)
	}
	if verr.Fields["name"] != "The 'name' field must be between 1 and 100 characters." {
		t.Errorf("Fields = %v", verr.Fields)
	}
}

func TestClient_UpdateCharacter(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/characters/"+korvaID {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		if body["id"] != korvaID {
			t.Errorf("body id = %q, want route id", body["id"])
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"id": korvaID, "name": body["name"]})
	}))
	t.Cleanup(ts.Close)

	got, err := newTestClient(t, ts).UpdateCharacter(context.Background(),
		character.UpdateCommand{ID: mustID(t, korvaID), Name: "Korva the Bold"})
	if err != nil {
		t.Fatalf("UpdateCharacter() error = %v", err)
	}
	if got.Name != "Korva the Bold" {
		t.Errorf("Name = %q", got.Name)
	}
}

func TestClient_DeleteCharacter(t *testing.T) {
	t.Parallel()

	var gotMethod string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		writeJSON(t, w, http.StatusOK, map[string]any{"id": korvaID, "status": "deleted"})
	}))
	t.Cleanup(ts.Close)

	if err := newTestClient(t, ts).DeleteCharacter(context.Background(), mustID(t, korvaID)); err != nil {
		t.Fatalf("DeleteCharacter() error = %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("method = %s, want DELETE", gotMethod)
	}
}

func TestClient_ServerError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeProblem(t, w, http.StatusServiceUnavailable, "storage unavailable", nil)
	}))
	t.Cleanup(ts.Close)

	_, err := newTestClient(t, ts).ListCharacters(context.Background())
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("ListCharacters() error = %v, want ErrUnavailable", err)
	}
}

func TestClient_TransportError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	client := newTestClient(t, ts)
	ts.Close()

	if _, err := client.ListCharacters(context.Background()); err == nil {
		t.Fatal("ListCharacters() error = nil, want transport error")
	}
}

func TestClient_HealthChecker(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	t.Cleanup(ts.Close)

	client := newTestClient(t, ts)
	if got := client.Name(); got != "character-api-test" {
		t.Errorf("Name() = %q", got)
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
}
