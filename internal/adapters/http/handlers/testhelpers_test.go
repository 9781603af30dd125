package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/character-service/internal/domain/character"
)

const testGUID = "3f2504e0-4f89-11d3-9a0c-0305e82c3301"

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func testID(t *testing.T) character.ID {
	t.Helper()
	id, err := character.ParseID(testGUID)
	if err != nil {
		t.Fatalf("ParseID() error = %v", err)
	}
	return id
}

func validCharacter(t *testing.T) character.Character {
	t.Helper()
	return character.Character{ID: testID(t), Name: "Frodo", Class: character.ClassGardener}
}

func newRequest(method, target, body string) *http.Request {
	if body == "" {
		return httptest.NewRequest(method, target, http.NoBody)
	}
	return httptest.NewRequest(method, target, strings.NewReader(body))
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
