package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/character-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/character-service/internal/adapters/http/validation"
	"github.com/jsamuelsen11/character-service/internal/domain/character"
	"github.com/jsamuelsen11/character-service/internal/platform/logging"
)

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// routeID parses the {id} path parameter. On failure it writes a 400 problem
// and returns false.
func routeID(w http.ResponseWriter, r *http.Request) (character.ID, bool) {
	id, err := character.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteProblem(w, r, validation.RouteIDProblem())
		return character.ID{}, false
	}
	return id, true
}

// bindCharacter binds and validates the request body under vctx. On failure
// it writes the problem and returns false.
func bindCharacter(w http.ResponseWriter, r *http.Request, vctx validation.Context) (dto.CharacterRequest, bool) {
	body := http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	req, fieldErrs := validation.Bind(body)

	if problem := validation.Validate(req, fieldErrs, vctx); problem != nil {
		dto.WriteProblem(w, r, problem)
		return dto.CharacterRequest{}, false
	}
	return req, true
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}
