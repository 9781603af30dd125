package handlers

import (
	"fmt"
	"net/http"

	"github.com/jsamuelsen11/character-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/character-service/internal/adapters/http/validation"
	"github.com/jsamuelsen11/character-service/internal/domain"
	"github.com/jsamuelsen11/character-service/internal/domain/character"
	"github.com/jsamuelsen11/character-service/internal/ports"
)

// CharacterHandler handles HTTP requests for character CRUD operations.
type CharacterHandler struct {
	service ports.CharacterService
}

// NewCharacterHandler creates a new CharacterHandler with the given service port.
func NewCharacterHandler(service ports.CharacterService) *CharacterHandler {
	return &CharacterHandler{service: service}
}

// ListCharacters handles GET /api/characters.
func (h *CharacterHandler) ListCharacters(w http.ResponseWriter, r *http.Request) {
	cs, err := h.service.List(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCharacterListResponse(cs))
}

// CreateCharacter handles POST /api/characters. The identifier is assigned
// by the server; a payload carrying one is rejected.
func (h *CharacterHandler) CreateCharacter(w http.ResponseWriter, r *http.Request) {
	req, ok := bindCharacter(w, r, validation.ForCreate())
	if !ok {
		return
	}

	created, err := h.service.Create(r.Context(), character.CreateCommand{
		Name:  req.Name,
		Class: character.Class(req.Class),
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCharacterResponse(created))
}

// GetCharacter handles GET /api/characters/{id}.
func (h *CharacterHandler) GetCharacter(w http.ResponseWriter, r *http.Request) {
	id, ok := routeID(w, r)
	if !ok {
		return
	}

	c, err := h.service.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if c == nil {
		dto.WriteErrorResponse(w, r, notFound(id))
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCharacterResponse(*c))
}

// UpdateCharacter handles PUT /api/characters/{id}. The payload id must
// match the route id.
func (h *CharacterHandler) UpdateCharacter(w http.ResponseWriter, r *http.Request) {
	id, ok := routeID(w, r)
	if !ok {
		return
	}

	req, ok := bindCharacter(w, r, validation.ForUpdate(id))
	if !ok {
		return
	}

	updated, err := h.service.Update(r.Context(), character.UpdateCommand{ID: id, Name: req.Name})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if updated == nil {
		dto.WriteErrorResponse(w, r, notFound(id))
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCharacterResponse(*updated))
}

// DeleteCharacter handles DELETE /api/characters/{id}. It confirms the
// delete whether or not the character existed.
func (h *CharacterHandler) DeleteCharacter(w http.ResponseWriter, r *http.Request) {
	id, ok := routeID(w, r)
	if !ok {
		return
	}

	if _, err := h.service.Delete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToDeleteCharacterResponse(id))
}

func notFound(id character.ID) error {
	return fmt.Errorf("character %s: %w", id, domain.ErrNotFound)
}
