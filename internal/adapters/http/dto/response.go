// Package dto provides the JSON contract of the character API and its
// problem+json error responses.
package dto

import (
	"github.com/samber/lo"

	"github.com/jsamuelsen11/character-service/internal/domain/character"
)

// StatusDeleted is the confirmation sent for every delete.
const StatusDeleted = "deleted"

// CharacterResponse represents a single character in HTTP responses.
type CharacterResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Class string `json:"class,omitempty"`
}

// CharacterListResponse wraps the list endpoint's items.
type CharacterListResponse struct {
	Items []CharacterResponse `json:"items"`
}

// DeleteCharacterResponse confirms a delete. It is returned whether or not
// the character existed.
type DeleteCharacterResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ToCharacterResponse converts a domain Character to its wire form.
func ToCharacterResponse(c character.Character) CharacterResponse {
	return CharacterResponse{
		ID:    c.ID.String(),
		Name:  c.Name,
		Class: c.Class.String(),
	}
}

// ToCharacterListResponse converts characters to the list contract. Items is
// never null on the wire.
func ToCharacterListResponse(cs []character.Character) CharacterListResponse {
	return CharacterListResponse{
		Items: lo.Map(cs, func(c character.Character, _ int) CharacterResponse {
			return ToCharacterResponse(c)
		}),
	}
}

// ToDeleteCharacterResponse builds the delete confirmation for id.
func ToDeleteCharacterResponse(id character.ID) DeleteCharacterResponse {
	return DeleteCharacterResponse{ID: id.String(), Status: StatusDeleted}
}
