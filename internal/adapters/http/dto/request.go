package dto

// Field length bounds for a character name, counted in Unicode code points.
const (
	NameMinLength = 1
	NameMaxLength = 100
)

// CharacterRequest is the JSON body accepted by create and update.
// ID is optional on the wire; whether it may or must be present depends on
// the operation. Struct tags carry the shape rules checked by the validation
// package.
type CharacterRequest struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Class string `json:"class,omitempty" validate:"omitempty,oneof=gardener tactician warrior"`
}
