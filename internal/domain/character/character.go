// Package character holds the Character entity, its identifier and the
// commands accepted by the character service.
package character

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/character-service/internal/domain"
)

// Character is a named game character. Values are treated as immutable:
// changes produce a new value through WithName.
type Character struct {
	ID    ID
	Name  string
	Class Class
}

// New builds a Character and checks its business rules.
func New(id ID, name string, class Class) (Character, error) {
	c := Character{ID: id, Name: name, Class: class}
	if err := c.Validate(); err != nil {
		return Character{}, err
	}
	return c, nil
}

// WithName returns a copy of the character carrying a new name.
func (c Character) WithName(name string) Character {
	c.Name = name
	return c
}

// Validate checks business rules for the Character entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (c Character) Validate() error {
	fields := make(map[string]string)

	if c.ID.IsZero() {
		fields["id"] = domain.MsgRequired
	}
	if IsBlankName(c.Name) {
		fields["name"] = domain.MsgRequired
	}
	if !c.Class.IsValid() {
		fields["class"] = fmt.Sprintf("invalid: %q", c.Class)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// IsBlankName reports whether name is empty or whitespace only.
func IsBlankName(name string) bool {
	return strings.TrimSpace(name) == ""
}
