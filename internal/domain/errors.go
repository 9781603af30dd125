package domain

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// Sentinels wrapped by every layer and matched with errors.Is at the
// transport edge.
var (
	// ErrNotFound: no character has the requested ID.
	ErrNotFound = errors.New("not found")
	// ErrValidation: the request is malformed; see ValidationError.
	ErrValidation = errors.New("validation error")
	// ErrConflict: a character with the same ID already exists.
	ErrConflict = errors.New("conflict")
	// ErrUnavailable: the store or downstream API is refusing work.
	ErrUnavailable = errors.New("unavailable")
)

// MsgRequired is the field message used when a required value is blank.
const MsgRequired = "is required"

// ValidationError maps field names to what is wrong with them. It matches
// ErrValidation under errors.Is; use errors.As to reach Fields.
type ValidationError struct {
	Fields map[string]string
}

// Error lists the fields in name order so messages are stable.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	for i, field := range slices.Sorted(maps.Keys(e.Fields)) {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(field + ": " + e.Fields[field])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
