package character

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID uniquely identifies a Character. It is a value type: two IDs are equal
// when they wrap the same UUID, regardless of the textual form they were
// parsed from.
type ID struct {
	value uuid.UUID
}

// NewID returns a randomly generated identifier.
func NewID() ID {
	return ID{value: uuid.New()}
}

// IDFromUUID wraps an existing UUID.
func IDFromUUID(u uuid.UUID) ID {
	return ID{value: u}
}

// ParseID parses the textual form of an identifier. Surrounding whitespace is
// ignored; any format accepted by uuid.Parse is valid.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return ID{}, fmt.Errorf("parsing character id %q: %w", s, err)
	}
	return ID{value: u}, nil
}

// UUID returns the wrapped UUID.
func (id ID) UUID() uuid.UUID {
	return id.value
}

// IsZero reports whether the identifier is the nil UUID.
func (id ID) IsZero() bool {
	return id.value == uuid.Nil
}

// String returns the canonical lower-case hyphenated form.
func (id ID) String() string {
	return id.value.String()
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.value.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(b []byte) error {
	parsed, err := ParseID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
