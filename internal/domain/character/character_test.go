package character

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/character-service/internal/domain"
)

// requireValidationField is a test helper that asserts err wraps domain.ErrValidation
// and the resulting ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	id := NewID()

	tests := []struct {
		name      string
		id        ID
		charName  string
		class     Class
		wantField string
	}{
		{name: "valid without class", id: id, charName: "Aria"},
		{name: "valid with class", id: id, charName: "Aria", class: ClassWarrior},
		{name: "zero id", id: ID{}, charName: "Aria", wantField: "id"},
		{name: "empty name", id: id, charName: "", wantField: "name"},
		{name: "whitespace name", id: id, charName: "   ", wantField: "name"},
		{name: "unknown class", id: id, charName: "Aria", class: "bard", wantField: "class"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := New(tt.id, tt.charName, tt.class)
			if tt.wantField != "" {
				requireValidationField(t, err, tt.wantField)
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v, want nil", err)
			}
			if got.ID != tt.id || got.Name != tt.charName || got.Class != tt.class {
				t.Errorf("New() = %+v, want {%v %q %q}", got, tt.id, tt.charName, tt.class)
			}
		})
	}
}

func TestCharacter_WithName(t *testing.T) {
	t.Parallel()

	original := Character{ID: NewID(), Name: "Aria", Class: ClassGardener}
	renamed := original.WithName("Bran")

	if renamed.Name != "Bran" {
		t.Errorf("WithName().Name = %q, want %q", renamed.Name, "Bran")
	}
	if renamed.ID != original.ID {
		t.Errorf("WithName().ID = %v, want %v", renamed.ID, original.ID)
	}
	if renamed.Class != original.Class {
		t.Errorf("WithName().Class = %q, want %q", renamed.Class, original.Class)
	}
	if original.Name != "Aria" {
		t.Errorf("original.Name = %q after WithName, want unchanged", original.Name)
	}
}

func TestParseID(t *testing.T) {
	t.Parallel()

	const canonical = "3f2504e0-4f89-11d3-9a0c-0305e82c3301"
	want := IDFromUUID(uuid.MustParse(canonical))

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "canonical", input: canonical},
		{name: "upper case", input: "3F2504E0-4F89-11D3-9A0C-0305E82C3301"},
		{name: "braces", input: "{3f2504e0-4f89-11d3-9a0c-0305e82c3301}"},
		{name: "urn", input: "urn:uuid:3f2504e0-4f89-11d3-9a0c-0305e82c3301"},
		{name: "surrounding whitespace", input: "  " + canonical + "\t"},
		{name: "no hyphens", input: "3f2504e04f8911d39a0c0305e82c3301"},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "not-a-guid", wantErr: true},
		{name: "truncated", input: "3f2504e0-4f89-11d3-9a0c", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseID(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseID(%q) error = nil, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseID(%q) error = %v", tt.input, err)
			}
			if got != want {
				t.Errorf("ParseID(%q) = %v, want %v", tt.input, got, want)
			}
			if got.String() != canonical {
				t.Errorf("String() = %q, want %q", got.String(), canonical)
			}
		})
	}
}

func TestID_TextRoundTrip(t *testing.T) {
	t.Parallel()

	id := NewID()
	text, err := id.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}

	var got ID
	if err := got.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if got != id {
		t.Errorf("UnmarshalText() = %v, want %v", got, id)
	}

	if err := got.UnmarshalText([]byte("nope")); err == nil {
		t.Error("UnmarshalText(\"nope\") error = nil, want error")
	}
}

func TestClass_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		class Class
		want  bool
	}{
		{class: ClassNone, want: true},
		{class: ClassTactician, want: true},
		{class: ClassWarrior, want: true},
		{class: ClassGardener, want: true},
		{class: "Warrior", want: false},
		{class: "bard", want: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.class), func(t *testing.T) {
			t.Parallel()

			if got := tt.class.IsValid(); got != tt.want {
				t.Errorf("Class(%q).IsValid() = %v, want %v", tt.class, got, tt.want)
			}
		})
	}
}
