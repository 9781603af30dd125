package character

// CreateCommand carries the input for creating a character.
type CreateCommand struct {
	Name  string
	Class Class
}

// UpdateCommand replaces the name of the character identified by ID.
type UpdateCommand struct {
	ID   ID
	Name string
}
