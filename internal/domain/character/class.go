package character

// Class is the optional discriminator chosen when a character is created.
// The empty Class means no class was specified.
type Class string

const (
	ClassNone      Class = ""
	ClassTactician Class = "tactician"
	ClassWarrior   Class = "warrior"
	ClassGardener  Class = "gardener"
)

// Classes lists the named classes in alphabetical order.
func Classes() []Class {
	return []Class{ClassGardener, ClassTactician, ClassWarrior}
}

// IsValid returns true if the class is empty or one of the defined constants.
func (c Class) IsValid() bool {
	switch c {
	case ClassNone, ClassTactician, ClassWarrior, ClassGardener:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (c Class) String() string {
	return string(c)
}
