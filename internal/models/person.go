package models

// Person is a member of the group sharing expenses.
type Person struct {
	// ID is the stable identifier (e.g. "P3"). Assigned once, never reused.
	ID string

	// Name is the display name. Unique among current people, ignoring case.
	Name string

	// TotalPaid is the cumulative amount this person paid in the current cycle.
	// Removing an expense subtracts without clamping, so it can dip below zero.
	TotalPaid float64

	// ColorHex is the display color (e.g. "#4ECDC4"). Set at creation.
	ColorHex string
}

// NewPerson returns a person with no id and nothing paid yet.
func NewPerson(name, colorHex string) *Person {
	return &Person{Name: name, ColorHex: colorHex}
}
