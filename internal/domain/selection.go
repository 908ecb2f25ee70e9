package domain

// Selection is one demo flag found on the command line.
// Value is empty when the flag was given without a value.
type Selection struct {
	Argument string
	Value    string
}
