package models

// List is a named container of reminders. A reminder belongs to exactly
// one list at a time; moving a reminder mutates its ListID.
type List struct {
	ID        string
	Title     string
	Color     string
	Source    string
	IsDefault bool
}
