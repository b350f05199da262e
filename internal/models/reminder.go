// Package models contains domain types for remind entities.
// SQL persistence lives in internal/adapters/sqlite/*.go
package models

import "time"

// Reminder represents a single task record.
// The ID is assigned by the store on first save and is immutable after that.
type Reminder struct {
	ID               string
	ListID           string
	Title            string
	Notes            string
	Priority         int
	IsCompleted      bool
	CompletionDate   *time.Time
	StartDate        *time.Time
	DueDate          *time.Time
	URL              string
	Alarms           []Alarm
	RecurrenceRules  []RecurrenceRule
	CreationDate     time.Time
	LastModifiedDate time.Time
}

// Priority bands. 0 means no priority; lower non-zero values are more urgent.
const (
	PriorityNone   = 0
	PriorityHigh   = 1
	PriorityMedium = 5
	PriorityLow    = 9
)

// PrioritySymbol returns the glyph for the reminder's priority band.
func (r *Reminder) PrioritySymbol() string {
	switch {
	case r.Priority >= 1 && r.Priority <= 4:
		return "!!!"
	case r.Priority == 5:
		return "!!"
	case r.Priority >= 6 && r.Priority <= 9:
		return "!"
	default:
		return ""
	}
}

// PriorityDescription returns the symbolic view of the priority band.
func (r *Reminder) PriorityDescription() string {
	switch {
	case r.Priority >= 1 && r.Priority <= 4:
		return "High"
	case r.Priority == 5:
		return "Medium"
	case r.Priority >= 6 && r.Priority <= 9:
		return "Low"
	default:
		return "None"
	}
}

// HasURL reports whether the reminder carries a URL.
func (r *Reminder) HasURL() bool {
	return r.URL != ""
}

// HasNotes reports whether the reminder carries non-empty notes.
func (r *Reminder) HasNotes() bool {
	return r.Notes != ""
}

// HasAlarms reports whether the reminder has at least one alarm of any kind.
func (r *Reminder) HasAlarms() bool {
	return len(r.Alarms) > 0
}

// IsOverdue reports whether the reminder is incomplete with a due date in the past.
func (r *Reminder) IsOverdue(now time.Time) bool {
	return !r.IsCompleted && r.DueDate != nil && r.DueDate.Before(now)
}
