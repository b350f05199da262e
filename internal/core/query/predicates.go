// Package query contains the pure read-path logic shared by every list
// and search command: independent boolean predicates AND-combined into
// a filter, and the total order used to rank the filtered results.
package query

import (
	"strings"
	"time"

	"github.com/example/remind/internal/core/tags"
	"github.com/example/remind/internal/models"
)

// Predicate is an independent, side-effect-free test over a reminder.
type Predicate func(*models.Reminder) bool

// Uncompleted matches reminders not yet completed.
func Uncompleted() Predicate {
	return func(r *models.Reminder) bool { return !r.IsCompleted }
}

// Completed matches completed reminders.
func Completed() Predicate {
	return func(r *models.Reminder) bool { return r.IsCompleted }
}

// HasURL matches reminders carrying a URL.
func HasURL() Predicate {
	return func(r *models.Reminder) bool { return r.HasURL() }
}

// HasNotes matches reminders with non-empty notes.
func HasNotes() Predicate {
	return func(r *models.Reminder) bool { return r.HasNotes() }
}

// HasAlarms matches reminders with at least one alarm.
func HasAlarms() Predicate {
	return func(r *models.Reminder) bool { return r.HasAlarms() }
}

// Priority matches reminders at exactly the given level.
func Priority(level int) Predicate {
	return func(r *models.Reminder) bool { return r.Priority == level }
}

// Overdue matches incomplete reminders whose due date is before now.
func Overdue(now time.Time) Predicate {
	return func(r *models.Reminder) bool { return r.IsOverdue(now) }
}

// DueBefore matches reminders due strictly before the threshold.
// Reminders without a due date never match.
func DueBefore(threshold time.Time) Predicate {
	return func(r *models.Reminder) bool {
		return r.DueDate != nil && r.DueDate.Before(threshold)
	}
}

// DueAfter matches reminders due strictly after the threshold.
// Reminders without a due date never match.
func DueAfter(threshold time.Time) Predicate {
	return func(r *models.Reminder) bool {
		return r.DueDate != nil && r.DueDate.After(threshold)
	}
}

// Tag matches reminders whose title or notes contain the canonical
// #tag token as a literal substring.
func Tag(tag string) Predicate {
	return func(r *models.Reminder) bool {
		return tags.Contains(r.Title, tag) || tags.Contains(r.Notes, tag)
	}
}

// Text matches a case-insensitive substring of the title or notes.
func Text(q string) Predicate {
	needle := strings.ToLower(q)
	return func(r *models.Reminder) bool {
		return strings.Contains(strings.ToLower(r.Title), needle) ||
			strings.Contains(strings.ToLower(r.Notes), needle)
	}
}

// Filter returns the reminders matching every predicate. Output order
// is whatever the input order was; ranking is Sort's responsibility.
func Filter(reminders []*models.Reminder, preds []Predicate) []*models.Reminder {
	var matched []*models.Reminder
	for _, r := range reminders {
		if matchesAll(r, preds) {
			matched = append(matched, r)
		}
	}
	return matched
}

func matchesAll(r *models.Reminder, preds []Predicate) bool {
	for _, p := range preds {
		if !p(r) {
			return false
		}
	}
	return true
}
