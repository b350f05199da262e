package query

import (
	"sort"
	"strings"

	"github.com/example/remind/internal/models"
)

// priorityRank maps priority to its sort weight: zero means "none" and
// ranks after every explicit level, not before.
func priorityRank(p int) int {
	if p == 0 {
		return 10
	}
	return p
}

// Less is the composite total order used for every list and search
// result: incomplete before completed, then by priority rank (urgent
// first, none last), then present due dates before absent with earlier
// first, then case-insensitive title, then ID so distinct records never
// compare equal.
func Less(a, b *models.Reminder) bool {
	if a.IsCompleted != b.IsCompleted {
		return !a.IsCompleted
	}

	if ra, rb := priorityRank(a.Priority), priorityRank(b.Priority); ra != rb {
		return ra < rb
	}

	switch {
	case a.DueDate != nil && b.DueDate == nil:
		return true
	case a.DueDate == nil && b.DueDate != nil:
		return false
	case a.DueDate != nil && b.DueDate != nil && !a.DueDate.Equal(*b.DueDate):
		return a.DueDate.Before(*b.DueDate)
	}

	ta, tb := strings.ToLower(a.Title), strings.ToLower(b.Title)
	if ta != tb {
		return ta < tb
	}

	return a.ID < b.ID
}

// Sort orders reminders in place by Less.
func Sort(reminders []*models.Reminder) {
	sort.Slice(reminders, func(i, j int) bool {
		return Less(reminders[i], reminders[j])
	})
}
