// Package secondary defines the contracts the engine requires from the
// outside world. The reminder store is an opaque collaborator: the
// engine never sees how records are persisted, only that lists can be
// enumerated, records fetched per list, and a record saved or removed.
package secondary

import (
	"context"
	"errors"

	"github.com/example/remind/internal/models"
)

// ErrPermissionDenied propagates from the store when it cannot grant
// access to the underlying data. It aborts a command before any engine
// logic runs.
var ErrPermissionDenied = errors.New("no access to reminders")

// ReminderStore is the external repository contract.
type ReminderStore interface {
	// Lists enumerates all reminder lists in the store's own order.
	Lists(ctx context.Context) ([]*models.List, error)

	// DefaultList returns the store's declared default list, or nil
	// when none is declared.
	DefaultList(ctx context.Context) (*models.List, error)

	// Reminders fetches the full candidate record set for the given
	// lists. No partial results: a fetch failure fails the whole call.
	Reminders(ctx context.Context, lists []*models.List) ([]*models.Reminder, error)

	// Save persists a reminder, assigning an ID on first save, and
	// returns the stored record.
	Save(ctx context.Context, r *models.Reminder) (*models.Reminder, error)

	// Remove deletes a reminder. Terminal and irreversible.
	Remove(ctx context.Context, r *models.Reminder) error

	// CreateList creates a named list.
	CreateList(ctx context.Context, name, color string) (*models.List, error)

	// RemoveList deletes a list and everything in it.
	RemoveList(ctx context.Context, list *models.List) error
}
