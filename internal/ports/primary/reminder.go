// Package primary defines the service interfaces offered to the CLI
// along with their request and response types.
package primary

import (
	"context"

	"github.com/example/remind/internal/models"
)

// UpdateField names a field an update directive targets.
type UpdateField string

// Fields addressable by update directives. Adding a field means adding
// a constant here and one entry to the dispatch table in the service.
const (
	FieldTitle     UpdateField = "title"
	FieldPriority  UpdateField = "priority"
	FieldDueDate   UpdateField = "due-date"
	FieldStartDate UpdateField = "start-date"
	FieldNotes     UpdateField = "notes"
	FieldURL       UpdateField = "url"
	FieldList      UpdateField = "list"
)

// UpdateDirective is one requested field change, applied independently
// of the others.
type UpdateDirective struct {
	Field UpdateField
	Value string
}

// CreateReminderRequest carries the raw option strings for a create.
// Optional date and priority values that fail to parse are silently
// skipped for that field.
type CreateReminderRequest struct {
	Name               string
	ListName           string
	DueDate            string
	StartDate          string
	Notes              string
	Priority           string
	URL                string
	AlarmMinutesBefore int // > 0 requests a relative alarm
}

// CreateReminderResponse reports the created record and its list.
type CreateReminderResponse struct {
	Reminder *models.Reminder
	List     *models.List
}

// UpdateReminderRequest locates a record and applies field directives.
type UpdateReminderRequest struct {
	Name       string
	ListName   string
	Directives []UpdateDirective
}

// UpdateReminderResponse reports whether anything changed. Updated is
// false exactly when no recognized directive was supplied; that is an
// informational outcome, not an error.
type UpdateReminderResponse struct {
	Updated  bool
	Reminder *models.Reminder
}

// CompleteReminderResponse reports a completion. AlreadyCompleted marks
// the informational no-op case.
type CompleteReminderResponse struct {
	AlreadyCompleted bool
	Reminder         *models.Reminder
	List             *models.List
}

// ReminderDetail pairs a reminder with its owning list for display.
type ReminderDetail struct {
	Reminder *models.Reminder
	List     *models.List
}

// ListRemindersRequest filters the per-list read command.
type ListRemindersRequest struct {
	ListName        string
	UncompletedOnly bool
	Priority        string
	HasURL          bool
	HasAlarms       bool
}

// ListGroup is one list with its filtered, ranked reminders.
type ListGroup struct {
	List      *models.List
	Reminders []*models.Reminder
}

// SearchRemindersRequest carries the raw filter options for a search.
// Unparseable date or priority filters are skipped, not fatal.
type SearchRemindersRequest struct {
	Query       string
	ListName    string
	Priority    string
	Tag         string
	HasURL      bool
	HasNotes    bool
	HasAlarms   bool
	Overdue     bool
	Completed   bool
	Uncompleted bool
	DueBefore   string
	DueAfter    string
}

// AddAlarmRequest attaches an alarm to a matched reminder. Exactly one
// of MinutesBefore (> 0) or AbsoluteDate must be supplied.
type AddAlarmRequest struct {
	Name          string
	ListName      string
	MinutesBefore int
	AbsoluteDate  string
}

// AddRecurrenceRequest attaches a recurrence rule.
type AddRecurrenceRequest struct {
	Name            string
	ListName        string
	Frequency       string
	Interval        int
	EndDate         string
	OccurrenceCount int
}

// AddLocationRequest attaches a location-triggered alarm.
type AddLocationRequest struct {
	Name      string
	ListName  string
	Title     string
	Latitude  float64
	Longitude float64
	Radius    float64
	Proximity string
}

// RemoveEntriesResponse reports a remove-all mutation. Removed is zero
// when the targeted collection was already empty, which is
// informational rather than an error.
type RemoveEntriesResponse struct {
	Removed  int
	Reminder *models.Reminder
}

// AddTagResponse reports a tag mutation. AlreadyExists marks the no-op
// case where the canonical tag was present in the title.
type AddTagResponse struct {
	AlreadyExists bool
	Tag           string
	Reminder      *models.Reminder
}

// ReminderService is the primary port for reminder reads and mutations.
type ReminderService interface {
	Create(ctx context.Context, req CreateReminderRequest) (*CreateReminderResponse, error)
	Update(ctx context.Context, req UpdateReminderRequest) (*UpdateReminderResponse, error)
	Complete(ctx context.Context, name, listName string) (*CompleteReminderResponse, error)
	Delete(ctx context.Context, name, listName string) (*ReminderDetail, error)
	Show(ctx context.Context, name, listName string) (*ReminderDetail, error)
	List(ctx context.Context, req ListRemindersRequest) ([]*ListGroup, error)
	Search(ctx context.Context, req SearchRemindersRequest) ([]*models.Reminder, error)
	AddAlarm(ctx context.Context, req AddAlarmRequest) (*models.Reminder, error)
	RemoveAlarms(ctx context.Context, name, listName string) (*RemoveEntriesResponse, error)
	AddRecurrence(ctx context.Context, req AddRecurrenceRequest) (*models.Reminder, error)
	RemoveRecurrences(ctx context.Context, name, listName string) (*RemoveEntriesResponse, error)
	AddLocationTrigger(ctx context.Context, req AddLocationRequest) (*models.Reminder, error)
	RemoveLocationTriggers(ctx context.Context, name, listName string) (*RemoveEntriesResponse, error)
	AddTag(ctx context.Context, name, listName, tag string) (*AddTagResponse, error)
	AddSubtask(ctx context.Context, name, listName, text string) (*models.Reminder, error)
}
