// Package sqlite contains the SQLite implementation of the reminder
// store contract.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/remind/internal/models"
)

// Store implements secondary.ReminderStore with SQLite.
type Store struct {
	db *sql.DB
}

// NewStore creates a new SQLite reminder store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Lists enumerates all lists in creation order.
func (s *Store) Lists(ctx context.Context) ([]*models.List, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, color, source, is_default FROM lists ORDER BY created_at, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list lists: %w", err)
	}
	defer rows.Close()

	var lists []*models.List
	for rows.Next() {
		list := &models.List{}
		if err := rows.Scan(&list.ID, &list.Title, &list.Color, &list.Source, &list.IsDefault); err != nil {
			return nil, fmt.Errorf("failed to scan list: %w", err)
		}
		lists = append(lists, list)
	}
	return lists, rows.Err()
}

// DefaultList returns the declared default list, or nil when none is.
func (s *Store) DefaultList(ctx context.Context) (*models.List, error) {
	list := &models.List{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, title, color, source, is_default FROM lists WHERE is_default = 1 LIMIT 1",
	).Scan(&list.ID, &list.Title, &list.Color, &list.Source, &list.IsDefault)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get default list: %w", err)
	}
	return list, nil
}

// Reminders fetches the full record set for the given lists, including
// alarms and recurrence rules.
func (s *Store) Reminders(ctx context.Context, lists []*models.List) ([]*models.Reminder, error) {
	if len(lists) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(lists))
	args := make([]any, len(lists))
	for i, list := range lists {
		placeholders[i] = "?"
		args[i] = list.ID
	}
	in := strings.Join(placeholders, ", ")

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, list_id, title, notes, priority, is_completed, completion_date, start_date, due_date, url, created_at, updated_at FROM reminders WHERE list_id IN ("+in+") ORDER BY created_at, id",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reminders: %w", err)
	}
	defer rows.Close()

	var reminders []*models.Reminder
	byID := map[string]*models.Reminder{}
	for rows.Next() {
		r, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, r)
		byID[r.ID] = r
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to fetch reminders: %w", err)
	}

	if len(reminders) == 0 {
		return nil, nil
	}

	ids := make([]any, len(reminders))
	idPlaceholders := make([]string, len(reminders))
	for i, r := range reminders {
		ids[i] = r.ID
		idPlaceholders[i] = "?"
	}
	idIn := strings.Join(idPlaceholders, ", ")

	if err := s.loadAlarms(ctx, idIn, ids, byID); err != nil {
		return nil, err
	}
	if err := s.loadRules(ctx, idIn, ids, byID); err != nil {
		return nil, err
	}
	return reminders, nil
}

// Save persists a reminder, assigning a stable ID on first save. Child
// alarm and recurrence rows are replaced wholesale.
func (s *Store) Save(ctx context.Context, r *models.Reminder) (*models.Reminder, error) {
	var (
		completion = nullTime(r.CompletionDate)
		start      = nullTime(r.StartDate)
		due        = nullTime(r.DueDate)
	)

	if r.ID == "" {
		r.ID = uuid.NewString()
		_, err := s.db.ExecContext(ctx,
			"INSERT INTO reminders (id, list_id, title, notes, priority, is_completed, completion_date, start_date, due_date, url) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			r.ID, r.ListID, r.Title, r.Notes, r.Priority, r.IsCompleted, completion, start, due, r.URL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create reminder: %w", err)
		}
	} else {
		result, err := s.db.ExecContext(ctx,
			"UPDATE reminders SET list_id = ?, title = ?, notes = ?, priority = ?, is_completed = ?, completion_date = ?, start_date = ?, due_date = ?, url = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
			r.ListID, r.Title, r.Notes, r.Priority, r.IsCompleted, completion, start, due, r.URL, r.ID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to update reminder: %w", err)
		}
		rowsAffected, _ := result.RowsAffected()
		if rowsAffected == 0 {
			return nil, fmt.Errorf("reminder %s not found", r.ID)
		}
	}

	if err := s.replaceAlarms(ctx, r); err != nil {
		return nil, err
	}
	if err := s.replaceRules(ctx, r); err != nil {
		return nil, err
	}

	return s.getByID(ctx, r.ID)
}

// Remove deletes a reminder and its child rows.
func (s *Store) Remove(ctx context.Context, r *models.Reminder) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM reminders WHERE id = ?", r.ID)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("reminder %s not found", r.ID)
	}
	return nil
}

// CreateList creates a named list. The first list ever created becomes
// the default.
func (s *Store) CreateList(ctx context.Context, name, color string) (*models.List, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM lists").Scan(&count); err != nil {
		return nil, fmt.Errorf("failed to count lists: %w", err)
	}

	list := &models.List{
		ID:        uuid.NewString(),
		Title:     name,
		Color:     color,
		Source:    "local",
		IsDefault: count == 0,
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO lists (id, title, color, source, is_default) VALUES (?, ?, ?, ?, ?)",
		list.ID, list.Title, list.Color, list.Source, list.IsDefault,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create list: %w", err)
	}
	return list, nil
}

// RemoveList deletes a list; reminders in it cascade away.
func (s *Store) RemoveList(ctx context.Context, list *models.List) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM lists WHERE id = ?", list.ID)
	if err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("list %s not found", list.ID)
	}
	return nil
}

func (s *Store) getByID(ctx context.Context, id string) (*models.Reminder, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, list_id, title, notes, priority, is_completed, completion_date, start_date, due_date, url, created_at, updated_at FROM reminders WHERE id = ?",
		id,
	)
	r, err := scanReminder(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("reminder %s not found", id)
	}
	if err != nil {
		return nil, err
	}

	byID := map[string]*models.Reminder{r.ID: r}
	if err := s.loadAlarms(ctx, "?", []any{r.ID}, byID); err != nil {
		return nil, err
	}
	if err := s.loadRules(ctx, "?", []any{r.ID}, byID); err != nil {
		return nil, err
	}
	return r, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReminder(row rowScanner) (*models.Reminder, error) {
	var (
		completion sql.NullTime
		start      sql.NullTime
		due        sql.NullTime
	)

	r := &models.Reminder{}
	err := row.Scan(&r.ID, &r.ListID, &r.Title, &r.Notes, &r.Priority, &r.IsCompleted,
		&completion, &start, &due, &r.URL, &r.CreationDate, &r.LastModifiedDate)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan reminder: %w", err)
	}

	r.CompletionDate = timePtr(completion)
	r.StartDate = timePtr(start)
	r.DueDate = timePtr(due)
	return r, nil
}

func (s *Store) loadAlarms(ctx context.Context, in string, ids []any, byID map[string]*models.Reminder) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT reminder_id, kind, minutes_before, absolute_date, location_title, latitude, longitude, radius, proximity FROM alarms WHERE reminder_id IN ("+in+") ORDER BY id",
		ids...,
	)
	if err != nil {
		return fmt.Errorf("failed to fetch alarms: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			reminderID string
			kind       string
			minutes    int
			absolute   sql.NullTime
			locTitle   string
			lat, lon   float64
			radius     float64
			proximity  string
		)
		if err := rows.Scan(&reminderID, &kind, &minutes, &absolute, &locTitle, &lat, &lon, &radius, &proximity); err != nil {
			return fmt.Errorf("failed to scan alarm: %w", err)
		}

		alarm := models.Alarm{
			Kind:          models.AlarmKind(kind),
			MinutesBefore: minutes,
			AbsoluteDate:  timePtr(absolute),
		}
		if alarm.Kind == models.AlarmLocation {
			alarm.Location = &models.LocationTrigger{
				Title:     locTitle,
				Latitude:  lat,
				Longitude: lon,
				Radius:    radius,
				Proximity: proximity,
			}
		}

		if r, ok := byID[reminderID]; ok {
			r.Alarms = append(r.Alarms, alarm)
		}
	}
	return rows.Err()
}

func (s *Store) loadRules(ctx context.Context, in string, ids []any, byID map[string]*models.Reminder) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT reminder_id, frequency, interval, end_date, occurrence_count FROM recurrence_rules WHERE reminder_id IN ("+in+") ORDER BY id",
		ids...,
	)
	if err != nil {
		return fmt.Errorf("failed to fetch recurrence rules: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			reminderID string
			rule       models.RecurrenceRule
			end        sql.NullTime
		)
		if err := rows.Scan(&reminderID, &rule.Frequency, &rule.Interval, &end, &rule.OccurrenceCount); err != nil {
			return fmt.Errorf("failed to scan recurrence rule: %w", err)
		}
		rule.EndDate = timePtr(end)

		if r, ok := byID[reminderID]; ok {
			r.RecurrenceRules = append(r.RecurrenceRules, rule)
		}
	}
	return rows.Err()
}

func (s *Store) replaceAlarms(ctx context.Context, r *models.Reminder) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM alarms WHERE reminder_id = ?", r.ID); err != nil {
		return fmt.Errorf("failed to clear alarms: %w", err)
	}

	for _, alarm := range r.Alarms {
		var (
			locTitle  string
			lat, lon  float64
			radius    float64
			proximity string
		)
		if alarm.Location != nil {
			locTitle = alarm.Location.Title
			lat = alarm.Location.Latitude
			lon = alarm.Location.Longitude
			radius = alarm.Location.Radius
			proximity = alarm.Location.Proximity
		}

		_, err := s.db.ExecContext(ctx,
			"INSERT INTO alarms (reminder_id, kind, minutes_before, absolute_date, location_title, latitude, longitude, radius, proximity) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
			r.ID, string(alarm.Kind), alarm.MinutesBefore, nullTime(alarm.AbsoluteDate), locTitle, lat, lon, radius, proximity,
		)
		if err != nil {
			return fmt.Errorf("failed to save alarm: %w", err)
		}
	}
	return nil
}

func (s *Store) replaceRules(ctx context.Context, r *models.Reminder) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM recurrence_rules WHERE reminder_id = ?", r.ID); err != nil {
		return fmt.Errorf("failed to clear recurrence rules: %w", err)
	}

	for _, rule := range r.RecurrenceRules {
		_, err := s.db.ExecContext(ctx,
			"INSERT INTO recurrence_rules (reminder_id, frequency, interval, end_date, occurrence_count) VALUES (?, ?, ?, ?, ?)",
			r.ID, rule.Frequency, rule.Interval, nullTime(rule.EndDate), rule.OccurrenceCount,
		)
		if err != nil {
			return fmt.Errorf("failed to save recurrence rule: %w", err)
		}
	}
	return nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}
