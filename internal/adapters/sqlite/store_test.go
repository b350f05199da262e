package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/remind/internal/adapters/sqlite"
	"github.com/example/remind/internal/db"
	"github.com/example/remind/internal/models"
)

// setupTestDB creates an in-memory database with the authoritative
// schema from db.GetSchemaSQL so test and production schemas cannot
// drift.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}
	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

func seedList(t *testing.T, store *sqlite.Store, name string) *models.List {
	t.Helper()
	list, err := store.CreateList(context.Background(), name, "")
	if err != nil {
		t.Fatalf("failed to seed list: %v", err)
	}
	return list
}

func TestStore_CreateList(t *testing.T) {
	store := sqlite.NewStore(setupTestDB(t))
	ctx := context.Background()

	first := seedList(t, store, "Inbox")
	second := seedList(t, store, "Work")

	if first.ID == "" || second.ID == "" {
		t.Fatal("expected assigned list IDs")
	}
	if !first.IsDefault {
		t.Error("first created list should be the default")
	}
	if second.IsDefault {
		t.Error("second list should not be the default")
	}

	lists, err := store.Lists(ctx)
	if err != nil {
		t.Fatalf("Lists failed: %v", err)
	}
	if len(lists) != 2 {
		t.Fatalf("expected 2 lists, got %d", len(lists))
	}
	if lists[0].Title != "Inbox" {
		t.Errorf("enumeration order: first = %s, want Inbox", lists[0].Title)
	}
}

func TestStore_DefaultList(t *testing.T) {
	store := sqlite.NewStore(setupTestDB(t))
	ctx := context.Background()

	got, err := store.DefaultList(ctx)
	if err != nil {
		t.Fatalf("DefaultList failed: %v", err)
	}
	if got != nil {
		t.Error("expected nil default before any list exists")
	}

	list := seedList(t, store, "Inbox")

	got, err = store.DefaultList(ctx)
	if err != nil {
		t.Fatalf("DefaultList failed: %v", err)
	}
	if got == nil || got.ID != list.ID {
		t.Errorf("expected default list %s, got %+v", list.ID, got)
	}
}

func TestStore_SaveAssignsID(t *testing.T) {
	store := sqlite.NewStore(setupTestDB(t))
	ctx := context.Background()
	list := seedList(t, store, "Inbox")

	saved, err := store.Save(ctx, &models.Reminder{ListID: list.ID, Title: "Buy milk"})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if saved.ID == "" {
		t.Fatal("expected assigned reminder ID")
	}
	if saved.CreationDate.IsZero() || saved.LastModifiedDate.IsZero() {
		t.Error("expected store-managed timestamps")
	}
}

func TestStore_SaveRoundTrip(t *testing.T) {
	store := sqlite.NewStore(setupTestDB(t))
	ctx := context.Background()
	list := seedList(t, store, "Inbox")

	due := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	absolute := time.Date(2025, time.February, 1, 8, 30, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	saved, err := store.Save(ctx, &models.Reminder{
		ListID:   list.ID,
		Title:    "Pay rent #finance",
		Notes:    "transfer before 9am",
		Priority: 1,
		DueDate:  &due,
		URL:      "https://bank.example",
		Alarms: []models.Alarm{
			{Kind: models.AlarmRelative, MinutesBefore: 60},
			{Kind: models.AlarmAbsolute, AbsoluteDate: &absolute},
			{Kind: models.AlarmLocation, Location: &models.LocationTrigger{
				Title:     "Bank",
				Latitude:  40.7,
				Longitude: -74.0,
				Radius:    100,
				Proximity: models.ProximityEntering,
			}},
		},
		RecurrenceRules: []models.RecurrenceRule{
			{Frequency: models.FrequencyMonthly, Interval: 1, EndDate: &end},
		},
	})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	fetched, err := store.Reminders(ctx, []*models.List{list})
	if err != nil {
		t.Fatalf("Reminders failed: %v", err)
	}
	if len(fetched) != 1 {
		t.Fatalf("expected 1 reminder, got %d", len(fetched))
	}

	r := fetched[0]
	if r.ID != saved.ID || r.Title != "Pay rent #finance" || r.Priority != 1 {
		t.Errorf("round trip lost fields: %+v", r)
	}
	if r.DueDate == nil || !r.DueDate.Equal(due) {
		t.Errorf("due date = %v, want %v", r.DueDate, due)
	}
	if len(r.Alarms) != 3 {
		t.Fatalf("expected 3 alarms, got %d", len(r.Alarms))
	}
	if r.Alarms[0].Kind != models.AlarmRelative || r.Alarms[0].MinutesBefore != 60 {
		t.Errorf("relative alarm lost: %+v", r.Alarms[0])
	}
	if r.Alarms[1].AbsoluteDate == nil || !r.Alarms[1].AbsoluteDate.Equal(absolute) {
		t.Errorf("absolute alarm lost: %+v", r.Alarms[1])
	}
	loc := r.Alarms[2].Location
	if loc == nil || loc.Title != "Bank" || loc.Proximity != models.ProximityEntering || loc.Radius != 100 {
		t.Errorf("location alarm lost: %+v", loc)
	}
	if len(r.RecurrenceRules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(r.RecurrenceRules))
	}
	rule := r.RecurrenceRules[0]
	if rule.Frequency != models.FrequencyMonthly || rule.Interval != 1 || rule.EndDate == nil || !rule.EndDate.Equal(end) {
		t.Errorf("recurrence rule lost: %+v", rule)
	}
}

func TestStore_SaveUpdateReplacesChildren(t *testing.T) {
	store := sqlite.NewStore(setupTestDB(t))
	ctx := context.Background()
	list := seedList(t, store, "Inbox")

	saved, err := store.Save(ctx, &models.Reminder{
		ListID: list.ID,
		Title:  "Task",
		Alarms: []models.Alarm{{Kind: models.AlarmRelative, MinutesBefore: 15}},
	})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	saved.Alarms = nil
	saved.Title = "Task renamed"
	updated, err := store.Save(ctx, saved)
	if err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	if updated.Title != "Task renamed" {
		t.Errorf("title = %s", updated.Title)
	}
	if len(updated.Alarms) != 0 {
		t.Errorf("expected alarms replaced away, got %d", len(updated.Alarms))
	}
}

func TestStore_SaveMissingReminder(t *testing.T) {
	store := sqlite.NewStore(setupTestDB(t))
	ctx := context.Background()
	seedList(t, store, "Inbox")

	_, err := store.Save(ctx, &models.Reminder{ID: "ghost", Title: "x"})
	if err == nil {
		t.Error("expected error updating a non-existent reminder")
	}
}

func TestStore_Remove(t *testing.T) {
	store := sqlite.NewStore(setupTestDB(t))
	ctx := context.Background()
	list := seedList(t, store, "Inbox")

	saved, err := store.Save(ctx, &models.Reminder{ListID: list.ID, Title: "Doomed"})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := store.Remove(ctx, saved); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	remaining, err := store.Reminders(ctx, []*models.List{list})
	if err != nil {
		t.Fatalf("Reminders failed: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("expected no reminders after removal, got %d", len(remaining))
	}

	if err := store.Remove(ctx, saved); err == nil {
		t.Error("expected error removing twice")
	}
}

func TestStore_RemoveListCascades(t *testing.T) {
	store := sqlite.NewStore(setupTestDB(t))
	ctx := context.Background()
	list := seedList(t, store, "Doomed")
	keep := seedList(t, store, "Keep")

	if _, err := store.Save(ctx, &models.Reminder{ListID: list.ID, Title: "Goes away"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := store.RemoveList(ctx, list); err != nil {
		t.Fatalf("RemoveList failed: %v", err)
	}

	lists, err := store.Lists(ctx)
	if err != nil {
		t.Fatalf("Lists failed: %v", err)
	}
	if len(lists) != 1 || lists[0].ID != keep.ID {
		t.Errorf("expected only the kept list, got %d", len(lists))
	}
}

func TestStore_RemindersEmptyListSet(t *testing.T) {
	store := sqlite.NewStore(setupTestDB(t))

	got, err := store.Reminders(context.Background(), nil)
	if err != nil {
		t.Fatalf("Reminders failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for empty list set, got %v", got)
	}
}
