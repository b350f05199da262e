package stats

import (
	"reflect"
	"testing"
	"time"

	"github.com/example/remind/internal/models"
)

var now = time.Date(2025, time.March, 10, 15, 0, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time { return &t }

func TestCompute_Empty(t *testing.T) {
	s := Compute(nil, now)
	if s.Total != 0 || s.CompletionRate != 0 {
		t.Errorf("empty set: got %+v", s)
	}
}

func TestCompute_Counts(t *testing.T) {
	reminders := []*models.Reminder{
		{Title: "done", IsCompleted: true, URL: "https://a"},
		{Title: "overdue", DueDate: datePtr(now.AddDate(0, 0, -1))},
		{Title: "high", Priority: 2, Notes: "n"},
		{Title: "medium", Priority: 5},
		{Title: "low", Priority: 7, Alarms: []models.Alarm{{Kind: models.AlarmRelative, MinutesBefore: 10}}},
		{Title: "completed high", Priority: 1, IsCompleted: true},
	}

	s := Compute(reminders, now)

	if s.Total != 6 || s.Completed != 2 || s.Incomplete != 4 {
		t.Errorf("totals wrong: %+v", s)
	}
	if want := float64(2) / 6 * 100; s.CompletionRate != want {
		t.Errorf("completion rate = %v, want %v", s.CompletionRate, want)
	}
	if s.Overdue != 1 {
		t.Errorf("overdue = %d, want 1", s.Overdue)
	}
	// Priority bands count incomplete records only.
	if s.HighPriority != 1 || s.MediumPriority != 1 || s.LowPriority != 1 {
		t.Errorf("priority bands wrong: %+v", s)
	}
	if s.WithURL != 1 || s.WithNotes != 1 || s.WithAlarms != 1 {
		t.Errorf("feature counts wrong: %+v", s)
	}
}

func TestCompute_DueBuckets(t *testing.T) {
	today := time.Date(2025, time.March, 10, 18, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)
	inFive := today.AddDate(0, 0, 5)
	inNine := today.AddDate(0, 0, 9)

	reminders := []*models.Reminder{
		{Title: "today", DueDate: datePtr(today)},
		{Title: "tomorrow", DueDate: datePtr(tomorrow)},
		{Title: "this week", DueDate: datePtr(inFive)},
		{Title: "beyond", DueDate: datePtr(inNine)},
		{Title: "done today", DueDate: datePtr(today), IsCompleted: true},
	}

	s := Compute(reminders, now)

	if s.DueToday != 1 {
		t.Errorf("due today = %d, want 1", s.DueToday)
	}
	if s.DueTomorrow != 1 {
		t.Errorf("due tomorrow = %d, want 1", s.DueTomorrow)
	}
	// Today, tomorrow, and in-five-days all fall within seven days.
	if s.DueThisWeek != 3 {
		t.Errorf("due this week = %d, want 3", s.DueThisWeek)
	}
}

func TestTagFrequencies(t *testing.T) {
	reminders := []*models.Reminder{
		{Title: "a #work", Notes: "legacy #work"},
		{Title: "b #work #home"},
		{Title: "c #home"},
		{Title: "d #errands"},
	}

	got := TagFrequencies(reminders)
	want := []TagCount{
		{Tag: "home", Count: 2},
		{Tag: "work", Count: 2},
		{Tag: "errands", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TagFrequencies = %v, want %v", got, want)
	}
}
