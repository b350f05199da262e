package query

import (
	"math/rand"
	"testing"
	"time"

	"github.com/example/remind/internal/models"
)

var now = time.Date(2025, time.January, 20, 12, 0, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time { return &t }

func reminder(mutate func(*models.Reminder)) *models.Reminder {
	r := &models.Reminder{ID: "R-1", Title: "Untitled"}
	if mutate != nil {
		mutate(r)
	}
	return r
}

func TestCompletionPredicates(t *testing.T) {
	open := reminder(nil)
	done := reminder(func(r *models.Reminder) { r.IsCompleted = true })

	if !Uncompleted()(open) || Uncompleted()(done) {
		t.Error("Uncompleted predicate wrong")
	}
	if Completed()(open) || !Completed()(done) {
		t.Error("Completed predicate wrong")
	}
}

func TestPresencePredicates(t *testing.T) {
	r := reminder(func(r *models.Reminder) {
		r.URL = "https://example.com"
		r.Notes = "some notes"
		r.Alarms = []models.Alarm{{Kind: models.AlarmRelative, MinutesBefore: 15}}
	})
	empty := reminder(nil)

	if !HasURL()(r) || HasURL()(empty) {
		t.Error("HasURL predicate wrong")
	}
	if !HasNotes()(r) || HasNotes()(empty) {
		t.Error("HasNotes predicate wrong")
	}
	if !HasAlarms()(r) || HasAlarms()(empty) {
		t.Error("HasAlarms predicate wrong")
	}
}

func TestOverdue(t *testing.T) {
	yesterday := now.AddDate(0, 0, -1)

	due := reminder(func(r *models.Reminder) { r.DueDate = datePtr(yesterday) })
	if !Overdue(now)(due) {
		t.Error("expected overdue for past due date")
	}

	completed := reminder(func(r *models.Reminder) {
		r.DueDate = datePtr(yesterday)
		r.IsCompleted = true
	})
	if Overdue(now)(completed) {
		t.Error("completed reminders are never overdue")
	}

	if Overdue(now)(reminder(nil)) {
		t.Error("reminders without a due date are never overdue")
	}
}

func TestDueBeforeAfter(t *testing.T) {
	threshold := now
	early := reminder(func(r *models.Reminder) { r.DueDate = datePtr(now.AddDate(0, 0, -2)) })
	late := reminder(func(r *models.Reminder) { r.DueDate = datePtr(now.AddDate(0, 0, 2)) })
	exact := reminder(func(r *models.Reminder) { r.DueDate = datePtr(now) })
	none := reminder(nil)

	if !DueBefore(threshold)(early) || DueBefore(threshold)(late) {
		t.Error("DueBefore wrong")
	}
	if !DueAfter(threshold)(late) || DueAfter(threshold)(early) {
		t.Error("DueAfter wrong")
	}
	// Strict comparison: the threshold itself matches neither.
	if DueBefore(threshold)(exact) || DueAfter(threshold)(exact) {
		t.Error("threshold instant must match neither side")
	}
	if DueBefore(threshold)(none) || DueAfter(threshold)(none) {
		t.Error("absent due date never matches date filters")
	}
}

func TestTagAndText(t *testing.T) {
	r := reminder(func(r *models.Reminder) {
		r.Title = "Buy milk #shopping"
		r.Notes = "legacy #errands note"
	})

	if !Tag("shopping")(r) || !Tag("#shopping")(r) {
		t.Error("Tag should match title tags with or without leading #")
	}
	if !Tag("errands")(r) {
		t.Error("Tag should match legacy notes tags")
	}
	if Tag("work")(r) {
		t.Error("Tag matched absent tag")
	}

	if !Text("BUY MILK")(r) || !Text("legacy")(r) || Text("absent")(r) {
		t.Error("Text predicate wrong")
	}
}

func TestFilter_OrderInsensitive(t *testing.T) {
	rs := []*models.Reminder{
		reminder(func(r *models.Reminder) { r.ID = "a"; r.Priority = 1; r.URL = "https://a" }),
		reminder(func(r *models.Reminder) { r.ID = "b"; r.Priority = 1 }),
		reminder(func(r *models.Reminder) { r.ID = "c"; r.Priority = 5; r.URL = "https://c" }),
	}

	preds := []Predicate{Priority(1), HasURL()}
	forward := Filter(rs, preds)
	reversed := Filter(rs, []Predicate{HasURL(), Priority(1)})

	if len(forward) != 1 || forward[0].ID != "a" {
		t.Fatalf("expected only reminder a, got %d", len(forward))
	}
	if len(reversed) != 1 || reversed[0].ID != forward[0].ID {
		t.Error("predicate declaration order changed the filtered set")
	}
}

func TestFilter_ConflictingCompletionFlags(t *testing.T) {
	rs := []*models.Reminder{
		reminder(func(r *models.Reminder) { r.ID = "open" }),
		reminder(func(r *models.Reminder) { r.ID = "done"; r.IsCompleted = true }),
	}

	// Both flags AND-combine to an empty set.
	if got := Filter(rs, []Predicate{Uncompleted(), Completed()}); got != nil {
		t.Errorf("expected empty set for conflicting flags, got %d", len(got))
	}
}

func TestLess_PriorityBeatsDueDate(t *testing.T) {
	urgent := reminder(func(r *models.Reminder) {
		r.ID = "urgent"
		r.Priority = 1
		r.DueDate = datePtr(time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC))
	})
	unranked := reminder(func(r *models.Reminder) {
		r.ID = "unranked"
		r.Priority = 0
		r.DueDate = datePtr(time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC))
	})

	if !Less(urgent, unranked) || Less(unranked, urgent) {
		t.Error("priority 1 must sort before priority 0 despite the later due date")
	}
}

func TestLess_ZeroPriorityRanksLast(t *testing.T) {
	low := reminder(func(r *models.Reminder) { r.ID = "low"; r.Priority = 9 })
	none := reminder(func(r *models.Reminder) { r.ID = "none"; r.Priority = 0 })

	if !Less(low, none) {
		t.Error("explicit low priority must sort before no priority")
	}
}

func TestLess_Keys(t *testing.T) {
	jan5 := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)
	jan9 := time.Date(2025, time.January, 9, 0, 0, 0, 0, time.UTC)

	ordered := []*models.Reminder{
		reminder(func(r *models.Reminder) { r.ID = "1"; r.Priority = 1; r.DueDate = datePtr(jan9) }),
		reminder(func(r *models.Reminder) { r.ID = "2"; r.Priority = 5; r.DueDate = datePtr(jan5) }),
		reminder(func(r *models.Reminder) { r.ID = "3"; r.Priority = 5; r.DueDate = datePtr(jan9) }),
		reminder(func(r *models.Reminder) { r.ID = "4"; r.Priority = 5; r.Title = "alpha" }),
		reminder(func(r *models.Reminder) { r.ID = "5"; r.Priority = 5; r.Title = "Beta" }),
		reminder(func(r *models.Reminder) { r.ID = "6" }),
		reminder(func(r *models.Reminder) { r.ID = "7"; r.IsCompleted = true; r.Priority = 1 }),
	}

	for i := 0; i < len(ordered); i++ {
		for j := i + 1; j < len(ordered); j++ {
			if !Less(ordered[i], ordered[j]) {
				t.Errorf("expected %s < %s", ordered[i].ID, ordered[j].ID)
			}
			if Less(ordered[j], ordered[i]) {
				t.Errorf("unexpected %s < %s", ordered[j].ID, ordered[i].ID)
			}
		}
	}
}

func TestLess_StrictTotalOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	dates := []*time.Time{nil, datePtr(now), datePtr(now.AddDate(0, 0, 3))}
	titles := []string{"alpha", "Alpha", "beta"}

	var rs []*models.Reminder
	for i := 0; i < 40; i++ {
		i := i
		rs = append(rs, reminder(func(r *models.Reminder) {
			r.ID = string(rune('a' + i%26))
			r.Priority = rng.Intn(10)
			r.IsCompleted = rng.Intn(2) == 0
			r.DueDate = dates[rng.Intn(len(dates))]
			r.Title = titles[rng.Intn(len(titles))]
		}))
	}

	for _, a := range rs {
		if Less(a, a) {
			t.Fatal("irreflexivity violated")
		}
		for _, b := range rs {
			if a != b && Less(a, b) && Less(b, a) {
				t.Fatal("asymmetry violated")
			}
			for _, c := range rs {
				if Less(a, b) && Less(b, c) && !Less(a, c) {
					t.Fatal("transitivity violated")
				}
			}
		}
	}
}

func TestSort(t *testing.T) {
	done := reminder(func(r *models.Reminder) { r.ID = "done"; r.IsCompleted = true })
	urgent := reminder(func(r *models.Reminder) { r.ID = "urgent"; r.Priority = 1 })
	plain := reminder(func(r *models.Reminder) { r.ID = "plain" })

	rs := []*models.Reminder{done, plain, urgent}
	Sort(rs)

	want := []string{"urgent", "plain", "done"}
	for i, id := range want {
		if rs[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, rs[i].ID, id)
		}
	}
}
