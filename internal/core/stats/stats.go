// Package stats computes aggregate views over a reminder snapshot.
package stats

import (
	"sort"
	"time"

	"github.com/example/remind/internal/core/tags"
	"github.com/example/remind/internal/models"
)

// Summary is the aggregate view the stats command renders.
type Summary struct {
	Total          int
	Completed      int
	Incomplete     int
	CompletionRate float64 // percentage, 0 when Total is 0
	Overdue        int

	// Incomplete reminders per priority band.
	HighPriority   int
	MediumPriority int
	LowPriority    int

	WithURL    int
	WithNotes  int
	WithAlarms int

	// Incomplete reminders bucketed against the start of the current
	// local day.
	DueToday    int
	DueTomorrow int
	DueThisWeek int
}

// Compute aggregates the record set against the given instant.
func Compute(reminders []*models.Reminder, now time.Time) Summary {
	var s Summary
	s.Total = len(reminders)

	today := startOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)
	nextWeek := today.AddDate(0, 0, 7)

	for _, r := range reminders {
		if r.IsCompleted {
			s.Completed++
		}
		if r.IsOverdue(now) {
			s.Overdue++
		}

		if !r.IsCompleted {
			switch {
			case r.Priority >= 1 && r.Priority <= 4:
				s.HighPriority++
			case r.Priority == 5:
				s.MediumPriority++
			case r.Priority >= 6 && r.Priority <= 9:
				s.LowPriority++
			}
		}

		if r.HasURL() {
			s.WithURL++
		}
		if r.HasNotes() {
			s.WithNotes++
		}
		if r.HasAlarms() {
			s.WithAlarms++
		}

		if !r.IsCompleted && r.DueDate != nil {
			due := *r.DueDate
			if sameDay(due, today) {
				s.DueToday++
			}
			if sameDay(due, tomorrow) {
				s.DueTomorrow++
			}
			if !due.Before(today) && due.Before(nextWeek) {
				s.DueThisWeek++
			}
		}
	}

	s.Incomplete = s.Total - s.Completed
	if s.Total > 0 {
		s.CompletionRate = float64(s.Completed) / float64(s.Total) * 100
	}
	return s
}

// TagCount is one tag with the number of records carrying it.
type TagCount struct {
	Tag   string
	Count int
}

// TagFrequencies counts tags across the record set. Each record
// contributes each distinct tag once, whether it appears in the title,
// the notes, or both. Sorted descending by count, ties by tag name.
func TagFrequencies(reminders []*models.Reminder) []TagCount {
	counts := map[string]int{}
	for _, r := range reminders {
		for _, tag := range tags.FromRecord(r.Title, r.Notes) {
			counts[tag]++
		}
	}

	result := make([]TagCount, 0, len(counts))
	for tag, count := range counts {
		result = append(result, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Tag < result[j].Tag
	})
	return result
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}
