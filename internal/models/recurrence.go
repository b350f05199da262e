package models

import "time"

// Recurrence frequencies.
const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
	FrequencyYearly  = "yearly"
)

// RecurrenceRule is a repeat schedule attached to a reminder.
// An absent end (nil EndDate and zero OccurrenceCount) means the
// recurrence is unbounded.
type RecurrenceRule struct {
	Frequency       string
	Interval        int
	EndDate         *time.Time
	OccurrenceCount int
}
