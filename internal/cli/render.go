package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/example/remind/internal/core/subtasks"
	"github.com/example/remind/internal/core/tags"
	"github.com/example/remind/internal/models"
)

const displayTime = "2006-01-02 15:04"
const displayDate = "2006-01-02"

// renderReminderLine prints one reminder as a single indented line:
// checkbox, priority glyph, title, then the due date with overdue
// highlighting.
func renderReminderLine(r *models.Reminder) {
	checkbox := "[ ]"
	if r.IsCompleted {
		checkbox = color.New(color.FgGreen).Sprint("[x]")
	}

	line := fmt.Sprintf("  %s ", checkbox)
	if symbol := r.PrioritySymbol(); symbol != "" {
		line += color.New(color.FgRed).Sprint(symbol) + " "
	}
	line += r.Title

	if r.DueDate != nil {
		due := r.DueDate.Format(displayDate)
		if r.IsOverdue(time.Now()) {
			line += color.New(color.FgRed).Sprintf(" (due %s, overdue)", due)
		} else {
			line += fmt.Sprintf(" (due %s)", due)
		}
	}

	fmt.Println(line)
}

// renderReminderDetail prints the full record view used by show and the
// mutation commands that echo the resulting state.
func renderReminderDetail(r *models.Reminder, list *models.List) {
	fmt.Printf("Reminder: %s\n", r.Title)
	if list != nil {
		fmt.Printf("List: %s\n", list.Title)
	}
	fmt.Printf("Priority: %s\n", r.PriorityDescription())
	fmt.Printf("Completed: %v\n", r.IsCompleted)
	if r.CompletionDate != nil {
		fmt.Printf("Completed at: %s\n", r.CompletionDate.Format(displayTime))
	}
	if r.StartDate != nil {
		fmt.Printf("Starts: %s\n", r.StartDate.Format(displayTime))
	}
	if r.DueDate != nil {
		fmt.Printf("Due: %s\n", r.DueDate.Format(displayTime))
		if r.IsOverdue(time.Now()) {
			fmt.Println(color.New(color.FgRed).Sprint("Overdue"))
		}
	}
	if r.HasURL() {
		fmt.Printf("URL: %s\n", r.URL)
	}

	if tagList := tags.FromRecord(r.Title, r.Notes); len(tagList) > 0 {
		fmt.Print("Tags:")
		for _, tag := range tagList {
			fmt.Printf(" %s", color.New(color.FgCyan).Sprint("#"+tag))
		}
		fmt.Println()
	}

	if len(r.Alarms) > 0 {
		fmt.Printf("Alarms (%d):\n", len(r.Alarms))
		for _, alarm := range r.Alarms {
			fmt.Printf("  - %s\n", describeAlarm(alarm))
		}
	}

	if len(r.RecurrenceRules) > 0 {
		fmt.Printf("Repeats (%d):\n", len(r.RecurrenceRules))
		for _, rule := range r.RecurrenceRules {
			fmt.Printf("  - %s\n", describeRecurrence(rule))
		}
	}

	if subs := subtasks.Parse(r.Notes); len(subs) > 0 {
		done := 0
		for _, sub := range subs {
			if sub.Done {
				done++
			}
		}
		fmt.Printf("Subtasks (%d/%d):\n", done, len(subs))
		for _, sub := range subs {
			box := "[ ]"
			if sub.Done {
				box = "[x]"
			}
			fmt.Printf("  %s %s\n", box, sub.Text)
		}
	}

	if r.HasNotes() {
		fmt.Printf("Notes: %s\n", r.Notes)
	}
}

func describeAlarm(alarm models.Alarm) string {
	switch alarm.Kind {
	case models.AlarmRelative:
		return fmt.Sprintf("%d minutes before due", alarm.MinutesBefore)
	case models.AlarmAbsolute:
		return fmt.Sprintf("at %s", alarm.AbsoluteDate.Format(displayTime))
	case models.AlarmLocation:
		loc := alarm.Location
		return fmt.Sprintf("when %s %s (%.0fm radius)", loc.Proximity, loc.Title, loc.Radius)
	}
	return string(alarm.Kind)
}

func describeRecurrence(rule models.RecurrenceRule) string {
	desc := fmt.Sprintf("every %d %s", rule.Interval, frequencyUnit(rule.Frequency))
	if rule.Interval == 1 {
		desc = rule.Frequency
	}
	if rule.EndDate != nil {
		desc += fmt.Sprintf(" until %s", rule.EndDate.Format(displayDate))
	}
	if rule.OccurrenceCount > 0 {
		desc += fmt.Sprintf(", %d times", rule.OccurrenceCount)
	}
	return desc
}

func frequencyUnit(frequency string) string {
	switch frequency {
	case models.FrequencyDaily:
		return "days"
	case models.FrequencyWeekly:
		return "weeks"
	case models.FrequencyMonthly:
		return "months"
	case models.FrequencyYearly:
		return "years"
	}
	return frequency
}
