package app

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/example/remind/internal/clock"
	"github.com/example/remind/internal/core/parse"
	"github.com/example/remind/internal/core/query"
	"github.com/example/remind/internal/core/subtasks"
	"github.com/example/remind/internal/core/tags"
	"github.com/example/remind/internal/models"
	"github.com/example/remind/internal/ports/primary"
	"github.com/example/remind/internal/ports/secondary"
)

// ReminderServiceImpl implements the ReminderService interface.
type ReminderServiceImpl struct {
	store secondary.ReminderStore
	clock clock.Clock
}

// NewReminderService creates a new ReminderService with injected
// dependencies.
func NewReminderService(store secondary.ReminderStore, clk clock.Clock) *ReminderServiceImpl {
	return &ReminderServiceImpl{store: store, clock: clk}
}

// Create builds a new reminder from raw option strings and persists it.
// The target list resolves to the explicit name match, else the store's
// default list, else the first enumerated list. Tags embedded in the
// name are rewritten into canonical form after the clean title.
// Unparseable optional dates and priorities are skipped, and an alarm
// request without a resolved due date is dropped.
func (s *ReminderServiceImpl) Create(ctx context.Context, req primary.CreateReminderRequest) (*primary.CreateReminderResponse, error) {
	lists, err := s.store.Lists(ctx)
	if err != nil {
		return nil, err
	}

	var target *models.List
	if req.ListName != "" {
		target = findList(lists, req.ListName)
		if target == nil {
			return nil, fmt.Errorf("list %q %w", req.ListName, ErrNotFound)
		}
	} else {
		target, err = s.store.DefaultList(ctx)
		if err != nil {
			return nil, err
		}
		if target == nil && len(lists) > 0 {
			target = lists[0]
		}
		if target == nil {
			return nil, ErrNoListAvailable
		}
	}

	now := s.clock.Now()
	r := &models.Reminder{
		ListID: target.ID,
		Title:  tags.Canonicalize(req.Name),
		Notes:  req.Notes,
	}

	if req.StartDate != "" {
		if t, err := parse.Date(req.StartDate, now); err == nil {
			r.StartDate = &t
		}
	}
	if req.DueDate != "" {
		if t, err := parse.Date(req.DueDate, now); err == nil {
			r.DueDate = &t
		}
	}
	if req.Priority != "" {
		if p, err := parse.Priority(req.Priority); err == nil {
			r.Priority = p
		}
	}
	if req.URL != "" {
		if u, err := url.Parse(req.URL); err == nil && u.IsAbs() {
			r.URL = req.URL
		}
	}

	// An alarm needs an anchor instant; without a due date the request
	// is dropped.
	if req.AlarmMinutesBefore > 0 && r.DueDate != nil {
		r.Alarms = append(r.Alarms, models.Alarm{
			Kind:          models.AlarmRelative,
			MinutesBefore: req.AlarmMinutesBefore,
		})
	}

	saved, err := s.store.Save(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	return &primary.CreateReminderResponse{Reminder: saved, List: target}, nil
}

// fieldAppliers dispatches update directives. Each applier reports
// whether it actually changed the record; unparseable values report
// false and the directive is skipped.
func (s *ReminderServiceImpl) fieldAppliers(ctx context.Context) map[primary.UpdateField]func(*models.Reminder, string) bool {
	now := s.clock.Now()

	return map[primary.UpdateField]func(*models.Reminder, string) bool{
		primary.FieldTitle: func(r *models.Reminder, v string) bool {
			r.Title = v
			return true
		},
		primary.FieldPriority: func(r *models.Reminder, v string) bool {
			p, err := parse.Priority(v)
			if err != nil {
				return false
			}
			r.Priority = p
			return true
		},
		primary.FieldDueDate: func(r *models.Reminder, v string) bool {
			if isClearToken(v) {
				r.DueDate = nil
				return true
			}
			t, err := parse.Date(v, now)
			if err != nil {
				return false
			}
			r.DueDate = &t
			return true
		},
		primary.FieldStartDate: func(r *models.Reminder, v string) bool {
			if isClearToken(v) {
				r.StartDate = nil
				return true
			}
			t, err := parse.Date(v, now)
			if err != nil {
				return false
			}
			r.StartDate = &t
			return true
		},
		primary.FieldNotes: func(r *models.Reminder, v string) bool {
			r.Notes = v
			return true
		},
		primary.FieldURL: func(r *models.Reminder, v string) bool {
			if strings.EqualFold(v, "remove") {
				r.URL = ""
				return true
			}
			u, err := url.Parse(v)
			if err != nil || !u.IsAbs() {
				return false
			}
			r.URL = v
			return true
		},
		primary.FieldList: func(r *models.Reminder, v string) bool {
			lists, err := s.store.Lists(ctx)
			if err != nil {
				return false
			}
			target := findList(lists, v)
			if target == nil {
				return false
			}
			r.ListID = target.ID
			return true
		},
	}
}

func isClearToken(v string) bool {
	return strings.EqualFold(v, "remove") || strings.EqualFold(v, "none")
}

// Update applies each supplied field directive independently and
// persists only when at least one directive took effect. Zero
// directives is the informational "no changes" outcome.
func (s *ReminderServiceImpl) Update(ctx context.Context, req primary.UpdateReminderRequest) (*primary.UpdateReminderResponse, error) {
	r, _, err := findReminder(ctx, s.store, req.Name, req.ListName)
	if err != nil {
		return nil, err
	}

	appliers := s.fieldAppliers(ctx)
	updated := false
	for _, directive := range req.Directives {
		apply, ok := appliers[directive.Field]
		if !ok {
			continue
		}
		if apply(r, directive.Value) {
			updated = true
		}
	}

	if !updated {
		return &primary.UpdateReminderResponse{Updated: false, Reminder: r}, nil
	}

	saved, err := s.store.Save(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("failed to update reminder: %w", err)
	}
	return &primary.UpdateReminderResponse{Updated: true, Reminder: saved}, nil
}

// Complete marks a reminder completed, stamping the completion date on
// the false-to-true transition. Completing twice is an informational
// no-op.
func (s *ReminderServiceImpl) Complete(ctx context.Context, name, listName string) (*primary.CompleteReminderResponse, error) {
	r, list, err := findReminder(ctx, s.store, name, listName)
	if err != nil {
		return nil, err
	}

	if r.IsCompleted {
		return &primary.CompleteReminderResponse{AlreadyCompleted: true, Reminder: r, List: list}, nil
	}

	now := s.clock.Now()
	r.IsCompleted = true
	r.CompletionDate = &now

	saved, err := s.store.Save(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("failed to complete reminder: %w", err)
	}
	return &primary.CompleteReminderResponse{Reminder: saved, List: list}, nil
}

// Delete removes a reminder from the store. Terminal: there is no
// soft-delete or recovery bookkeeping.
func (s *ReminderServiceImpl) Delete(ctx context.Context, name, listName string) (*primary.ReminderDetail, error) {
	r, list, err := findReminder(ctx, s.store, name, listName)
	if err != nil {
		return nil, err
	}

	if err := s.store.Remove(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to delete reminder: %w", err)
	}
	return &primary.ReminderDetail{Reminder: r, List: list}, nil
}

// Show returns a matched reminder with its owning list.
func (s *ReminderServiceImpl) Show(ctx context.Context, name, listName string) (*primary.ReminderDetail, error) {
	r, list, err := findReminder(ctx, s.store, name, listName)
	if err != nil {
		return nil, err
	}
	return &primary.ReminderDetail{Reminder: r, List: list}, nil
}

// List returns per-list groups of filtered, ranked reminders. With an
// explicit list name the single matching list is used; otherwise every
// list, ordered by title.
func (s *ReminderServiceImpl) List(ctx context.Context, req primary.ListRemindersRequest) ([]*primary.ListGroup, error) {
	lists, err := s.store.Lists(ctx)
	if err != nil {
		return nil, err
	}

	var selected []*models.List
	if req.ListName != "" {
		list := findList(lists, req.ListName)
		if list == nil {
			return nil, fmt.Errorf("list %q %w", req.ListName, ErrNotFound)
		}
		selected = []*models.List{list}
	} else {
		selected = append(selected, lists...)
		sort.Slice(selected, func(i, j int) bool {
			return selected[i].Title < selected[j].Title
		})
	}

	var preds []query.Predicate
	if req.UncompletedOnly {
		preds = append(preds, query.Uncompleted())
	}
	if req.HasURL {
		preds = append(preds, query.HasURL())
	}
	if req.HasAlarms {
		preds = append(preds, query.HasAlarms())
	}
	if req.Priority != "" {
		if p, err := parse.Priority(req.Priority); err == nil {
			preds = append(preds, query.Priority(p))
		}
	}

	groups := make([]*primary.ListGroup, 0, len(selected))
	for _, list := range selected {
		reminders, err := s.store.Reminders(ctx, []*models.List{list})
		if err != nil {
			return nil, err
		}
		matched := query.Filter(reminders, preds)
		query.Sort(matched)
		groups = append(groups, &primary.ListGroup{List: list, Reminders: matched})
	}
	return groups, nil
}

// Search filters the candidate set of every matching list with the
// AND-combined predicates built from the request and ranks the result.
// Unparseable date and priority filters are skipped.
func (s *ReminderServiceImpl) Search(ctx context.Context, req primary.SearchRemindersRequest) ([]*models.Reminder, error) {
	lists, err := s.store.Lists(ctx)
	if err != nil {
		return nil, err
	}

	candidates := matchLists(lists, req.ListName)
	reminders, err := s.store.Reminders(ctx, candidates)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	// Fixed declaration order; AND-combination makes the order
	// irrelevant except when conflicting completion flags are given.
	var preds []query.Predicate
	if req.Query != "" {
		preds = append(preds, query.Text(req.Query))
	}
	if req.Priority != "" {
		if p, err := parse.Priority(req.Priority); err == nil {
			preds = append(preds, query.Priority(p))
		}
	}
	if req.HasURL {
		preds = append(preds, query.HasURL())
	}
	if req.HasNotes {
		preds = append(preds, query.HasNotes())
	}
	if req.HasAlarms {
		preds = append(preds, query.HasAlarms())
	}
	if req.Completed {
		preds = append(preds, query.Completed())
	}
	if req.Uncompleted {
		preds = append(preds, query.Uncompleted())
	}
	if req.Overdue {
		preds = append(preds, query.Overdue(now))
	}
	if req.DueBefore != "" {
		if t, err := parse.Date(req.DueBefore, now); err == nil {
			preds = append(preds, query.DueBefore(t))
		}
	}
	if req.DueAfter != "" {
		if t, err := parse.Date(req.DueAfter, now); err == nil {
			preds = append(preds, query.DueAfter(t))
		}
	}
	if req.Tag != "" {
		preds = append(preds, query.Tag(req.Tag))
	}

	matched := query.Filter(reminders, preds)
	query.Sort(matched)
	return matched, nil
}

// AddAlarm attaches a relative or absolute alarm to a matched reminder.
func (s *ReminderServiceImpl) AddAlarm(ctx context.Context, req primary.AddAlarmRequest) (*models.Reminder, error) {
	r, _, err := findReminder(ctx, s.store, req.Name, req.ListName)
	if err != nil {
		return nil, err
	}

	switch {
	case req.MinutesBefore > 0:
		if r.DueDate == nil {
			return nil, fmt.Errorf("reminder must have a due date to use relative alarms")
		}
		r.Alarms = append(r.Alarms, models.Alarm{
			Kind:          models.AlarmRelative,
			MinutesBefore: req.MinutesBefore,
		})
	case req.AbsoluteDate != "":
		t, err := parse.AbsoluteDateTime(req.AbsoluteDate, s.clock.Now().Location())
		if err != nil {
			return nil, fmt.Errorf("invalid date format, use YYYY-MM-DD HH:MM: %w", err)
		}
		r.Alarms = append(r.Alarms, models.Alarm{
			Kind:         models.AlarmAbsolute,
			AbsoluteDate: &t,
		})
	default:
		return nil, fmt.Errorf("must specify either --minutes-before or --absolute-date")
	}

	saved, err := s.store.Save(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("failed to add alarm: %w", err)
	}
	return saved, nil
}

// RemoveAlarms removes every time-based alarm (relative and absolute)
// from a matched reminder and reports the count. An empty collection is
// informational, not an error.
func (s *ReminderServiceImpl) RemoveAlarms(ctx context.Context, name, listName string) (*primary.RemoveEntriesResponse, error) {
	return s.removeAlarmsOfKind(ctx, name, listName, func(a models.Alarm) bool {
		return a.Kind != models.AlarmLocation
	})
}

// RemoveLocationTriggers removes every location-triggered alarm from a
// matched reminder and reports the count.
func (s *ReminderServiceImpl) RemoveLocationTriggers(ctx context.Context, name, listName string) (*primary.RemoveEntriesResponse, error) {
	return s.removeAlarmsOfKind(ctx, name, listName, func(a models.Alarm) bool {
		return a.Kind == models.AlarmLocation
	})
}

func (s *ReminderServiceImpl) removeAlarmsOfKind(ctx context.Context, name, listName string, targeted func(models.Alarm) bool) (*primary.RemoveEntriesResponse, error) {
	r, _, err := findReminder(ctx, s.store, name, listName)
	if err != nil {
		return nil, err
	}

	var kept []models.Alarm
	removed := 0
	for _, alarm := range r.Alarms {
		if targeted(alarm) {
			removed++
			continue
		}
		kept = append(kept, alarm)
	}

	if removed == 0 {
		return &primary.RemoveEntriesResponse{Removed: 0, Reminder: r}, nil
	}

	r.Alarms = kept
	saved, err := s.store.Save(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("failed to remove alarms: %w", err)
	}
	return &primary.RemoveEntriesResponse{Removed: removed, Reminder: saved}, nil
}

// AddRecurrence attaches a recurrence rule to a matched reminder.
func (s *ReminderServiceImpl) AddRecurrence(ctx context.Context, req primary.AddRecurrenceRequest) (*models.Reminder, error) {
	switch req.Frequency {
	case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyMonthly, models.FrequencyYearly:
	default:
		return nil, fmt.Errorf("invalid frequency %q (daily, weekly, monthly, yearly)", req.Frequency)
	}

	r, _, err := findReminder(ctx, s.store, req.Name, req.ListName)
	if err != nil {
		return nil, err
	}

	rule := models.RecurrenceRule{
		Frequency: req.Frequency,
		Interval:  req.Interval,
	}
	if rule.Interval < 1 {
		rule.Interval = 1
	}
	if req.EndDate != "" {
		if t, err := parse.Date(req.EndDate, s.clock.Now()); err == nil {
			rule.EndDate = &t
		}
	}
	if req.OccurrenceCount > 0 {
		rule.OccurrenceCount = req.OccurrenceCount
	}

	r.RecurrenceRules = append(r.RecurrenceRules, rule)

	saved, err := s.store.Save(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("failed to add recurrence rule: %w", err)
	}
	return saved, nil
}

// RemoveRecurrences removes every recurrence rule from a matched
// reminder and reports the count.
func (s *ReminderServiceImpl) RemoveRecurrences(ctx context.Context, name, listName string) (*primary.RemoveEntriesResponse, error) {
	r, _, err := findReminder(ctx, s.store, name, listName)
	if err != nil {
		return nil, err
	}

	removed := len(r.RecurrenceRules)
	if removed == 0 {
		return &primary.RemoveEntriesResponse{Removed: 0, Reminder: r}, nil
	}

	r.RecurrenceRules = nil
	saved, err := s.store.Save(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("failed to remove recurrence rules: %w", err)
	}
	return &primary.RemoveEntriesResponse{Removed: removed, Reminder: saved}, nil
}

// AddLocationTrigger attaches a location-triggered alarm.
func (s *ReminderServiceImpl) AddLocationTrigger(ctx context.Context, req primary.AddLocationRequest) (*models.Reminder, error) {
	proximity := req.Proximity
	if proximity == "" {
		proximity = models.ProximityEntering
	}
	if proximity != models.ProximityEntering && proximity != models.ProximityLeaving {
		return nil, fmt.Errorf("invalid proximity %q (entering, leaving)", req.Proximity)
	}

	r, _, err := findReminder(ctx, s.store, req.Name, req.ListName)
	if err != nil {
		return nil, err
	}

	r.Alarms = append(r.Alarms, models.Alarm{
		Kind: models.AlarmLocation,
		Location: &models.LocationTrigger{
			Title:     req.Title,
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
			Radius:    req.Radius,
			Proximity: proximity,
		},
	})

	saved, err := s.store.Save(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("failed to add location trigger: %w", err)
	}
	return saved, nil
}

// AddTag appends the canonical #tag to a matched reminder's title.
// A tag already present in the title is an informational no-op.
func (s *ReminderServiceImpl) AddTag(ctx context.Context, name, listName, tag string) (*primary.AddTagResponse, error) {
	r, _, err := findReminder(ctx, s.store, name, listName)
	if err != nil {
		return nil, err
	}

	canonical := tags.Canonical(tag)
	if strings.Contains(r.Title, canonical) {
		return &primary.AddTagResponse{AlreadyExists: true, Tag: canonical, Reminder: r}, nil
	}

	r.Title = r.Title + " " + canonical
	saved, err := s.store.Save(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("failed to add tag: %w", err)
	}
	return &primary.AddTagResponse{Tag: canonical, Reminder: saved}, nil
}

// AddSubtask appends a checkbox line to the subtask section of a
// matched reminder's notes, creating the section if absent.
func (s *ReminderServiceImpl) AddSubtask(ctx context.Context, name, listName, text string) (*models.Reminder, error) {
	r, _, err := findReminder(ctx, s.store, name, listName)
	if err != nil {
		return nil, err
	}

	r.Notes = subtasks.Append(r.Notes, text)
	saved, err := s.store.Save(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("failed to add subtask: %w", err)
	}
	return saved, nil
}

// Ensure ReminderServiceImpl implements the interface
var _ primary.ReminderService = (*ReminderServiceImpl)(nil)
