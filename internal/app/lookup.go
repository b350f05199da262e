package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/remind/internal/core/tags"
	"github.com/example/remind/internal/models"
	"github.com/example/remind/internal/ports/secondary"
)

// findList returns the first list whose title contains name
// case-insensitively, in enumeration order. Nil when nothing matches.
func findList(lists []*models.List, name string) *models.List {
	needle := strings.ToLower(name)
	for _, list := range lists {
		if strings.Contains(strings.ToLower(list.Title), needle) {
			return list
		}
	}
	return nil
}

// matchLists narrows lists to those whose title contains name
// case-insensitively. An empty name keeps every list.
func matchLists(lists []*models.List, name string) []*models.List {
	if name == "" {
		return lists
	}
	needle := strings.ToLower(name)
	var matched []*models.List
	for _, list := range lists {
		if strings.Contains(strings.ToLower(list.Title), needle) {
			matched = append(matched, list)
		}
	}
	return matched
}

// findReminder locates the record every write and show command targets:
// candidate lists are walked in enumeration order, and within each list
// the first reminder whose title contains the query case-insensitively
// wins; tagged titles also match against their tag-stripped form. The
// search stops at the first match across lists.
func findReminder(ctx context.Context, store secondary.ReminderStore, name, listName string) (*models.Reminder, *models.List, error) {
	lists, err := store.Lists(ctx)
	if err != nil {
		return nil, nil, err
	}

	candidates := matchLists(lists, listName)
	needle := strings.ToLower(name)

	for _, list := range candidates {
		reminders, err := store.Reminders(ctx, []*models.List{list})
		if err != nil {
			return nil, nil, err
		}
		for _, r := range reminders {
			if strings.Contains(strings.ToLower(r.Title), needle) ||
				strings.Contains(strings.ToLower(tags.Strip(r.Title)), needle) {
				return r, list, nil
			}
		}
	}

	return nil, nil, fmt.Errorf("reminder %q %w", name, ErrNotFound)
}
