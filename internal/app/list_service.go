package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/example/remind/internal/models"
	"github.com/example/remind/internal/ports/primary"
	"github.com/example/remind/internal/ports/secondary"
)

// ListServiceImpl implements the ListService interface.
type ListServiceImpl struct {
	store secondary.ReminderStore
}

// NewListService creates a new ListService with injected dependencies.
func NewListService(store secondary.ReminderStore) *ListServiceImpl {
	return &ListServiceImpl{store: store}
}

// Lists returns every list with its reminder counts, ordered by title.
func (s *ListServiceImpl) Lists(ctx context.Context) ([]*primary.ListInfo, error) {
	lists, err := s.store.Lists(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]*primary.ListInfo, 0, len(lists))
	for _, list := range lists {
		reminders, err := s.store.Reminders(ctx, []*models.List{list})
		if err != nil {
			return nil, err
		}
		info := &primary.ListInfo{List: list, Total: len(reminders)}
		for _, r := range reminders {
			if r.IsCompleted {
				info.Completed++
			}
		}
		infos = append(infos, info)
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].List.Title < infos[j].List.Title
	})
	return infos, nil
}

// CreateList creates a named list in the store.
func (s *ListServiceImpl) CreateList(ctx context.Context, name, color string) (*models.List, error) {
	list, err := s.store.CreateList(ctx, name, color)
	if err != nil {
		return nil, fmt.Errorf("failed to create list: %w", err)
	}
	return list, nil
}

// RemoveList deletes the first list matching name along with everything
// in it.
func (s *ListServiceImpl) RemoveList(ctx context.Context, name string) (*models.List, error) {
	lists, err := s.store.Lists(ctx)
	if err != nil {
		return nil, err
	}

	list := findList(lists, name)
	if list == nil {
		return nil, fmt.Errorf("list %q %w", name, ErrNotFound)
	}

	if err := s.store.RemoveList(ctx, list); err != nil {
		return nil, fmt.Errorf("failed to remove list: %w", err)
	}
	return list, nil
}

// Ensure ListServiceImpl implements the interface
var _ primary.ListService = (*ListServiceImpl)(nil)
