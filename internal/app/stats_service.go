package app

import (
	"context"
	"fmt"

	"github.com/example/remind/internal/clock"
	"github.com/example/remind/internal/core/stats"
	"github.com/example/remind/internal/ports/primary"
	"github.com/example/remind/internal/ports/secondary"
)

// StatsServiceImpl implements the StatsService interface.
type StatsServiceImpl struct {
	store secondary.ReminderStore
	clock clock.Clock
}

// NewStatsService creates a new StatsService with injected dependencies.
func NewStatsService(store secondary.ReminderStore, clk clock.Clock) *StatsServiceImpl {
	return &StatsServiceImpl{store: store, clock: clk}
}

// Stats aggregates every matching list into one summary. An empty list
// name aggregates all lists.
func (s *StatsServiceImpl) Stats(ctx context.Context, listName string) (*primary.StatsResponse, error) {
	lists, err := s.store.Lists(ctx)
	if err != nil {
		return nil, err
	}

	candidates := matchLists(lists, listName)
	if listName != "" && len(candidates) == 0 {
		return nil, fmt.Errorf("list %q %w", listName, ErrNotFound)
	}

	reminders, err := s.store.Reminders(ctx, candidates)
	if err != nil {
		return nil, err
	}

	return &primary.StatsResponse{
		ListName:  listName,
		ListCount: len(candidates),
		Summary:   stats.Compute(reminders, s.clock.Now()),
		Tags:      stats.TagFrequencies(reminders),
	}, nil
}

// Ensure StatsServiceImpl implements the interface
var _ primary.StatsService = (*StatsServiceImpl)(nil)
