package primary

import (
	"context"

	"github.com/example/remind/internal/core/stats"
)

// StatsResponse carries the aggregate view over the selected lists.
type StatsResponse struct {
	ListName  string // empty when all lists were aggregated
	ListCount int
	Summary   stats.Summary
	Tags      []stats.TagCount
}

// StatsService is the primary port for the aggregate read command.
type StatsService interface {
	Stats(ctx context.Context, listName string) (*StatsResponse, error)
}
