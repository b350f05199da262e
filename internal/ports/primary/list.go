package primary

import (
	"context"

	"github.com/example/remind/internal/models"
)

// ListInfo is a list with its completion counts.
type ListInfo struct {
	List      *models.List
	Total     int
	Completed int
}

// ListService is the primary port for list management.
type ListService interface {
	Lists(ctx context.Context) ([]*ListInfo, error)
	CreateList(ctx context.Context, name, color string) (*models.List, error)
	RemoveList(ctx context.Context, name string) (*models.List, error)
}
