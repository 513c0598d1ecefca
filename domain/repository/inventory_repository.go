package repository

import (
	"context"

	"github.com/ca-srg/azusage/domain/entity"
)

// InventoryRepository lists the in-scope inference endpoints across all
// subscriptions the session can see. An empty result is a valid terminal
// state, not an error.
type InventoryRepository interface {
	ListEndpoints(ctx context.Context) ([]entity.Endpoint, error)
}
