package ports

import (
	"context"

	"github.com/voltlab/zonebalance/internal/domain"
)

// ZoneRepository persists the ordered zone set. List returns zones in
// the order they were recorded; that order is the computation order.
type ZoneRepository interface {
	GetByName(ctx context.Context, name string) (domain.ZoneLoad, error)
	List(ctx context.Context) ([]domain.ZoneLoad, error)
	Save(ctx context.Context, zone domain.ZoneLoad) error
	Remove(ctx context.Context, name string) error
}
