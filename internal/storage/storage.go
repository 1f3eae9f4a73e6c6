// Package storage persists stock snapshots, the saved cart and checkout
// orders. The core treats every backend as best-effort: a write failure is
// logged by the caller and the operation proceeds in memory.
package storage

import (
	"context"
	"errors"

	"fruitshop/internal/models"
)

// StockSnapshot maps product id to the stock level recorded after the last
// mutation. Product metadata is never snapshotted; only stock survives a
// restart, the rest always reflects the latest catalog load.
type StockSnapshot map[int]int

// ErrNoSnapshot is returned by LoadStockSnapshot when nothing has been
// persisted yet. Callers keep the freshly loaded defaults.
var ErrNoSnapshot = errors.New("storage: no stock snapshot")

type Store interface {
	SaveStockSnapshot(ctx context.Context, snapshot StockSnapshot) error
	LoadStockSnapshot(ctx context.Context) (StockSnapshot, error)
	ClearStockSnapshot(ctx context.Context) error

	SaveCart(ctx context.Context, entries []models.CartEntry) error
	LoadCart(ctx context.Context) ([]models.CartEntry, error)

	SaveOrder(ctx context.Context, order models.Order) error
	Orders(ctx context.Context) ([]models.Order, error)

	Close(ctx context.Context) error
}
