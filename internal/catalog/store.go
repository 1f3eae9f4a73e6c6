// Package catalog owns the product catalog and is the single authority over
// stock levels. Every stock change goes through ReduceStock/IncreaseStock/
// SetStock so a future multi-writer setup only has to harden one choke point.
package catalog

import (
	"context"
	"fmt"
	"log"
	"sync"

	"fruitshop/internal/models"
	"fruitshop/internal/storage"
)

type NotFoundError struct {
	ProductID int
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

type InsufficientStockError struct {
	ProductID int
	Available int
	Requested int
}

func (e InsufficientStockError) Error() string {
	return fmt.Sprintf("product %d out of stock: available %d, requested %d",
		e.ProductID, e.Available, e.Requested)
}

// Store holds the loaded catalog. Products, categories, promotions and
// settings are immutable after load except for product stock.
type Store struct {
	mu         sync.RWMutex
	products   []models.Product
	byID       map[int]int // product id -> index into products
	categories []models.Category
	promotions []models.Promotion
	settings   models.Settings

	snapshots storage.Store
}

// New returns an empty store. Load must be called before use; snapshots may
// be nil, in which case stock changes are kept in memory only.
func New(snapshots storage.Store) *Store {
	return &Store{byID: map[int]int{}, snapshots: snapshots}
}

func (s *Store) setData(data sourceData) {
	s.products = data.Products
	s.categories = data.Categories
	s.promotions = data.Promotions
	s.settings = data.Settings

	s.byID = make(map[int]int, len(s.products))
	for i, p := range s.products {
		s.byID[p.ID] = i
	}
}

// RestoreStock overlays a previously persisted snapshot onto the freshly
// loaded catalog. Snapshot entries for products that no longer exist are
// dropped; products missing from the snapshot keep their loaded defaults.
func (s *Store) RestoreStock(snapshot storage.StockSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	restored := 0
	for id, stock := range snapshot {
		i, ok := s.byID[id]
		if !ok {
			continue
		}
		if stock < 0 {
			stock = 0
		}
		s.products[i].Stock = stock
		restored++
	}
	if restored > 0 {
		log.Printf("[catalog] restored stock for %d products", restored)
	}
}

// GetByID returns a copy of the product.
func (s *Store) GetByID(id int) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return models.Product{}, NotFoundError{ProductID: id}
	}
	return annotate(s.products[i]), nil
}

// ReduceStock reserves qty units. It fails without mutation when the product
// is unknown or fewer than qty units remain.
func (s *Store) ReduceStock(id, qty int) error {
	s.mu.Lock()
	i, ok := s.byID[id]
	if !ok {
		s.mu.Unlock()
		return NotFoundError{ProductID: id}
	}
	if s.products[i].Stock < qty {
		available := s.products[i].Stock
		s.mu.Unlock()
		return InsufficientStockError{ProductID: id, Available: available, Requested: qty}
	}
	s.products[i].Stock -= qty
	snapshot := s.stockSnapshotLocked()
	s.mu.Unlock()

	s.persistStock(snapshot)
	return nil
}

// IncreaseStock returns qty units to the shelf, with no upper bound. Used to
// undo a cart reservation.
func (s *Store) IncreaseStock(id, qty int) error {
	s.mu.Lock()
	i, ok := s.byID[id]
	if !ok {
		s.mu.Unlock()
		return NotFoundError{ProductID: id}
	}
	s.products[i].Stock += qty
	snapshot := s.stockSnapshotLocked()
	s.mu.Unlock()

	s.persistStock(snapshot)
	return nil
}

// SetStock overwrites a product's stock, clamped to zero.
func (s *Store) SetStock(id, stock int) error {
	s.mu.Lock()
	i, ok := s.byID[id]
	if !ok {
		s.mu.Unlock()
		return NotFoundError{ProductID: id}
	}
	if stock < 0 {
		stock = 0
	}
	s.products[i].Stock = stock
	snapshot := s.stockSnapshotLocked()
	s.mu.Unlock()

	s.persistStock(snapshot)
	return nil
}

// Reset discards all stock mutations and reloads the built-in data set.
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	s.setData(fallbackData())
	s.mu.Unlock()

	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.ClearStockSnapshot(ctx); err != nil {
		log.Println("[catalog] clearing stock snapshot failed:", err)
	}
}

// Categories returns the loaded categories in catalog order.
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *Store) CategoryByID(id string) (models.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

// Promotions returns all loaded promotions, active or not.
func (s *Store) Promotions() []models.Promotion {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Promotion, len(s.promotions))
	copy(out, s.promotions)
	return out
}

func (s *Store) Settings() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *Store) stockSnapshotLocked() storage.StockSnapshot {
	snapshot := make(storage.StockSnapshot, len(s.products))
	for _, p := range s.products {
		snapshot[p.ID] = p.Stock
	}
	return snapshot
}

// persistStock writes the snapshot best-effort: a storage failure is logged
// and the in-memory state stays authoritative.
func (s *Store) persistStock(snapshot storage.StockSnapshot) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.SaveStockSnapshot(context.Background(), snapshot); err != nil {
		log.Println("[catalog] saving stock snapshot failed:", err)
	}
}

func annotate(p models.Product) models.Product {
	p.InStock = p.Stock > 0
	return p
}
