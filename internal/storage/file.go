package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fruitshop/internal/models"
)

const (
	stockFile  = "stock_snapshot.json"
	cartFile   = "cart.json"
	ordersFile = "orders.json"
)

// FileStore keeps everything as JSON files under a single directory. It is
// the default backend and mirrors the single-profile durability the shop
// needs: one writer, small payloads, whole-file rewrites.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

type stockFilePayload struct {
	Stock       StockSnapshot `json:"stock"`
	LastUpdated time.Time     `json:"lastUpdated"`
}

func (s *FileStore) SaveStockSnapshot(_ context.Context, snapshot StockSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeJSON(stockFile, stockFilePayload{Stock: snapshot, LastUpdated: time.Now()})
}

func (s *FileStore) LoadStockSnapshot(_ context.Context) (StockSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var payload stockFilePayload
	if err := s.readJSON(stockFile, &payload); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoSnapshot
		}
		return nil, err
	}
	if payload.Stock == nil {
		return nil, ErrNoSnapshot
	}
	return payload.Stock, nil
}

func (s *FileStore) ClearStockSnapshot(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(filepath.Join(s.dir, stockFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (s *FileStore) SaveCart(_ context.Context, entries []models.CartEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeJSON(cartFile, entries)
}

func (s *FileStore) LoadCart(_ context.Context) ([]models.CartEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []models.CartEntry
	if err := s.readJSON(cartFile, &entries); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.CartEntry{}, nil
		}
		return nil, err
	}
	return entries, nil
}

func (s *FileStore) SaveOrder(ctx context.Context, order models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []models.Order
	if err := s.readJSON(ordersFile, &orders); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	orders = append(orders, order)
	return s.writeJSON(ordersFile, orders)
}

func (s *FileStore) Orders(_ context.Context) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []models.Order
	if err := s.readJSON(ordersFile, &orders); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Order{}, nil
		}
		return nil, err
	}
	return orders, nil
}

func (s *FileStore) Close(context.Context) error { return nil }

func (s *FileStore) writeJSON(name string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}

	// Write-then-rename so a crash mid-write never corrupts the live file.
	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (s *FileStore) readJSON(name string, target any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, target)
}
