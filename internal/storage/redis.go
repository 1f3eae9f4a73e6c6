package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"fruitshop/internal/models"
)

// Redis key layout. Orders go into a list so checkout history keeps its
// insertion order.
const (
	keyStockSnapshot = "fruitshop:stock"
	keyCart          = "fruitshop:cart"
	keyOrders        = "fruitshop:orders"
)

// RedisStore is the key-value backend: flat keys with JSON values, the
// closest analog of the per-profile storage the shop front end uses.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{rdb: redis.NewClient(&redis.Options{
		Addr:         addr,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})}
}

// Ping verifies the connection before the store is taken into use.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *RedisStore) SaveStockSnapshot(ctx context.Context, snapshot StockSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, keyStockSnapshot, data, 0).Err()
}

func (s *RedisStore) LoadStockSnapshot(ctx context.Context) (StockSnapshot, error) {
	data, err := s.rdb.Get(ctx, keyStockSnapshot).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}
	var snapshot StockSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (s *RedisStore) ClearStockSnapshot(ctx context.Context) error {
	return s.rdb.Del(ctx, keyStockSnapshot).Err()
}

func (s *RedisStore) SaveCart(ctx context.Context, entries []models.CartEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, keyCart, data, 0).Err()
}

func (s *RedisStore) LoadCart(ctx context.Context) ([]models.CartEntry, error) {
	data, err := s.rdb.Get(ctx, keyCart).Bytes()
	if errors.Is(err, redis.Nil) {
		return []models.CartEntry{}, nil
	}
	if err != nil {
		return nil, err
	}
	var entries []models.CartEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *RedisStore) SaveOrder(ctx context.Context, order models.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return s.rdb.RPush(ctx, keyOrders, data).Err()
}

func (s *RedisStore) Orders(ctx context.Context) ([]models.Order, error) {
	raw, err := s.rdb.LRange(ctx, keyOrders, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	orders := make([]models.Order, 0, len(raw))
	for _, item := range raw {
		var order models.Order
		if err := json.Unmarshal([]byte(item), &order); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (s *RedisStore) Close(context.Context) error {
	return s.rdb.Close()
}
