package storage

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fruitshop/internal/models"
)

// MongoStore persists the shop state in three collections: one document per
// product stock level, a single saved cart document, and one document per
// checkout order.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

type stockLevelDoc struct {
	ProductID int       `bson:"_id"`
	Stock     int       `bson:"stock"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type cartDoc struct {
	ID      string             `bson:"_id"`
	Entries []models.CartEntry `bson:"entries"`
	SavedAt time.Time          `bson:"savedAt"`
}

func (s *MongoStore) SaveStockSnapshot(ctx context.Context, snapshot StockSnapshot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	writes := make([]mongo.WriteModel, 0, len(snapshot))
	for id, stock := range snapshot {
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": id}).
			SetReplacement(stockLevelDoc{ProductID: id, Stock: stock, UpdatedAt: time.Now()}).
			SetUpsert(true))
	}
	if len(writes) == 0 {
		return nil
	}
	_, err := s.db.Collection("stock_levels").BulkWrite(ctx, writes)
	return err
}

func (s *MongoStore) LoadStockSnapshot(ctx context.Context) (StockSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := s.db.Collection("stock_levels").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	snapshot := StockSnapshot{}
	for cursor.Next(ctx) {
		var doc stockLevelDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		snapshot[doc.ProductID] = doc.Stock
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	if len(snapshot) == 0 {
		return nil, ErrNoSnapshot
	}
	return snapshot, nil
}

func (s *MongoStore) ClearStockSnapshot(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.db.Collection("stock_levels").DeleteMany(ctx, bson.M{})
	return err
}

func (s *MongoStore) SaveCart(ctx context.Context, entries []models.CartEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc := cartDoc{ID: "cart", Entries: entries, SavedAt: time.Now()}
	_, err := s.db.Collection("carts").ReplaceOne(
		ctx,
		bson.M{"_id": doc.ID},
		doc,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (s *MongoStore) LoadCart(ctx context.Context) ([]models.CartEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc cartDoc
	err := s.db.Collection("carts").FindOne(ctx, bson.M{"_id": "cart"}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []models.CartEntry{}, nil
	}
	if err != nil {
		return nil, err
	}
	if doc.Entries == nil {
		return []models.CartEntry{}, nil
	}
	return doc.Entries, nil
}

func (s *MongoStore) SaveOrder(ctx context.Context, order models.Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.db.Collection("orders").InsertOne(ctx, order)
	return err
}

func (s *MongoStore) Orders(ctx context.Context) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := s.db.Collection("orders").Find(
		ctx,
		bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := make([]models.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return s.db.Client().Disconnect(ctx)
}
