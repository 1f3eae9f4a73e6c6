package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureStockIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("stock_levels").Indexes()

	updatedAtIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "updatedAt", Value: -1}},
		Options: options.Index().SetName("updatedAt_index"),
	}

	log.Println("EnsureStockIndexes: creating updatedAt_index index")
	_, err := indexes.CreateOne(ctx, updatedAtIndex)
	if err != nil {
		log.Println("EnsureStockIndexes: updatedAt index error:", err)
		return err
	}
	log.Println("EnsureStockIndexes: updatedAt_index index created")
	return nil
}

func EnsureOrderIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("orders").Indexes()

	createdAtIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: 1}},
		Options: options.Index().SetName("createdAt_index"),
	}

	log.Println("EnsureOrderIndexes: creating createdAt_index index")
	_, err := indexes.CreateOne(ctx, createdAtIndex)
	if err != nil {
		log.Println("EnsureOrderIndexes: createdAt index error:", err)
		return err
	}
	log.Println("EnsureOrderIndexes: createdAt_index index created")
	return nil
}
