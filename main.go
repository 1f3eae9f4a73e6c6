package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fruitshop/internal/cart"
	"fruitshop/internal/catalog"
	"fruitshop/internal/config"
	"fruitshop/internal/database"
	"fruitshop/internal/handlers"
	"fruitshop/internal/storage"
)

func main() {
	config.Load()

	ctx := context.Background()

	store, err := openStorage(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close(ctx)

	shop := catalog.New(store)
	if shop.Load(ctx, dataSource()) {
		log.Println("catalog loaded from built-in fallback data")
	}

	snapshot, err := store.LoadStockSnapshot(ctx)
	if err != nil && !errors.Is(err, storage.ErrNoSnapshot) {
		log.Println("stock snapshot not loaded:", err)
	}
	if snapshot != nil {
		shop.RestoreStock(snapshot)
	}

	shopCart := cart.New(shop, store)
	shopCart.Restore(ctx)

	r := gin.Default()

	r.GET("/products", handlers.GetProducts(shop))
	r.GET("/products/featured", handlers.GetFeaturedProducts(shop))
	r.GET("/products/:id", handlers.GetProductByID(shop))
	r.GET("/categories", handlers.GetCategories(shop))
	r.GET("/categories/:id", handlers.GetCategoryByID(shop))
	r.GET("/promotions", handlers.GetPromotions(shop))

	r.GET("/cart", handlers.GetCart(shopCart))
	r.POST("/cart/items", handlers.AddCartItem(shopCart))
	r.PUT("/cart/items/:id", handlers.SetCartItemQuantity(shopCart))
	r.DELETE("/cart/items/:id", handlers.RemoveCartItem(shopCart))
	r.DELETE("/cart", handlers.ClearCart(shopCart))
	r.GET("/cart/total", handlers.GetCartTotal(shopCart))

	r.POST("/promo/validate", handlers.ValidatePromo(shop))
	r.POST("/checkout", handlers.Checkout(shopCart))
	r.GET("/orders", handlers.GetOrders(store))

	admin := r.Group("/admin/api")
	{
		admin.PUT("/products/:id/stock", handlers.SetProductStock(shop))
		admin.POST("/reset", handlers.ResetCatalog(shop))
		admin.GET("/stats", handlers.GetStats(shop))
		admin.GET("/notifications", handlers.GetNotifications(shop))
	}

	r.Run(":" + config.AppEnv.Port)
}

// openStorage picks the persistence backend: Mongo when MONGO_URI is set,
// Redis when REDIS_ADDR is set, JSON files under DATA_DIR otherwise.
// STORAGE_BACKEND forces the choice.
func openStorage(ctx context.Context) (storage.Store, error) {
	backend := config.AppEnv.StorageBackend
	if backend == "" {
		switch {
		case config.AppEnv.MongoURI != "":
			backend = "mongo"
		case config.AppEnv.RedisAddr != "":
			backend = "redis"
		default:
			backend = "file"
		}
	}

	switch backend {
	case "mongo":
		client, err := database.Connect(config.AppEnv.MongoURI)
		if err != nil {
			return nil, err
		}
		db := client.Database(config.AppEnv.DBName)
		log.Println("MongoDB connected to:", db.Name())

		if err := database.EnsureStockIndexes(db); err != nil {
			log.Printf("⚠️ stock index warning: %v", err)
		}
		if err := database.EnsureOrderIndexes(db); err != nil {
			log.Printf("⚠️ order index warning: %v", err)
		}
		return storage.NewMongoStore(db), nil

	case "redis":
		rs := storage.NewRedisStore(config.AppEnv.RedisAddr)
		if err := rs.Ping(ctx); err != nil {
			return nil, err
		}
		log.Println("Redis connected to:", config.AppEnv.RedisAddr)
		return rs, nil

	case "file":
		fs, err := storage.NewFileStore(config.AppEnv.DataDir)
		if err != nil {
			return nil, err
		}
		log.Println("File storage at:", config.AppEnv.DataDir)
		return fs, nil

	default:
		return nil, errors.New("unknown STORAGE_BACKEND: " + backend)
	}
}

func dataSource() catalog.Source {
	if config.AppEnv.DataURL != "" {
		return catalog.HTTPSource{
			URL:    config.AppEnv.DataURL,
			Client: &http.Client{Timeout: config.AppEnv.FetchTimeout},
		}
	}
	if config.AppEnv.DataFile != "" {
		return catalog.FileSource{Path: config.AppEnv.DataFile}
	}
	return nil
}
