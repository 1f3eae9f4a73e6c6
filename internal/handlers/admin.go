package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fruitshop/internal/catalog"
)

type setStockRequest struct {
	Stock *int `json:"stock" binding:"required"`
}

/*
PUT /admin/api/products/:id/stock
Overwrites a product's stock level, clamped to zero.
*/
func SetProductStock(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/api/products/:id/stock"
		defer handlePanic(c, route)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid product id")
			return
		}

		var req setStockRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Stock == nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		if err := store.SetStock(id, *req.Stock); err != nil {
			var notFound catalog.NotFoundError
			if errors.As(err, &notFound) {
				respondWithError(c, http.StatusNotFound, route, "product not found")
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "stock update failed")
			return
		}

		product, _ := store.GetByID(id)
		log.Printf("[%s] product %d stock set to %d", route, id, product.Stock)
		c.JSON(http.StatusOK, product)
	}
}

/*
POST /admin/api/reset
Discards all stock mutations, reloads the built-in catalog and drops the
persisted snapshot.
*/
func ResetCatalog(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/reset"
		defer handlePanic(c, route)

		store.Reset(c.Request.Context())
		log.Printf("[%s] catalog reset to defaults", route)
		c.JSON(http.StatusOK, gin.H{"message": "catalog reset"})
	}
}

func GetStats(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/stats"
		defer handlePanic(c, route)

		c.JSON(http.StatusOK, store.Stats(time.Now()))
	}
}

func GetNotifications(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/notifications"
		defer handlePanic(c, route)

		c.JSON(http.StatusOK, store.Notifications(time.Now()))
	}
}
