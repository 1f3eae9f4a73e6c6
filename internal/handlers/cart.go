package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fruitshop/internal/cart"
	"fruitshop/internal/catalog"
)

type addCartItemRequest struct {
	ProductID int `json:"productId" binding:"required"`
}

type setQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func GetCart(shopCart *cart.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /cart"
		defer handlePanic(c, route)

		lines := shopCart.Lines()
		c.JSON(http.StatusOK, gin.H{
			"items":    lines,
			"subtotal": shopCart.Subtotal(),
		})
	}
}

func AddCartItem(shopCart *cart.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /cart/items"
		defer handlePanic(c, route)

		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		if err := shopCart.Add(req.ProductID); err != nil {
			respondCartError(c, route, err)
			return
		}

		log.Printf("[%s] product %d added", route, req.ProductID)
		c.JSON(http.StatusOK, gin.H{"items": shopCart.Lines()})
	}
}

func SetCartItemQuantity(shopCart *cart.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /cart/items/:id"
		defer handlePanic(c, route)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid product id")
			return
		}

		var req setQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		if err := shopCart.SetQuantity(id, *req.Quantity); err != nil {
			respondCartError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": shopCart.Lines()})
	}
}

func RemoveCartItem(shopCart *cart.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /cart/items/:id"
		defer handlePanic(c, route)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid product id")
			return
		}

		if err := shopCart.Remove(id); err != nil {
			respondCartError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": shopCart.Lines()})
	}
}

func ClearCart(shopCart *cart.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /cart"
		defer handlePanic(c, route)

		shopCart.Clear()
		c.JSON(http.StatusOK, gin.H{"items": []any{}})
	}
}

/*
GET /cart/total?promo=CODE
Full order breakdown for the current cart; the promo code is optional and an
invalid one simply contributes no discount.
*/
func GetCartTotal(shopCart *cart.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /cart/total"
		defer handlePanic(c, route)

		c.JSON(http.StatusOK, shopCart.Totals(c.Query("promo"), time.Now()))
	}
}

func respondCartError(c *gin.Context, route string, err error) {
	var stockErr catalog.InsufficientStockError
	if errors.As(err, &stockErr) {
		log.Printf("[%s] insufficient stock for product %d", route, stockErr.ProductID)
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{
			"error":     "insufficient stock",
			"productId": stockErr.ProductID,
			"available": stockErr.Available,
			"requested": stockErr.Requested,
		})
		return
	}

	var notFound catalog.NotFoundError
	if errors.As(err, &notFound) {
		respondWithError(c, http.StatusNotFound, route, "product not found")
		return
	}

	var notInCart cart.NotInCartError
	if errors.As(err, &notInCart) {
		respondWithError(c, http.StatusNotFound, route, "product not in cart")
		return
	}

	respondWithError(c, http.StatusInternalServerError, route, "cart operation failed")
}
