package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fruitshop/internal/cart"
	"fruitshop/internal/storage"
)

type checkoutRequest struct {
	PromoCode string `json:"promoCode"`
}

/*
POST /checkout
Turns the cart into a persisted order. The reserved stock is consumed, not
restored; an empty cart or a rejected promo code leaves everything as it was.
*/
func Checkout(shopCart *cart.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /checkout"
		defer handlePanic(c, route)

		var req checkoutRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid request body")
				return
			}
		}

		order, err := shopCart.Checkout(c.Request.Context(), req.PromoCode, time.Now())
		if err != nil {
			if errors.Is(err, cart.ErrEmptyCart) {
				respondWithError(c, http.StatusBadRequest, route, "cart is empty")
				return
			}
			var promoErr cart.InvalidPromoError
			if errors.As(err, &promoErr) {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"error":   "invalid promo code",
					"code":    promoErr.Code,
					"message": promoErr.Message,
				})
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "checkout failed")
			return
		}

		log.Printf("[%s] order %s created, total %.2f", route, order.ID, order.Total)
		c.JSON(http.StatusCreated, order)
	}
}

func GetOrders(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders"
		defer handlePanic(c, route)

		orders, err := store.Orders(c.Request.Context())
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "orders could not be fetched")
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
