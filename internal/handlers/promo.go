package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fruitshop/internal/catalog"
	"fruitshop/internal/pricing"
)

type validatePromoRequest struct {
	Code     string  `json:"code" binding:"required"`
	Subtotal float64 `json:"subtotal"`
}

/*
POST /promo/validate
Checks a promo code against a subtotal. Always 200: validity is part of the
response body, not a transport error.
*/
func ValidatePromo(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /promo/validate"
		defer handlePanic(c, route)

		var req validatePromoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		settings := store.Settings()
		result := pricing.ValidatePromoCode(
			store.Promotions(),
			settings.CurrencySymbol,
			req.Code,
			req.Subtotal,
			time.Now(),
		)
		c.JSON(http.StatusOK, result)
	}
}
