// Package pricing evaluates promo codes and computes order totals. All
// functions are pure: state comes in as arguments, including the evaluation
// time for promo expiry.
package pricing

import (
	"fmt"
	"time"

	"fruitshop/internal/models"
)

const invalidPromoMessage = "Invalid or expired promo code"

// PromoResult reports the outcome of a promo code check. Discount is already
// capped at the order subtotal; free-shipping promos carry a zero discount
// and propagate through Promo.
type PromoResult struct {
	Valid    bool              `json:"valid"`
	Discount float64           `json:"discount"`
	Message  string            `json:"message"`
	Promo    *models.Promotion `json:"promo,omitempty"`
}

func (r PromoResult) freeShipping() bool {
	return r.Valid && r.Promo != nil && r.Promo.Type == models.PromoFreeShipping
}

// ValidatePromoCode matches code against the promotions (exact, case
// sensitive) and computes its discount for the given subtotal. A promotion
// only matches when active, not expired at now, and the subtotal meets its
// minimum order.
func ValidatePromoCode(promos []models.Promotion, currencySymbol, code string, subtotal float64, now time.Time) PromoResult {
	for _, promo := range promos {
		if promo.Code != code || !promo.ActiveAt(now) {
			continue
		}
		if promo.MinOrder > 0 && subtotal < promo.MinOrder {
			continue
		}

		matched := promo
		result := PromoResult{Valid: true, Promo: &matched}

		switch promo.Type {
		case models.PromoPercentage:
			result.Discount = subtotal * promo.Discount / 100
			result.Message = fmt.Sprintf("%g%% discount", promo.Discount)
		case models.PromoFixed:
			result.Discount = promo.Discount
			result.Message = fmt.Sprintf("%s%g discount", currencySymbol, promo.Discount)
		case models.PromoFreeShipping:
			result.Message = "Free shipping"
		}

		if result.Discount > subtotal {
			result.Discount = subtotal
		}
		return result
	}

	return PromoResult{Valid: false, Message: invalidPromoMessage}
}
