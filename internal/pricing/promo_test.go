package pricing

import (
	"testing"
	"time"

	"fruitshop/internal/models"
)

var promoNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func welcomePromo() models.Promotion {
	return models.Promotion{
		ID:       1,
		Code:     "WELCOME20",
		Discount: 20,
		Type:     models.PromoPercentage,
		MinOrder: 200,
		Active:   true,
	}
}

func TestValidatePromoCodePercentage(t *testing.T) {
	result := ValidatePromoCode([]models.Promotion{welcomePromo()}, "฿", "WELCOME20", 300, promoNow)
	if !result.Valid {
		t.Fatalf("expected WELCOME20 to validate at subtotal 300, got %+v", result)
	}
	if result.Discount != 60 {
		t.Fatalf("expected discount 60, got %v", result.Discount)
	}
}

func TestValidatePromoCodeBelowMinOrder(t *testing.T) {
	result := ValidatePromoCode([]models.Promotion{welcomePromo()}, "฿", "WELCOME20", 100, promoNow)
	if result.Valid {
		t.Fatalf("expected WELCOME20 to be rejected below minOrder, got %+v", result)
	}
	if result.Message != invalidPromoMessage {
		t.Fatalf("expected the fixed invalid message, got %q", result.Message)
	}
}

func TestValidatePromoCodeUnknownAndCaseSensitive(t *testing.T) {
	promos := []models.Promotion{welcomePromo()}
	for _, code := range []string{"NOPE", "welcome20", ""} {
		if result := ValidatePromoCode(promos, "฿", code, 300, promoNow); result.Valid {
			t.Fatalf("expected code %q to be rejected", code)
		}
	}
}

func TestValidatePromoCodeInactive(t *testing.T) {
	promo := welcomePromo()
	promo.Active = false
	if result := ValidatePromoCode([]models.Promotion{promo}, "฿", "WELCOME20", 300, promoNow); result.Valid {
		t.Fatal("expected inactive promo to be rejected")
	}
}

func TestValidatePromoCodeExpiry(t *testing.T) {
	promo := welcomePromo()

	past := promoNow.Add(-time.Hour)
	promo.ValidUntil = &past
	if result := ValidatePromoCode([]models.Promotion{promo}, "฿", "WELCOME20", 300, promoNow); result.Valid {
		t.Fatal("expected expired promo to be rejected")
	}

	// Expiry exactly at the evaluation time counts as expired.
	at := promoNow
	promo.ValidUntil = &at
	if result := ValidatePromoCode([]models.Promotion{promo}, "฿", "WELCOME20", 300, promoNow); result.Valid {
		t.Fatal("expected promo expiring now to be rejected")
	}

	future := promoNow.Add(time.Hour)
	promo.ValidUntil = &future
	if result := ValidatePromoCode([]models.Promotion{promo}, "฿", "WELCOME20", 300, promoNow); !result.Valid {
		t.Fatal("expected promo expiring later to validate")
	}
}

func TestValidatePromoCodeFixedCappedAtSubtotal(t *testing.T) {
	promo := models.Promotion{ID: 2, Code: "FLAT500", Discount: 500, Type: models.PromoFixed, Active: true}

	result := ValidatePromoCode([]models.Promotion{promo}, "฿", "FLAT500", 120, promoNow)
	if !result.Valid {
		t.Fatalf("expected FLAT500 to validate, got %+v", result)
	}
	if result.Discount != 120 {
		t.Fatalf("expected discount capped at subtotal 120, got %v", result.Discount)
	}
}

func TestValidatePromoCodeFreeShipping(t *testing.T) {
	promo := models.Promotion{ID: 3, Code: "SHIPFREE", Type: models.PromoFreeShipping, Active: true}

	result := ValidatePromoCode([]models.Promotion{promo}, "฿", "SHIPFREE", 300, promoNow)
	if !result.Valid {
		t.Fatalf("expected SHIPFREE to validate, got %+v", result)
	}
	if result.Discount != 0 {
		t.Fatalf("expected zero discount from free shipping, got %v", result.Discount)
	}
	if result.Promo == nil || result.Promo.Type != models.PromoFreeShipping {
		t.Fatalf("expected matched promo to propagate, got %+v", result.Promo)
	}
}
