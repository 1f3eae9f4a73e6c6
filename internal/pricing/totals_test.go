package pricing

import (
	"testing"
	"time"

	"fruitshop/internal/models"
)

var totalsNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func shopSettings() models.Settings {
	return models.Settings{
		Currency:             "THB",
		CurrencySymbol:       "฿",
		ShippingFee:          50,
		FreeShippingMinOrder: 500,
	}
}

func lines(total float64) []models.CartLine {
	return []models.CartLine{{ProductID: 1, Name: "Apples", UnitPrice: total, Quantity: 1, LineTotal: total}}
}

func TestShippingThreshold(t *testing.T) {
	tests := []struct {
		subtotal float64
		want     float64
	}{
		{subtotal: 400, want: 50},
		{subtotal: 499.99, want: 50},
		{subtotal: 500, want: 0},
		{subtotal: 600, want: 0},
	}
	for _, tt := range tests {
		if got := Shipping(shopSettings(), tt.subtotal, PromoResult{}); got != tt.want {
			t.Fatalf("subtotal %v: expected shipping %v, got %v", tt.subtotal, tt.want, got)
		}
	}
}

func TestShippingWaivedByFreeShippingPromo(t *testing.T) {
	promo := models.Promotion{Code: "SHIPFREE", Type: models.PromoFreeShipping, Active: true}
	result := PromoResult{Valid: true, Promo: &promo}

	if got := Shipping(shopSettings(), 100, result); got != 0 {
		t.Fatalf("expected free shipping below threshold with promo, got %v", got)
	}
}

func TestShippingIgnoresNonShippingPromo(t *testing.T) {
	promo := models.Promotion{Code: "WELCOME20", Type: models.PromoPercentage, Active: true}
	result := PromoResult{Valid: true, Discount: 20, Promo: &promo}

	if got := Shipping(shopSettings(), 100, result); got != 50 {
		t.Fatalf("expected flat fee 50 with percentage promo, got %v", got)
	}
}

func TestOrderTotalNoPromo(t *testing.T) {
	totals := OrderTotal(lines(300), shopSettings(), nil, "", totalsNow)

	if totals.Subtotal != 300 || totals.Discount != 0 || totals.ShippingFee != 50 {
		t.Fatalf("unexpected breakdown: %+v", totals)
	}
	// Round-trip with no promo: total is exactly subtotal plus shipping.
	if totals.Total != totals.Subtotal+totals.ShippingFee {
		t.Fatalf("expected total %v, got %v", totals.Subtotal+totals.ShippingFee, totals.Total)
	}
	if totals.Currency != "฿" {
		t.Fatalf("expected currency symbol ฿, got %q", totals.Currency)
	}
}

func TestOrderTotalWithPercentagePromo(t *testing.T) {
	promos := []models.Promotion{{Code: "WELCOME20", Discount: 20, Type: models.PromoPercentage, MinOrder: 200, Active: true}}

	totals := OrderTotal(lines(300), shopSettings(), promos, "WELCOME20", totalsNow)
	if totals.Discount != 60 {
		t.Fatalf("expected discount 60, got %v", totals.Discount)
	}
	if totals.Total != 300-60+50 {
		t.Fatalf("expected total 290, got %v", totals.Total)
	}
}

func TestOrderTotalFreeShippingPromoBelowThreshold(t *testing.T) {
	promos := []models.Promotion{{Code: "SHIPFREE", Type: models.PromoFreeShipping, Active: true}}

	totals := OrderTotal(lines(300), shopSettings(), promos, "SHIPFREE", totalsNow)
	if totals.ShippingFee != 0 {
		t.Fatalf("expected shipping waived, got %v", totals.ShippingFee)
	}
	if totals.Discount != 0 {
		t.Fatalf("expected no discount, got %v", totals.Discount)
	}
	if totals.Total != 300 {
		t.Fatalf("expected total 300, got %v", totals.Total)
	}
}

func TestOrderTotalInvalidCodeContributesNothing(t *testing.T) {
	totals := OrderTotal(lines(300), shopSettings(), nil, "BOGUS", totalsNow)
	if totals.Discount != 0 || totals.Total != 350 {
		t.Fatalf("expected invalid code to change nothing, got %+v", totals)
	}
}

func TestOrderTotalNeverNegative(t *testing.T) {
	// Free shipping above the threshold plus a full-subtotal discount.
	promos := []models.Promotion{{Code: "FLAT1000", Discount: 1000, Type: models.PromoFixed, Active: true}}

	totals := OrderTotal(lines(600), shopSettings(), promos, "FLAT1000", totalsNow)
	if totals.Discount != 600 {
		t.Fatalf("expected discount capped at 600, got %v", totals.Discount)
	}
	if totals.Total != 0 {
		t.Fatalf("expected total clamped to 0, got %v", totals.Total)
	}
}

func TestOrderTotalEmptyCart(t *testing.T) {
	totals := OrderTotal(nil, shopSettings(), nil, "", totalsNow)
	if totals.Subtotal != 0 {
		t.Fatalf("expected zero subtotal, got %v", totals.Subtotal)
	}
	if totals.Total != totals.ShippingFee {
		t.Fatalf("expected total equal to shipping, got %+v", totals)
	}
}

func TestSubtotalSumsLines(t *testing.T) {
	cartLines := []models.CartLine{
		{ProductID: 1, UnitPrice: 120, Quantity: 2},
		{ProductID: 2, UnitPrice: 45, Quantity: 1},
	}
	if got := Subtotal(cartLines); got != 285 {
		t.Fatalf("expected subtotal 285, got %v", got)
	}
}
