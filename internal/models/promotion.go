package models

import "time"

// Promotion discount types.
const (
	PromoPercentage   = "percentage"
	PromoFixed        = "fixed"
	PromoFreeShipping = "free_shipping"
)

// Promotion is a named discount rule. Immutable after load; validity is
// evaluated against the clock at query time, never cached.
type Promotion struct {
	ID          int        `bson:"_id" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Code        string     `bson:"code" json:"code"`
	Discount    float64    `bson:"discount" json:"discount"`
	Type        string     `bson:"type" json:"type"`
	MinOrder    float64    `bson:"minOrder,omitempty" json:"minOrder,omitempty"`
	Active      bool       `bson:"active" json:"active"`
	ValidUntil  *time.Time `bson:"validUntil,omitempty" json:"validUntil,omitempty"`
}

// ActiveAt reports whether the promotion can be applied at the given time,
// ignoring any minimum-order condition.
func (p Promotion) ActiveAt(now time.Time) bool {
	if !p.Active {
		return false
	}
	return p.ValidUntil == nil || p.ValidUntil.After(now)
}
