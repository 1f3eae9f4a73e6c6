package models

// Product is a catalog item. Stock is the only field mutated after load,
// and only through the catalog store.
type Product struct {
	ID            int     `bson:"_id" json:"id"`
	Name          string  `bson:"name" json:"name"`
	Description   string  `bson:"description,omitempty" json:"description,omitempty"`
	Price         float64 `bson:"price" json:"price"`
	OriginalPrice float64 `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	Emoji         string  `bson:"emoji,omitempty" json:"emoji,omitempty"`
	Category      string  `bson:"category" json:"category"`
	Stock         int     `bson:"stock" json:"stock"`
	Badge         string  `bson:"badge,omitempty" json:"badge,omitempty"`
	InStock       bool    `bson:"-" json:"inStock"`
}

// DiscountPercent is the display discount implied by the original price,
// zero when no original price is set.
func (p Product) DiscountPercent() float64 {
	if p.OriginalPrice <= 0 {
		return 0
	}
	return (p.OriginalPrice - p.Price) / p.OriginalPrice * 100
}
