package models

import "time"

// OrderItem represents a single product entry within an order.
type OrderItem struct {
	ProductID int     `bson:"productId" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

// Order defines the persisted checkout record. Checkout consumes the stock
// reservation, so deleting an order never restores stock.
type Order struct {
	ID          string      `bson:"_id" json:"id"`
	Items       []OrderItem `bson:"items" json:"items"`
	Subtotal    float64     `bson:"subtotal" json:"subtotal"`
	Discount    float64     `bson:"discount" json:"discount"`
	ShippingFee float64     `bson:"shippingFee" json:"shippingFee"`
	Total       float64     `bson:"total" json:"total"`
	PromoCode   string      `bson:"promoCode,omitempty" json:"promoCode,omitempty"`
	Currency    string      `bson:"currency" json:"currency"`
	Status      string      `bson:"status" json:"status"`
	CreatedAt   time.Time   `bson:"createdAt" json:"createdAt"`
}
