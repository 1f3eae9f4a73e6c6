package models

// CartEntry is one reserved product line. Name, Price and Emoji are display
// snapshots taken at add time; quantity accounting always reconciles against
// the live product stock.
type CartEntry struct {
	ProductID int     `bson:"productId" json:"id"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Emoji     string  `bson:"emoji,omitempty" json:"emoji,omitempty"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

// CartLine is a cart entry priced against the current catalog, as used for
// totals and checkout.
type CartLine struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}
