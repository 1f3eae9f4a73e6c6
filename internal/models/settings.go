package models

type Contact struct {
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
}

// Settings are shop-wide constants loaded once with the catalog.
type Settings struct {
	Currency             string  `bson:"currency" json:"currency"`
	CurrencySymbol       string  `bson:"currencySymbol" json:"currencySymbol"`
	ShippingFee          float64 `bson:"shippingFee" json:"shippingFee"`
	FreeShippingMinOrder float64 `bson:"freeShippingMinOrder" json:"freeShippingMinOrder"`
	Contact              Contact `bson:"contact,omitempty" json:"contact,omitempty"`
}
