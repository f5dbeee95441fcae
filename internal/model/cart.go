package model

import "air-store/internal/money"

// CartItem represents one line in the cart: a (product, size) pairing
// with a quantity. Display fields are denormalised from the product at
// the time of the first add so the cart renders without catalogue
// lookups.
type CartItem struct {
	LineID     string      `json:"lineId"`
	ProductID  int         `json:"productId"`
	Name       string      `json:"name"`
	PriceCents money.Cents `json:"priceCents"`
	Image      string      `json:"image"`
	Size       string      `json:"selectedSize"`
	Quantity   int         `json:"quantity"`
}

// Subtotal returns price * quantity for the line.
func (i *CartItem) Subtotal() money.Cents {
	return i.PriceCents.Mul(i.Quantity)
}
