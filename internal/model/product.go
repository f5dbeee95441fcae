package model

import "air-store/internal/money"

// Product represents a clothing product in the catalogue.
type Product struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	PriceCents  money.Cents `json:"priceCents"`
	Image       string      `json:"image"`
	Description string      `json:"description"`
	Sizes       []string    `json:"sizes"`
	InStock     bool        `json:"inStock"`
}

// HasSize reports whether the product is offered in the given size.
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// Category groups products for navigation.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}
