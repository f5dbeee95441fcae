package catalog

import (
	"air-store/internal/model"

	"github.com/rs/zerolog"
)

// Catalog is the static, read-only product catalogue. Products are
// indexed once at construction; no mutation happens afterwards, so no
// locking is needed.
type Catalog struct {
	products []model.Product
	byID     map[int]*model.Product
	logger   zerolog.Logger
}

// New creates a catalogue over the default product set.
func New(logger zerolog.Logger) *Catalog {
	return NewWithProducts(defaultProducts, logger)
}

// NewWithProducts creates a catalogue over the given product set.
func NewWithProducts(products []model.Product, logger zerolog.Logger) *Catalog {
	c := &Catalog{
		products: products,
		byID:     make(map[int]*model.Product, len(products)),
		logger:   logger.With().Str("component", "catalog").Logger(),
	}
	for i := range c.products {
		c.byID[c.products[i].ID] = &c.products[i]
	}
	c.logger.Info().Int("count", len(products)).Msg("catalogue loaded")
	return c
}

// Products returns all products in catalogue order.
func (c *Catalog) Products() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByID retrieves a single product by ID; nil when absent.
func (c *Catalog) ByID(id int) *model.Product {
	return c.byID[id]
}

// ByCategory returns the products in the given category, in
// catalogue order.
func (c *Catalog) ByCategory(category string) []model.Product {
	var out []model.Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct categories with product counts, in
// order of first appearance.
func (c *Catalog) Categories() []model.Category {
	var order []string
	counts := make(map[string]int)
	for _, p := range c.products {
		if _, seen := counts[p.Category]; !seen {
			order = append(order, p.Category)
		}
		counts[p.Category]++
	}

	out := make([]model.Category, 0, len(order))
	for _, id := range order {
		out = append(out, model.Category{
			ID:    id,
			Name:  categoryNames[id],
			Count: counts[id],
		})
	}
	return out
}
