package catalog

import (
	"testing"

	"air-store/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_ByID(t *testing.T) {
	c := New(zerolog.Nop())

	tests := []struct {
		name     string
		id       int
		expected string // product name, "" when absent
	}{
		{name: "First product", id: 1, expected: "Pantalón Air Classic"},
		{name: "Last product", id: 9, expected: "Medias Air Luxury"},
		{name: "Unknown ID", id: 42, expected: ""},
		{name: "Zero ID", id: 0, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := c.ByID(tt.id)
			if tt.expected == "" {
				assert.Nil(t, p)
				return
			}
			require.NotNil(t, p)
			assert.Equal(t, tt.expected, p.Name)
		})
	}
}

func TestCatalog_ByCategory(t *testing.T) {
	c := New(zerolog.Nop())

	pantalones := c.ByCategory("pantalon")
	require.Len(t, pantalones, 3)
	for _, p := range pantalones {
		assert.Equal(t, "pantalon", p.Category)
	}

	assert.Empty(t, c.ByCategory("zapatos"))
}

func TestCatalog_Categories(t *testing.T) {
	c := New(zerolog.Nop())

	categories := c.Categories()
	require.Len(t, categories, 3)

	assert.Equal(t, model.Category{ID: "pantalon", Name: "Pantalones", Count: 3}, categories[0])
	assert.Equal(t, model.Category{ID: "sueter", Name: "Suéteres", Count: 3}, categories[1])
	assert.Equal(t, model.Category{ID: "medias", Name: "Medias", Count: 3}, categories[2])
}

func TestCatalog_Products_ReturnsCopy(t *testing.T) {
	c := New(zerolog.Nop())

	products := c.Products()
	require.Len(t, products, 9)

	products[0].Name = "mutated"
	assert.Equal(t, "Pantalón Air Classic", c.ByID(1).Name)
}

func TestProduct_HasSize(t *testing.T) {
	c := New(zerolog.Nop())
	p := c.ByID(2)
	require.NotNil(t, p)

	assert.True(t, p.HasSize("XXL"))
	assert.False(t, p.HasSize("XS"))
}
