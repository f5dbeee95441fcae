package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCents_Amount(t *testing.T) {
	tests := []struct {
		name     string
		cents    Cents
		expected float64
	}{
		{name: "Zero", cents: 0, expected: 0},
		{name: "Single item price", cents: 8999, expected: 89.99},
		{name: "Two items", cents: Cents(8999).Mul(2), expected: 179.98},
		{name: "Whole units", cents: 10000, expected: 100.00},
		{name: "Sub-unit", cents: 5, expected: 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cents.Amount())
		})
	}
}

func TestCents_Mul(t *testing.T) {
	assert.Equal(t, Cents(17998), Cents(8999).Mul(2))
	assert.Equal(t, Cents(0), Cents(8999).Mul(0))
}

func TestCents_String(t *testing.T) {
	assert.Equal(t, "89.99", Cents(8999).String())
	assert.Equal(t, "0.00", Cents(0).String())
	assert.Equal(t, "DOP 179.98", Cents(17998).Format())
}

func TestFromMajor(t *testing.T) {
	assert.Equal(t, Cents(8999), FromMajor(89, 99))
	assert.Equal(t, Cents(2499), FromMajor(24, 99))
}
