package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Cents represents a monetary amount in minor units (DOP cents).
// All arithmetic inside the application happens on this integer type;
// conversion to a floating display amount occurs only at the
// presentation boundary (API responses, the order payload).
type Cents int64

// Mul returns the amount multiplied by a quantity.
func (c Cents) Mul(qty int) Cents {
	return c * Cents(qty)
}

// Add returns the sum of two amounts.
func (c Cents) Add(other Cents) Cents {
	return c + other
}

// Decimal returns the amount in major units as an exact decimal.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// Amount returns the amount in major units for wire formats that
// require a float (e.g. the order payload's price and total fields).
func (c Cents) Amount() float64 {
	f, _ := c.Decimal().Float64()
	return f
}

// String formats the amount in major units with two decimal places.
func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}

// FromMajor converts a major-unit amount expressed as whole units and
// cents (e.g. 89, 99 for 89.99) into Cents.
func FromMajor(units int64, cents int64) Cents {
	return Cents(units*100 + cents)
}

// Format renders the amount with a currency prefix for logs and
// notifications, e.g. "DOP 179.98".
func (c Cents) Format() string {
	return fmt.Sprintf("DOP %s", c.String())
}
