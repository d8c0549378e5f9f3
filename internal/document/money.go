package document

import (
	"database/sql/driver"
	"fmt"
)

// Money is a monetary value stored as cents. The status engine only
// ever reads it through Get; arithmetic on raw cents stays with the
// caller.
type Money struct {
	cents int64
}

// Cents wraps an amount of cents.
func Cents(v int64) Money { return Money{cents: v} }

// Get returns the amount in cents.
func (m Money) Get() int64 { return m.cents }

// String renders the amount with two decimal places, e.g. "150.00".
func (m Money) String() string {
	c := m.cents
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

// Scan implements sql.Scanner; amounts are stored as bigint cents.
func (m *Money) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		m.cents = v
		return nil
	case nil:
		m.cents = 0
		return nil
	default:
		return fmt.Errorf("scanning money: unsupported type %T", src)
	}
}

// Value implements driver.Valuer.
func (m Money) Value() (driver.Value, error) { return m.cents, nil }
