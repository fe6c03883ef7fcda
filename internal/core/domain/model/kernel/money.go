package kernel

import (
	"fmt"

	"pharmacy/internal/pkg/errs"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created
// through NewMoney. Returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney")

// minorUnitsPerUnit is the number of minor currency units (paise) in one
// whole currency unit (rupee).
const minorUnitsPerUnit = 100

// Money is an immutable value object representing a non-negative amount of
// currency. Amounts are stored in minor units (paise) as an int64 so that
// price arithmetic is exact; fractional currency never exists.
//
// The zero value is invalid and must be constructed via NewMoney.
//
// Example usage:
//
//	price, err := kernel.NewMoney(1000) // 10.00
//	if err != nil {
//	    // handle error
//	}
//	lineTotal := price.Multiply(3) // 30.00
type Money struct {
	minor         int64
	isConstructed bool
}

// NewMoney creates a Money value from an amount in minor currency units.
// Negative amounts are rejected.
func NewMoney(minor int64) (Money, error) {
	if minor < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount",
			fmt.Errorf("%d is negative", minor))
	}
	return Money{minor: minor, isConstructed: true}, nil
}

// Validate checks that the Money value was created via NewMoney.
func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}

// Minor returns the amount in minor currency units.
func (m Money) Minor() int64 {
	return m.minor
}

// WholeUnits returns the amount in whole currency units, truncating any
// fractional part. This is the integer representation the payment gateway
// expects for its order amount.
func (m Money) WholeUnits() int64 {
	return m.minor / minorUnitsPerUnit
}

// Multiply returns the amount scaled by a non-negative quantity.
// A negative quantity is treated as zero.
func (m Money) Multiply(qty int) Money {
	if qty < 0 {
		qty = 0
	}
	return Money{minor: m.minor * int64(qty), isConstructed: m.isConstructed}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{minor: m.minor + other.minor, isConstructed: m.isConstructed && other.isConstructed}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.minor == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.minor == other.minor
}

// String renders the amount as "units.fraction", e.g. "10.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.minor/minorUnitsPerUnit, m.minor%minorUnitsPerUnit)
}
