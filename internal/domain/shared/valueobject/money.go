package valueobject

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Currency represents a currency code (ISO 4217)
type Currency string

const (
	USD Currency = "USD" // US Dollar
	EUR Currency = "EUR" // Euro
	GBP Currency = "GBP" // British Pound
	INR Currency = "INR" // Indian Rupee
)

// DefaultCurrency is the display currency for the storefront
const DefaultCurrency = USD

// Money is a value object representing a monetary amount held in minor
// currency units (cents). It is immutable - all operations return new
// Money instances.
type Money struct {
	minorUnits int64
	currency   Currency
}

// NewMoney creates Money from an amount in minor units
func NewMoney(minorUnits int64, currency Currency) (Money, error) {
	if currency == "" {
		return Money{}, errors.New("currency cannot be empty")
	}
	return Money{minorUnits: minorUnits, currency: currency}, nil
}

// NewMoneyUSD creates Money in USD from an amount in cents
func NewMoneyUSD(minorUnits int64) Money {
	return Money{minorUnits: minorUnits, currency: USD}
}

// Zero returns a zero-value Money in the specified currency
func Zero(currency Currency) Money {
	return Money{minorUnits: 0, currency: currency}
}

// MinorUnits returns the raw amount in minor units
func (m Money) MinorUnits() int64 {
	return m.minorUnits
}

// Currency returns the currency code
func (m Money) Currency() Currency {
	return m.currency
}

// IsZero returns true if the amount is zero
func (m Money) IsZero() bool {
	return m.minorUnits == 0
}

// IsNegative returns true if the amount is negative
func (m Money) IsNegative() bool {
	return m.minorUnits < 0
}

// Add returns a new Money with the sum of both amounts.
// Returns an error if currencies don't match.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, errors.New("cannot add money with different currencies")
	}
	return Money{minorUnits: m.minorUnits + other.minorUnits, currency: m.currency}, nil
}

// MulInt returns a new Money multiplied by an integer factor (e.g. a
// line-item quantity).
func (m Money) MulInt(factor int64) Money {
	return Money{minorUnits: m.minorUnits * factor, currency: m.currency}
}

// Amount returns the amount in major units as a decimal (e.g. 2499 -> 24.99)
func (m Money) Amount() decimal.Decimal {
	return decimal.New(m.minorUnits, -2)
}

// Display returns the amount formatted for presentation, e.g. "$24.99"
func (m Money) Display() string {
	return m.symbol() + m.Amount().StringFixed(2)
}

func (m Money) symbol() string {
	switch m.currency {
	case USD:
		return "$"
	case EUR:
		return "€"
	case GBP:
		return "£"
	case INR:
		return "₹"
	default:
		return string(m.currency) + " "
	}
}
