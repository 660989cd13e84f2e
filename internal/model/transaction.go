package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents one normalized statement row as produced by the
// extraction side. Sign convention: negative = outflow, positive = inflow.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    string  // empty if the extractor did not assign one
	Confidence  float64 // extractor confidence in [0,1]
}

// Valid reports whether the transaction carries the minimum fields the
// pipeline needs. Invalid transactions are dropped during grouping.
func (t Transaction) Valid() bool {
	return !t.Date.IsZero() && t.Description != "" && !t.Amount.IsZero()
}

// NormalizeSigned converts a feed that reports unsigned magnitudes plus a
// direction flag into the canonical signed form. Outflows become negative.
func NormalizeSigned(amount decimal.Decimal, outflow bool) decimal.Decimal {
	if outflow {
		return amount.Abs().Neg()
	}
	return amount.Abs()
}
