package domain

import "github.com/shopspring/decimal"

// Tolerance is the monetary comparison tolerance used everywhere a balance,
// share sum, or percentage sum is compared. Amounts within Tolerance of zero
// are treated as settled.
var Tolerance = decimal.RequireFromString("0.01")

// IsSettled reports whether amount is within Tolerance of zero.
func IsSettled(amount decimal.Decimal) bool {
	return amount.Abs().LessThanOrEqual(Tolerance)
}

// ApproxEqual reports whether a and b differ by at most Tolerance.
func ApproxEqual(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(Tolerance)
}
