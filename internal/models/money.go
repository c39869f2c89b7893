package models

import (
	"github.com/shopspring/decimal"
)

// RoundAmount rounds a monetary amount to two decimal places. Totals are
// rounded once after summation, never per-addition.
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// SharePercent returns total/income expressed as a percentage rounded to one
// decimal place for display. When income is zero the share is reported as 0,
// not an error.
func SharePercent(total, income decimal.Decimal) decimal.Decimal {
	if income.IsZero() {
		return decimal.Zero
	}
	return total.Div(income).Mul(decimal.NewFromInt(100)).Round(1)
}
