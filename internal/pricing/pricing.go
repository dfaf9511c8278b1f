// Package pricing holds the pure price arithmetic for cart lines. It performs
// no I/O; all amounts are decimals with two fraction digits.
package pricing

import (
	"github.com/shopspring/decimal"

	"partymenu/internal/domain"
)

// LineTotal multiplies a unit price by a quantity and rounds the result to
// two decimal places, half-up.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

// CartTotals folds a set of lines into the aggregate item count and amount.
// An empty input yields (0, 0.00).
func CartTotals(lines []domain.CartLine) (itemCount int, amount decimal.Decimal) {
	amount = decimal.Zero
	for _, line := range lines {
		itemCount += line.Quantity
		amount = amount.Add(LineTotal(line.UnitPrice, line.Quantity))
	}
	return itemCount, amount
}
