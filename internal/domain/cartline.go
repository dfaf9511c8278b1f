package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one (owner, menu item) pairing with a priced quantity.
//
// UnitPrice is a snapshot of the catalog price taken when the line was
// created; it does not follow later price changes. TotalPrice always equals
// UnitPrice times Quantity, and a persisted line always has Quantity >= 1.
type CartLine struct {
	ID         int64           `json:"id"`
	Owner      Owner           `json:"-"`
	MenuItemID int64           `json:"menuItemId"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
