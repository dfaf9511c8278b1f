package cartline

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"partymenu/internal/domain"
)

// Repository is the persistence port for cart lines. At most one line exists
// per (owner, menu item); mutating operations are atomic with respect to
// concurrent writers for the same owner.
type Repository interface {
	ListByOwner(ctx context.Context, owner domain.Owner) ([]domain.CartLine, error)
	FindByID(ctx context.Context, id int64) (*domain.CartLine, error)
	FindByOwnerAndItem(ctx context.Context, owner domain.Owner, menuItemID int64) (*domain.CartLine, error)

	// AddLine inserts a new line or, when the owner already holds the item,
	// adds quantity to the existing line. The stored unit price is kept on
	// increment; the supplied one applies only to a fresh line.
	AddLine(ctx context.Context, owner domain.Owner, menuItemID int64, quantity int, unitPrice decimal.Decimal) (*domain.CartLine, error)

	// Upsert inserts the line when its ID is zero and overwrites it by id
	// otherwise. The total price is recomputed from unit price and quantity.
	Upsert(ctx context.Context, line domain.CartLine) (*domain.CartLine, error)

	DeleteByID(ctx context.Context, id int64) error
	DeleteAllByOwner(ctx context.Context, owner domain.Owner) error

	SumQuantity(ctx context.Context, owner domain.Owner) (int, error)
	SumTotalPrice(ctx context.Context, owner domain.Owner) (decimal.Decimal, error)

	// MergeInto moves every line of the session owner into the account owner
	// in one transaction: colliding items have their quantities summed under
	// the account line's unit price, the rest are reassigned in place. No line
	// remains under the session owner afterwards.
	MergeInto(ctx context.Context, from, to domain.Owner) error

	// PurgeSessionLinesBefore deletes session-owned lines created before the
	// cutoff. Account-owned lines are never touched.
	PurgeSessionLinesBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
