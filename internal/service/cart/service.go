package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"partymenu/internal/domain"
	"partymenu/internal/pricing"
	cartlinerepo "partymenu/internal/repository/cartline"
)

// Service orchestrates cart mutations against the line store and the menu
// catalog. All operations are keyed by an explicit Owner; there is no ambient
// session state.
type Service struct {
	repo    lineRepo
	catalog catalogRepo
}

type lineRepo interface {
	ListByOwner(ctx context.Context, owner domain.Owner) ([]domain.CartLine, error)
	FindByID(ctx context.Context, id int64) (*domain.CartLine, error)
	AddLine(ctx context.Context, owner domain.Owner, menuItemID int64, quantity int, unitPrice decimal.Decimal) (*domain.CartLine, error)
	Upsert(ctx context.Context, line domain.CartLine) (*domain.CartLine, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteAllByOwner(ctx context.Context, owner domain.Owner) error
	SumQuantity(ctx context.Context, owner domain.Owner) (int, error)
	SumTotalPrice(ctx context.Context, owner domain.Owner) (decimal.Decimal, error)
	PurgeSessionLinesBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// catalogRepo is the collaborator contract to the menu catalog: current
// price, availability and name by item id.
type catalogRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.MenuItem, error)
}

func New(repo cartlinerepo.Repository, catalog catalogRepo) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// Summary is the read-only aggregate view of one owner's cart.
type Summary struct {
	Lines     []domain.CartLine `json:"lines"`
	ItemCount int               `json:"itemCount"`
	Amount    decimal.Decimal   `json:"amount"`
	IsEmpty   bool              `json:"isEmpty"`
}

// AddToCart puts quantity of a menu item into the owner's cart. When the
// owner already holds the item the quantities are summed and the stored price
// snapshot is kept; otherwise a new line captures the catalog price as of now.
func (s *Service) AddToCart(ctx context.Context, owner domain.Owner, menuItemID int64, quantity int) (*domain.CartLine, error) {
	if owner.IsZero() {
		return nil, fmt.Errorf("%w: owner required", domain.ErrValidation)
	}
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
	}

	item, err := s.catalog.GetByID(ctx, menuItemID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	if !item.IsAvailable {
		return nil, domain.ErrItemUnavailable
	}

	return s.repo.AddLine(ctx, owner, menuItemID, quantity, item.Price)
}

// UpdateQuantity sets the quantity of an owned line. A quantity of zero or
// less deletes the line and returns (nil, nil); that is a normal outcome, not
// an error.
func (s *Service) UpdateQuantity(ctx context.Context, owner domain.Owner, lineID int64, quantity int) (*domain.CartLine, error) {
	line, err := s.repo.FindByID(ctx, lineID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrLineNotFound
		}
		return nil, err
	}
	if line.Owner != owner {
		return nil, domain.ErrOwnershipMismatch
	}

	if quantity <= 0 {
		if err := s.repo.DeleteByID(ctx, lineID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	line.Quantity = quantity
	line.TotalPrice = pricing.LineTotal(line.UnitPrice, quantity)
	return s.repo.Upsert(ctx, *line)
}

// RemoveLine deletes an owned line. Missing lines and lines held by another
// owner are ignored; removal is idempotent.
func (s *Service) RemoveLine(ctx context.Context, owner domain.Owner, lineID int64) error {
	line, err := s.repo.FindByID(ctx, lineID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	if line.Owner != owner {
		return nil
	}
	return s.repo.DeleteByID(ctx, lineID)
}

// ClearCart deletes every line for the owner. Idempotent.
func (s *Service) ClearCart(ctx context.Context, owner domain.Owner) error {
	return s.repo.DeleteAllByOwner(ctx, owner)
}

// GetSummary lists the owner's lines newest first with the aggregate totals.
func (s *Service) GetSummary(ctx context.Context, owner domain.Owner) (*Summary, error) {
	lines, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []domain.CartLine{}
	}
	count, amount := pricing.CartTotals(lines)
	return &Summary{
		Lines:     lines,
		ItemCount: count,
		Amount:    amount,
		IsEmpty:   len(lines) == 0,
	}, nil
}

// Stats returns the owner's item count and amount straight from the store's
// aggregate queries, without materializing the lines.
func (s *Service) Stats(ctx context.Context, owner domain.Owner) (int, decimal.Decimal, error) {
	count, err := s.repo.SumQuantity(ctx, owner)
	if err != nil {
		return 0, decimal.Zero, err
	}
	amount, err := s.repo.SumTotalPrice(ctx, owner)
	if err != nil {
		return 0, decimal.Zero, err
	}
	return count, amount, nil
}

// PurgeAbandonedSessions deletes session-owned lines older than maxAge and
// reports how many were removed. Account carts are never purged.
func (s *Service) PurgeAbandonedSessions(ctx context.Context, maxAge time.Duration) (int64, error) {
	if maxAge <= 0 {
		return 0, fmt.Errorf("%w: retention age must be positive", domain.ErrValidation)
	}
	return s.repo.PurgeSessionLinesBefore(ctx, time.Now().Add(-maxAge))
}
