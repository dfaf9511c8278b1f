package menuitem

import (
	"context"

	"partymenu/internal/domain"
)

type Repository interface {
	ListAvailable(ctx context.Context) ([]domain.MenuItem, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]domain.MenuItem, error)
	ListPopular(ctx context.Context) ([]domain.MenuItem, error)
	ListAll(ctx context.Context) ([]domain.MenuItem, error)
	GetByID(ctx context.Context, id int64) (*domain.MenuItem, error)
	Create(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error)
	Update(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error)
	Delete(ctx context.Context, id int64) error

	// UpsertByName inserts or refreshes an item keyed by (category, name);
	// used by the importer and seed tooling.
	UpsertByName(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error)
}
