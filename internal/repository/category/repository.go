package category

import (
	"context"

	"partymenu/internal/domain"
)

type Repository interface {
	ListActive(ctx context.Context) ([]domain.Category, error)
	ListByMenuType(ctx context.Context, menuTypeID int64) ([]domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	Create(ctx context.Context, c domain.Category) (*domain.Category, error)
	Update(ctx context.Context, c domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
	EnsureByName(ctx context.Context, menuTypeID int64, name string) (*domain.Category, error)
}
