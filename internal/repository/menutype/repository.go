package menutype

import (
	"context"

	"partymenu/internal/domain"
)

type Repository interface {
	ListActive(ctx context.Context) ([]domain.MenuType, error)
	GetByID(ctx context.Context, id int64) (*domain.MenuType, error)
	Create(ctx context.Context, mt domain.MenuType) (*domain.MenuType, error)
	Update(ctx context.Context, mt domain.MenuType) (*domain.MenuType, error)
	Delete(ctx context.Context, id int64) error
	EnsureByName(ctx context.Context, name string) (*domain.MenuType, error)
}
