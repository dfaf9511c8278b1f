// Package menu serves the catalog tree: menu types contain categories,
// categories contain items. Query shapes are explicit; nothing is lazily
// resolved behind the caller's back.
package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"partymenu/internal/domain"
	categoryrepo "partymenu/internal/repository/category"
	menuitemrepo "partymenu/internal/repository/menuitem"
	menutyperepo "partymenu/internal/repository/menutype"
)

var maxPrice = decimal.RequireFromString("9999.99")

type Service struct {
	items      menuitemrepo.Repository
	categories categoryrepo.Repository
	menuTypes  menutyperepo.Repository
}

func New(items menuitemrepo.Repository, categories categoryrepo.Repository, menuTypes menutyperepo.Repository) *Service {
	return &Service{items: items, categories: categories, menuTypes: menuTypes}
}

// ItemInput carries the writable fields of a menu item.
type ItemInput struct {
	CategoryID         int64           `json:"categoryId"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price"`
	ImageURL           string          `json:"imageUrl"`
	IsPopular          bool            `json:"isPopular"`
	IsAvailable        bool            `json:"isAvailable"`
	PreparationMinutes int             `json:"preparationMinutes"`
}

type CategoryInput struct {
	MenuTypeID   int64  `json:"menuTypeId"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"displayOrder"`
	IsActive     bool   `json:"isActive"`
}

type MenuTypeInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

func (s *Service) ListAvailableItems(ctx context.Context) ([]domain.MenuItem, error) {
	return s.items.ListAvailable(ctx)
}

func (s *Service) ListPopularItems(ctx context.Context) ([]domain.MenuItem, error) {
	return s.items.ListPopular(ctx)
}

func (s *Service) ListItemsByCategory(ctx context.Context, categoryID int64) ([]domain.MenuItem, error) {
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.items.ListByCategory(ctx, categoryID)
}

func (s *Service) ListAllItems(ctx context.Context) ([]domain.MenuItem, error) {
	return s.items.ListAll(ctx)
}

func (s *Service) GetItem(ctx context.Context, id int64) (*domain.MenuItem, error) {
	return s.items.GetByID(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.ListActive(ctx)
}

func (s *Service) ListCategoriesByMenuType(ctx context.Context, menuTypeID int64) ([]domain.Category, error) {
	if _, err := s.menuTypes.GetByID(ctx, menuTypeID); err != nil {
		return nil, err
	}
	return s.categories.ListByMenuType(ctx, menuTypeID)
}

func (s *Service) ListMenuTypes(ctx context.Context) ([]domain.MenuType, error) {
	return s.menuTypes.ListActive(ctx)
}

func (s *Service) CreateItem(ctx context.Context, in ItemInput) (*domain.MenuItem, error) {
	item, err := s.itemFromInput(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.items.Create(ctx, *item)
}

func (s *Service) UpdateItem(ctx context.Context, id int64, in ItemInput) (*domain.MenuItem, error) {
	item, err := s.itemFromInput(ctx, in)
	if err != nil {
		return nil, err
	}
	item.ID = id
	return s.items.Update(ctx, *item)
}

func (s *Service) DeleteItem(ctx context.Context, id int64) error {
	return s.items.Delete(ctx, id)
}

func (s *Service) CreateCategory(ctx context.Context, in CategoryInput) (*domain.Category, error) {
	c, err := s.categoryFromInput(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.categories.Create(ctx, *c)
}

func (s *Service) UpdateCategory(ctx context.Context, id int64, in CategoryInput) (*domain.Category, error) {
	c, err := s.categoryFromInput(ctx, in)
	if err != nil {
		return nil, err
	}
	c.ID = id
	return s.categories.Update(ctx, *c)
}

func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	return s.categories.Delete(ctx, id)
}

func (s *Service) CreateMenuType(ctx context.Context, in MenuTypeInput) (*domain.MenuType, error) {
	mt, err := menuTypeFromInput(in)
	if err != nil {
		return nil, err
	}
	return s.menuTypes.Create(ctx, *mt)
}

func (s *Service) UpdateMenuType(ctx context.Context, id int64, in MenuTypeInput) (*domain.MenuType, error) {
	mt, err := menuTypeFromInput(in)
	if err != nil {
		return nil, err
	}
	mt.ID = id
	return s.menuTypes.Update(ctx, *mt)
}

func (s *Service) DeleteMenuType(ctx context.Context, id int64) error {
	return s.menuTypes.Delete(ctx, id)
}

func (s *Service) itemFromInput(ctx context.Context, in ItemInput) (*domain.MenuItem, error) {
	name := strings.TrimSpace(in.Name)
	if len(name) < 2 || len(name) > 150 {
		return nil, fmt.Errorf("%w: item name must be between 2 and 150 characters", domain.ErrValidation)
	}
	if in.Price.LessThanOrEqual(decimal.Zero) || in.Price.GreaterThan(maxPrice) {
		return nil, fmt.Errorf("%w: price must be between 0.01 and 9999.99", domain.ErrValidation)
	}
	prep := in.PreparationMinutes
	if prep == 0 {
		prep = 30
	}
	if prep < 1 || prep > 300 {
		return nil, fmt.Errorf("%w: preparation minutes must be between 1 and 300", domain.ErrValidation)
	}
	if _, err := s.categories.GetByID(ctx, in.CategoryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: category %d does not exist", domain.ErrValidation, in.CategoryID)
		}
		return nil, err
	}
	return &domain.MenuItem{
		CategoryID:         in.CategoryID,
		Name:               name,
		Description:        strings.TrimSpace(in.Description),
		Price:              in.Price.Round(2),
		ImageURL:           strings.TrimSpace(in.ImageURL),
		IsPopular:          in.IsPopular,
		IsAvailable:        in.IsAvailable,
		PreparationMinutes: prep,
	}, nil
}

func (s *Service) categoryFromInput(ctx context.Context, in CategoryInput) (*domain.Category, error) {
	name := strings.TrimSpace(in.Name)
	if len(name) < 2 || len(name) > 100 {
		return nil, fmt.Errorf("%w: category name must be between 2 and 100 characters", domain.ErrValidation)
	}
	if _, err := s.menuTypes.GetByID(ctx, in.MenuTypeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: menu type %d does not exist", domain.ErrValidation, in.MenuTypeID)
		}
		return nil, err
	}
	return &domain.Category{
		MenuTypeID:   in.MenuTypeID,
		Name:         name,
		Description:  strings.TrimSpace(in.Description),
		DisplayOrder: in.DisplayOrder,
		IsActive:     in.IsActive,
	}, nil
}

func menuTypeFromInput(in MenuTypeInput) (*domain.MenuType, error) {
	name := strings.TrimSpace(in.Name)
	if len(name) < 2 || len(name) > 100 {
		return nil, fmt.Errorf("%w: menu type name must be between 2 and 100 characters", domain.ErrValidation)
	}
	return &domain.MenuType{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		IsActive:    in.IsActive,
	}, nil
}
