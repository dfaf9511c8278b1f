package menu

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"partymenu/internal/domain"
)

type stubItemRepo struct {
	items   []domain.MenuItem
	created *domain.MenuItem
	updated *domain.MenuItem
	deleted int64
}

func (s *stubItemRepo) ListAvailable(ctx context.Context) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	for _, it := range s.items {
		if it.IsAvailable {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *stubItemRepo) ListByCategory(ctx context.Context, categoryID int64) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	for _, it := range s.items {
		if it.CategoryID == categoryID && it.IsAvailable {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *stubItemRepo) ListPopular(ctx context.Context) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	for _, it := range s.items {
		if it.IsPopular && it.IsAvailable {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *stubItemRepo) ListAll(ctx context.Context) ([]domain.MenuItem, error) {
	return s.items, nil
}

func (s *stubItemRepo) GetByID(ctx context.Context, id int64) (*domain.MenuItem, error) {
	for _, it := range s.items {
		if it.ID == id {
			return &it, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubItemRepo) Create(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	item.ID = int64(len(s.items) + 1)
	s.created = &item
	return &item, nil
}

func (s *stubItemRepo) Update(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	s.updated = &item
	return &item, nil
}

func (s *stubItemRepo) Delete(ctx context.Context, id int64) error {
	s.deleted = id
	return nil
}

func (s *stubItemRepo) UpsertByName(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	return &item, nil
}

type stubCategoryRepo struct {
	categories []domain.Category
}

func (s *stubCategoryRepo) ListActive(ctx context.Context) ([]domain.Category, error) {
	return s.categories, nil
}

func (s *stubCategoryRepo) ListByMenuType(ctx context.Context, menuTypeID int64) ([]domain.Category, error) {
	var out []domain.Category
	for _, c := range s.categories {
		if c.MenuTypeID == menuTypeID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *stubCategoryRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	for _, c := range s.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubCategoryRepo) Create(ctx context.Context, c domain.Category) (*domain.Category, error) {
	c.ID = int64(len(s.categories) + 1)
	return &c, nil
}

func (s *stubCategoryRepo) Update(ctx context.Context, c domain.Category) (*domain.Category, error) {
	return &c, nil
}

func (s *stubCategoryRepo) Delete(ctx context.Context, id int64) error { return nil }

func (s *stubCategoryRepo) EnsureByName(ctx context.Context, menuTypeID int64, name string) (*domain.Category, error) {
	return &domain.Category{MenuTypeID: menuTypeID, Name: name}, nil
}

type stubMenuTypeRepo struct {
	types []domain.MenuType
}

func (s *stubMenuTypeRepo) ListActive(ctx context.Context) ([]domain.MenuType, error) {
	return s.types, nil
}

func (s *stubMenuTypeRepo) GetByID(ctx context.Context, id int64) (*domain.MenuType, error) {
	for _, mt := range s.types {
		if mt.ID == id {
			return &mt, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubMenuTypeRepo) Create(ctx context.Context, mt domain.MenuType) (*domain.MenuType, error) {
	mt.ID = int64(len(s.types) + 1)
	return &mt, nil
}

func (s *stubMenuTypeRepo) Update(ctx context.Context, mt domain.MenuType) (*domain.MenuType, error) {
	return &mt, nil
}

func (s *stubMenuTypeRepo) Delete(ctx context.Context, id int64) error { return nil }

func (s *stubMenuTypeRepo) EnsureByName(ctx context.Context, name string) (*domain.MenuType, error) {
	return &domain.MenuType{Name: name}, nil
}

func newTestService() (*Service, *stubItemRepo, *stubCategoryRepo, *stubMenuTypeRepo) {
	items := &stubItemRepo{items: []domain.MenuItem{
		{ID: 1, CategoryID: 1, Name: "Paella", Price: decimal.RequireFromString("5.00"), IsAvailable: true, IsPopular: true},
		{ID: 2, CategoryID: 1, Name: "Tortilla", Price: decimal.RequireFromString("3.50"), IsAvailable: true},
		{ID: 3, CategoryID: 2, Name: "Churros", Price: decimal.RequireFromString("2.00"), IsAvailable: false},
	}}
	categories := &stubCategoryRepo{categories: []domain.Category{
		{ID: 1, MenuTypeID: 1, Name: "Mains", IsActive: true},
		{ID: 2, MenuTypeID: 1, Name: "Desserts", IsActive: true},
	}}
	menuTypes := &stubMenuTypeRepo{types: []domain.MenuType{
		{ID: 1, Name: "Dinner", IsActive: true},
	}}
	return New(items, categories, menuTypes), items, categories, menuTypes
}

func TestListAvailableItemsFiltersUnavailable(t *testing.T) {
	svc, _, _, _ := newTestService()

	got, err := svc.ListAvailableItems(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 available items, got %d", len(got))
	}
}

func TestListPopularItems(t *testing.T) {
	svc, _, _, _ := newTestService()

	got, err := svc.ListPopularItems(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Paella" {
		t.Fatalf("expected only Paella, got %+v", got)
	}
}

func TestListItemsByCategoryUnknownCategory(t *testing.T) {
	svc, _, _, _ := newTestService()

	if _, err := svc.ListItemsByCategory(context.Background(), 99); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateItemValid(t *testing.T) {
	svc, items, _, _ := newTestService()

	created, err := svc.CreateItem(context.Background(), ItemInput{
		CategoryID:  1,
		Name:        "  Gazpacho  ",
		Price:       decimal.RequireFromString("4.255"),
		IsAvailable: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Name != "Gazpacho" {
		t.Errorf("expected trimmed name, got %q", created.Name)
	}
	if created.Price.String() != "4.26" {
		t.Errorf("expected price rounded to 4.26, got %s", created.Price)
	}
	if created.PreparationMinutes != 30 {
		t.Errorf("expected default preparation of 30 minutes, got %d", created.PreparationMinutes)
	}
	if items.created == nil {
		t.Fatal("expected item to reach the repository")
	}
}

func TestCreateItemValidation(t *testing.T) {
	svc, _, _, _ := newTestService()

	cases := []struct {
		name string
		in   ItemInput
	}{
		{"short name", ItemInput{CategoryID: 1, Name: "x", Price: decimal.RequireFromString("1.00")}},
		{"zero price", ItemInput{CategoryID: 1, Name: "Gazpacho", Price: decimal.Zero}},
		{"negative price", ItemInput{CategoryID: 1, Name: "Gazpacho", Price: decimal.RequireFromString("-1.00")}},
		{"price too high", ItemInput{CategoryID: 1, Name: "Gazpacho", Price: decimal.RequireFromString("10000.00")}},
		{"unknown category", ItemInput{CategoryID: 99, Name: "Gazpacho", Price: decimal.RequireFromString("1.00")}},
		{"bad preparation", ItemInput{CategoryID: 1, Name: "Gazpacho", Price: decimal.RequireFromString("1.00"), PreparationMinutes: 500}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateItem(context.Background(), tc.in); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestUpdateItemKeepsID(t *testing.T) {
	svc, items, _, _ := newTestService()

	got, err := svc.UpdateItem(context.Background(), 2, ItemInput{
		CategoryID:  1,
		Name:        "Tortilla de patatas",
		Price:       decimal.RequireFromString("3.75"),
		IsAvailable: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 2 {
		t.Errorf("expected id 2, got %d", got.ID)
	}
	if items.updated == nil || items.updated.ID != 2 {
		t.Errorf("expected update for id 2, got %+v", items.updated)
	}
}

func TestCreateCategoryUnknownMenuType(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.CreateCategory(context.Background(), CategoryInput{MenuTypeID: 42, Name: "Starters"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestCreateMenuTypeValid(t *testing.T) {
	svc, _, _, _ := newTestService()

	mt, err := svc.CreateMenuType(context.Background(), MenuTypeInput{Name: "Brunch", IsActive: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mt.Name != "Brunch" {
		t.Errorf("expected Brunch, got %q", mt.Name)
	}
}

func TestListCategoriesByMenuTypeUnknown(t *testing.T) {
	svc, _, _, _ := newTestService()

	if _, err := svc.ListCategoriesByMenuType(context.Background(), 9); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
