package httpserver

import (
	"context"
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"partymenu/internal/domain"
	cartsvc "partymenu/internal/service/cart"
	menusvc "partymenu/internal/service/menu"
	usersvc "partymenu/internal/service/user"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type stubCartService struct {
	summary   *cartsvc.Summary
	line      *domain.CartLine
	err       error
	lastOwner domain.Owner
	cleared   bool
	removedID int64
}

func (s *stubCartService) GetSummary(_ context.Context, owner domain.Owner) (*cartsvc.Summary, error) {
	s.lastOwner = owner
	if s.err != nil {
		return nil, s.err
	}
	if s.summary != nil {
		return s.summary, nil
	}
	return &cartsvc.Summary{Lines: []domain.CartLine{}, Amount: decimal.Zero, IsEmpty: true}, nil
}

func (s *stubCartService) AddToCart(_ context.Context, owner domain.Owner, _ int64, _ int) (*domain.CartLine, error) {
	s.lastOwner = owner
	return s.line, s.err
}

func (s *stubCartService) UpdateQuantity(_ context.Context, owner domain.Owner, _ int64, _ int) (*domain.CartLine, error) {
	s.lastOwner = owner
	return s.line, s.err
}

func (s *stubCartService) RemoveLine(_ context.Context, owner domain.Owner, lineID int64) error {
	s.lastOwner = owner
	s.removedID = lineID
	return s.err
}

func (s *stubCartService) ClearCart(_ context.Context, owner domain.Owner) error {
	s.lastOwner = owner
	s.cleared = true
	return s.err
}

func (s *stubCartService) Stats(_ context.Context, owner domain.Owner) (int, decimal.Decimal, error) {
	s.lastOwner = owner
	if s.err != nil {
		return 0, decimal.Zero, s.err
	}
	return 3, decimal.RequireFromString("12.50"), nil
}

type stubMergeService struct {
	err           error
	mergedSession string
	mergedUserID  int64
	calls         int
}

func (s *stubMergeService) Merge(_ context.Context, sessionID string, userID int64) error {
	s.calls++
	s.mergedSession = sessionID
	s.mergedUserID = userID
	return s.err
}

type stubMenuService struct {
	items      []domain.MenuItem
	categories []domain.Category
	types      []domain.MenuType
	err        error
}

func (s *stubMenuService) ListAvailableItems(context.Context) ([]domain.MenuItem, error) {
	return s.items, s.err
}

func (s *stubMenuService) ListPopularItems(context.Context) ([]domain.MenuItem, error) {
	return s.items, s.err
}

func (s *stubMenuService) ListItemsByCategory(context.Context, int64) ([]domain.MenuItem, error) {
	return s.items, s.err
}

func (s *stubMenuService) ListAllItems(context.Context) ([]domain.MenuItem, error) {
	return s.items, s.err
}

func (s *stubMenuService) GetItem(context.Context, int64) (*domain.MenuItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.items) == 0 {
		return nil, domain.ErrNotFound
	}
	return &s.items[0], nil
}

func (s *stubMenuService) ListCategories(context.Context) ([]domain.Category, error) {
	return s.categories, s.err
}

func (s *stubMenuService) ListCategoriesByMenuType(context.Context, int64) ([]domain.Category, error) {
	return s.categories, s.err
}

func (s *stubMenuService) ListMenuTypes(context.Context) ([]domain.MenuType, error) {
	return s.types, s.err
}

func (s *stubMenuService) CreateItem(_ context.Context, in menusvc.ItemInput) (*domain.MenuItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.MenuItem{ID: 1, CategoryID: in.CategoryID, Name: in.Name, Price: in.Price}, nil
}

func (s *stubMenuService) UpdateItem(_ context.Context, id int64, in menusvc.ItemInput) (*domain.MenuItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.MenuItem{ID: id, CategoryID: in.CategoryID, Name: in.Name, Price: in.Price}, nil
}

func (s *stubMenuService) DeleteItem(context.Context, int64) error { return s.err }

func (s *stubMenuService) CreateCategory(_ context.Context, in menusvc.CategoryInput) (*domain.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Category{ID: 1, MenuTypeID: in.MenuTypeID, Name: in.Name}, nil
}

func (s *stubMenuService) UpdateCategory(_ context.Context, id int64, in menusvc.CategoryInput) (*domain.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Category{ID: id, MenuTypeID: in.MenuTypeID, Name: in.Name}, nil
}

func (s *stubMenuService) DeleteCategory(context.Context, int64) error { return s.err }

func (s *stubMenuService) CreateMenuType(_ context.Context, in menusvc.MenuTypeInput) (*domain.MenuType, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.MenuType{ID: 1, Name: in.Name}, nil
}

func (s *stubMenuService) UpdateMenuType(_ context.Context, id int64, in menusvc.MenuTypeInput) (*domain.MenuType, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.MenuType{ID: id, Name: in.Name}, nil
}

func (s *stubMenuService) DeleteMenuType(context.Context, int64) error { return s.err }

type stubUserService struct {
	user        *domain.User
	registerErr error
	loginErr    error
	lookupErr   error
}

func (s *stubUserService) Register(_ context.Context, _ usersvc.RegisterInput) (*domain.User, error) {
	return s.user, s.registerErr
}

func (s *stubUserService) Login(_ context.Context, _, _ string) (*domain.User, string, string, error) {
	if s.loginErr != nil {
		return nil, "", "", s.loginErr
	}
	return s.user, "access-token", "refresh-token", nil
}

func (s *stubUserService) LookupByToken(_ context.Context, _ string) (*domain.User, error) {
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	if s.user == nil {
		return nil, usersvc.ErrInvalidToken
	}
	return s.user, nil
}

func (s *stubUserService) AccessTTLSeconds() int { return 3600 }

type stubSessionService struct {
	minted string
}

func (s *stubSessionService) NewSessionID() string {
	if s.minted == "" {
		s.minted = uuid.NewString()
	}
	return s.minted
}

func (s *stubSessionService) ValidSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (s *stubSessionService) CookieTTLSeconds() int { return 3600 }

func testDeps() (Deps, *stubCartService, *stubMergeService, *stubMenuService, *stubUserService, *stubSessionService) {
	carts := &stubCartService{}
	merges := &stubMergeService{}
	menus := &stubMenuService{}
	users := &stubUserService{}
	sessions := &stubSessionService{}
	return Deps{
		CartSvc:    carts,
		MergeSvc:   merges,
		MenuSvc:    menus,
		UserSvc:    users,
		SessionSvc: sessions,
	}, carts, merges, menus, users, sessions
}
