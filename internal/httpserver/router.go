package httpserver

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"partymenu/internal/domain"
	cartsvc "partymenu/internal/service/cart"
	menusvc "partymenu/internal/service/menu"
	usersvc "partymenu/internal/service/user"
)

// CartService is the slice of the cart service the handlers need.
type CartService interface {
	GetSummary(ctx context.Context, owner domain.Owner) (*cartsvc.Summary, error)
	AddToCart(ctx context.Context, owner domain.Owner, menuItemID int64, quantity int) (*domain.CartLine, error)
	UpdateQuantity(ctx context.Context, owner domain.Owner, lineID int64, quantity int) (*domain.CartLine, error)
	RemoveLine(ctx context.Context, owner domain.Owner, lineID int64) error
	ClearCart(ctx context.Context, owner domain.Owner) error
	Stats(ctx context.Context, owner domain.Owner) (int, decimal.Decimal, error)
}

// MergeService folds an anonymous cart into an account cart at login.
type MergeService interface {
	Merge(ctx context.Context, sessionID string, userID int64) error
}

// MenuService exposes catalog browsing plus the admin mutations.
type MenuService interface {
	ListAvailableItems(ctx context.Context) ([]domain.MenuItem, error)
	ListPopularItems(ctx context.Context) ([]domain.MenuItem, error)
	ListItemsByCategory(ctx context.Context, categoryID int64) ([]domain.MenuItem, error)
	ListAllItems(ctx context.Context) ([]domain.MenuItem, error)
	GetItem(ctx context.Context, id int64) (*domain.MenuItem, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListCategoriesByMenuType(ctx context.Context, menuTypeID int64) ([]domain.Category, error)
	ListMenuTypes(ctx context.Context) ([]domain.MenuType, error)

	CreateItem(ctx context.Context, in menusvc.ItemInput) (*domain.MenuItem, error)
	UpdateItem(ctx context.Context, id int64, in menusvc.ItemInput) (*domain.MenuItem, error)
	DeleteItem(ctx context.Context, id int64) error
	CreateCategory(ctx context.Context, in menusvc.CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int64, in menusvc.CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	CreateMenuType(ctx context.Context, in menusvc.MenuTypeInput) (*domain.MenuType, error)
	UpdateMenuType(ctx context.Context, id int64, in menusvc.MenuTypeInput) (*domain.MenuType, error)
	DeleteMenuType(ctx context.Context, id int64) error
}

// UserService covers registration, login and token lookup.
type UserService interface {
	Register(ctx context.Context, in usersvc.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	LookupByToken(ctx context.Context, token string) (*domain.User, error)
	AccessTTLSeconds() int
}

// SessionService mints and validates anonymous cart session ids.
type SessionService interface {
	NewSessionID() string
	ValidSessionID(id string) bool
	CookieTTLSeconds() int
}

// Deps bundles everything the router needs.
type Deps struct {
	CartSvc    CartService
	MergeSvc   MergeService
	MenuSvc    MenuService
	UserSvc    UserService
	SessionSvc SessionService
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsCfg.AllowCredentials = false
	corsCfg.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	auth := router.Group("/auth")
	{
		auth.POST("/register", registerHandler(deps.UserSvc))
		auth.POST("/login", loginHandler(deps.UserSvc, deps.MergeSvc, deps.SessionSvc))
		auth.GET("/profile", requireAccount(deps.UserSvc), profileHandler(deps.CartSvc))
	}

	menu := router.Group("/menu")
	{
		menu.GET("/items", listItemsHandler(deps.MenuSvc))
		menu.GET("/items/popular", listPopularItemsHandler(deps.MenuSvc))
		menu.GET("/items/:id", getItemHandler(deps.MenuSvc))
		menu.GET("/categories", listCategoriesHandler(deps.MenuSvc))
		menu.GET("/categories/:id/items", listItemsByCategoryHandler(deps.MenuSvc))
		menu.GET("/types", listMenuTypesHandler(deps.MenuSvc))
		menu.GET("/types/:id/categories", listCategoriesByMenuTypeHandler(deps.MenuSvc))
	}

	cart := router.Group("/cart", identityMiddleware(deps.UserSvc, deps.SessionSvc))
	{
		cart.GET("", getCartHandler(deps.CartSvc))
		cart.POST("/items", addCartItemHandler(deps.CartSvc))
		cart.PATCH("/items/:id", updateCartItemHandler(deps.CartSvc))
		cart.DELETE("/items/:id", removeCartItemHandler(deps.CartSvc))
		cart.DELETE("", clearCartHandler(deps.CartSvc))
	}

	admin := router.Group("/admin", requireAccount(deps.UserSvc), requireAdmin())
	{
		admin.GET("/items", adminListItemsHandler(deps.MenuSvc))
		admin.POST("/items", adminCreateItemHandler(deps.MenuSvc))
		admin.PUT("/items/:id", adminUpdateItemHandler(deps.MenuSvc))
		admin.DELETE("/items/:id", adminDeleteItemHandler(deps.MenuSvc))
		admin.POST("/categories", adminCreateCategoryHandler(deps.MenuSvc))
		admin.PUT("/categories/:id", adminUpdateCategoryHandler(deps.MenuSvc))
		admin.DELETE("/categories/:id", adminDeleteCategoryHandler(deps.MenuSvc))
		admin.POST("/menu-types", adminCreateMenuTypeHandler(deps.MenuSvc))
		admin.PUT("/menu-types/:id", adminUpdateMenuTypeHandler(deps.MenuSvc))
		admin.DELETE("/menu-types/:id", adminDeleteMenuTypeHandler(deps.MenuSvc))
	}

	return router, nil
}
