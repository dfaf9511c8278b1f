// Package seed loads demo catalog data for manual testing.
package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type itemSeed struct {
	Name        string
	Description string
	Price       string
	IsPopular   bool
	Preparation int
}

type categorySeed struct {
	Name         string
	Description  string
	DisplayOrder int
	Items        []itemSeed
}

type menuTypeSeed struct {
	Name        string
	Description string
	Categories  []categorySeed
}

var menus = []menuTypeSeed{
	{
		Name:        "Party Menu",
		Description: "Sharing plates for groups",
		Categories: []categorySeed{
			{
				Name:         "Starters",
				DisplayOrder: 1,
				Items: []itemSeed{
					{Name: "Gazpacho", Description: "Chilled tomato soup", Price: "4.50", Preparation: 10},
					{Name: "Croquetas", Description: "Ham croquettes, six pieces", Price: "6.00", IsPopular: true, Preparation: 15},
				},
			},
			{
				Name:         "Mains",
				DisplayOrder: 2,
				Items: []itemSeed{
					{Name: "Paella", Description: "Seafood paella for two", Price: "24.00", IsPopular: true, Preparation: 40},
					{Name: "Tortilla", Description: "Potato omelette", Price: "8.50", Preparation: 25},
				},
			},
			{
				Name:         "Desserts",
				DisplayOrder: 3,
				Items: []itemSeed{
					{Name: "Churros", Description: "With chocolate dip", Price: "5.00", IsPopular: true, Preparation: 15},
					{Name: "Flan", Description: "Caramel custard", Price: "4.00", Preparation: 5},
				},
			},
		},
	},
	{
		Name:        "Drinks",
		Description: "Cold and hot drinks",
		Categories: []categorySeed{
			{
				Name:         "Soft Drinks",
				DisplayOrder: 1,
				Items: []itemSeed{
					{Name: "Horchata", Description: "Tiger nut milk", Price: "3.50", Preparation: 2},
					{Name: "Sparkling Water", Price: "2.00", Preparation: 1},
				},
			},
		},
	},
}

// Apply inserts demo catalog data plus an admin account for manual
// testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	for _, mt := range menus {
		menuTypeID, err := ensureMenuType(ctx, pool, mt)
		if err != nil {
			return fmt.Errorf("ensure menu type %s: %w", mt.Name, err)
		}
		for _, cat := range mt.Categories {
			categoryID, err := ensureCategory(ctx, pool, menuTypeID, cat)
			if err != nil {
				return fmt.Errorf("ensure category %s: %w", cat.Name, err)
			}
			for _, item := range cat.Items {
				if err := upsertItem(ctx, pool, categoryID, item); err != nil {
					return fmt.Errorf("upsert item %s: %w", item.Name, err)
				}
			}
		}
	}

	return ensureAdmin(ctx, pool)
}

func ensureMenuType(ctx context.Context, pool *pgxpool.Pool, mt menuTypeSeed) (int64, error) {
	const q = `
INSERT INTO menu_types (name, description)
VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description
RETURNING id
`
	var id int64
	if err := pool.QueryRow(ctx, q, mt.Name, mt.Description).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func ensureCategory(ctx context.Context, pool *pgxpool.Pool, menuTypeID int64, cat categorySeed) (int64, error) {
	const q = `
INSERT INTO categories (menu_type_id, name, description, display_order)
VALUES ($1, $2, $3, $4)
ON CONFLICT (menu_type_id, name) DO UPDATE
SET description = EXCLUDED.description,
    display_order = EXCLUDED.display_order
RETURNING id
`
	var id int64
	if err := pool.QueryRow(ctx, q, menuTypeID, cat.Name, cat.Description, cat.DisplayOrder).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func upsertItem(ctx context.Context, pool *pgxpool.Pool, categoryID int64, item itemSeed) error {
	const q = `
INSERT INTO menu_items (category_id, name, description, price, is_popular, preparation_minutes)
VALUES ($1, $2, $3, $4::numeric, $5, $6)
ON CONFLICT (category_id, name) DO UPDATE
SET description = EXCLUDED.description,
    price = EXCLUDED.price,
    is_popular = EXCLUDED.is_popular,
    preparation_minutes = EXCLUDED.preparation_minutes,
    updated_at = now()
`
	_, err := pool.Exec(ctx, q, categoryID, item.Name, item.Description, item.Price, item.IsPopular, item.Preparation)
	return err
}

func ensureAdmin(ctx context.Context, pool *pgxpool.Pool) error {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO users (name, email, password_hash, is_admin)
VALUES ('Admin', $1, $2, TRUE)
ON CONFLICT (email) DO UPDATE SET is_admin = TRUE
`
	_, err = pool.Exec(ctx, q, email, string(hashed))
	return err
}
