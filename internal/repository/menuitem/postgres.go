package menuitem

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"partymenu/internal/domain"
)

const itemColumns = `id, category_id, name, COALESCE(description, ''), price, COALESCE(image_url, ''), is_popular, is_available, preparation_minutes, created_at, updated_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) ListAvailable(ctx context.Context) ([]domain.MenuItem, error) {
	const q = `
SELECT ` + itemColumns + `
FROM menu_items
WHERE is_available
ORDER BY name ASC
`
	return r.list(ctx, q)
}

func (r *postgresRepo) ListByCategory(ctx context.Context, categoryID int64) ([]domain.MenuItem, error) {
	const q = `
SELECT ` + itemColumns + `
FROM menu_items
WHERE category_id = $1 AND is_available
ORDER BY name ASC
`
	return r.list(ctx, q, categoryID)
}

func (r *postgresRepo) ListPopular(ctx context.Context) ([]domain.MenuItem, error) {
	const q = `
SELECT ` + itemColumns + `
FROM menu_items
WHERE is_popular AND is_available
ORDER BY name ASC
`
	return r.list(ctx, q)
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]domain.MenuItem, error) {
	const q = `
SELECT ` + itemColumns + `
FROM menu_items
ORDER BY name ASC
`
	return r.list(ctx, q)
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.MenuItem, error) {
	const q = `SELECT ` + itemColumns + ` FROM menu_items WHERE id = $1`
	item, err := scanItem(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("menu item repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return item, nil
}

func (r *postgresRepo) Create(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	const q = `
INSERT INTO menu_items (category_id, name, description, price, image_url, is_popular, is_available, preparation_minutes)
VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), $6, $7, $8)
RETURNING ` + itemColumns
	out, err := scanItem(r.pool.QueryRow(ctx, q,
		item.CategoryID, item.Name, item.Description, item.Price,
		item.ImageURL, item.IsPopular, item.IsAvailable, item.PreparationMinutes,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("menu item repo: create name=%q error=%v", item.Name, err)
		return nil, err
	}
	r.logger.Printf("menu item repo: created id=%d name=%q", out.ID, out.Name)
	return out, nil
}

func (r *postgresRepo) Update(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	const q = `
UPDATE menu_items
SET category_id = $1,
    name = $2,
    description = NULLIF($3, ''),
    price = $4,
    image_url = NULLIF($5, ''),
    is_popular = $6,
    is_available = $7,
    preparation_minutes = $8,
    updated_at = now()
WHERE id = $9
RETURNING ` + itemColumns
	out, err := scanItem(r.pool.QueryRow(ctx, q,
		item.CategoryID, item.Name, item.Description, item.Price,
		item.ImageURL, item.IsPopular, item.IsAvailable, item.PreparationMinutes, item.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("menu item repo: update id=%d error=%v", item.ID, err)
		return nil, err
	}
	return out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("menu item repo: delete id=%d error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) UpsertByName(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	const q = `
INSERT INTO menu_items (category_id, name, description, price, image_url, is_popular, is_available, preparation_minutes)
VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), $6, $7, $8)
ON CONFLICT (category_id, name) DO UPDATE SET
    description = EXCLUDED.description,
    price = EXCLUDED.price,
    image_url = EXCLUDED.image_url,
    is_popular = EXCLUDED.is_popular,
    is_available = EXCLUDED.is_available,
    preparation_minutes = EXCLUDED.preparation_minutes,
    updated_at = now()
RETURNING ` + itemColumns
	out, err := scanItem(r.pool.QueryRow(ctx, q,
		item.CategoryID, item.Name, item.Description, item.Price,
		item.ImageURL, item.IsPopular, item.IsAvailable, item.PreparationMinutes,
	))
	if err != nil {
		r.logger.Printf("menu item repo: upsert name=%q error=%v", item.Name, err)
		return nil, err
	}
	return out, nil
}

func (r *postgresRepo) list(ctx context.Context, q string, args ...any) ([]domain.MenuItem, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("menu item repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.MenuItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *item)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("menu item repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*domain.MenuItem, error) {
	var item domain.MenuItem
	if err := row.Scan(
		&item.ID,
		&item.CategoryID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.ImageURL,
		&item.IsPopular,
		&item.IsAvailable,
		&item.PreparationMinutes,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}
