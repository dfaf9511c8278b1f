package category

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"partymenu/internal/domain"
)

const categoryColumns = `id, menu_type_id, name, COALESCE(description, ''), display_order, is_active, created_at, updated_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) ListActive(ctx context.Context) ([]domain.Category, error) {
	const q = `
SELECT ` + categoryColumns + `
FROM categories
WHERE is_active
ORDER BY display_order ASC, name ASC
`
	return r.list(ctx, q)
}

func (r *postgresRepo) ListByMenuType(ctx context.Context, menuTypeID int64) ([]domain.Category, error) {
	const q = `
SELECT ` + categoryColumns + `
FROM categories
WHERE menu_type_id = $1 AND is_active
ORDER BY display_order ASC, name ASC
`
	return r.list(ctx, q, menuTypeID)
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	const q = `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	c, err := scanCategory(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *postgresRepo) Create(ctx context.Context, c domain.Category) (*domain.Category, error) {
	const q = `
INSERT INTO categories (menu_type_id, name, description, display_order, is_active)
VALUES ($1, $2, NULLIF($3, ''), $4, $5)
RETURNING ` + categoryColumns
	out, err := scanCategory(r.pool.QueryRow(ctx, q, c.MenuTypeID, c.Name, c.Description, c.DisplayOrder, c.IsActive))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return out, nil
}

func (r *postgresRepo) Update(ctx context.Context, c domain.Category) (*domain.Category, error) {
	const q = `
UPDATE categories
SET menu_type_id = $1,
    name = $2,
    description = NULLIF($3, ''),
    display_order = $4,
    is_active = $5,
    updated_at = now()
WHERE id = $6
RETURNING ` + categoryColumns
	out, err := scanCategory(r.pool.QueryRow(ctx, q, c.MenuTypeID, c.Name, c.Description, c.DisplayOrder, c.IsActive, c.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) EnsureByName(ctx context.Context, menuTypeID int64, name string) (*domain.Category, error) {
	const q = `
INSERT INTO categories (menu_type_id, name)
VALUES ($1, $2)
ON CONFLICT (menu_type_id, name) DO UPDATE SET updated_at = now()
RETURNING ` + categoryColumns
	return scanCategory(r.pool.QueryRow(ctx, q, menuTypeID, name))
}

func (r *postgresRepo) list(ctx context.Context, q string, args ...any) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(row rowScanner) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(
		&c.ID,
		&c.MenuTypeID,
		&c.Name,
		&c.Description,
		&c.DisplayOrder,
		&c.IsActive,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
