package menutype

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"partymenu/internal/domain"
)

const menuTypeColumns = `id, name, COALESCE(description, ''), is_active, created_at, updated_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) ListActive(ctx context.Context) ([]domain.MenuType, error) {
	const q = `
SELECT ` + menuTypeColumns + `
FROM menu_types
WHERE is_active
ORDER BY name ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.MenuType
	for rows.Next() {
		mt, err := scanMenuType(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *mt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.MenuType, error) {
	const q = `SELECT ` + menuTypeColumns + ` FROM menu_types WHERE id = $1`
	mt, err := scanMenuType(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mt, nil
}

func (r *postgresRepo) Create(ctx context.Context, mt domain.MenuType) (*domain.MenuType, error) {
	const q = `
INSERT INTO menu_types (name, description, is_active)
VALUES ($1, NULLIF($2, ''), $3)
RETURNING ` + menuTypeColumns
	out, err := scanMenuType(r.pool.QueryRow(ctx, q, mt.Name, mt.Description, mt.IsActive))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return out, nil
}

func (r *postgresRepo) Update(ctx context.Context, mt domain.MenuType) (*domain.MenuType, error) {
	const q = `
UPDATE menu_types
SET name = $1,
    description = NULLIF($2, ''),
    is_active = $3,
    updated_at = now()
WHERE id = $4
RETURNING ` + menuTypeColumns
	out, err := scanMenuType(r.pool.QueryRow(ctx, q, mt.Name, mt.Description, mt.IsActive, mt.ID))
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
	cmd, err := r.pool.Exec(ctx, `DELETE FROM menu_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) EnsureByName(ctx context.Context, name string) (*domain.MenuType, error) {
	const q = `
INSERT INTO menu_types (name)
VALUES ($1)
ON CONFLICT (name) DO UPDATE SET updated_at = now()
RETURNING ` + menuTypeColumns
	return scanMenuType(r.pool.QueryRow(ctx, q, name))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMenuType(row rowScanner) (*domain.MenuType, error) {
	var mt domain.MenuType
	if err := row.Scan(
		&mt.ID,
		&mt.Name,
		&mt.Description,
		&mt.IsActive,
		&mt.CreatedAt,
		&mt.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &mt, nil
}
