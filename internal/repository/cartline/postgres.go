package cartline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"partymenu/internal/domain"
	"partymenu/internal/pricing"
)

const lineColumns = `id, owner_session_id, owner_user_id, menu_item_id, quantity, unit_price, total_price, created_at, updated_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) ListByOwner(ctx context.Context, owner domain.Owner) ([]domain.CartLine, error) {
	col, arg, err := ownerColumn(owner)
	if err != nil {
		return nil, err
	}
	q := fmt.Sprintf(`
SELECT %s
FROM cart_lines
WHERE %s = $1
ORDER BY created_at DESC, id DESC
`, lineColumns, col)
	rows, err := r.pool.Query(ctx, q, arg)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	var result []domain.CartLine
	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, storageErr(err)
		}
		result = append(result, *line)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}
	return result, nil
}

func (r *postgresRepo) FindByID(ctx context.Context, id int64) (*domain.CartLine, error) {
	q := fmt.Sprintf(`SELECT %s FROM cart_lines WHERE id = $1`, lineColumns)
	line, err := scanLine(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storageErr(err)
	}
	return line, nil
}

func (r *postgresRepo) FindByOwnerAndItem(ctx context.Context, owner domain.Owner, menuItemID int64) (*domain.CartLine, error) {
	col, arg, err := ownerColumn(owner)
	if err != nil {
		return nil, err
	}
	q := fmt.Sprintf(`SELECT %s FROM cart_lines WHERE %s = $1 AND menu_item_id = $2`, lineColumns, col)
	line, err := scanLine(r.pool.QueryRow(ctx, q, arg, menuItemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storageErr(err)
	}
	return line, nil
}

// AddLine relies on the partial unique indexes over (owner, menu_item_id): the
// insert-or-increment happens in a single statement, so concurrent adds for
// the same key serialize on the index instead of creating duplicate lines.
func (r *postgresRepo) AddLine(ctx context.Context, owner domain.Owner, menuItemID int64, quantity int, unitPrice decimal.Decimal) (*domain.CartLine, error) {
	sessionID, userID, err := ownerIDs(owner)
	if err != nil {
		return nil, err
	}
	var conflictTarget string
	switch owner.Kind() {
	case domain.OwnerSession:
		conflictTarget = `(owner_session_id, menu_item_id) WHERE owner_session_id IS NOT NULL`
	case domain.OwnerAccount:
		conflictTarget = `(owner_user_id, menu_item_id) WHERE owner_user_id IS NOT NULL`
	}
	q := fmt.Sprintf(`
INSERT INTO cart_lines (owner_session_id, owner_user_id, menu_item_id, quantity, unit_price, total_price)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT %s
DO UPDATE SET
    quantity = cart_lines.quantity + EXCLUDED.quantity,
    total_price = round(cart_lines.unit_price * (cart_lines.quantity + EXCLUDED.quantity), 2),
    updated_at = now()
RETURNING %s
`, conflictTarget, lineColumns)

	total := pricing.LineTotal(unitPrice, quantity)
	line, err := scanLine(r.pool.QueryRow(ctx, q, sessionID, userID, menuItemID, quantity, unitPrice, total))
	if err != nil {
		return nil, storageErr(err)
	}
	return line, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, line domain.CartLine) (*domain.CartLine, error) {
	sessionID, userID, err := ownerIDs(line.Owner)
	if err != nil {
		return nil, err
	}
	total := pricing.LineTotal(line.UnitPrice, line.Quantity)

	if line.ID == 0 {
		q := fmt.Sprintf(`
INSERT INTO cart_lines (owner_session_id, owner_user_id, menu_item_id, quantity, unit_price, total_price)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING %s
`, lineColumns)
		out, err := scanLine(r.pool.QueryRow(ctx, q, sessionID, userID, line.MenuItemID, line.Quantity, line.UnitPrice, total))
		if err != nil {
			return nil, storageErr(err)
		}
		return out, nil
	}

	q := fmt.Sprintf(`
UPDATE cart_lines
SET quantity = $1,
    unit_price = $2,
    total_price = $3,
    updated_at = now()
WHERE id = $4
RETURNING %s
`, lineColumns)
	out, err := scanLine(r.pool.QueryRow(ctx, q, line.Quantity, line.UnitPrice, total, line.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storageErr(err)
	}
	return out, nil
}

func (r *postgresRepo) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM cart_lines WHERE id = $1`, id); err != nil {
		return storageErr(err)
	}
	return nil
}

func (r *postgresRepo) DeleteAllByOwner(ctx context.Context, owner domain.Owner) error {
	col, arg, err := ownerColumn(owner)
	if err != nil {
		return err
	}
	q := fmt.Sprintf(`DELETE FROM cart_lines WHERE %s = $1`, col)
	if _, err := r.pool.Exec(ctx, q, arg); err != nil {
		return storageErr(err)
	}
	return nil
}

func (r *postgresRepo) SumQuantity(ctx context.Context, owner domain.Owner) (int, error) {
	col, arg, err := ownerColumn(owner)
	if err != nil {
		return 0, err
	}
	q := fmt.Sprintf(`SELECT COALESCE(SUM(quantity), 0) FROM cart_lines WHERE %s = $1`, col)
	var total int
	if err := r.pool.QueryRow(ctx, q, arg).Scan(&total); err != nil {
		return 0, storageErr(err)
	}
	return total, nil
}

func (r *postgresRepo) SumTotalPrice(ctx context.Context, owner domain.Owner) (decimal.Decimal, error) {
	col, arg, err := ownerColumn(owner)
	if err != nil {
		return decimal.Zero, err
	}
	q := fmt.Sprintf(`SELECT COALESCE(SUM(total_price), 0) FROM cart_lines WHERE %s = $1`, col)
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, q, arg).Scan(&total); err != nil {
		return decimal.Zero, storageErr(err)
	}
	return total, nil
}

func (r *postgresRepo) MergeInto(ctx context.Context, from, to domain.Owner) error {
	if from.Kind() != domain.OwnerSession || to.Kind() != domain.OwnerAccount {
		return fmt.Errorf("%w: merge moves a session cart into an account cart", domain.ErrValidation)
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return storageErr(err)
	}
	defer tx.Rollback(ctx)

	// Items held by both owners: the account line absorbs the session
	// quantity and keeps its own price snapshot. Deleting and summing in
	// one statement keeps both reads on the same snapshot, so a session
	// add committing mid-merge can never be deleted without being summed.
	if _, err := tx.Exec(ctx, `
WITH absorbed AS (
    DELETE FROM cart_lines AS s
    USING cart_lines AS a
    WHERE s.owner_session_id = $2
      AND a.owner_user_id = $1
      AND a.menu_item_id = s.menu_item_id
    RETURNING s.menu_item_id, s.quantity
)
UPDATE cart_lines AS a
SET quantity = a.quantity + absorbed.quantity,
    total_price = round(a.unit_price * (a.quantity + absorbed.quantity), 2),
    updated_at = now()
FROM absorbed
WHERE a.owner_user_id = $1
  AND a.menu_item_id = absorbed.menu_item_id
`, to.UserID(), from.SessionID()); err != nil {
		return storageErr(err)
	}

	// Whatever the account did not already hold moves over in place.
	if _, err := tx.Exec(ctx, `
UPDATE cart_lines
SET owner_user_id = $1,
    owner_session_id = NULL,
    updated_at = now()
WHERE owner_session_id = $2
`, to.UserID(), from.SessionID()); err != nil {
		return storageErr(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return storageErr(err)
	}
	return nil
}

func (r *postgresRepo) PurgeSessionLinesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	cmd, err := r.pool.Exec(ctx, `
DELETE FROM cart_lines
WHERE owner_session_id IS NOT NULL
  AND created_at < $1
`, cutoff)
	if err != nil {
		return 0, storageErr(err)
	}
	return cmd.RowsAffected(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLine(row rowScanner) (*domain.CartLine, error) {
	var line domain.CartLine
	var sessionID *string
	var userID *int64
	if err := row.Scan(
		&line.ID,
		&sessionID,
		&userID,
		&line.MenuItemID,
		&line.Quantity,
		&line.UnitPrice,
		&line.TotalPrice,
		&line.CreatedAt,
		&line.UpdatedAt,
	); err != nil {
		return nil, err
	}
	switch {
	case sessionID != nil:
		line.Owner = domain.SessionOwner(*sessionID)
	case userID != nil:
		line.Owner = domain.AccountOwner(*userID)
	}
	return &line, nil
}

func ownerColumn(owner domain.Owner) (string, any, error) {
	switch owner.Kind() {
	case domain.OwnerSession:
		return "owner_session_id", owner.SessionID(), nil
	case domain.OwnerAccount:
		return "owner_user_id", owner.UserID(), nil
	default:
		return "", nil, fmt.Errorf("%w: owner must be a session or an account", domain.ErrValidation)
	}
}

func ownerIDs(owner domain.Owner) (sessionID *string, userID *int64, err error) {
	switch owner.Kind() {
	case domain.OwnerSession:
		s := owner.SessionID()
		return &s, nil, nil
	case domain.OwnerAccount:
		u := owner.UserID()
		return nil, &u, nil
	default:
		return nil, nil, fmt.Errorf("%w: owner must be a session or an account", domain.ErrValidation)
	}
}

func storageErr(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
}
