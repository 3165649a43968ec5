package costs

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/platform/httpx"
)

// Repository persists fixed cost items.
type Repository interface {
	ListByBusiness(ctx context.Context, businessID int64) ([]Item, error)
	Get(ctx context.Context, businessID, id int64) (Item, error)
	Create(ctx context.Context, item Item) (Item, error)
	Replace(ctx context.Context, businessID, id int64, item Item) (Item, error)
	Delete(ctx context.Context, businessID, id int64) error
}

type repository struct {
	db *pgxpool.Pool
}

// NewRepository builds a pgx-backed repository.
func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const itemColumns = `id, business_id, name, amount, frequency, category, created_at, updated_at`

func (r *repository) ListByBusiness(ctx context.Context, businessID int64) ([]Item, error) {
	query := `SELECT ` + itemColumns + ` FROM fixed_costs WHERE business_id = $1 ORDER BY category, name`
	rows, err := r.db.Query(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *repository) Get(ctx context.Context, businessID, id int64) (Item, error) {
	query := `SELECT ` + itemColumns + ` FROM fixed_costs WHERE business_id = $1 AND id = $2`
	item, err := scanItem(r.db.QueryRow(ctx, query, businessID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Item{}, httpx.ErrNotFound
	}
	return item, err
}

func (r *repository) Create(ctx context.Context, item Item) (Item, error) {
	query := `INSERT INTO fixed_costs (business_id, name, amount, frequency, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		RETURNING ` + itemColumns
	return scanItem(r.db.QueryRow(ctx, query, item.BusinessID, item.Name, item.Amount, item.Frequency, item.Category))
}

// Replace swaps the stored record for the new one. Edits never mutate in
// place at the domain level; the row is fully rewritten.
func (r *repository) Replace(ctx context.Context, businessID, id int64, item Item) (Item, error) {
	query := `UPDATE fixed_costs
		SET name = $1, amount = $2, frequency = $3, category = $4, updated_at = now()
		WHERE business_id = $5 AND id = $6
		RETURNING ` + itemColumns
	updated, err := scanItem(r.db.QueryRow(ctx, query, item.Name, item.Amount, item.Frequency, item.Category, businessID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Item{}, httpx.ErrNotFound
	}
	return updated, err
}

func (r *repository) Delete(ctx context.Context, businessID, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM fixed_costs WHERE business_id = $1 AND id = $2`, businessID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

func scanItem(row pgx.Row) (Item, error) {
	var item Item
	err := row.Scan(&item.ID, &item.BusinessID, &item.Name, &item.Amount, &item.Frequency, &item.Category, &item.CreatedAt, &item.UpdatedAt)
	return item, err
}
