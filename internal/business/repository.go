package business

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/platform/httpx"
)

// Repository persists business master records.
type Repository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]Business, error)
	Get(ctx context.Context, ownerID, id int64) (Business, error)
	Create(ctx context.Context, biz Business) (Business, error)
	Update(ctx context.Context, ownerID, id int64, biz Business) (Business, error)
	Delete(ctx context.Context, ownerID, id int64) error
}

type repository struct {
	db *pgxpool.Pool
}

// NewRepository builds a pgx-backed repository.
func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const bizColumns = `id, owner_id, name, type, zone, monthly_capacity, reference_investment, created_at, updated_at`

func (r *repository) ListByOwner(ctx context.Context, ownerID int64) ([]Business, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bizColumns+` FROM businesses WHERE owner_id = $1 ORDER BY name`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Business
	for rows.Next() {
		biz, err := scanBusiness(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, biz)
	}
	return list, rows.Err()
}

func (r *repository) Get(ctx context.Context, ownerID, id int64) (Business, error) {
	biz, err := scanBusiness(r.db.QueryRow(ctx,
		`SELECT `+bizColumns+` FROM businesses WHERE owner_id = $1 AND id = $2`, ownerID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Business{}, httpx.ErrNotFound
	}
	return biz, err
}

func (r *repository) Create(ctx context.Context, biz Business) (Business, error) {
	query := `INSERT INTO businesses (owner_id, name, type, zone, monthly_capacity, reference_investment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		RETURNING ` + bizColumns
	created, err := scanBusiness(r.db.QueryRow(ctx, query,
		biz.OwnerID, biz.Name, biz.Type, biz.Zone, biz.MonthlyCapacity, biz.ReferenceInvestment))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "uq_businesses_owner_name" {
			return Business{}, httpx.ErrDuplicate
		}
		return Business{}, err
	}
	return created, nil
}

func (r *repository) Update(ctx context.Context, ownerID, id int64, biz Business) (Business, error) {
	query := `UPDATE businesses
		SET name = $1, type = $2, zone = $3, monthly_capacity = $4, reference_investment = $5, updated_at = now()
		WHERE owner_id = $6 AND id = $7
		RETURNING ` + bizColumns
	updated, err := scanBusiness(r.db.QueryRow(ctx, query,
		biz.Name, biz.Type, biz.Zone, biz.MonthlyCapacity, biz.ReferenceInvestment, ownerID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Business{}, httpx.ErrNotFound
	}
	return updated, err
}

func (r *repository) Delete(ctx context.Context, ownerID, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM businesses WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

func scanBusiness(row pgx.Row) (Business, error) {
	var biz Business
	err := row.Scan(&biz.ID, &biz.OwnerID, &biz.Name, &biz.Type, &biz.Zone,
		&biz.MonthlyCapacity, &biz.ReferenceInvestment, &biz.CreatedAt, &biz.UpdatedAt)
	return biz, err
}
