package products

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/platform/db"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/platform/httpx"
)

// Repository persists products, their ingredients, and business-wide
// additional variable costs.
type Repository interface {
	ListByBusiness(ctx context.Context, businessID int64) ([]Product, error)
	Get(ctx context.Context, businessID, id int64) (Product, error)
	Create(ctx context.Context, product Product) (Product, error)
	Replace(ctx context.Context, businessID, id int64, product Product) (Product, error)
	Delete(ctx context.Context, businessID, id int64) error
	UpdateClientPrice(ctx context.Context, businessID, id int64, price float64) error
	CountByBusiness(ctx context.Context, businessID int64) (int, error)

	ListAdditionalCosts(ctx context.Context, businessID int64) ([]AdditionalCost, error)
	CreateAdditionalCost(ctx context.Context, cost AdditionalCost) (AdditionalCost, error)
	DeleteAdditionalCost(ctx context.Context, businessID, id int64) error
}

type repository struct {
	db *pgxpool.Pool
}

// NewRepository builds a pgx-backed repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

func (r *repository) ListByBusiness(ctx context.Context, businessID int64) ([]Product, error) {
	query := `SELECT id, business_id, type, name, resale_cost, client_price, created_at, updated_at
		FROM products WHERE business_id = $1 ORDER BY name`
	rows, err := r.db.Query(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.BusinessID, &p.Type, &p.Name, &p.ResaleCost, &p.ClientPrice, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].Type != TypeRecipe {
			continue
		}
		ings, err := r.ingredients(ctx, list[i].ID)
		if err != nil {
			return nil, err
		}
		list[i].Ingredients = ings
	}
	return list, nil
}

func (r *repository) Get(ctx context.Context, businessID, id int64) (Product, error) {
	query := `SELECT id, business_id, type, name, resale_cost, client_price, created_at, updated_at
		FROM products WHERE business_id = $1 AND id = $2`
	var p Product
	err := r.db.QueryRow(ctx, query, businessID, id).
		Scan(&p.ID, &p.BusinessID, &p.Type, &p.Name, &p.ResaleCost, &p.ClientPrice, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, httpx.ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	if p.Type == TypeRecipe {
		if p.Ingredients, err = r.ingredients(ctx, p.ID); err != nil {
			return Product{}, err
		}
	}
	return p, nil
}

func (r *repository) Create(ctx context.Context, product Product) (Product, error) {
	err := db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `INSERT INTO products (business_id, type, name, resale_cost, client_price, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, now(), now())
			RETURNING id, created_at, updated_at`
		if err := tx.QueryRow(ctx, query, product.BusinessID, product.Type, product.Name, product.ResaleCost, product.ClientPrice).
			Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt); err != nil {
			return err
		}
		return insertIngredients(ctx, tx, product.ID, product.Ingredients)
	})
	if err != nil {
		return Product{}, err
	}
	return product, nil
}

func (r *repository) Replace(ctx context.Context, businessID, id int64, product Product) (Product, error) {
	err := db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `UPDATE products
			SET type = $1, name = $2, resale_cost = $3, client_price = $4, updated_at = now()
			WHERE business_id = $5 AND id = $6
			RETURNING id, business_id, created_at, updated_at`
		err := tx.QueryRow(ctx, query, product.Type, product.Name, product.ResaleCost, product.ClientPrice, businessID, id).
			Scan(&product.ID, &product.BusinessID, &product.CreatedAt, &product.UpdatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return httpx.ErrNotFound
		}
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM ingredients WHERE product_id = $1`, id); err != nil {
			return err
		}
		return insertIngredients(ctx, tx, id, product.Ingredients)
	})
	if err != nil {
		return Product{}, err
	}
	return product, nil
}

func (r *repository) Delete(ctx context.Context, businessID, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE business_id = $1 AND id = $2`, businessID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

func (r *repository) UpdateClientPrice(ctx context.Context, businessID, id int64, price float64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET client_price = $1, updated_at = now() WHERE business_id = $2 AND id = $3`,
		price, businessID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

func (r *repository) CountByBusiness(ctx context.Context, businessID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE business_id = $1`, businessID).Scan(&count)
	return count, err
}

func (r *repository) ListAdditionalCosts(ctx context.Context, businessID int64) ([]AdditionalCost, error) {
	query := `SELECT id, business_id, category, name, value FROM additional_costs WHERE business_id = $1 ORDER BY category, name`
	rows, err := r.db.Query(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []AdditionalCost
	for rows.Next() {
		var c AdditionalCost
		if err := rows.Scan(&c.ID, &c.BusinessID, &c.Category, &c.Name, &c.Value); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *repository) CreateAdditionalCost(ctx context.Context, cost AdditionalCost) (AdditionalCost, error) {
	query := `INSERT INTO additional_costs (business_id, category, name, value) VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRow(ctx, query, cost.BusinessID, cost.Category, cost.Name, cost.Value).Scan(&cost.ID)
	if err != nil {
		return AdditionalCost{}, err
	}
	return cost, nil
}

func (r *repository) DeleteAdditionalCost(ctx context.Context, businessID, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM additional_costs WHERE business_id = $1 AND id = $2`, businessID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

func (r *repository) ingredients(ctx context.Context, productID int64) ([]Ingredient, error) {
	query := `SELECT id, name, unit, portion, portions_obtained, unit_price FROM ingredients WHERE product_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Ingredient
	for rows.Next() {
		var ing Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.Unit, &ing.Portion, &ing.PortionsObtained, &ing.UnitPrice); err != nil {
			return nil, err
		}
		list = append(list, ing)
	}
	return list, rows.Err()
}

func insertIngredients(ctx context.Context, tx pgx.Tx, productID int64, ingredients []Ingredient) error {
	for _, ing := range ingredients {
		_, err := tx.Exec(ctx,
			`INSERT INTO ingredients (product_id, name, unit, portion, portions_obtained, unit_price) VALUES ($1, $2, $3, $4, $5, $6)`,
			productID, ing.Name, ing.Unit, ing.Portion, ing.PortionsObtained, ing.UnitPrice)
		if err != nil {
			return err
		}
	}
	return nil
}
