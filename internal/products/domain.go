// Package products manages a business's sellable products: recipes built
// from ingredients and resale items bought ready-made.
package products

import (
	"errors"
	"strings"
	"time"
)

// Type enumerates the supported product kinds.
type Type string

const (
	// TypeRecipe is a product prepared from a list of ingredients.
	TypeRecipe Type = "recipe"
	// TypeResale is a product bought and resold at a flat unit cost.
	TypeResale Type = "resale"
)

// Valid reports whether the type is supported.
func (t Type) Valid() bool {
	return t == TypeRecipe || t == TypeResale
}

// Ingredient is one component of a recipe product.
type Ingredient struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Unit             string  `json:"unit"`
	Portion          float64 `json:"portion"`
	PortionsObtained float64 `json:"portions_obtained"`
	UnitPrice        float64 `json:"unit_price"`
}

// Cost returns the cost this ingredient contributes to one unit of the
// recipe. A zero or unset portionsObtained counts as one whole purchase
// unit per portion, never a division by zero.
func (i Ingredient) Cost() float64 {
	portions := i.PortionsObtained
	if portions < 1 {
		portions = 1
	}
	return (i.UnitPrice / portions) * i.Portion
}

// Product is a sellable item. Exactly one of Ingredients/ResaleCost is
// populated depending on Type.
type Product struct {
	ID          int64        `json:"id"`
	BusinessID  int64        `json:"business_id"`
	Type        Type         `json:"type"`
	Name        string       `json:"name"`
	Ingredients []Ingredient `json:"ingredients,omitempty"`
	ResaleCost  float64      `json:"resale_cost,omitempty"`
	ClientPrice float64      `json:"client_price"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// UnitCost returns the product's own cost per unit, before any overhead
// allocation.
func (p Product) UnitCost() float64 {
	if p.Type == TypeResale {
		return p.ResaleCost
	}
	var total float64
	for _, ing := range p.Ingredients {
		total += ing.Cost()
	}
	return total
}

// AdditionalCost is a business-wide variable cost not attributable to a
// single product (packaging stock, delivery bags, cleaning supplies).
type AdditionalCost struct {
	ID         int64   `json:"id"`
	BusinessID int64   `json:"business_id"`
	Category   string  `json:"category"`
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
}

// IngredientInput captures one ingredient on product creation.
type IngredientInput struct {
	Name             string  `json:"name" validate:"required"`
	Unit             string  `json:"unit" validate:"required"`
	Portion          float64 `json:"portion" validate:"gt=0"`
	PortionsObtained float64 `json:"portions_obtained" validate:"gte=0"`
	UnitPrice        float64 `json:"unit_price" validate:"gt=0"`
}

// CreateProductInput captures product creation input.
type CreateProductInput struct {
	Type        Type              `json:"type" validate:"required"`
	Name        string            `json:"name" validate:"required"`
	Ingredients []IngredientInput `json:"ingredients,omitempty" validate:"dive"`
	ResaleCost  float64           `json:"resale_cost,omitempty" validate:"gte=0"`
	ClientPrice float64           `json:"client_price,omitempty" validate:"gte=0"`
}

// Validate enforces the one-branch-per-type invariant.
func (in CreateProductInput) Validate() error {
	if !in.Type.Valid() {
		return errors.New("products: unknown type")
	}
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("products: name required")
	}
	switch in.Type {
	case TypeRecipe:
		if len(in.Ingredients) == 0 {
			return errors.New("products: recipe requires ingredients")
		}
		if in.ResaleCost != 0 {
			return errors.New("products: recipe must not carry a resale cost")
		}
		for _, ing := range in.Ingredients {
			if strings.TrimSpace(ing.Name) == "" {
				return errors.New("products: ingredient name required")
			}
			if ing.Portion <= 0 {
				return errors.New("products: ingredient portion must be positive")
			}
			if ing.UnitPrice <= 0 {
				return errors.New("products: ingredient unit price must be positive")
			}
		}
	case TypeResale:
		if len(in.Ingredients) > 0 {
			return errors.New("products: resale product must not carry ingredients")
		}
		if in.ResaleCost <= 0 {
			return errors.New("products: resale cost must be positive")
		}
	}
	if in.ClientPrice < 0 {
		return errors.New("products: client price must not be negative")
	}
	return nil
}

// CreateAdditionalCostInput captures a business-wide variable cost.
type CreateAdditionalCostInput struct {
	Category string  `json:"category" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Value    float64 `json:"value" validate:"gt=0"`
}

// Validate ensures correctness.
func (in CreateAdditionalCostInput) Validate() error {
	if strings.TrimSpace(in.Category) == "" {
		return errors.New("products: category required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("products: name required")
	}
	if in.Value <= 0 {
		return errors.New("products: value must be positive")
	}
	return nil
}
