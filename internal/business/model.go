// Package business manages the business master record the simulation
// hangs off: its type, location zone, capacity, and reference investment.
package business

import (
	"errors"
	"strings"
	"time"
)

// Type enumerates the supported business kinds. The essential-cost tables
// are keyed by these values.
type Type string

const (
	TypeCafeteria  Type = "cafeteria"
	TypeRestaurant Type = "restaurant"
	TypeBakery     Type = "bakery"
	TypeFoodTruck  Type = "food_truck"
	TypeBar        Type = "bar"
)

// Valid reports whether the type is supported.
func (t Type) Valid() bool {
	switch t {
	case TypeCafeteria, TypeRestaurant, TypeBakery, TypeFoodTruck, TypeBar:
		return true
	}
	return false
}

// Business is one simulated venture owned by a user.
type Business struct {
	ID      int64  `json:"id"`
	OwnerID int64  `json:"owner_id"`
	Name    string `json:"name"`
	Type    Type   `json:"type"`
	// Zone keys the market-range location multiplier.
	Zone string `json:"zone"`
	// MonthlyCapacity is the owner's estimate of units sold per month,
	// the denominator of the margin-of-safety figure.
	MonthlyCapacity float64 `json:"monthly_capacity"`
	// ReferenceInvestment is the capital figure ROI is measured against.
	ReferenceInvestment float64   `json:"reference_investment"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// CreateInput captures business creation input.
type CreateInput struct {
	Name                string  `json:"name" validate:"required"`
	Type                Type    `json:"type" validate:"required"`
	Zone                string  `json:"zone"`
	MonthlyCapacity     float64 `json:"monthly_capacity" validate:"gte=0"`
	ReferenceInvestment float64 `json:"reference_investment" validate:"gte=0"`
}

// Validate ensures correctness.
func (in CreateInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("business: name required")
	}
	if !in.Type.Valid() {
		return errors.New("business: unknown type")
	}
	if in.MonthlyCapacity < 0 {
		return errors.New("business: monthly capacity must not be negative")
	}
	if in.ReferenceInvestment < 0 {
		return errors.New("business: reference investment must not be negative")
	}
	return nil
}
