package products

import (
	"context"
	"fmt"

	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/platform/httpx"
)

// Service coordinates product persistence and input validation.
type Service struct {
	repo Repository
}

// NewService builds the service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List enumerates all products of a business with their ingredients.
func (s *Service) List(ctx context.Context, businessID int64) ([]Product, error) {
	return s.repo.ListByBusiness(ctx, businessID)
}

// Get returns a single product.
func (s *Service) Get(ctx context.Context, businessID, id int64) (Product, error) {
	return s.repo.Get(ctx, businessID, id)
}

// Create validates and stores a new product.
func (s *Service) Create(ctx context.Context, businessID int64, input CreateProductInput) (Product, error) {
	if err := input.Validate(); err != nil {
		return Product{}, fmt.Errorf("%w: %v", httpx.ErrInvalidInput, err)
	}
	return s.repo.Create(ctx, productFromInput(businessID, input))
}

// Replace validates the input and replaces the stored product, ingredients
// included.
func (s *Service) Replace(ctx context.Context, businessID, id int64, input CreateProductInput) (Product, error) {
	if err := input.Validate(); err != nil {
		return Product{}, fmt.Errorf("%w: %v", httpx.ErrInvalidInput, err)
	}
	return s.repo.Replace(ctx, businessID, id, productFromInput(businessID, input))
}

// Delete removes a product and its ingredients.
func (s *Service) Delete(ctx context.Context, businessID, id int64) error {
	return s.repo.Delete(ctx, businessID, id)
}

// ListAdditionalCosts enumerates business-wide variable costs.
func (s *Service) ListAdditionalCosts(ctx context.Context, businessID int64) ([]AdditionalCost, error) {
	return s.repo.ListAdditionalCosts(ctx, businessID)
}

// CreateAdditionalCost validates and stores a business-wide variable cost.
func (s *Service) CreateAdditionalCost(ctx context.Context, businessID int64, input CreateAdditionalCostInput) (AdditionalCost, error) {
	if err := input.Validate(); err != nil {
		return AdditionalCost{}, fmt.Errorf("%w: %v", httpx.ErrInvalidInput, err)
	}
	return s.repo.CreateAdditionalCost(ctx, AdditionalCost{
		BusinessID: businessID,
		Category:   input.Category,
		Name:       input.Name,
		Value:      input.Value,
	})
}

// DeleteAdditionalCost removes a business-wide variable cost.
func (s *Service) DeleteAdditionalCost(ctx context.Context, businessID, id int64) error {
	return s.repo.DeleteAdditionalCost(ctx, businessID, id)
}

func productFromInput(businessID int64, input CreateProductInput) Product {
	ingredients := make([]Ingredient, 0, len(input.Ingredients))
	for _, ing := range input.Ingredients {
		ingredients = append(ingredients, Ingredient{
			Name:             ing.Name,
			Unit:             ing.Unit,
			Portion:          ing.Portion,
			PortionsObtained: ing.PortionsObtained,
			UnitPrice:        ing.UnitPrice,
		})
	}
	return Product{
		BusinessID:  businessID,
		Type:        input.Type,
		Name:        input.Name,
		Ingredients: ingredients,
		ResaleCost:  input.ResaleCost,
		ClientPrice: input.ClientPrice,
	}
}
