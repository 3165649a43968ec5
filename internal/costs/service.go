package costs

import (
	"context"
	"fmt"

	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/platform/httpx"
)

// Service coordinates fixed cost persistence and input validation.
type Service struct {
	repo Repository
}

// NewService builds the service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List enumerates all fixed costs of a business.
func (s *Service) List(ctx context.Context, businessID int64) ([]Item, error) {
	return s.repo.ListByBusiness(ctx, businessID)
}

// Get returns a single fixed cost entry.
func (s *Service) Get(ctx context.Context, businessID, id int64) (Item, error) {
	return s.repo.Get(ctx, businessID, id)
}

// Create validates and stores a new fixed cost entry.
func (s *Service) Create(ctx context.Context, businessID int64, input CreateItemInput) (Item, error) {
	if err := input.Validate(); err != nil {
		return Item{}, fmt.Errorf("%w: %v", httpx.ErrInvalidInput, err)
	}
	return s.repo.Create(ctx, Item{
		BusinessID: businessID,
		Name:       input.Name,
		Amount:     input.Amount,
		Frequency:  input.Frequency,
		Category:   input.Category,
	})
}

// Replace validates the input and replaces the stored record.
func (s *Service) Replace(ctx context.Context, businessID, id int64, input CreateItemInput) (Item, error) {
	if err := input.Validate(); err != nil {
		return Item{}, fmt.Errorf("%w: %v", httpx.ErrInvalidInput, err)
	}
	return s.repo.Replace(ctx, businessID, id, Item{
		Name:      input.Name,
		Amount:    input.Amount,
		Frequency: input.Frequency,
		Category:  input.Category,
	})
}

// Delete removes a fixed cost entry.
func (s *Service) Delete(ctx context.Context, businessID, id int64) error {
	return s.repo.Delete(ctx, businessID, id)
}
