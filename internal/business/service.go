package business

import (
	"context"
	"fmt"

	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/platform/httpx"
)

// Service coordinates business master data.
type Service struct {
	repo Repository
}

// NewService builds the service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List enumerates the caller's businesses.
func (s *Service) List(ctx context.Context, ownerID int64) ([]Business, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Get returns one business, scoped to its owner.
func (s *Service) Get(ctx context.Context, ownerID, id int64) (Business, error) {
	return s.repo.Get(ctx, ownerID, id)
}

// Create validates and stores a new business.
func (s *Service) Create(ctx context.Context, ownerID int64, input CreateInput) (Business, error) {
	if err := input.Validate(); err != nil {
		return Business{}, fmt.Errorf("%w: %v", httpx.ErrInvalidInput, err)
	}
	return s.repo.Create(ctx, Business{
		OwnerID:             ownerID,
		Name:                input.Name,
		Type:                input.Type,
		Zone:                input.Zone,
		MonthlyCapacity:     input.MonthlyCapacity,
		ReferenceInvestment: input.ReferenceInvestment,
	})
}

// Update validates and replaces a business record.
func (s *Service) Update(ctx context.Context, ownerID, id int64, input CreateInput) (Business, error) {
	if err := input.Validate(); err != nil {
		return Business{}, fmt.Errorf("%w: %v", httpx.ErrInvalidInput, err)
	}
	return s.repo.Update(ctx, ownerID, id, Business{
		Name:                input.Name,
		Type:                input.Type,
		Zone:                input.Zone,
		MonthlyCapacity:     input.MonthlyCapacity,
		ReferenceInvestment: input.ReferenceInvestment,
	})
}

// Delete removes a business and everything hanging off it.
func (s *Service) Delete(ctx context.Context, ownerID, id int64) error {
	return s.repo.Delete(ctx, ownerID, id)
}
