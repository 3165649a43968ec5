package pricing

import (
	"context"
	"fmt"

	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/platform/httpx"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/products"
)

// ProductSource is the slice of product storage the pricing engine reads.
type ProductSource interface {
	Get(ctx context.Context, businessID, id int64) (products.Product, error)
	ListByBusiness(ctx context.Context, businessID int64) ([]products.Product, error)
	CountByBusiness(ctx context.Context, businessID int64) (int, error)
	UpdateClientPrice(ctx context.Context, businessID, id int64, price float64) error
	ListAdditionalCosts(ctx context.Context, businessID int64) ([]products.AdditionalCost, error)
}

// Service computes pricing records on demand. Records are never cached;
// recomputation from stored inputs is the only invalidation strategy.
type Service struct {
	source ProductSource
	margin float64
}

// NewService builds the service with the configured suggested margin.
func NewService(source ProductSource, marginPercent float64) *Service {
	if marginPercent <= 0 {
		marginPercent = DefaultMarginPercent
	}
	return &Service{source: source, margin: marginPercent}
}

// MarginPercent exposes the configured flat margin.
func (s *Service) MarginPercent() float64 {
	return s.margin
}

// ComputeProductPricing derives the pricing record for one product.
func (s *Service) ComputeProductPricing(ctx context.Context, businessID, productID int64) (Record, error) {
	product, err := s.source.Get(ctx, businessID, productID)
	if err != nil {
		return Record{}, err
	}
	share, err := s.overheadShare(ctx, businessID)
	if err != nil {
		return Record{}, err
	}
	return BuildRecord(product, share, s.margin)
}

// Records derives pricing records for every product of a business.
func (s *Service) Records(ctx context.Context, businessID int64) ([]Record, error) {
	list, err := s.source.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	additional, err := s.source.ListAdditionalCosts(ctx, businessID)
	if err != nil {
		return nil, err
	}
	share := OverheadShare(additional, len(list))
	records := make([]Record, 0, len(list))
	for _, product := range list {
		record, err := BuildRecord(product, share, s.margin)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// Overhead exposes the business-wide additional variable costs.
func (s *Service) Overhead(ctx context.Context, businessID int64) ([]products.AdditionalCost, error) {
	return s.source.ListAdditionalCosts(ctx, businessID)
}

// UpdateClientPrice writes the only user-editable pricing field and
// returns the recomputed record.
func (s *Service) UpdateClientPrice(ctx context.Context, businessID, productID int64, price float64) (Record, error) {
	if price <= 0 {
		return Record{}, fmt.Errorf("%w: client price must be positive", httpx.ErrInvalidInput)
	}
	if err := s.source.UpdateClientPrice(ctx, businessID, productID, price); err != nil {
		return Record{}, err
	}
	return s.ComputeProductPricing(ctx, businessID, productID)
}

func (s *Service) overheadShare(ctx context.Context, businessID int64) (float64, error) {
	additional, err := s.source.ListAdditionalCosts(ctx, businessID)
	if err != nil {
		return 0, err
	}
	count, err := s.source.CountByBusiness(ctx, businessID)
	if err != nil {
		return 0, err
	}
	return OverheadShare(additional, count), nil
}
