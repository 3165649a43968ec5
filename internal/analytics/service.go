package analytics

import (
	"context"

	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/business"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/costs"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/pricing"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/products"
)

// RecordSource supplies the pricing records and overhead the aggregators
// fold over.
type RecordSource interface {
	Records(ctx context.Context, businessID int64) ([]pricing.Record, error)
	Overhead(ctx context.Context, businessID int64) ([]products.AdditionalCost, error)
}

// FixedCostSource supplies a business's fixed cost entries.
type FixedCostSource interface {
	List(ctx context.Context, businessID int64) ([]costs.Item, error)
}

// Service derives business level figures on demand. It holds no state and
// caches nothing; every call recomputes from storage.
type Service struct {
	records RecordSource
	fixed   FixedCostSource
}

// NewService builds the service.
func NewService(records RecordSource, fixed FixedCostSource) *Service {
	return &Service{records: records, fixed: fixed}
}

// Summary folds every pricing record of the business into totals.
func (s *Service) Summary(ctx context.Context, businessID int64) (Summary, error) {
	records, err := s.records.Records(ctx, businessID)
	if err != nil {
		return Summary{}, err
	}
	additional, err := s.records.Overhead(ctx, businessID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(records, additional), nil
}

// BreakEven runs the break-even analysis for a business. targetProfit of
// zero selects the classic mode.
func (s *Service) BreakEven(ctx context.Context, biz business.Business, targetProfit float64) (BreakEvenResult, error) {
	fixedItems, err := s.fixed.List(ctx, biz.ID)
	if err != nil {
		return BreakEvenResult{}, err
	}
	records, err := s.records.Records(ctx, biz.ID)
	if err != nil {
		return BreakEvenResult{}, err
	}
	avgCost, avgPrice := Averages(records)

	return AnalyzeBreakEven(BreakEvenInput{
		FixedCosts:          costs.MonthlyTotal(fixedItems),
		AvgVariableCost:     avgCost,
		AvgSellingPrice:     avgPrice,
		MonthlyCapacity:     biz.MonthlyCapacity,
		TargetProfit:        targetProfit,
		ReferenceInvestment: biz.ReferenceInvestment,
	}), nil
}
