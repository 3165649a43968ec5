// Package analytics folds pricing records into business level figures:
// the summary totals and the break-even analysis.
package analytics

import "math"

// Summary aggregates all pricing records of one business. It is derived
// on demand and never persisted as a source of truth.
type Summary struct {
	ProductCount          int     `json:"product_count"`
	TotalProductCost      float64 `json:"total_product_cost"`
	TotalAdditionalCost   float64 `json:"total_additional_cost"`
	TotalCostGeneral      float64 `json:"total_cost_general"`
	TotalSuggestedRevenue float64 `json:"total_suggested_revenue"`
	TotalClientRevenue    float64 `json:"total_client_revenue"`
	TotalSuggestedProfit  float64 `json:"total_suggested_profit"`
	TotalRealProfit       float64 `json:"total_real_profit"`
	AverageMargin         float64 `json:"average_margin"`
	TotalProfitability    float64 `json:"total_profitability"`
	EstimatedROI          float64 `json:"estimated_roi"`
}

// BreakEvenInput carries the figures the analyzer needs. TargetProfit is
// zero for the classic mode; ReferenceInvestment is the caller-supplied
// capital figure the ROI is measured against.
type BreakEvenInput struct {
	FixedCosts          float64
	AvgVariableCost     float64
	AvgSellingPrice     float64
	MonthlyCapacity     float64
	TargetProfit        float64
	ReferenceInvestment float64
}

// BreakEvenResult is the analyzer output. When the contribution margin is
// not positive, Undefined is set and Units holds +Inf; callers must check
// before rendering.
type BreakEvenResult struct {
	Undefined          bool
	ContributionMargin float64
	Units              float64
	Revenue            float64
	MarginOfSafety     float64
	MonthlyProfit      float64
	ROI                float64
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
