package analytichttp

import (
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/analytics"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/marketcheck"
)

// BreakEvenVM is the JSON shape of a break-even analysis. Units and
// Revenue are pointers so an undefined result renders as null instead of
// an unencodable infinity.
type BreakEvenVM struct {
	Undefined          bool     `json:"undefined"`
	ContributionMargin float64  `json:"contribution_margin"`
	Units              *float64 `json:"units"`
	Revenue            *float64 `json:"revenue"`
	MarginOfSafety     float64  `json:"margin_of_safety"`
	MonthlyProfit      float64  `json:"monthly_profit"`
	ROI                float64  `json:"estimated_roi"`
}

// FromBreakEven maps the analyzer result into its JSON view.
func FromBreakEven(result analytics.BreakEvenResult) BreakEvenVM {
	vm := BreakEvenVM{
		Undefined:          result.Undefined,
		ContributionMargin: result.ContributionMargin,
		MarginOfSafety:     result.MarginOfSafety,
		MonthlyProfit:      result.MonthlyProfit,
		ROI:                result.ROI,
	}
	if !result.Undefined {
		units := result.Units
		revenue := result.Revenue
		vm.Units = &units
		vm.Revenue = &revenue
	}
	return vm
}

// DashboardVM bundles the figures the wizard's final screen shows in one
// payload.
type DashboardVM struct {
	Summary   analytics.Summary         `json:"summary"`
	BreakEven BreakEvenVM               `json:"break_even"`
	Findings  []marketcheck.Finding     `json:"findings"`
	Missing   []marketcheck.MissingCost `json:"missing_costs"`
}
