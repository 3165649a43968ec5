package analytics

import "math"

// AnalyzeBreakEven computes the break-even point for a business. A
// non-positive contribution margin makes break-even undefined: the result
// carries +Inf units and the Undefined flag instead of a division by a
// non-positive number. TargetProfit shifts the required contribution when
// the caller asks for the goal-adjusted mode.
func AnalyzeBreakEven(in BreakEvenInput) BreakEvenResult {
	contribution := round2(in.AvgSellingPrice - in.AvgVariableCost)

	result := BreakEvenResult{ContributionMargin: contribution}
	result.MonthlyProfit = round2(in.MonthlyCapacity*in.AvgSellingPrice - in.MonthlyCapacity*in.AvgVariableCost - in.FixedCosts)
	if in.ReferenceInvestment > 0 {
		result.ROI = round2((result.MonthlyProfit * 12 / in.ReferenceInvestment) * 100)
	}

	if contribution <= 0 {
		result.Undefined = true
		result.Units = math.Inf(1)
		return result
	}

	result.Units = math.Ceil((in.FixedCosts + in.TargetProfit) / contribution)
	result.Revenue = round2(result.Units * in.AvgSellingPrice)
	if in.MonthlyCapacity > 0 {
		safety := ((in.MonthlyCapacity - result.Units) / in.MonthlyCapacity) * 100
		result.MarginOfSafety = round2(math.Max(0, safety))
	}
	return result
}
