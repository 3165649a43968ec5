package analytics

import (
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/pricing"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/products"
)

// Summarize folds pricing records and business-wide additional costs into
// the business summary. With no records every cost and revenue field is
// zero except TotalAdditionalCost, which is still computed from the
// overhead entries; the wizard renders that state before any product has
// been entered.
func Summarize(records []pricing.Record, additional []products.AdditionalCost) Summary {
	var additionalTotal float64
	for _, cost := range additional {
		additionalTotal += cost.Value
	}

	summary := Summary{
		ProductCount:        len(records),
		TotalAdditionalCost: round2(additionalTotal),
	}
	if len(records) == 0 {
		return summary
	}

	var marginSum float64
	for _, record := range records {
		productOwnCost := record.CostTotal - record.OverheadShare
		summary.TotalProductCost += productOwnCost
		summary.TotalSuggestedRevenue += record.SuggestedPrice
		summary.TotalClientRevenue += record.ClientPrice
		summary.TotalSuggestedProfit += record.SuggestedPrice - record.CostTotal
		summary.TotalRealProfit += record.ProfitPerUnit
		marginSum += record.MarginReal
	}

	summary.TotalProductCost = round2(summary.TotalProductCost)
	summary.TotalCostGeneral = round2(summary.TotalProductCost + summary.TotalAdditionalCost)
	summary.TotalSuggestedRevenue = round2(summary.TotalSuggestedRevenue)
	summary.TotalClientRevenue = round2(summary.TotalClientRevenue)
	summary.TotalSuggestedProfit = round2(summary.TotalSuggestedProfit)
	summary.TotalRealProfit = round2(summary.TotalRealProfit)
	summary.AverageMargin = round2(marginSum / float64(len(records)))

	if summary.TotalClientRevenue > 0 {
		summary.TotalProfitability = round2((summary.TotalRealProfit / summary.TotalClientRevenue) * 100)
	}
	if summary.TotalCostGeneral > 0 {
		summary.EstimatedROI = round2((summary.TotalRealProfit / summary.TotalCostGeneral) * 100)
	}
	return summary
}

// Averages returns the mean unit cost and selling price across records,
// the per-unit figures the break-even analyzer works with. Products the
// user has not priced yet fall back to their suggested price so one blank
// entry does not zero the average.
func Averages(records []pricing.Record) (avgCost, avgPrice float64) {
	if len(records) == 0 {
		return 0, 0
	}
	var costSum, priceSum float64
	for _, record := range records {
		costSum += record.CostTotal
		if record.ClientPrice > 0 {
			priceSum += record.ClientPrice
		} else {
			priceSum += record.SuggestedPrice
		}
	}
	n := float64(len(records))
	return round2(costSum / n), round2(priceSum / n)
}
