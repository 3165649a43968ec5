package analytics

import (
	"testing"

	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/pricing"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/products"
)

func TestSummarizeEmpty(t *testing.T) {
	additional := []products.AdditionalCost{{Value: 30}, {Value: 12.5}}
	summary := Summarize(nil, additional)

	if summary.TotalAdditionalCost != 42.5 {
		t.Fatalf("expected additional cost 42.50, got %.2f", summary.TotalAdditionalCost)
	}
	zeroed := []float64{
		summary.TotalProductCost,
		summary.TotalCostGeneral,
		summary.TotalSuggestedRevenue,
		summary.TotalClientRevenue,
		summary.TotalSuggestedProfit,
		summary.TotalRealProfit,
		summary.AverageMargin,
		summary.TotalProfitability,
		summary.EstimatedROI,
	}
	for i, v := range zeroed {
		if v != 0 {
			t.Fatalf("expected field %d zeroed, got %.2f", i, v)
		}
	}
}

func TestSummarizeTotals(t *testing.T) {
	records := []pricing.Record{
		{CostTotal: 5, OverheadShare: 1, SuggestedPrice: 6, ClientPrice: 10, MarginReal: 50, ProfitPerUnit: 5},
		{CostTotal: 3, OverheadShare: 1, SuggestedPrice: 3.6, ClientPrice: 5, MarginReal: 40, ProfitPerUnit: 2},
	}
	additional := []products.AdditionalCost{{Value: 2}}

	summary := Summarize(records, additional)

	if summary.TotalProductCost != 6 {
		t.Fatalf("expected product cost 6, got %.2f", summary.TotalProductCost)
	}
	if summary.TotalCostGeneral != 8 {
		t.Fatalf("expected general cost 8, got %.2f", summary.TotalCostGeneral)
	}
	if summary.TotalClientRevenue != 15 {
		t.Fatalf("expected client revenue 15, got %.2f", summary.TotalClientRevenue)
	}
	if summary.TotalRealProfit != 7 {
		t.Fatalf("expected real profit 7, got %.2f", summary.TotalRealProfit)
	}
	if summary.AverageMargin != 45 {
		t.Fatalf("expected average margin 45, got %.2f", summary.AverageMargin)
	}
	// 7 / 15 * 100
	if summary.TotalProfitability != 46.67 {
		t.Fatalf("expected profitability 46.67, got %.2f", summary.TotalProfitability)
	}
	// 7 / 8 * 100
	if summary.EstimatedROI != 87.5 {
		t.Fatalf("expected ROI 87.50, got %.2f", summary.EstimatedROI)
	}
}

func TestSummarizeZeroRevenueGuard(t *testing.T) {
	records := []pricing.Record{
		{CostTotal: 5, SuggestedPrice: 6, ClientPrice: 0, MarginReal: 0, ProfitPerUnit: -5},
	}
	summary := Summarize(records, nil)
	if summary.TotalProfitability != 0 {
		t.Fatalf("expected profitability guard 0, got %.2f", summary.TotalProfitability)
	}
}

func TestAverages(t *testing.T) {
	records := []pricing.Record{
		{CostTotal: 2, ClientPrice: 8},
		{CostTotal: 4, SuggestedPrice: 6, ClientPrice: 0},
	}
	avgCost, avgPrice := Averages(records)
	if avgCost != 3 {
		t.Fatalf("expected avg cost 3, got %.2f", avgCost)
	}
	// unpriced product falls back to its suggested price
	if avgPrice != 7 {
		t.Fatalf("expected avg price 7, got %.2f", avgPrice)
	}

	avgCost, avgPrice = Averages(nil)
	if avgCost != 0 || avgPrice != 0 {
		t.Fatalf("expected zero averages for empty records")
	}
}
