// Package export serialises analytics output for download.
package export

import (
	"encoding/csv"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/analytics"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// WriteSummaryCSV serialises the business summary to CSV. Amounts are
// grouped the way the wizard displays them ("1,234.50").
func WriteSummaryCSV(w io.Writer, name string, summary analytics.Summary) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"Metric", "Value"}); err != nil {
		return err
	}
	records := [][]string{
		{"Business", name},
		{"Products", printer.Sprintf("%d", summary.ProductCount)},
		{"Total Product Cost", formatAmount(summary.TotalProductCost)},
		{"Total Additional Cost", formatAmount(summary.TotalAdditionalCost)},
		{"Total Cost", formatAmount(summary.TotalCostGeneral)},
		{"Suggested Revenue", formatAmount(summary.TotalSuggestedRevenue)},
		{"Client Revenue", formatAmount(summary.TotalClientRevenue)},
		{"Suggested Profit", formatAmount(summary.TotalSuggestedProfit)},
		{"Real Profit", formatAmount(summary.TotalRealProfit)},
		{"Average Margin %", formatAmount(summary.AverageMargin)},
		{"Profitability %", formatAmount(summary.TotalProfitability)},
		{"Estimated ROI %", formatAmount(summary.EstimatedROI)},
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatAmount(v float64) string {
	return printer.Sprintf("%.2f", v)
}
