package pricing

import (
	"math"

	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/products"
)

// OverheadShare returns the slice of business-wide additional variable
// costs carried by each product. The overhead pot is divided evenly across
// the product count so that no cost is counted twice across the catalog.
func OverheadShare(additional []products.AdditionalCost, productCount int) float64 {
	if productCount < 1 {
		return 0
	}
	var total float64
	for _, cost := range additional {
		total += cost.Value
	}
	return total / float64(productCount)
}

// TotalUnitCost sums a product's own unit cost with its overhead share.
// Inputs are assumed already validated; negative amounts are rejected at
// the input boundary, not here.
func TotalUnitCost(p products.Product, overheadShare float64) float64 {
	return p.UnitCost() + overheadShare
}

// SuggestedPrice applies a flat percentage margin to a cost total, rounded
// to two decimals.
func SuggestedPrice(costTotal, marginPercent float64) (float64, error) {
	if costTotal < 0 {
		return 0, ErrNegativeCost
	}
	return round2(costTotal * (1 + marginPercent/100)), nil
}

// RealMargin computes the realized margin percentage for a client price.
// A non-positive client price yields 0: the wizard shows products before
// the user has priced them, and an unpriced product has no margin rather
// than an error.
func RealMargin(costTotal, clientPrice float64) float64 {
	if clientPrice <= 0 {
		return 0
	}
	return round2(((clientPrice - costTotal) / clientPrice) * 100)
}

// ProfitPerUnit is the absolute per-unit profit. Negative values surface
// as a loss, not an error.
func ProfitPerUnit(costTotal, clientPrice float64) float64 {
	return round2(clientPrice - costTotal)
}

// Profitability is the markup over cost, the per-product counterpart of
// the business-level profitability ratio. Zero cost yields 0.
func Profitability(costTotal, clientPrice float64) float64 {
	if costTotal <= 0 {
		return 0
	}
	return round2(((clientPrice - costTotal) / costTotal) * 100)
}

// BuildRecord derives the full pricing record for one product.
func BuildRecord(p products.Product, overheadShare, marginPercent float64) (Record, error) {
	costTotal := round2(TotalUnitCost(p, overheadShare))
	suggested, err := SuggestedPrice(costTotal, marginPercent)
	if err != nil {
		return Record{}, err
	}
	return Record{
		ProductID:       p.ID,
		ProductName:     p.Name,
		CostTotal:       costTotal,
		OverheadShare:   round2(overheadShare),
		SuggestedPrice:  suggested,
		ClientPrice:     p.ClientPrice,
		MarginSuggested: marginPercent,
		MarginReal:      RealMargin(costTotal, p.ClientPrice),
		ProfitPerUnit:   ProfitPerUnit(costTotal, p.ClientPrice),
		Profitability:   Profitability(costTotal, p.ClientPrice),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
