// Package pricing derives cost totals, suggested prices, and margin
// figures for a business's products.
package pricing

import "errors"

// DefaultMarginPercent is the flat margin the suggester applies when no
// other margin is configured.
const DefaultMarginPercent = 20.0

// Record carries every derived pricing figure for one product. All fields
// except ClientPrice are derived; the record is recomputed from its inputs
// on every read and never stored.
type Record struct {
	ProductID       int64   `json:"product_id"`
	ProductName     string  `json:"product_name"`
	CostTotal       float64 `json:"cost_total"`
	OverheadShare   float64 `json:"overhead_share"`
	SuggestedPrice  float64 `json:"suggested_price"`
	ClientPrice     float64 `json:"client_price"`
	MarginSuggested float64 `json:"margin_suggested"`
	MarginReal      float64 `json:"margin_real"`
	ProfitPerUnit   float64 `json:"profit_per_unit"`
	Profitability   float64 `json:"profitability"`
}

// ErrNegativeCost is returned by the suggester for a negative cost total.
var ErrNegativeCost = errors.New("pricing: cost must not be negative")
