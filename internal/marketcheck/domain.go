// Package marketcheck validates declared costs against plausible market
// ranges and detects essential costs missing from a business's list. Its
// findings are advisory only and never block persistence.
package marketcheck

// FindingType tags the outcome of one range check.
type FindingType string

const (
	FindingSuccess FindingType = "success"
	FindingWarning FindingType = "warning"
	FindingError   FindingType = "error"
)

// Severity grades how urgent a finding is.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// MarketRange is a plausible monthly cost band for one category.
type MarketRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Finding is one advisory validation result for a cost entry.
type Finding struct {
	Type            FindingType  `json:"type"`
	Severity        Severity     `json:"severity"`
	Category        string       `json:"category"`
	Message         string       `json:"message"`
	SuggestedAmount *float64     `json:"suggested_amount,omitempty"`
	MarketRange     *MarketRange `json:"market_range,omitempty"`
}

// MissingCost flags an essential category absent from the user's list.
type MissingCost struct {
	Category        string   `json:"category"`
	Message         string   `json:"message"`
	EstimatedAmount float64  `json:"estimated_amount"`
	Importance      Severity `json:"importance"`
}
