package marketcheck

import (
	"fmt"

	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/costs"
)

// errorThresholdFactor marks how far above the adjusted maximum a cost
// must sit before the finding escalates from warning to error.
const errorThresholdFactor = 1.5

// ValidateCost checks one cost entry against the market range for its
// category, adjusted by the business's location zone.
func ValidateCost(item costs.Item, zone string) []Finding {
	monthly := item.MonthlyAmount()
	var findings []Finding

	adjusted, known := RangeFor(item.Category, zone)
	switch {
	case !known:
		findings = append(findings, Finding{
			Type:     FindingSuccess,
			Severity: SeverityLow,
			Category: item.Category,
			Message:  fmt.Sprintf("no market reference for category %q", item.Category),
		})
	case monthly < adjusted.Min:
		suggested := adjusted.Min
		findings = append(findings, Finding{
			Type:            FindingWarning,
			Severity:        SeverityMedium,
			Category:        item.Category,
			Message:         fmt.Sprintf("%s of %.2f/month is below the typical range for this zone", item.Name, monthly),
			SuggestedAmount: &suggested,
			MarketRange:     &adjusted,
		})
	case monthly > adjusted.Max*errorThresholdFactor:
		suggested := adjusted.Max
		findings = append(findings, Finding{
			Type:            FindingError,
			Severity:        SeverityHigh,
			Category:        item.Category,
			Message:         fmt.Sprintf("%s of %.2f/month is far above the typical range for this zone", item.Name, monthly),
			SuggestedAmount: &suggested,
			MarketRange:     &adjusted,
		})
	default:
		findings = append(findings, Finding{
			Type:        FindingSuccess,
			Severity:    SeverityLow,
			Category:    item.Category,
			Message:     fmt.Sprintf("%s is within the typical range for this zone", item.Name),
			MarketRange: &adjusted,
		})
	}

	// Statutory floor for personnel costs, independent of the range check.
	if item.Category == "personnel" && monthly < minimumMonthlyWage {
		suggested := minimumMonthlyWage
		findings = append(findings, Finding{
			Type:            FindingWarning,
			Severity:        SeverityHigh,
			Category:        item.Category,
			Message:         fmt.Sprintf("%.2f/month per employee is below the statutory minimum wage of %.2f", monthly, minimumMonthlyWage),
			SuggestedAmount: &suggested,
		})
	}

	return findings
}

// ValidateAll runs ValidateCost over a full cost list.
func ValidateAll(items []costs.Item, zone string) []Finding {
	var findings []Finding
	for _, item := range items {
		findings = append(findings, ValidateCost(item, zone)...)
	}
	return findings
}
