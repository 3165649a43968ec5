package marketcheck

import (
	"testing"

	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/costs"
)

func TestValidateCostBelowRange(t *testing.T) {
	item := costs.Item{Name: "Rent", Category: "rent", Amount: 400, Frequency: costs.FrequencyMonthly}
	findings := ValidateCost(item, "residential")

	if len(findings) != 1 {
		t.Fatalf("expected exactly 1 finding, got %d", len(findings))
	}
	f := findings[0]
	if f.Type != FindingWarning {
		t.Fatalf("expected warning, got %s", f.Type)
	}
	if f.Severity != SeverityMedium {
		t.Fatalf("expected medium severity, got %s", f.Severity)
	}
	if f.SuggestedAmount == nil || *f.SuggestedAmount != 800 {
		t.Fatalf("expected suggested amount 800, got %v", f.SuggestedAmount)
	}
}

func TestValidateCostFarAboveRange(t *testing.T) {
	item := costs.Item{Name: "Rent", Category: "rent", Amount: 9000, Frequency: costs.FrequencyMonthly}
	findings := ValidateCost(item, "residential")

	if len(findings) != 1 || findings[0].Type != FindingError {
		t.Fatalf("expected a single error finding, got %+v", findings)
	}
	if findings[0].SuggestedAmount == nil || *findings[0].SuggestedAmount != 5000 {
		t.Fatalf("expected suggested amount 5000, got %v", findings[0].SuggestedAmount)
	}
}

func TestValidateCostWithinRange(t *testing.T) {
	item := costs.Item{Name: "Rent", Category: "rent", Amount: 1500, Frequency: costs.FrequencyMonthly}
	findings := ValidateCost(item, "residential")

	if len(findings) != 1 || findings[0].Type != FindingSuccess {
		t.Fatalf("expected a single success finding, got %+v", findings)
	}
}

func TestValidateCostZoneMultiplier(t *testing.T) {
	// 900 clears the residential floor of 800 but not downtown's 1040.
	item := costs.Item{Name: "Rent", Category: "rent", Amount: 900, Frequency: costs.FrequencyMonthly}

	if f := ValidateCost(item, "residential"); f[0].Type != FindingSuccess {
		t.Fatalf("expected success in residential zone, got %s", f[0].Type)
	}
	downtown := ValidateCost(item, "downtown")
	if downtown[0].Type != FindingWarning {
		t.Fatalf("expected warning in downtown zone, got %s", downtown[0].Type)
	}
	if *downtown[0].SuggestedAmount != 1040 {
		t.Fatalf("expected zone-adjusted suggestion 1040, got %.2f", *downtown[0].SuggestedAmount)
	}
}

func TestValidateCostNormalizesFrequency(t *testing.T) {
	// 4800/year is 400/month and should trigger the same rent warning.
	item := costs.Item{Name: "Rent", Category: "rent", Amount: 4800, Frequency: costs.FrequencyAnnual}
	findings := ValidateCost(item, "residential")
	if len(findings) != 1 || findings[0].Type != FindingWarning {
		t.Fatalf("expected warning for annualized rent, got %+v", findings)
	}
}

func TestValidateCostPersonnelMinimumWage(t *testing.T) {
	item := costs.Item{Name: "Cook", Category: "personnel", Amount: 300, Frequency: costs.FrequencyMonthly}
	findings := ValidateCost(item, "residential")

	// below the range floor AND below minimum wage
	if len(findings) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(findings))
	}
	wage := findings[1]
	if wage.Type != FindingWarning || wage.Severity != SeverityHigh {
		t.Fatalf("expected high-severity wage warning, got %+v", wage)
	}
	if wage.SuggestedAmount == nil || *wage.SuggestedAmount != 470 {
		t.Fatalf("expected minimum wage suggestion 470, got %v", wage.SuggestedAmount)
	}
}

func TestValidateCostUnknownCategory(t *testing.T) {
	item := costs.Item{Name: "Mascot costume", Category: "entertainment", Amount: 100, Frequency: costs.FrequencyMonthly}
	findings := ValidateCost(item, "residential")
	if len(findings) != 1 || findings[0].Type != FindingSuccess {
		t.Fatalf("expected advisory success for unknown category, got %+v", findings)
	}
}
