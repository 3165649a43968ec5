package marketcheck

import (
	"testing"

	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/business"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/costs"
)

func TestDetectMissing(t *testing.T) {
	items := []costs.Item{
		{Category: "rent"},
		{Category: "utilities"},
	}
	missing := DetectMissing(business.TypeCafeteria, items)

	categories := make(map[string]MissingCost, len(missing))
	for _, m := range missing {
		categories[m.Category] = m
	}
	if len(missing) != 2 {
		t.Fatalf("expected 2 missing categories, got %d", len(missing))
	}
	if _, ok := categories["licenses"]; !ok {
		t.Fatal("expected licenses to be flagged")
	}
	internet, ok := categories["internet"]
	if !ok {
		t.Fatal("expected internet to be flagged")
	}
	if internet.Importance != SeverityLow {
		t.Fatalf("expected low importance for internet, got %s", internet.Importance)
	}
	if internet.EstimatedAmount <= 0 {
		t.Fatal("expected a positive estimated amount")
	}
}

func TestDetectMissingComplete(t *testing.T) {
	items := []costs.Item{
		{Category: "rent"},
		{Category: "utilities"},
		{Category: "licenses"},
		{Category: "internet"},
	}
	if missing := DetectMissing(business.TypeCafeteria, items); len(missing) != 0 {
		t.Fatalf("expected no missing categories, got %+v", missing)
	}
}

func TestDetectMissingUnknownType(t *testing.T) {
	if missing := DetectMissing(business.Type("kiosk"), nil); missing != nil {
		t.Fatalf("expected nil for unknown business type, got %+v", missing)
	}
}
