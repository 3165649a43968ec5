package analytics

import (
	"math"
	"testing"
)

func TestAnalyzeBreakEvenClassic(t *testing.T) {
	result := AnalyzeBreakEven(BreakEvenInput{
		FixedCosts:      1000,
		AvgVariableCost: 3,
		AvgSellingPrice: 8,
		MonthlyCapacity: 400,
	})

	if result.Undefined {
		t.Fatal("expected defined break-even")
	}
	if result.ContributionMargin != 5 {
		t.Fatalf("expected contribution margin 5, got %.2f", result.ContributionMargin)
	}
	if result.Units != 200 {
		t.Fatalf("expected 200 units, got %.2f", result.Units)
	}
	if result.Revenue != 1600 {
		t.Fatalf("expected revenue 1600, got %.2f", result.Revenue)
	}
	// (400-200)/400 * 100
	if result.MarginOfSafety != 50 {
		t.Fatalf("expected margin of safety 50, got %.2f", result.MarginOfSafety)
	}
	// 400*8 - 400*3 - 1000
	if result.MonthlyProfit != 1000 {
		t.Fatalf("expected monthly profit 1000, got %.2f", result.MonthlyProfit)
	}
}

func TestAnalyzeBreakEvenWithTargetProfit(t *testing.T) {
	result := AnalyzeBreakEven(BreakEvenInput{
		FixedCosts:      1000,
		AvgVariableCost: 3,
		AvgSellingPrice: 8,
		TargetProfit:    500,
	})
	if result.Units != 300 {
		t.Fatalf("expected 300 units with target profit, got %.2f", result.Units)
	}
}

func TestAnalyzeBreakEvenRoundsUnitsUp(t *testing.T) {
	result := AnalyzeBreakEven(BreakEvenInput{
		FixedCosts:      100,
		AvgVariableCost: 2,
		AvgSellingPrice: 5,
	})
	// 100/3 = 33.33 -> 34 whole units
	if result.Units != 34 {
		t.Fatalf("expected 34 units, got %.2f", result.Units)
	}
}

func TestAnalyzeBreakEvenUndefined(t *testing.T) {
	for _, in := range []BreakEvenInput{
		{FixedCosts: 1000, AvgVariableCost: 5, AvgSellingPrice: 3},
		{FixedCosts: 1000, AvgVariableCost: 4, AvgSellingPrice: 4},
	} {
		result := AnalyzeBreakEven(in)
		if !result.Undefined {
			t.Fatalf("expected undefined break-even for %+v", in)
		}
		if !math.IsInf(result.Units, 1) {
			t.Fatalf("expected +Inf units sentinel, got %.2f", result.Units)
		}
	}
}

func TestAnalyzeBreakEvenROI(t *testing.T) {
	result := AnalyzeBreakEven(BreakEvenInput{
		FixedCosts:          1000,
		AvgVariableCost:     3,
		AvgSellingPrice:     8,
		MonthlyCapacity:     400,
		ReferenceInvestment: 24000,
	})
	// 1000 * 12 / 24000 * 100
	if result.ROI != 50 {
		t.Fatalf("expected ROI 50, got %.2f", result.ROI)
	}

	noInvestment := AnalyzeBreakEven(BreakEvenInput{FixedCosts: 1000, AvgVariableCost: 3, AvgSellingPrice: 8})
	if noInvestment.ROI != 0 {
		t.Fatalf("expected ROI guard 0 without investment, got %.2f", noInvestment.ROI)
	}
}

func TestAnalyzeBreakEvenSafetyClamped(t *testing.T) {
	result := AnalyzeBreakEven(BreakEvenInput{
		FixedCosts:      1000,
		AvgVariableCost: 3,
		AvgSellingPrice: 8,
		MonthlyCapacity: 100, // below the 200-unit break-even
	})
	if result.MarginOfSafety != 0 {
		t.Fatalf("expected clamped margin of safety 0, got %.2f", result.MarginOfSafety)
	}
}
