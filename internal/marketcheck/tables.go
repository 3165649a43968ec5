package marketcheck

import "github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/business"

// minimumMonthlyWage is the statutory monthly minimum wage the personnel
// rule checks against.
const minimumMonthlyWage = 470.0

// baseRanges holds plausible monthly cost bands per category, in USD,
// before the location multiplier is applied.
var baseRanges = map[string]MarketRange{
	"rent":        {Min: 800, Max: 5000},
	"utilities":   {Min: 80, Max: 600},
	"personnel":   {Min: minimumMonthlyWage, Max: 6000},
	"licenses":    {Min: 30, Max: 400},
	"insurance":   {Min: 40, Max: 300},
	"marketing":   {Min: 50, Max: 1500},
	"internet":    {Min: 25, Max: 120},
	"maintenance": {Min: 40, Max: 500},
	"accounting":  {Min: 50, Max: 400},
}

// locationFactors scales the base ranges by named zone. Unknown zones use
// a neutral 1.0.
var locationFactors = map[string]float64{
	"downtown":    1.3,
	"commercial":  1.15,
	"residential": 1.0,
	"suburban":    0.85,
	"rural":       0.7,
}

// essentialCost names a category a business type cannot realistically
// operate without.
type essentialCost struct {
	category   string
	estimate   float64
	importance Severity
}

// essentialByType drives the missing-cost detector.
var essentialByType = map[business.Type][]essentialCost{
	business.TypeCafeteria: {
		{"rent", 1200, SeverityHigh},
		{"utilities", 180, SeverityHigh},
		{"licenses", 80, SeverityMedium},
		{"internet", 40, SeverityLow},
	},
	business.TypeRestaurant: {
		{"rent", 2000, SeverityHigh},
		{"utilities", 300, SeverityHigh},
		{"personnel", 1400, SeverityHigh},
		{"licenses", 120, SeverityMedium},
		{"insurance", 90, SeverityMedium},
	},
	business.TypeBakery: {
		{"rent", 1000, SeverityHigh},
		{"utilities", 250, SeverityHigh},
		{"licenses", 80, SeverityMedium},
		{"maintenance", 100, SeverityLow},
	},
	business.TypeFoodTruck: {
		{"licenses", 150, SeverityHigh},
		{"maintenance", 180, SeverityHigh},
		{"insurance", 70, SeverityMedium},
	},
	business.TypeBar: {
		{"rent", 1500, SeverityHigh},
		{"licenses", 250, SeverityHigh},
		{"personnel", 940, SeverityHigh},
		{"utilities", 200, SeverityMedium},
		{"marketing", 150, SeverityLow},
	},
}

// RangeFor returns the zone-adjusted market range for a category.
func RangeFor(category, zone string) (MarketRange, bool) {
	base, ok := baseRanges[category]
	if !ok {
		return MarketRange{}, false
	}
	factor, ok := locationFactors[zone]
	if !ok {
		factor = 1.0
	}
	return MarketRange{Min: base.Min * factor, Max: base.Max * factor}, true
}
