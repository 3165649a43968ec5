package marketcheck

import (
	"fmt"

	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/business"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/costs"
)

// DetectMissing compares a business's cost list against the essential
// categories for its type and suggests what has not been entered yet.
func DetectMissing(bizType business.Type, items []costs.Item) []MissingCost {
	present := make(map[string]bool, len(items))
	for _, item := range items {
		present[item.Category] = true
	}

	var missing []MissingCost
	for _, essential := range essentialByType[bizType] {
		if present[essential.category] {
			continue
		}
		missing = append(missing, MissingCost{
			Category:        essential.category,
			Message:         fmt.Sprintf("a %s usually carries a %s cost; none has been entered", bizType, essential.category),
			EstimatedAmount: essential.estimate,
			Importance:      essential.importance,
		})
	}
	return missing
}
