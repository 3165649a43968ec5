package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/analytics"
)

func TestWriteSummaryCSV(t *testing.T) {
	summary := analytics.Summary{
		ProductCount:       3,
		TotalCostGeneral:   1234.5,
		TotalClientRevenue: 2000,
		TotalRealProfit:    765.5,
	}

	var sb strings.Builder
	require.NoError(t, WriteSummaryCSV(&sb, "La Esquina", summary))

	out := sb.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "Metric,Value", lines[0])
	assert.Contains(t, out, "Business,La Esquina")
	assert.Contains(t, out, `"1,234.50"`)
	assert.Contains(t, out, "765.50")
}
