package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReport(t *testing.T) {
	report, err := GenerateReport(sampleZones(t))
	require.NoError(t, err)

	assert.Contains(t, report, "----- Load Balancing Analysis Report -----")
	assert.Contains(t, report, "  - Zone A: 120.0 kW")
	assert.Contains(t, report, "  - Zone D: 40.0 kW")
	assert.Contains(t, report, "Total Load: 335.0 kW")
	assert.Contains(t, report, "Ideal Load Per Zone: 83.75 kW")
	assert.Contains(t, report, "⚠️  Overloaded Zones Detected:")
	assert.Contains(t, report, "   - Zone A (120.0 kW)")
	assert.Contains(t, report, "   - Zone A: Reduce load by 36.25 kW")
	assert.Contains(t, report, "   - Zone B: Increase load by 3.75 kW")
	assert.NotContains(t, report, "optimal")
}

func TestGenerateReportNoOverloadsNoAdjustments(t *testing.T) {
	zones := []ZoneLoad{
		{Name: "Zone A", Load: 50.5},
		{Name: "Zone B", Load: 50.0},
		{Name: "Zone C", Load: 49.5},
	}

	report, err := GenerateReport(zones)
	require.NoError(t, err)

	assert.Contains(t, report, "No overloaded zones detected. ✔️")
	assert.Contains(t, report, "Load distribution is optimal. ✔️")
	assert.NotContains(t, report, "Recommended Adjustments")
}

func TestGenerateReportIsDeterministic(t *testing.T) {
	zones := sampleZones(t)

	first, err := GenerateReport(zones)
	require.NoError(t, err)
	second, err := GenerateReport(zones)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateReportEmptyZones(t *testing.T) {
	_, err := GenerateReport(nil)
	require.ErrorIs(t, err, ErrNoZones)
}
