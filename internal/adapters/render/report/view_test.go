package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voltlab/zonebalance/internal/application"
	"github.com/voltlab/zonebalance/internal/domain"
)

func sampleAnalysis(t *testing.T) application.Analysis {
	t.Helper()

	zones := []domain.ZoneLoad{
		{Name: "Zone A", Load: 120.0},
		{Name: "Zone B", Load: 80.0},
		{Name: "Zone C", Load: 95.0},
		{Name: "Zone D", Load: 40.0},
	}

	analysis, err := application.AnalyzeZones(zones, time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	return analysis
}

func TestRenderFullAnalysis(t *testing.T) {
	output, err := Render(sampleAnalysis(t), RenderOptions{})
	require.NoError(t, err)

	assert.Contains(t, output, "----- Load Balancing Analysis Report -----")
	assert.Contains(t, output, "zones: 4")
	assert.Contains(t, output, "Zone A: 120.0 kW")
	assert.Contains(t, output, "Total Load: 335.0 kW")
	assert.Contains(t, output, "Ideal Load Per Zone: 83.75 kW")
	assert.Contains(t, output, "Overloaded Zones Detected:")
	assert.Contains(t, output, "Zone A (120.0 kW)")
	assert.Contains(t, output, "Reduce load by 36.25 kW")
	assert.Contains(t, output, "Increase load by 43.75 kW")
}

func TestRenderBalancedAnalysis(t *testing.T) {
	zones := []domain.ZoneLoad{
		{Name: "Zone A", Load: 50.5},
		{Name: "Zone B", Load: 49.5},
	}

	analysis, err := application.AnalyzeZones(zones, time.Time{})
	require.NoError(t, err)

	output, err := Render(analysis, RenderOptions{})
	require.NoError(t, err)

	assert.Contains(t, output, "No overloaded zones detected. ✔️")
	assert.Contains(t, output, "Load distribution is optimal. ✔️")
	assert.NotContains(t, output, "Recommended Adjustments")
}

func TestRenderIsIdempotent(t *testing.T) {
	analysis := sampleAnalysis(t)

	first, err := Render(analysis, RenderOptions{})
	require.NoError(t, err)
	second, err := Render(analysis, RenderOptions{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
