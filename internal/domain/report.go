package domain

import (
	"fmt"
	"strings"
)

// GenerateReport renders the full balancing analysis as plain text:
// per-zone loads, totals, overloads and recommended adjustments. The
// output is deterministic for a given input order.
func GenerateReport(zones []ZoneLoad) (string, error) {
	ideal, err := IdealLoad(zones)
	if err != nil {
		return "", err
	}

	adjustments, err := RecommendRedistribution(zones)
	if err != nil {
		return "", err
	}

	overloads := DetectOverloads(zones)

	lines := []string{"----- Load Balancing Analysis Report -----\n"}

	lines = append(lines, "Zone Loads:")
	for _, z := range zones {
		lines = append(lines, fmt.Sprintf("  - %s: %s kW", z.Name, FormatKW(z.Load)))
	}

	lines = append(lines, fmt.Sprintf("\nTotal Load: %s kW", FormatKW(TotalLoad(zones))))
	lines = append(lines, fmt.Sprintf("Ideal Load Per Zone: %s kW\n", FormatKW(ideal)))

	if len(overloads) > 0 {
		lines = append(lines, "⚠️  Overloaded Zones Detected:")
		for _, z := range overloads {
			lines = append(lines, fmt.Sprintf("   - %s (%s kW)", z.Name, FormatKW(z.Load)))
		}
	} else {
		lines = append(lines, "No overloaded zones detected. ✔️")
	}

	if len(adjustments) > 0 {
		lines = append(lines, "\nRecommended Adjustments:")
		for _, a := range adjustments {
			lines = append(lines, fmt.Sprintf("   - %s: %s", a.Zone, a.Directive))
		}
	} else {
		lines = append(lines, "\nLoad distribution is optimal. ✔️")
	}

	return strings.Join(lines, "\n"), nil
}
