package report

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/voltlab/zonebalance/internal/application"
	"github.com/voltlab/zonebalance/internal/domain"
)

type RenderOptions struct {
	Now time.Time
}

func renderView(analysis application.Analysis, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("----- Load Balancing Analysis Report -----"),
		s.header.Render(fmt.Sprintf("zones: %d", len(analysis.Zones))),
		s.section.Render(renderZoneLoads(analysis, s)),
		s.section.Render(renderSummary(analysis, s)),
		s.section.Render(renderOverloads(analysis, s)),
		s.section.Render(renderAdjustments(analysis, s)),
	}

	if !opts.Now.IsZero() {
		lines = append(lines, s.section.Render(s.detail.Render(fmt.Sprintf("generated %s", opts.Now.Format(time.RFC1123)))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderZoneLoads(analysis application.Analysis, s styles) string {
	lines := []string{s.summaryKey.Render("Zone Loads:")}
	for _, zone := range analysis.Zones {
		lines = append(lines, s.zone.Render(fmt.Sprintf("  - %s: %s kW", zone.Name, domain.FormatKW(zone.Load))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSummary(analysis application.Analysis, s styles) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.summaryKey.Render(fmt.Sprintf("Total Load: %s kW", domain.FormatKW(analysis.TotalLoad))),
		s.summaryKey.Render(fmt.Sprintf("Ideal Load Per Zone: %s kW", domain.FormatKW(analysis.IdealLoad))),
	)
}

func renderOverloads(analysis application.Analysis, s styles) string {
	if len(analysis.Overloads) == 0 {
		return s.ok.Render("No overloaded zones detected. ✔️")
	}

	lines := []string{s.warning.Render("⚠️  Overloaded Zones Detected:")}
	for _, zone := range analysis.Overloads {
		lines = append(lines, s.warning.Render(fmt.Sprintf("   - %s (%s kW)", zone.Name, domain.FormatKW(zone.Load))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderAdjustments(analysis application.Analysis, s styles) string {
	if len(analysis.Adjustments) == 0 {
		return s.ok.Render("Load distribution is optimal. ✔️")
	}

	lines := []string{s.summaryKey.Render("Recommended Adjustments:")}
	for _, adjustment := range analysis.Adjustments {
		lines = append(lines, s.detail.Render(fmt.Sprintf("   - %s: %s", adjustment.Zone, adjustment.Directive)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
