// Package browser drives a headless browser over the rendered
// dashboard so displayed values can be checked against the balancing
// arithmetic that produced them.
package browser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-rod/rod"
	"github.com/voltlab/zonebalance/internal/adapters/render/dashboard"
)

// DashboardPage is a page object over a loaded dashboard. Accessors
// resolve elements by the ids and classes the dashboard renderer emits.
type DashboardPage struct {
	page *rod.Page
}

func NewDashboardPage(page *rod.Page) *DashboardPage {
	return &DashboardPage{page: page}
}

// ZoneLoad reads the displayed load for the named zone, in kW.
func (d *DashboardPage) ZoneLoad(zoneName string) (float64, error) {
	selector := fmt.Sprintf("#%s .load", dashboard.ElementID(zoneName))
	elem, err := d.page.Element(selector)
	if err != nil {
		return 0, fmt.Errorf("find load element %q: %w", selector, err)
	}

	text, err := elem.Text()
	if err != nil {
		return 0, fmt.Errorf("read load text: %w", err)
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("parse load %q: %w", text, err)
	}

	return value, nil
}

// ZoneStatus returns the displayed status text and the status element's
// class attribute for the named zone.
func (d *DashboardPage) ZoneStatus(zoneName string) (text, class string, err error) {
	selector := fmt.Sprintf("#%s .status", dashboard.ElementID(zoneName))
	elem, err := d.page.Element(selector)
	if err != nil {
		return "", "", fmt.Errorf("find status element %q: %w", selector, err)
	}

	text, err = elem.Text()
	if err != nil {
		return "", "", fmt.Errorf("read status text: %w", err)
	}

	classAttr, err := elem.Attribute("class")
	if err != nil {
		return "", "", fmt.Errorf("read status class: %w", err)
	}
	if classAttr != nil {
		class = *classAttr
	}

	return strings.TrimSpace(text), class, nil
}
