// Package dashboard renders the balancing analysis as a static HTML
// page. Each zone becomes a card whose load and status elements carry
// stable ids and classes so UI-level checks can read them back.
package dashboard

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"

	"github.com/voltlab/zonebalance/internal/application"
	"github.com/voltlab/zonebalance/internal/domain"
)

const (
	StatusOverload = "OVERLOAD"
	StatusOK       = "OK"

	classOverload = "overload"
	classOK       = "ok"
)

var pageTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Load Balancing Dashboard</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
.zone { border: 1px solid #ccc; border-radius: 6px; padding: 1rem; margin-bottom: 0.5rem; }
.status.overload { color: #c0392b; font-weight: bold; }
.status.ok { color: #27ae60; }
.summary { margin-top: 1rem; color: #555; }
</style>
</head>
<body>
<h1>Load Balancing Dashboard</h1>
{{range .Zones}}<div id="{{.ID}}" class="zone">
  <h2>{{.Name}}</h2>
  <span class="load">{{.Load}}</span> kW
  <span class="status {{.StatusClass}}">{{.Status}}</span>
</div>
{{end}}<div class="summary">
  <p>Total Load: <span id="total-load">{{.TotalLoad}}</span> kW</p>
  <p>Ideal Load Per Zone: <span id="ideal-load">{{.IdealLoad}}</span> kW</p>
</div>
</body>
</html>
`))

type pageData struct {
	Zones     []zoneCard
	TotalLoad string
	IdealLoad string
}

type zoneCard struct {
	ID          string
	Name        string
	Load        string
	Status      string
	StatusClass string
}

// ElementID derives the DOM id for a zone card from the zone name:
// lowercased, non-alphanumeric runs collapsed to single dashes, so
// "Zone A" becomes "zone-a".
func ElementID(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

// Write renders the dashboard for the analysis. Zone status mirrors the
// overload predicate of the analysis itself, so the page can never
// disagree with the report.
func Write(w io.Writer, analysis application.Analysis) error {
	data := pageData{
		TotalLoad: domain.FormatKW(analysis.TotalLoad),
		IdealLoad: domain.FormatKW(analysis.IdealLoad),
	}

	for _, zone := range analysis.Zones {
		card := zoneCard{
			ID:          ElementID(zone.Name),
			Name:        zone.Name,
			Load:        domain.FormatKW(zone.Load),
			Status:      StatusOK,
			StatusClass: classOK,
		}
		if zone.Load > domain.MaxLoadPerZone {
			card.Status = StatusOverload
			card.StatusClass = classOverload
		}
		data.Zones = append(data.Zones, card)
	}

	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}

	return nil
}

// WriteFile renders the dashboard to path, creating or truncating it.
func WriteFile(path string, analysis application.Analysis) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dashboard file: %w", err)
	}

	if err := Write(file, analysis); err != nil {
		_ = file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close dashboard file: %w", err)
	}

	return nil
}
