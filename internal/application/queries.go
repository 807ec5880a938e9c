package application

import (
	"time"

	"github.com/voltlab/zonebalance/internal/domain"
)

// Analysis is the full balancing computation over one zone sequence.
// Slice order follows the input order everywhere.
type Analysis struct {
	Zones       []domain.ZoneLoad
	TotalLoad   float64
	IdealLoad   float64
	Overloads   []domain.ZoneLoad
	Adjustments []domain.Adjustment
	CapturedAt  time.Time
}
