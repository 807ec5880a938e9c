package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// MaxLoadPerZone is the safe threshold per circuit zone, in kW.
	MaxLoadPerZone = 100.0

	// IdealVariance is the allowed spread between the highest and lowest
	// zone loads, in kW. No current operation reads it; reserved for
	// tolerance-based balancing.
	IdealVariance = 15.0

	// adjustTolerance is the band around the ideal load inside which a
	// zone is left untouched, in kW.
	adjustTolerance = 1.0
)

// TotalLoad returns the sum of all zone loads. Zero for an empty set.
func TotalLoad(zones []ZoneLoad) float64 {
	total := 0.0
	for _, z := range zones {
		total += z.Load
	}

	return total
}

// IdealLoad returns the per-zone target if the total were spread evenly,
// rounded to two decimals. An empty set has no meaningful target and
// returns ErrNoZones.
func IdealLoad(zones []ZoneLoad) (float64, error) {
	if len(zones) == 0 {
		return 0, ErrNoZones
	}

	return round2(TotalLoad(zones) / float64(len(zones))), nil
}

// DetectOverloads returns the zones drawing strictly more than
// MaxLoadPerZone, in input order. A zone exactly at the threshold is not
// overloaded.
func DetectOverloads(zones []ZoneLoad) []ZoneLoad {
	var overloaded []ZoneLoad
	for _, z := range zones {
		if z.Load > MaxLoadPerZone {
			overloaded = append(overloaded, z)
		}
	}

	return overloaded
}

// Adjustment tells one zone how far to move toward the ideal load. Diff
// is load minus ideal, rounded to two decimals; positive means the zone
// should shed load.
type Adjustment struct {
	Zone      string
	Directive string
	Diff      float64
}

// RecommendRedistribution emits one adjustment per zone whose rounded
// distance from the ideal load is at least adjustTolerance, preserving
// input order. Zones within the band are skipped.
func RecommendRedistribution(zones []ZoneLoad) ([]Adjustment, error) {
	ideal, err := IdealLoad(zones)
	if err != nil {
		return nil, err
	}

	var adjustments []Adjustment
	for _, z := range zones {
		diff := round2(z.Load - ideal)
		if math.Abs(diff) < adjustTolerance {
			continue
		}

		directive := fmt.Sprintf("Increase load by %s kW", FormatKW(-diff))
		if diff > 0 {
			directive = fmt.Sprintf("Reduce load by %s kW", FormatKW(diff))
		}

		adjustments = append(adjustments, Adjustment{
			Zone:      z.Name,
			Directive: directive,
			Diff:      diff,
		})
	}

	return adjustments, nil
}

// round2 rounds half away from zero to two decimals. Every operation
// that touches the ideal load goes through this helper so the displayed
// value and the recommendation arithmetic cannot drift apart.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatKW prints a kilowatt value without noise digits: whole numbers
// keep a single trailing zero (120.0), fractional values keep only the
// digits they need (83.75).
func FormatKW(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
