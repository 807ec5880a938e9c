package domain

import "fmt"

// ZoneLoad is a named circuit zone and its instantaneous power draw in kW.
// A small struct instead of a map keeps the expected fields explicit.
type ZoneLoad struct {
	Name string
	Load float64
}

// NewZoneLoad validates the draw before anything else sees it. Negative
// loads are rejected; an empty name is allowed.
func NewZoneLoad(name string, load float64) (ZoneLoad, error) {
	if load < 0 {
		return ZoneLoad{}, fmt.Errorf("zone %q: %w", name, ErrInvalidLoad)
	}

	return ZoneLoad{Name: name, Load: load}, nil
}

func (z ZoneLoad) String() string {
	return fmt.Sprintf("%s: %s kW", z.Name, FormatKW(z.Load))
}
