package domain

import "errors"

var (
	ErrInvalidLoad  = errors.New("zone load cannot be negative")
	ErrNoZones      = errors.New("no zones to balance")
	ErrZoneNotFound = errors.New("zone not found")
)
