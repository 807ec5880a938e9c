package toml

import "fmt"

const currentSchemaVersion = 1

// fileSchema is the on-disk shape of zones.toml. Entry order in the
// zones array is the computation order.
type fileSchema struct {
	Version int          `toml:"version"`
	Zones   []zoneSchema `toml:"zones"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported zones schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type zoneSchema struct {
	Name string  `toml:"name"`
	Load float64 `toml:"load_kw"`
}
