package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"github.com/voltlab/zonebalance/internal/domain"
	"github.com/voltlab/zonebalance/internal/ports"
)

const (
	configName      = "config"
	configType      = "toml"
	zonesPathKey    = "zones.path"
	zonesFileMode   = 0o600
	zonesDirMode    = 0o700
	zonesConfigDir  = ".zonebalance"
	zonesConfigFile = "zones.toml"
	tempFilePattern = ".zones-*.toml.tmp"
)

// Repository keeps the ordered zone set in a TOML file. Writes are
// atomic (temp file + rename) and serialized per path.
type Repository struct {
	zonesPath string
	mu        *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ZoneRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, zonesConfigDir, zonesConfigFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, zonesConfigDir))
	cfg.SetDefault(zonesPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	zonesPath := cfg.GetString(zonesPathKey)
	if zonesPath == "" {
		return nil, errors.New("zones path is empty")
	}
	zonesPath, err = normalizeZonesPath(zonesPath)
	if err != nil {
		return nil, err
	}

	return &Repository{zonesPath: zonesPath, mu: lockForPath(zonesPath)}, nil
}

func (r *Repository) Save(ctx context.Context, zone domain.ZoneLoad) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}
	file.applyDefaults()

	encoded := toSchema(zone)
	updated := false
	for i := range file.Zones {
		if file.Zones[i].Name == encoded.Name {
			file.Zones[i] = encoded
			updated = true
			break
		}
	}

	if !updated {
		file.Zones = append(file.Zones, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) GetByName(ctx context.Context, name string) (domain.ZoneLoad, error) {
	if err := ctx.Err(); err != nil {
		return domain.ZoneLoad{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.ZoneLoad{}, err
	}
	file.applyDefaults()

	for _, entry := range file.Zones {
		if entry.Name == name {
			return fromSchema(entry), nil
		}
	}

	return domain.ZoneLoad{}, domain.ErrZoneNotFound
}

func (r *Repository) List(ctx context.Context) ([]domain.ZoneLoad, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}
	file.applyDefaults()

	zones := make([]domain.ZoneLoad, 0, len(file.Zones))
	for _, entry := range file.Zones {
		zones = append(zones, fromSchema(entry))
	}

	return zones, nil
}

func (r *Repository) Remove(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}
	file.applyDefaults()

	for i := range file.Zones {
		if file.Zones[i].Name == name {
			file.Zones = append(file.Zones[:i], file.Zones[i+1:]...)
			return r.writeSchema(file)
		}
	}

	return domain.ErrZoneNotFound
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.zonesPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read zones file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode zones file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeZonesPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve zones path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.zonesPath), zonesDirMode); err != nil {
		return fmt.Errorf("create zones directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode zones file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.zonesPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp zones file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp zones file: %w", err)
	}

	if err := tempFile.Chmod(zonesFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp zones file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp zones file: %w", err)
	}

	if err := os.Rename(tempName, r.zonesPath); err != nil {
		return fmt.Errorf("replace zones file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.zonesPath, zonesFileMode); err != nil {
		return fmt.Errorf("chmod zones file: %w", err)
	}

	return nil
}

func toSchema(zone domain.ZoneLoad) zoneSchema {
	return zoneSchema{
		Name: zone.Name,
		Load: zone.Load,
	}
}

func fromSchema(zone zoneSchema) domain.ZoneLoad {
	return domain.ZoneLoad{
		Name: zone.Name,
		Load: zone.Load,
	}
}
