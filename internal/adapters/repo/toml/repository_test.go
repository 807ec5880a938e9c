package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voltlab/zonebalance/internal/domain"
)

func newTestRepository(t *testing.T) (*Repository, string) {
	t.Helper()

	zonesPath := filepath.Join(t.TempDir(), "zones.toml")
	config := viper.New()
	config.Set("zones.path", zonesPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)

	return repo, zonesPath
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	first := domain.ZoneLoad{Name: "Zone A", Load: 120.0}
	second := domain.ZoneLoad{Name: "Zone B", Load: 80.0}

	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), second))

	got, err := repo.GetByName(context.Background(), first.Name)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	zones, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.ZoneLoad{first, second}, zones)
}

func TestRepositoryListPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	names := []string{"Zone D", "Zone A", "Zone C", "Zone B"}
	for i, name := range names {
		require.NoError(t, repo.Save(context.Background(), domain.ZoneLoad{Name: name, Load: float64(10 * (i + 1))}))
	}

	zones, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, zones, len(names))
	for i, name := range names {
		assert.Equal(t, name, zones[i].Name)
	}
}

func TestRepositorySaveOverwritesExistingZoneInPlace(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	require.NoError(t, repo.Save(context.Background(), domain.ZoneLoad{Name: "Zone A", Load: 50}))
	require.NoError(t, repo.Save(context.Background(), domain.ZoneLoad{Name: "Zone B", Load: 60}))
	require.NoError(t, repo.Save(context.Background(), domain.ZoneLoad{Name: "Zone A", Load: 75}))

	zones, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, zones, 2)
	assert.Equal(t, domain.ZoneLoad{Name: "Zone A", Load: 75}, zones[0])
	assert.Equal(t, domain.ZoneLoad{Name: "Zone B", Load: 60}, zones[1])
}

func TestRepositoryGetByNameNotFound(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	_, err := repo.GetByName(context.Background(), "Zone Z")
	require.ErrorIs(t, err, domain.ErrZoneNotFound)
}

func TestRepositoryRemove(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	require.NoError(t, repo.Save(context.Background(), domain.ZoneLoad{Name: "Zone A", Load: 50}))
	require.NoError(t, repo.Remove(context.Background(), "Zone A"))

	zones, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, zones)

	err = repo.Remove(context.Background(), "Zone A")
	require.ErrorIs(t, err, domain.ErrZoneNotFound)
}

func TestRepositoryListMissingFileReturnsEmpty(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	zones, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, zones)
}

func TestRepositoryRejectsNewerSchemaVersion(t *testing.T) {
	t.Parallel()

	repo, zonesPath := newTestRepository(t)

	content := "version = 99\n\n[[zones]]\nname = \"Zone A\"\nload_kw = 10.0\n"
	require.NoError(t, os.WriteFile(zonesPath, []byte(content), 0o600))

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported zones schema version")
}

func TestRepositoryWritesVersionedFile(t *testing.T) {
	t.Parallel()

	repo, zonesPath := newTestRepository(t)

	require.NoError(t, repo.Save(context.Background(), domain.ZoneLoad{Name: "Zone A", Load: 120}))

	data, err := os.ReadFile(zonesPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "name = 'Zone A'")

	info, err := os.Stat(zonesPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRepositoryCancelledContext(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, repo.Save(ctx, domain.ZoneLoad{Name: "Zone A", Load: 1}), context.Canceled)
	_, err := repo.List(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
