package bootstrap

import (
	"context"
	"corvo-delivery/internal/config"
	"corvo-delivery/internal/domain"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadFixtureFallsBack(t *testing.T) {
	f, err := LoadFixture("", zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultFixture(), f)

	f, err = LoadFixture(filepath.Join(t.TempDir(), "missing.json"), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultFixture(), f)
}

func TestOpenStoreMemory(t *testing.T) {
	cfg := config.Config{DBDriver: config.DriverMemory, AdminUsername: "admin", AdminPassword: "1234"}

	store, err := OpenStore(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer store.Close()

	assert.Nil(t, store.SQL)
	couriers, err := store.Repo.ListCouriers(context.Background())
	require.NoError(t, err)
	assert.Len(t, couriers, 2)

	d, err := NewDispatcher(store, cfg)
	require.NoError(t, err)
	assert.NotNil(t, d)
}

func TestOpenStoreSQLiteSeedsOnce(t *testing.T) {
	ctx := context.Background()
	cfg := config.Config{DBDriver: config.DriverSQLite, DBPath: filepath.Join(t.TempDir(), "corvo.db")}

	store, err := OpenStore(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, store.SQL)
	require.NoError(t, store.SQL.AddCourier(ctx, domain.Courier{Name: "Ana", Contact: "555"}))
	require.NoError(t, store.Close())

	store, err = OpenStore(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	defer store.Close()

	couriers, err := store.Repo.ListCouriers(ctx)
	require.NoError(t, err)
	assert.Len(t, couriers, 3, "reopening must not reseed a populated database")
}

func TestOpenSQLStoreRejectsMemory(t *testing.T) {
	_, err := OpenSQLStore(context.Background(), config.Config{DBDriver: config.DriverMemory})
	assert.Error(t, err)
}

func TestNewLoggerSplitsOutputs(t *testing.T) {
	assert.Equal(t, []string{"stderr", "/tmp/a.log"}, splitOutputs(" stderr, ,/tmp/a.log "))
	assert.Nil(t, splitOutputs(""))
}
