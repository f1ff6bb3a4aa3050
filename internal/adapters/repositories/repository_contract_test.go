package repositories

import (
	"context"
	"corvo-delivery/internal/domain"
	"corvo-delivery/internal/platform/db"
	"corvo-delivery/internal/ports"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seedable interface {
	ports.FixtureRepository
	Seed(ctx context.Context, f domain.Fixture) error
}

func newSQLiteRepository(t *testing.T) *SQLRepository {
	t.Helper()

	ctx := context.Background()
	conn, err := db.Open(ctx, "sqlite", filepath.Join(t.TempDir(), "corvo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, InitSchema(ctx, conn))
	return NewSQLRepository(conn, DialectSQLite)
}

func repositoryFactories() map[string]func(t *testing.T) seedable {
	return map[string]func(t *testing.T) seedable{
		"memory": func(t *testing.T) seedable {
			return NewMemoryRepository(domain.Fixture{})
		},
		"sqlite": func(t *testing.T) seedable {
			return newSQLiteRepository(t)
		},
	}
}

func TestRepositoryContract(t *testing.T) {
	for name, factory := range repositoryFactories() {
		t.Run(name, func(t *testing.T) {
			t.Run("SeedAndRead", func(t *testing.T) {
				ctx := context.Background()
				repo := factory(t)
				fixture := domain.DefaultFixture()
				require.NoError(t, repo.Seed(ctx, fixture))

				couriers, err := repo.ListCouriers(ctx)
				require.NoError(t, err)
				assert.Equal(t, fixture.Couriers, couriers)

				deliveries, err := repo.ListDeliveries(ctx)
				require.NoError(t, err)
				assert.Equal(t, fixture.Deliveries, deliveries)

				summary, err := repo.ReportSummary(ctx)
				require.NoError(t, err)
				assert.Equal(t, fixture.Report, summary)
			})

			t.Run("AddAndRemoveCourier", func(t *testing.T) {
				ctx := context.Background()
				repo := factory(t)
				require.NoError(t, repo.Seed(ctx, domain.DefaultFixture()))

				require.NoError(t, repo.AddCourier(ctx, domain.Courier{Name: "Ana", Contact: "555"}))
				err := repo.AddCourier(ctx, domain.Courier{Name: "Ana", Contact: "666"})
				assert.ErrorIs(t, err, domain.ErrConflict)
				err = repo.AddCourier(ctx, domain.Courier{Name: " ", Contact: "1"})
				assert.ErrorIs(t, err, domain.ErrInvalidArgument)

				couriers, err := repo.ListCouriers(ctx)
				require.NoError(t, err)
				require.Len(t, couriers, 3)
				assert.Equal(t, domain.Courier{Name: "Ana", Contact: "555"}, couriers[2])

				require.NoError(t, repo.RemoveCourier(ctx, "João"))
				assert.ErrorIs(t, repo.RemoveCourier(ctx, "João"), domain.ErrNotFound)

				couriers, err = repo.ListCouriers(ctx)
				require.NoError(t, err)
				assert.Equal(t, []domain.Courier{
					{Name: "Maria", Contact: "67890"},
					{Name: "Ana", Contact: "555"},
				}, couriers)
			})

			t.Run("UpdateDeliveryStatus", func(t *testing.T) {
				ctx := context.Background()
				repo := factory(t)
				require.NoError(t, repo.Seed(ctx, domain.DefaultFixture()))

				require.NoError(t, repo.UpdateDeliveryStatus(ctx, 2, domain.StatusPaused))
				assert.ErrorIs(t, repo.UpdateDeliveryStatus(ctx, 99, domain.StatusPaused), domain.ErrNotFound)
				assert.ErrorIs(t, repo.UpdateDeliveryStatus(ctx, 1, "lost"), domain.ErrInvalidArgument)

				deliveries, err := repo.ListDeliveries(ctx)
				require.NoError(t, err)
				require.Len(t, deliveries, 2)
				assert.Equal(t, domain.StatusPending, deliveries[0].Status)
				assert.Equal(t, domain.StatusPaused, deliveries[1].Status)

				// The report board shares ids with the dispatch board but is untouched.
				summary, err := repo.ReportSummary(ctx)
				require.NoError(t, err)
				assert.Equal(t, domain.DefaultFixture().Report, summary)
			})

			t.Run("SeedRejectsInvalidFixture", func(t *testing.T) {
				ctx := context.Background()
				repo := factory(t)
				require.NoError(t, repo.Seed(ctx, domain.DefaultFixture()))

				bad := domain.DefaultFixture()
				bad.Deliveries[1].ID = bad.Deliveries[0].ID
				assert.ErrorIs(t, repo.Seed(ctx, bad), domain.ErrInvalidArgument)

				couriers, err := repo.ListCouriers(ctx)
				require.NoError(t, err)
				assert.Len(t, couriers, 2, "failed seed must leave previous data intact")
			})

			t.Run("ReturnsCopies", func(t *testing.T) {
				ctx := context.Background()
				repo := factory(t)
				require.NoError(t, repo.Seed(ctx, domain.DefaultFixture()))

				couriers, err := repo.ListCouriers(ctx)
				require.NoError(t, err)
				couriers[0].Name = "mutated"

				again, err := repo.ListCouriers(ctx)
				require.NoError(t, err)
				assert.Equal(t, "João", again[0].Name)
			})
		})
	}
}

func TestSQLRepositoryEmpty(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepository(t)

	empty, err := repo.Empty(ctx)
	require.NoError(t, err)
	assert.True(t, empty)

	require.NoError(t, repo.Seed(ctx, domain.DefaultFixture()))

	empty, err = repo.Empty(ctx)
	require.NoError(t, err)
	assert.False(t, empty)
}

func TestInitSchemaIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepository(t)

	require.NoError(t, InitSchema(ctx, repo.DB))
	require.NoError(t, InitSchema(ctx, repo.DB))
}

func TestMemoryRepositoryHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewMemoryRepository(domain.DefaultFixture())
	_, err := repo.ListCouriers(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
