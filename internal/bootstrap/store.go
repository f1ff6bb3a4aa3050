// Package bootstrap assembles the storage and auth adapters selected by
// configuration. Each binary under cmd/ calls into it.
package bootstrap

import (
	"context"
	"corvo-delivery/internal/adapters/auth"
	"corvo-delivery/internal/adapters/repositories"
	"corvo-delivery/internal/config"
	"corvo-delivery/internal/domain"
	"corvo-delivery/internal/platform/db"
	"corvo-delivery/internal/ports"
	"corvo-delivery/internal/services"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"go.uber.org/zap"
)

// Store is an opened fixture repository. SQL is nil for the memory driver.
type Store struct {
	Repo ports.FixtureRepository
	SQL  *repositories.SQLRepository

	db *sql.DB
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// LoadFixture reads the seed file, falling back to the built-in fixture
// when path is empty or the file does not exist.
func LoadFixture(path string, logger *zap.Logger) (domain.Fixture, error) {
	if path == "" {
		return domain.DefaultFixture(), nil
	}

	f, err := repositories.LoadSeed(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info("seed file not found, using built-in fixture", zap.String("path", path))
		return domain.DefaultFixture(), nil
	}
	if err != nil {
		return domain.Fixture{}, err
	}
	return f, nil
}

// OpenStore opens the configured repository. SQL stores get their schema
// created and are seeded when they hold no data yet.
func OpenStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Store, error) {
	fixture, err := LoadFixture(cfg.SeedPath, logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if cfg.DBDriver == config.DriverMemory {
		logger.Info("using in-memory repository")
		return &Store{Repo: repositories.NewMemoryRepository(fixture)}, nil
	}

	store, err := OpenSQLStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	empty, err := store.SQL.Empty(ctx)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	if empty {
		if err := store.SQL.Seed(ctx, fixture); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("open store: %w", err)
		}
		logger.Info("seeded empty database", zap.String("driver", cfg.DBDriver))
	}

	return store, nil
}

// OpenSQLStore connects to the configured SQL database and creates the
// schema, without seeding.
func OpenSQLStore(ctx context.Context, cfg config.Config) (*Store, error) {
	if cfg.DBDriver == config.DriverMemory {
		return nil, errors.New("open sql store: DB_DRIVER is memory")
	}

	dialect, err := repositories.DialectFor(cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("open sql store: %w", err)
	}

	conn, err := db.Open(ctx, cfg.DBDriver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open sql store: %w", err)
	}

	if err := repositories.InitSchema(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open sql store: %w", err)
	}

	repo := repositories.NewSQLRepository(conn, dialect)
	return &Store{Repo: repo, SQL: repo, db: conn}, nil
}

// NewDispatcher builds the dispatcher over a store with the configured
// admin account.
func NewDispatcher(store *Store, cfg config.Config) (*services.Dispatcher, error) {
	verifier, err := auth.NewStaticVerifier(cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("new dispatcher: %w", err)
	}
	return services.NewDispatcher(store.Repo, verifier)
}
