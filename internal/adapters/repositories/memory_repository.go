package repositories

import (
	"context"
	"corvo-delivery/internal/domain"
	"fmt"
	"slices"
	"sync"
)

// In-memory implementation of the FixtureRepository port.
// It is safe for concurrent use and hands out copies only.
type MemoryRepository struct {
	mu      sync.RWMutex
	fixture domain.Fixture
}

func NewMemoryRepository(f domain.Fixture) *MemoryRepository {
	return &MemoryRepository{fixture: f.Clone()}
}

// Replace the whole data set.
func (m *MemoryRepository) Seed(ctx context.Context, f domain.Fixture) error {
	if err := f.Validate(); err != nil {
		return fmt.Errorf("seed memory repository: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.fixture = f.Clone()
	return nil
}

func (m *MemoryRepository) ListCouriers(ctx context.Context) ([]domain.Courier, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.fixture.Couriers), nil
}

func (m *MemoryRepository) AddCourier(ctx context.Context, c domain.Courier) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("add courier: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.courierIndex(c.Name) >= 0 {
		return fmt.Errorf("add courier %q: %w", c.Name, domain.ErrConflict)
	}
	m.fixture.Couriers = append(m.fixture.Couriers, c)
	return nil
}

func (m *MemoryRepository) RemoveCourier(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.courierIndex(name)
	if i < 0 {
		return fmt.Errorf("remove courier %q: %w", name, domain.ErrNotFound)
	}
	m.fixture.Couriers = slices.Delete(m.fixture.Couriers, i, i+1)
	return nil
}

func (m *MemoryRepository) ListDeliveries(ctx context.Context) ([]domain.Delivery, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := slices.Clone(m.fixture.Deliveries)
	slices.SortFunc(out, func(a, b domain.Delivery) int { return a.ID - b.ID })
	return out, nil
}

func (m *MemoryRepository) UpdateDeliveryStatus(ctx context.Context, id int, status domain.DeliveryStatus) error {
	if !status.Valid() {
		return fmt.Errorf("update delivery %d: unknown status %q: %w", id, status, domain.ErrInvalidArgument)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.fixture.Deliveries {
		if m.fixture.Deliveries[i].ID == id {
			m.fixture.Deliveries[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("update delivery %d: %w", id, domain.ErrNotFound)
}

func (m *MemoryRepository) ReportSummary(ctx context.Context) (domain.ReportSummary, error) {
	if err := ctx.Err(); err != nil {
		return domain.ReportSummary{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	r := m.fixture.Report
	r.Details = slices.Clone(r.Details)
	return r, nil
}

// courierIndex must be called with mu held.
func (m *MemoryRepository) courierIndex(name string) int {
	return slices.IndexFunc(m.fixture.Couriers, func(c domain.Courier) bool { return c.Name == name })
}
