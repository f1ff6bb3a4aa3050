package ports

import (
	"context"
	"corvo-delivery/internal/domain"
)

// Port: courier list shown on the admin panel.
type CourierRepository interface {
	// Return couriers in display order.
	ListCouriers(ctx context.Context) ([]domain.Courier, error)
	// Append a courier. Fails with domain.ErrConflict on a duplicate name.
	AddCourier(ctx context.Context, c domain.Courier) error
	// Remove a courier by name. Fails with domain.ErrNotFound when absent.
	RemoveCourier(ctx context.Context, name string) error
}

// Port: delivery board shown on the delivery panel.
type DeliveryRepository interface {
	// Return the board ordered by delivery id.
	ListDeliveries(ctx context.Context) ([]domain.Delivery, error)
	// Change the status of a board delivery. Fails with domain.ErrNotFound when absent.
	UpdateDeliveryStatus(ctx context.Context, id int, status domain.DeliveryStatus) error
}

// Port: report metrics and detail rows.
type ReportRepository interface {
	ReportSummary(ctx context.Context) (domain.ReportSummary, error)
}

// FixtureRepository is the full data source the dispatcher reads from.
type FixtureRepository interface {
	CourierRepository
	DeliveryRepository
	ReportRepository
}
