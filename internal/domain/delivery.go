package domain

import (
	"fmt"
	"strings"
)

// DeliveryStatus is the state shown next to a delivery row.
type DeliveryStatus string

const (
	StatusPending   DeliveryStatus = "pending"
	StatusCompleted DeliveryStatus = "completed"
	StatusPaused    DeliveryStatus = "paused"
)

var statusLabels = map[DeliveryStatus]string{
	StatusPending:   "Pendente",
	StatusCompleted: "Concluída",
	StatusPaused:    "Pausada",
}

// Label returns the user-facing (pt-BR) name of the status.
func (s DeliveryStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

func (s DeliveryStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// ParseDeliveryStatus accepts either the status code ("pending") or its
// label ("Pendente"), case-insensitively.
func ParseDeliveryStatus(s string) (DeliveryStatus, error) {
	s = strings.TrimSpace(s)
	for code, label := range statusLabels {
		if strings.EqualFold(s, string(code)) || strings.EqualFold(s, label) {
			return code, nil
		}
	}
	return "", fmt.Errorf("unknown delivery status %q: %w", s, ErrInvalidArgument)
}

// Delivery is a single order handled by a courier.
type Delivery struct {
	ID       int
	Customer string
	Status   DeliveryStatus
}

func (d Delivery) Validate() error {
	if d.ID <= 0 {
		return fmt.Errorf("delivery: id must be positive, got %d: %w", d.ID, ErrInvalidArgument)
	}
	if strings.TrimSpace(d.Customer) == "" {
		return fmt.Errorf("delivery %d: customer must not be empty: %w", d.ID, ErrInvalidArgument)
	}
	if !d.Status.Valid() {
		return fmt.Errorf("delivery %d: unknown status %q: %w", d.ID, d.Status, ErrInvalidArgument)
	}
	return nil
}

// FilterByStatus returns the deliveries with the given status.
// An empty status keeps every row.
func FilterByStatus(deliveries []Delivery, status DeliveryStatus) []Delivery {
	out := make([]Delivery, 0, len(deliveries))
	for _, d := range deliveries {
		if status == "" || d.Status == status {
			out = append(out, d)
		}
	}
	return out
}
