package domain

import (
	"fmt"
	"slices"
)

// Fixture is the full data set behind the panels: the courier list, the
// delivery board and the report.
type Fixture struct {
	Couriers   []Courier
	Deliveries []Delivery
	Report     ReportSummary
}

// DefaultFixture returns the data the prototype ships with.
func DefaultFixture() Fixture {
	return Fixture{
		Couriers: []Courier{
			{Name: "João", Contact: "12345"},
			{Name: "Maria", Contact: "67890"},
		},
		Deliveries: []Delivery{
			{ID: 1, Customer: "Cliente X", Status: StatusPending},
			{ID: 2, Customer: "Cliente Y", Status: StatusPending},
		},
		Report: ReportSummary{
			Completed: 5,
			Pending:   3,
			Details: []Delivery{
				{ID: 1, Customer: "Cliente A", Status: StatusCompleted},
				{ID: 2, Customer: "Cliente B", Status: StatusPending},
			},
		},
	}
}

func (f Fixture) Validate() error {
	names := make(map[string]struct{}, len(f.Couriers))
	for i, c := range f.Couriers {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("fixture: courier at index %d: %w", i, err)
		}
		if _, ok := names[c.Name]; ok {
			return fmt.Errorf("fixture: duplicate courier %q: %w", c.Name, ErrInvalidArgument)
		}
		names[c.Name] = struct{}{}
	}

	ids := make(map[int]struct{}, len(f.Deliveries))
	for i, d := range f.Deliveries {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("fixture: delivery at index %d: %w", i, err)
		}
		if _, ok := ids[d.ID]; ok {
			return fmt.Errorf("fixture: duplicate delivery id %d: %w", d.ID, ErrInvalidArgument)
		}
		ids[d.ID] = struct{}{}
	}

	if err := f.Report.Validate(); err != nil {
		return fmt.Errorf("fixture: %w", err)
	}
	return nil
}

// Clone returns a deep copy so callers cannot alias the receiver's slices.
func (f Fixture) Clone() Fixture {
	return Fixture{
		Couriers:   slices.Clone(f.Couriers),
		Deliveries: slices.Clone(f.Deliveries),
		Report: ReportSummary{
			Completed: f.Report.Completed,
			Pending:   f.Report.Pending,
			Details:   slices.Clone(f.Report.Details),
		},
	}
}
