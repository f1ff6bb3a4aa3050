package domain

import "fmt"

// ReportSummary holds the delivery report metrics and the rows listed
// under them.
type ReportSummary struct {
	Completed int
	Pending   int
	Details   []Delivery
}

func (r ReportSummary) Validate() error {
	if r.Completed < 0 || r.Pending < 0 {
		return fmt.Errorf("report: counters must not be negative (completed=%d pending=%d): %w",
			r.Completed, r.Pending, ErrInvalidArgument)
	}
	seen := make(map[int]struct{}, len(r.Details))
	for _, d := range r.Details {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("report: %w", err)
		}
		if _, ok := seen[d.ID]; ok {
			return fmt.Errorf("report: duplicate delivery id %d: %w", d.ID, ErrInvalidArgument)
		}
		seen[d.ID] = struct{}{}
	}
	return nil
}
