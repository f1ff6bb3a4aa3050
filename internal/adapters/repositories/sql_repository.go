package repositories

import (
	"context"
	"corvo-delivery/internal/domain"
	"corvo-delivery/internal/platform/obs"
	"database/sql"
	"errors"
	"fmt"
)

const (
	boardDispatch = "dispatch"
	boardReport   = "report"

	counterCompleted = "completed"
	counterPending   = "pending"
)

// SQL-backed implementation of the FixtureRepository port.
// It works over SQLite and PostgreSQL; see Dialect.
type SQLRepository struct {
	DB      *sql.DB
	dialect Dialect
}

func NewSQLRepository(db *sql.DB, dialect Dialect) *SQLRepository {
	return &SQLRepository{DB: db, dialect: dialect}
}

func (s *SQLRepository) ListCouriers(ctx context.Context) (_ []domain.Courier, err error) {
	defer obs.Time(ctx, "repo.ListCouriers")(&err)

	if s.DB == nil {
		return nil, errors.New("sql repository: DB is nil")
	}

	query := `
	SELECT
		name,
		contact
	FROM couriers
	ORDER BY position, name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list couriers: query couriers table: %w", err)
	}
	defer rows.Close()

	couriers := make([]domain.Courier, 0, 8)
	for rows.Next() {
		var c domain.Courier
		if err := rows.Scan(&c.Name, &c.Contact); err != nil {
			return nil, fmt.Errorf("list couriers: scan row: %w", err)
		}
		couriers = append(couriers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list couriers: row iteration: %w", err)
	}

	return couriers, nil
}

func (s *SQLRepository) AddCourier(ctx context.Context, c domain.Courier) (err error) {
	defer obs.Time(ctx, "repo.AddCourier")(&err)

	if s.DB == nil {
		return errors.New("sql repository: DB is nil")
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("add courier: %w", err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("add courier: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	err = tx.QueryRowContext(ctx, s.dialect.rebind(`SELECT COUNT(*) FROM couriers WHERE name = ?;`), c.Name).Scan(&exists)
	if err != nil {
		return fmt.Errorf("add courier %q: check existing: %w", c.Name, err)
	}
	if exists > 0 {
		return fmt.Errorf("add courier %q: %w", c.Name, domain.ErrConflict)
	}

	query := s.dialect.rebind(`
	INSERT INTO couriers (name, contact, position)
	SELECT CAST(? AS TEXT), CAST(? AS TEXT), COALESCE(MAX(position), 0) + 1
	FROM couriers;
	`)
	if _, err := tx.ExecContext(ctx, query, c.Name, c.Contact); err != nil {
		return fmt.Errorf("add courier %q: insert: %w", c.Name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("add courier %q: commit: %w", c.Name, err)
	}
	return nil
}

func (s *SQLRepository) RemoveCourier(ctx context.Context, name string) (err error) {
	defer obs.Time(ctx, "repo.RemoveCourier")(&err)

	if s.DB == nil {
		return errors.New("sql repository: DB is nil")
	}

	res, err := s.DB.ExecContext(ctx, s.dialect.rebind(`DELETE FROM couriers WHERE name = ?;`), name)
	if err != nil {
		return fmt.Errorf("remove courier %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove courier %q: rows affected: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("remove courier %q: %w", name, domain.ErrNotFound)
	}
	return nil
}

func (s *SQLRepository) ListDeliveries(ctx context.Context) (_ []domain.Delivery, err error) {
	defer obs.Time(ctx, "repo.ListDeliveries")(&err)

	if s.DB == nil {
		return nil, errors.New("sql repository: DB is nil")
	}

	deliveries, err := s.listBoard(ctx, boardDispatch)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	return deliveries, nil
}

func (s *SQLRepository) UpdateDeliveryStatus(ctx context.Context, id int, status domain.DeliveryStatus) (err error) {
	defer obs.Time(ctx, "repo.UpdateDeliveryStatus")(&err)

	if s.DB == nil {
		return errors.New("sql repository: DB is nil")
	}
	if !status.Valid() {
		return fmt.Errorf("update delivery %d: unknown status %q: %w", id, status, domain.ErrInvalidArgument)
	}

	query := s.dialect.rebind(`
	UPDATE deliveries
	SET status = ?
	WHERE board = ?
		AND delivery_id = ?;
	`)
	res, err := s.DB.ExecContext(ctx, query, string(status), boardDispatch, id)
	if err != nil {
		return fmt.Errorf("update delivery %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update delivery %d: rows affected: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("update delivery %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (s *SQLRepository) ReportSummary(ctx context.Context) (_ domain.ReportSummary, err error) {
	defer obs.Time(ctx, "repo.ReportSummary")(&err)

	if s.DB == nil {
		return domain.ReportSummary{}, errors.New("sql repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT name, value FROM report_counters;`)
	if err != nil {
		return domain.ReportSummary{}, fmt.Errorf("report summary: query report_counters table: %w", err)
	}
	defer rows.Close()

	var summary domain.ReportSummary
	for rows.Next() {
		var name string
		var value int
		if err := rows.Scan(&name, &value); err != nil {
			return domain.ReportSummary{}, fmt.Errorf("report summary: scan row: %w", err)
		}
		switch name {
		case counterCompleted:
			summary.Completed = value
		case counterPending:
			summary.Pending = value
		}
	}
	if err := rows.Err(); err != nil {
		return domain.ReportSummary{}, fmt.Errorf("report summary: row iteration: %w", err)
	}

	summary.Details, err = s.listBoard(ctx, boardReport)
	if err != nil {
		return domain.ReportSummary{}, fmt.Errorf("report summary: %w", err)
	}

	return summary, nil
}

// Replace every table's contents with the fixture in one transaction.
func (s *SQLRepository) Seed(ctx context.Context, f domain.Fixture) (err error) {
	defer obs.Time(ctx, "repo.Seed")(&err)

	if s.DB == nil {
		return errors.New("sql repository: DB is nil")
	}
	if err := f.Validate(); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"couriers", "deliveries", "report_counters"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+";"); err != nil {
			return fmt.Errorf("seed: clear %s: %w", table, err)
		}
	}

	courierStmt, err := tx.PrepareContext(ctx, s.dialect.rebind(`
	INSERT INTO couriers (
		name,
		contact,
		position
	)
	VALUES (?, ?, ?);
	`))
	if err != nil {
		return fmt.Errorf("seed: prepare courier insert: %w", err)
	}
	defer courierStmt.Close()

	for i, c := range f.Couriers {
		if _, err := courierStmt.ExecContext(ctx, c.Name, c.Contact, i+1); err != nil {
			return fmt.Errorf("seed: insert courier %q: %w", c.Name, err)
		}
	}

	deliveryStmt, err := tx.PrepareContext(ctx, s.dialect.rebind(`
	INSERT INTO deliveries (
		board,
		delivery_id,
		customer,
		status
	)
	VALUES (?, ?, ?, ?);
	`))
	if err != nil {
		return fmt.Errorf("seed: prepare delivery insert: %w", err)
	}
	defer deliveryStmt.Close()

	boards := []struct {
		name string
		rows []domain.Delivery
	}{
		{boardDispatch, f.Deliveries},
		{boardReport, f.Report.Details},
	}
	for _, b := range boards {
		for _, d := range b.rows {
			if _, err := deliveryStmt.ExecContext(ctx, b.name, d.ID, d.Customer, string(d.Status)); err != nil {
				return fmt.Errorf("seed: insert %s delivery_id=%d: %w", b.name, d.ID, err)
			}
		}
	}

	counters := map[string]int{
		counterCompleted: f.Report.Completed,
		counterPending:   f.Report.Pending,
	}
	for name, value := range counters {
		q := s.dialect.rebind(`INSERT INTO report_counters (name, value) VALUES (?, ?);`)
		if _, err := tx.ExecContext(ctx, q, name, value); err != nil {
			return fmt.Errorf("seed: insert counter %s: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: commit tx: %w", err)
	}
	return nil
}

func (s *SQLRepository) listBoard(ctx context.Context, board string) ([]domain.Delivery, error) {
	query := s.dialect.rebind(`
	SELECT
		delivery_id,
		customer,
		status
	FROM deliveries
	WHERE board = ?
	ORDER BY delivery_id;
	`)
	rows, err := s.DB.QueryContext(ctx, query, board)
	if err != nil {
		return nil, fmt.Errorf("query %s board: %w", board, err)
	}
	defer rows.Close()

	out := make([]domain.Delivery, 0, 8)
	for rows.Next() {
		var d domain.Delivery
		var status string
		if err := rows.Scan(&d.ID, &d.Customer, &status); err != nil {
			return nil, fmt.Errorf("scan %s board row: %w", board, err)
		}
		d.Status = domain.DeliveryStatus(status)
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s board row iteration: %w", board, err)
	}
	return out, nil
}

// Report whether no fixture data has been stored yet.
func (s *SQLRepository) Empty(ctx context.Context) (_ bool, err error) {
	defer obs.Time(ctx, "repo.Empty")(&err)

	if s.DB == nil {
		return false, errors.New("sql repository: DB is nil")
	}

	query := `
	SELECT
		(SELECT COUNT(*) FROM couriers) +
		(SELECT COUNT(*) FROM deliveries) +
		(SELECT COUNT(*) FROM report_counters);
	`
	var n int64
	if err := s.DB.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return false, fmt.Errorf("check empty: %w", err)
	}
	return n == 0, nil
}
