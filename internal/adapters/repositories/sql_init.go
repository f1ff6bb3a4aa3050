package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Dialect selects placeholder syntax for the SQL repository.
type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

// DialectFor maps a database/sql driver name to its dialect.
func DialectFor(driver string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "sqlite", "sqlite3":
		return DialectSQLite, nil
	case "pgx", "postgres", "postgresql":
		return DialectPostgres, nil
	}
	return 0, fmt.Errorf("dialect: unsupported driver %q", driver)
}

// rebind rewrites "?" placeholders as "$n" for PostgreSQL.
// Queries in this package never contain a literal "?".
func (d Dialect) rebind(q string) string {
	if d != DialectPostgres {
		return q
	}

	var b strings.Builder
	b.Grow(len(q) + 8)
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Initialize the database schema. The statements are valid for both
// SQLite and PostgreSQL.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createCouriersQuery := `
	CREATE TABLE IF NOT EXISTS couriers (
		name TEXT PRIMARY KEY,
		contact TEXT NOT NULL,
		position INTEGER NOT NULL
	);
	`

	createDeliveriesQuery := `
	CREATE TABLE IF NOT EXISTS deliveries (
		board TEXT NOT NULL,
		delivery_id INTEGER NOT NULL,
		customer TEXT NOT NULL,
		status TEXT NOT NULL,
		PRIMARY KEY (board, delivery_id)
	);
	`

	createReportCountersQuery := `
	CREATE TABLE IF NOT EXISTS report_counters (
		name TEXT PRIMARY KEY,
		value INTEGER NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_couriers_position
	ON couriers(position);
	`

	statements := []string{
		createCouriersQuery,
		createDeliveriesQuery,
		createReportCountersQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
