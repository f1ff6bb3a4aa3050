package repositories

import "testing"

func TestDialectRebind(t *testing.T) {
	q := `UPDATE deliveries SET status = ? WHERE board = ? AND delivery_id = ?;`

	if got := DialectSQLite.rebind(q); got != q {
		t.Fatalf("sqlite rebind changed query: %q", got)
	}

	want := `UPDATE deliveries SET status = $1 WHERE board = $2 AND delivery_id = $3;`
	if got := DialectPostgres.rebind(q); got != want {
		t.Fatalf("postgres rebind = %q, want %q", got, want)
	}
}

func TestDialectFor(t *testing.T) {
	tests := []struct {
		driver string
		want   Dialect
	}{
		{"sqlite", DialectSQLite},
		{"pgx", DialectPostgres},
		{"Postgres", DialectPostgres},
	}
	for _, tt := range tests {
		got, err := DialectFor(tt.driver)
		if err != nil {
			t.Fatalf("DialectFor(%q): unexpected error: %v", tt.driver, err)
		}
		if got != tt.want {
			t.Fatalf("DialectFor(%q) = %v, want %v", tt.driver, got, tt.want)
		}
	}

	if _, err := DialectFor("mysql"); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}
