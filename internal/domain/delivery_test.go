package domain

import (
	"errors"
	"testing"
)

func TestParseDeliveryStatus(t *testing.T) {
	tests := []struct {
		in   string
		want DeliveryStatus
	}{
		{"pending", StatusPending},
		{"Concluída", StatusCompleted},
		{"PAUSADA", StatusPaused},
		{" completed ", StatusCompleted},
	}
	for _, tt := range tests {
		got, err := ParseDeliveryStatus(tt.in)
		if err != nil {
			t.Fatalf("ParseDeliveryStatus(%q): unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseDeliveryStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDeliveryStatus("lost"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestStatusLabels(t *testing.T) {
	if got := StatusPending.Label(); got != "Pendente" {
		t.Fatalf("pending label = %q", got)
	}
	if got := StatusCompleted.Label(); got != "Concluída" {
		t.Fatalf("completed label = %q", got)
	}
	if got := StatusPaused.Label(); got != "Pausada" {
		t.Fatalf("paused label = %q", got)
	}
}

func TestFilterByStatus(t *testing.T) {
	all := []Delivery{
		{ID: 1, Customer: "A", Status: StatusPending},
		{ID: 2, Customer: "B", Status: StatusPaused},
		{ID: 3, Customer: "C", Status: StatusPending},
	}

	if got := FilterByStatus(all, ""); len(got) != 3 {
		t.Fatalf("empty filter kept %d rows, want 3", len(got))
	}

	got := FilterByStatus(all, StatusPending)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("pending filter = %+v", got)
	}

	if got := FilterByStatus(all, StatusCompleted); len(got) != 0 {
		t.Fatalf("completed filter = %+v, want none", got)
	}
}

func TestDeliveryLines(t *testing.T) {
	d := Delivery{ID: 1, Customer: "Cliente X", Status: StatusPending}

	if got, want := DeliveryLine(d), "Entrega ID: 1 para Cliente X - Pendente"; got != want {
		t.Fatalf("DeliveryLine = %q, want %q", got, want)
	}
	if got, want := ReportLine(d), "ID: 1 | Cliente: Cliente X | Status: Pendente"; got != want {
		t.Fatalf("ReportLine = %q, want %q", got, want)
	}
	if got, want := CourierLine(Courier{Name: "João", Contact: "12345"}), "- João (12345)"; got != want {
		t.Fatalf("CourierLine = %q, want %q", got, want)
	}
}
