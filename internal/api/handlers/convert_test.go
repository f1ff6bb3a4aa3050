package handlers

import (
	"corvo-delivery/internal/domain"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestParseViewState(t *testing.T) {
	state, err := parseViewState([]string{"reports", "admin,delivery", ""}, "register", "Pendente")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := domain.ViewState{
		Panels:       domain.NewPanelSet(domain.PanelAdmin, domain.PanelDelivery, domain.PanelReports),
		Auth:         domain.AuthRegister,
		StatusFilter: domain.StatusPending,
	}
	if state != want {
		t.Fatalf("state = %+v, want %+v", state, want)
	}

	all, err := parseViewState(nil, "", "all")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if all.StatusFilter != "" || all.Auth != domain.AuthLogin || !all.Panels.Empty() {
		t.Fatalf("defaults = %+v", all)
	}

	for _, bad := range []struct {
		panels       []string
		auth, status string
	}{
		{[]string{"settings"}, "", ""},
		{nil, "sso", ""},
		{nil, "", "lost"},
	} {
		if _, err := parseViewState(bad.panels, bad.auth, bad.status); !errors.Is(err, domain.ErrInvalidArgument) {
			t.Fatalf("parseViewState(%v, %q, %q): expected ErrInvalidArgument, got %v", bad.panels, bad.auth, bad.status, err)
		}
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("render: %w", domain.ErrInvalidArgument), http.StatusBadRequest},
		{fmt.Errorf("render: %w", domain.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("render: %w", domain.ErrConflict), http.StatusConflict},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Fatalf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestViewStateToDTOOrder(t *testing.T) {
	got := viewStateToDTO(domain.ViewState{
		Panels: domain.NewPanelSet(domain.PanelReports, domain.PanelAdmin),
		Auth:   domain.AuthLogin,
	})
	if len(got.Panels) != 2 || got.Panels[0] != "admin" || got.Panels[1] != "reports" {
		t.Fatalf("panels = %v", got.Panels)
	}
}
