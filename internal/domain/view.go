package domain

import (
	"fmt"
	"strings"
)

// Panel is a sidebar entry.
type Panel uint8

const (
	PanelAdmin Panel = 1 << iota
	PanelDelivery
	PanelReports
)

// panelOrder is the order panels render in when several are selected.
var panelOrder = []Panel{PanelAdmin, PanelDelivery, PanelReports}

func (p Panel) String() string {
	switch p {
	case PanelAdmin:
		return "admin"
	case PanelDelivery:
		return "delivery"
	case PanelReports:
		return "reports"
	}
	return fmt.Sprintf("panel(%d)", uint8(p))
}

func ParsePanel(s string) (Panel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return PanelAdmin, nil
	case "delivery", "deliveries":
		return PanelDelivery, nil
	case "reports", "report":
		return PanelReports, nil
	}
	return 0, fmt.Errorf("unknown panel %q: %w", s, ErrInvalidArgument)
}

// PanelSet is the set of active sidebar entries. Entries are independent
// buttons, so more than one can be active in a single pass.
type PanelSet uint8

func NewPanelSet(panels ...Panel) PanelSet {
	var s PanelSet
	for _, p := range panels {
		s = s.With(p)
	}
	return s
}

func (s PanelSet) Has(p Panel) bool { return s&PanelSet(p) != 0 }

func (s PanelSet) With(p Panel) PanelSet { return s | PanelSet(p) }

func (s PanelSet) Empty() bool { return s == 0 }

// Panels lists the members in render order.
func (s PanelSet) Panels() []Panel {
	out := make([]Panel, 0, len(panelOrder))
	for _, p := range panelOrder {
		if s.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

// AuthMode is the choice of the login/registration selector.
type AuthMode string

const (
	AuthLogin    AuthMode = "login"
	AuthRegister AuthMode = "register"
)

// ParseAuthMode defaults an empty selection to login.
func ParseAuthMode(s string) (AuthMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "login":
		return AuthLogin, nil
	case "register":
		return AuthRegister, nil
	}
	return "", fmt.Errorf("unknown auth mode %q: %w", s, ErrInvalidArgument)
}

// ViewState is the navigation selection of one render pass.
type ViewState struct {
	Panels PanelSet
	Auth   AuthMode
	// StatusFilter restricts the delivery panel rows. Empty keeps all rows.
	StatusFilter DeliveryStatus
}

func (v ViewState) Validate() error {
	if v.Panels&^NewPanelSet(panelOrder...) != 0 {
		return fmt.Errorf("view state: unknown panel bits %08b: %w", uint8(v.Panels), ErrInvalidArgument)
	}
	if v.Auth != "" && v.Auth != AuthLogin && v.Auth != AuthRegister {
		return fmt.Errorf("view state: unknown auth mode %q: %w", v.Auth, ErrInvalidArgument)
	}
	if v.StatusFilter != "" && !v.StatusFilter.Valid() {
		return fmt.Errorf("view state: unknown status filter %q: %w", v.StatusFilter, ErrInvalidArgument)
	}
	return nil
}

// Normalize fills defaults.
func (v ViewState) Normalize() ViewState {
	if v.Auth == "" {
		v.Auth = AuthLogin
	}
	return v
}
