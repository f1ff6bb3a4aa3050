package tui

import (
	"context"
	"corvo-delivery/internal/adapters/auth"
	"corvo-delivery/internal/adapters/repositories"
	"corvo-delivery/internal/domain"
	"corvo-delivery/internal/services"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/crypto/bcrypt"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	verifier, err := auth.NewStaticVerifierWithCost("admin", "1234", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}
	d, err := services.NewDispatcher(repositories.NewMemoryRepository(domain.DefaultFixture()), verifier)
	if err != nil {
		t.Fatalf("new dispatcher: %v", err)
	}

	m := New(context.Background(), d, nil)
	return apply(t, m, m.Init())
}

// apply runs a render command and feeds its result back into the model.
func apply(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a render command")
	}
	msg, ok := cmd().(renderedMsg)
	if !ok {
		t.Fatal("command did not produce a render result")
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

// press sends a key that triggers a render pass.
func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	return apply(t, next.(Model), cmd)
}

// key sends a key that only changes local state (focus, typing).
func key(m Model, msg tea.KeyMsg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func typeText(m Model, s string) Model {
	return key(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestInitialRender(t *testing.T) {
	m := newTestModel(t)

	if m.page == nil {
		t.Fatal("expected a page after Init")
	}
	if m.page.Admin != nil || m.page.Delivery != nil || m.page.Reports != nil {
		t.Fatal("no panel should be selected initially")
	}
	if len(m.controls) != 3 {
		t.Fatalf("login form should have 3 controls, got %d", len(m.controls))
	}

	view := m.View()
	for _, want := range []string{domain.TitleText, domain.AdminNavLabel, domain.LoginButtonLabel} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestFunctionKeysSelectOnePanel(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyF1})
	if m.page.Admin == nil {
		t.Fatal("F1 should show the admin panel")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyF2})
	if m.page.Delivery == nil {
		t.Fatal("F2 should show the delivery panel")
	}
	if m.page.Admin != nil {
		t.Fatal("last selection wins: admin should be hidden after F2")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyF3})
	if m.page.Reports == nil || m.page.Reports.Summary.Completed != 5 {
		t.Fatalf("F3 should show the reports panel, got %+v", m.page.Reports)
	}
	if !strings.Contains(m.View(), domain.ReportsHeading) {
		t.Error("view missing reports heading")
	}
}

func TestAuthToggle(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyF4})
	if m.state.Auth != domain.AuthRegister {
		t.Fatalf("auth = %q, want register", m.state.Auth)
	}
	if len(m.controls) != 4 {
		t.Fatalf("register form should have 4 controls, got %d", len(m.controls))
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyF4})
	if m.state.Auth != domain.AuthLogin {
		t.Fatalf("auth = %q, want login", m.state.Auth)
	}
}

func TestStatusFilterCycle(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyF2})

	want := []domain.DeliveryStatus{domain.StatusPending, domain.StatusCompleted, domain.StatusPaused, ""}
	for _, w := range want {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyF5})
		if m.state.StatusFilter != w {
			t.Fatalf("filter = %q, want %q", m.state.StatusFilter, w)
		}
	}
}

func TestLoginFlow(t *testing.T) {
	m := newTestModel(t)

	m = typeText(m, "admin")
	m = key(m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(m, "1234")
	m = key(m, tea.KeyMsg{Type: tea.KeyTab})

	if c, ok := m.focused(); !ok || c.action != domain.ActionLogin {
		t.Fatalf("focus should be on the login button, got %+v", c)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	notices := m.page.Auth.Notices
	if len(notices) != 1 || notices[0].Level != domain.NoticeSuccess {
		t.Fatalf("login notices = %+v", notices)
	}
	if !strings.Contains(m.View(), "Bem-vindo(a), admin.") {
		t.Error("view missing login greeting")
	}
}

func TestRegisterMismatch(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyF4})

	m = typeText(m, "bia")
	m = key(m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(m, "a")
	m = key(m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(m, "b")
	m = key(m, tea.KeyMsg{Type: tea.KeyTab})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.page.Auth.Notices) != 1 || m.page.Auth.Notices[0].Text != services.MsgPasswordMismatch {
		t.Fatalf("register notices = %+v", m.page.Auth.Notices)
	}
}

func TestRemoveCourierIsDisplayOnly(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyF1})

	// name, contact, add, then "Remover João".
	for range 3 {
		m = key(m, tea.KeyMsg{Type: tea.KeyTab})
	}
	if c, ok := m.focused(); !ok || c.courier != "João" {
		t.Fatalf("focus should be on the first remove button, got %+v", c)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.page.Admin.Notices) != 1 || m.page.Admin.Notices[0].Text != "Entregador João removido." {
		t.Fatalf("admin notices = %+v", m.page.Admin.Notices)
	}
	if len(m.page.Admin.Couriers) != 2 {
		t.Fatalf("couriers = %+v, want both still listed", m.page.Admin.Couriers)
	}
}

func TestShiftTabWraps(t *testing.T) {
	m := newTestModel(t)

	m = key(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != len(m.controls)-1 {
		t.Fatalf("focus = %d, want last control %d", m.focus, len(m.controls)-1)
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("ctrl+c should quit")
	}
}

type failingRenderer struct{}

func (failingRenderer) Render(context.Context, domain.ViewState, *domain.Event) (*domain.Page, error) {
	return nil, errors.New("storage down")
}

func TestRenderErrorIsShown(t *testing.T) {
	m := New(context.Background(), failingRenderer{}, nil)
	m = apply(t, m, m.Init())

	if m.err == nil {
		t.Fatal("expected render error to be kept")
	}
	if !strings.Contains(m.View(), "storage down") {
		t.Error("view should show the render error")
	}
}
