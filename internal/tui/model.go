package tui

import (
	"context"
	"corvo-delivery/internal/domain"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Renderer executes one render pass. *services.Dispatcher satisfies it.
type Renderer interface {
	Render(ctx context.Context, state domain.ViewState, ev *domain.Event) (*domain.Page, error)
}

// renderedMsg carries the result of a render pass back into Update.
type renderedMsg struct {
	page *domain.Page
	err  error
}

var statusCycle = []domain.DeliveryStatus{"", domain.StatusPending, domain.StatusCompleted, domain.StatusPaused}

// Model is the Bubble Tea model of the terminal front end.
type Model struct {
	ctx      context.Context
	renderer Renderer
	logger   *zap.Logger
	styles   Styles

	state    domain.ViewState
	page     *domain.Page
	err      error
	controls []control
	focus    int
	inputs   [fieldCount]textinput.Model

	width  int
	height int
}

func New(ctx context.Context, r Renderer, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Model{
		ctx:      ctx,
		renderer: r,
		logger:   logger,
		styles:   DefaultStyles(),
		state:    domain.ViewState{Auth: domain.AuthLogin},
		inputs:   newInputs(),
	}
}

// Init runs the first render pass with no panel selected.
func (m Model) Init() tea.Cmd {
	return m.render(m.state, nil)
}

func (m Model) render(state domain.ViewState, ev *domain.Event) tea.Cmd {
	ctx, r := m.ctx, m.renderer
	return func() tea.Msg {
		page, err := r.Render(ctx, state, ev)
		return renderedMsg{page: page, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case renderedMsg:
		if msg.err != nil {
			m.logger.Warn("render failed", zap.Error(msg.err))
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.page = msg.page
		m.state = msg.page.State
		m.controls = buildControls(msg.page)
		cmd := m.setFocus(min(m.focus, max(len(m.controls)-1, 0)))
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocusedInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "f1", "f2", "f3":
		p := map[string]domain.Panel{"f1": domain.PanelAdmin, "f2": domain.PanelDelivery, "f3": domain.PanelReports}[msg.String()]
		next := m.state
		next.Panels = domain.NewPanelSet(p)
		return m, m.render(next, nil)

	case "f4":
		next := m.state
		if next.Auth == domain.AuthRegister {
			next.Auth = domain.AuthLogin
		} else {
			next.Auth = domain.AuthRegister
		}
		return m, m.render(next, nil)

	case "f5":
		next := m.state
		next.StatusFilter = nextStatus(next.StatusFilter)
		return m, m.render(next, nil)

	case "tab", "down":
		cmd := m.setFocus(m.focus + 1)
		return m, cmd

	case "shift+tab", "up":
		cmd := m.setFocus(m.focus - 1)
		return m, cmd

	case "enter":
		c, ok := m.focused()
		if !ok {
			return m, nil
		}
		if c.input {
			cmd := m.setFocus(m.focus + 1)
			return m, cmd
		}
		ev := c.event(&m.inputs)
		m.logger.Debug("button pressed", zap.String("action", string(ev.Action)))
		return m, m.render(m.state, &ev)
	}

	return m.updateFocusedInput(msg)
}

func nextStatus(s domain.DeliveryStatus) domain.DeliveryStatus {
	for i, x := range statusCycle {
		if x == s {
			return statusCycle[(i+1)%len(statusCycle)]
		}
	}
	return ""
}

func (m Model) focused() (control, bool) {
	if m.focus < 0 || m.focus >= len(m.controls) {
		return control{}, false
	}
	return m.controls[m.focus], true
}

// setFocus moves focus to index i, wrapping around, and focuses the
// matching text input.
func (m *Model) setFocus(i int) tea.Cmd {
	n := len(m.controls)
	if n == 0 {
		m.focus = 0
		return nil
	}
	m.focus = ((i % n) + n) % n

	var cmd tea.Cmd
	for f := range fieldCount {
		m.inputs[f].Blur()
	}
	if c := m.controls[m.focus]; c.input {
		cmd = m.inputs[c.field].Focus()
	}
	return cmd
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	c, ok := m.focused()
	if !ok || !c.input {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[c.field], cmd = m.inputs[c.field].Update(msg)
	return m, cmd
}

func (m Model) View() string {
	s := m.styles
	sidebar := s.Sidebar.Render(m.viewSidebar())

	content := m.viewContent()
	if m.width > 0 {
		w := max(m.width-lipgloss.Width(sidebar)-4, 20)
		content = s.Content.Width(w).Render(content)
	} else {
		content = s.Content.Render(content)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
}

func (m Model) viewSidebar() string {
	s := m.styles
	var b strings.Builder
	for i, p := range []domain.Panel{domain.PanelAdmin, domain.PanelDelivery, domain.PanelReports} {
		style := s.NavItem
		if m.state.Panels.Has(p) {
			style = s.NavOn
		}
		fmt.Fprintf(&b, "%s\n", style.Render(fmt.Sprintf("F%d %s", i+1, domain.NavLabel(p))))
	}

	b.WriteString("\n")
	b.WriteString(s.Label.Render(domain.AuthSelectorLabel + " (F4)"))
	b.WriteString("\n")
	for _, opt := range []struct {
		mode  domain.AuthMode
		label string
	}{
		{domain.AuthLogin, domain.LoginOptionLabel},
		{domain.AuthRegister, domain.RegisterOptionLabel},
	} {
		mark, style := "( )", s.NavItem
		if m.state.Auth == opt.mode {
			mark, style = "(•)", s.NavOn
		}
		b.WriteString(style.Render(mark+" "+opt.label) + "\n")
	}

	b.WriteString("\n")
	filter := "Todos"
	if m.state.StatusFilter != "" {
		filter = m.state.StatusFilter.Label()
	}
	b.WriteString(s.Label.Render("Status (F5): ") + filter)
	return b.String()
}

func (m Model) viewContent() string {
	s := m.styles
	var b strings.Builder

	if m.page == nil {
		if m.err != nil {
			b.WriteString(s.Error.Render(m.err.Error()))
		}
		return b.String()
	}
	page := m.page

	b.WriteString(s.Title.Render(page.Title) + "\n")
	b.WriteString(s.Body.Render(page.Intro) + "\n")

	// Control indexes follow buildControls order.
	idx := 0
	next := func() int { i := idx; idx++; return i }

	if a := page.Admin; a != nil {
		b.WriteString(s.Heading.Render(domain.AdminHeading) + "\n")
		b.WriteString(s.Sub.Render(domain.AddCourierHeading) + "\n")
		b.WriteString(m.viewInput(next()) + "\n")
		b.WriteString(m.viewInput(next()) + "\n")
		b.WriteString(m.viewButton(next()) + "\n")
		b.WriteString(m.viewNotices(a.Notices))
		b.WriteString(s.Sub.Render(domain.CourierListHeading) + "\n")
		for _, c := range a.Couriers {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, domain.CourierLine(c)+"  ", m.viewButton(next())) + "\n")
		}
	}

	if d := page.Delivery; d != nil {
		b.WriteString(s.Heading.Render(domain.DeliveryHeading) + "\n")
		b.WriteString(s.Sub.Render(domain.PendingHeading) + "\n")
		b.WriteString(m.viewNotices(d.Notices))
		for _, x := range d.Deliveries {
			b.WriteString(domain.DeliveryLine(x) + "\n")
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.viewButton(next()), " ", m.viewButton(next())) + "\n")
		}
	}

	if r := page.Reports; r != nil {
		b.WriteString(s.Heading.Render(domain.ReportsHeading) + "\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			s.Metric.Render(fmt.Sprintf("%s: %d", domain.CompletedMetric, r.Summary.Completed)),
			s.Metric.Render(fmt.Sprintf("%s: %d", domain.PendingMetric, r.Summary.Pending)),
		) + "\n")
		b.WriteString(s.Sub.Render(domain.ReportDetailHead) + "\n")
		for _, x := range r.Summary.Details {
			b.WriteString(domain.ReportLine(x) + "\n")
		}
	}

	b.WriteString("\n")
	for idx < len(m.controls) {
		i := next()
		if m.controls[i].input {
			b.WriteString(m.viewInput(i) + "\n")
		} else {
			b.WriteString(m.viewButton(i) + "\n")
		}
	}
	b.WriteString(m.viewNotices(page.Auth.Notices))

	if m.err != nil {
		b.WriteString(s.Error.Render("erro: "+m.err.Error()) + "\n")
	}
	b.WriteString(s.Footer.Render("F1-F3 painéis · F4 login/registro · F5 status · Tab foco · Enter confirmar · Ctrl+C sair"))
	return b.String()
}

func (m Model) viewInput(i int) string {
	if i >= len(m.controls) {
		return ""
	}
	f := m.controls[i].field
	return m.styles.Label.Render(fieldLabels[f]) + "\n" + m.inputs[f].View()
}

func (m Model) viewButton(i int) string {
	if i >= len(m.controls) {
		return ""
	}
	style := m.styles.Button
	if i == m.focus {
		style = m.styles.ButtonOn
	}
	return style.Render(m.controls[i].label)
}

func (m Model) viewNotices(notices []domain.Notice) string {
	var b strings.Builder
	for _, n := range notices {
		style := m.styles.Info
		switch n.Level {
		case domain.NoticeSuccess:
			style = m.styles.Success
		case domain.NoticeError:
			style = m.styles.Error
		}
		b.WriteString(style.Render(n.Text) + "\n")
	}
	return b.String()
}
