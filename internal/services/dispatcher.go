package services

import (
	"context"
	"corvo-delivery/internal/domain"
	"corvo-delivery/internal/platform/obs"
	"corvo-delivery/internal/ports"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Dispatcher turns a view state and an optional interaction into a page.
//
// Render only reads from the repository. Actions on couriers and deliveries
// are acknowledged with a notice and never change the data, so the next
// pass shows the same lists.
type Dispatcher struct {
	Repo     ports.FixtureRepository
	Verifier ports.CredentialVerifier
}

func NewDispatcher(repo ports.FixtureRepository, verifier ports.CredentialVerifier) (*Dispatcher, error) {
	if repo == nil {
		return nil, errors.New("new dispatcher: repository is nil")
	}
	if verifier == nil {
		return nil, errors.New("new dispatcher: credential verifier is nil")
	}
	return &Dispatcher{Repo: repo, Verifier: verifier}, nil
}

// Render executes one render pass. ev may be nil.
//
// An event that belongs to a panel forces that panel on for the pass, and
// an auth event selects its form.
func (d *Dispatcher) Render(ctx context.Context, state domain.ViewState, ev *domain.Event) (_ *domain.Page, err error) {
	defer obs.Time(ctx, "dispatcher.Render")(&err)

	if err := state.Validate(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	state = state.Normalize()

	if ev != nil {
		if err := ev.Validate(); err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		if p, ok := ev.Action.Panel(); ok {
			state.Panels = state.Panels.With(p)
		}
		if m, ok := ev.Action.AuthMode(); ok {
			state.Auth = m
		}
	}

	page := &domain.Page{
		Title: domain.TitleText,
		Intro: domain.IntroText,
		State: state,
		Auth:  domain.AuthPanel{Mode: state.Auth},
	}

	for _, p := range state.Panels.Panels() {
		var err error
		switch p {
		case domain.PanelAdmin:
			page.Admin, err = d.renderAdmin(ctx, ev)
		case domain.PanelDelivery:
			page.Delivery, err = d.renderDelivery(ctx, state.StatusFilter, ev)
		case domain.PanelReports:
			page.Reports, err = d.renderReports(ctx)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s panel: %w", p, err)
		}
	}

	if ev != nil {
		switch ev.Action {
		case domain.ActionLogin:
			notices, err := Login(ctx, d.Verifier, ev.Login)
			if err != nil {
				return nil, fmt.Errorf("render: %w", err)
			}
			page.Auth.Notices = notices
		case domain.ActionRegister:
			page.Auth.Notices = Register(ev.Registration)
		}
	}

	return page, nil
}

func (d *Dispatcher) renderAdmin(ctx context.Context, ev *domain.Event) (*domain.AdminPanel, error) {
	couriers, err := d.Repo.ListCouriers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list couriers: %w", err)
	}

	panel := &domain.AdminPanel{Couriers: couriers}
	if ev == nil {
		return panel, nil
	}

	switch ev.Action {
	case domain.ActionAddCourier:
		panel.Notices = append(panel.Notices, courierAdded(strings.TrimSpace(ev.Courier.Name)))
	case domain.ActionRemoveCourier:
		exists := slices.ContainsFunc(couriers, func(c domain.Courier) bool { return c.Name == ev.Courier.Name })
		if !exists {
			return nil, fmt.Errorf("remove courier %q: %w", ev.Courier.Name, domain.ErrNotFound)
		}
		panel.Notices = append(panel.Notices, courierRemoved(ev.Courier.Name))
	}
	return panel, nil
}

func (d *Dispatcher) renderDelivery(ctx context.Context, filter domain.DeliveryStatus, ev *domain.Event) (*domain.DeliveryPanel, error) {
	deliveries, err := d.Repo.ListDeliveries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}

	panel := &domain.DeliveryPanel{
		Deliveries: domain.FilterByStatus(deliveries, filter),
		Filter:     filter,
	}
	if ev == nil {
		return panel, nil
	}

	switch ev.Action {
	case domain.ActionCompleteDelivery, domain.ActionPauseDelivery:
		exists := slices.ContainsFunc(deliveries, func(x domain.Delivery) bool { return x.ID == ev.DeliveryID })
		if !exists {
			return nil, fmt.Errorf("%s %d: %w", ev.Action, ev.DeliveryID, domain.ErrNotFound)
		}
		if ev.Action == domain.ActionCompleteDelivery {
			panel.Notices = append(panel.Notices, deliveryCompleted(ev.DeliveryID))
		} else {
			panel.Notices = append(panel.Notices, deliveryPaused(ev.DeliveryID))
		}
	}
	return panel, nil
}

func (d *Dispatcher) renderReports(ctx context.Context) (*domain.ReportsPanel, error) {
	summary, err := d.Repo.ReportSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("report summary: %w", err)
	}
	return &domain.ReportsPanel{Summary: summary}, nil
}
