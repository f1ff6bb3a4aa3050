package handlers

import (
	"corvo-delivery/internal/api/dto"
	"corvo-delivery/internal/domain"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// parseViewState builds a view state from the wire representation shared
// by query strings, form posts and JSON bodies.
func parseViewState(panels []string, auth, status string) (domain.ViewState, error) {
	var state domain.ViewState

	for _, raw := range panels {
		// Accept both repeated and comma separated values.
		for _, name := range strings.Split(raw, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}
			p, err := domain.ParsePanel(name)
			if err != nil {
				return domain.ViewState{}, err
			}
			state.Panels = state.Panels.With(p)
		}
	}

	mode, err := domain.ParseAuthMode(auth)
	if err != nil {
		return domain.ViewState{}, err
	}
	state.Auth = mode

	if s := strings.TrimSpace(status); s != "" && s != "all" {
		st, err := domain.ParseDeliveryStatus(s)
		if err != nil {
			return domain.ViewState{}, err
		}
		state.StatusFilter = st
	}

	return state, nil
}

func viewStateToDTO(v domain.ViewState) dto.ViewState {
	out := dto.ViewState{
		Panels: make([]string, 0, 3),
		Auth:   string(v.Auth),
		Status: string(v.StatusFilter),
	}
	for _, p := range v.Panels.Panels() {
		out.Panels = append(out.Panels, p.String())
	}
	return out
}

func eventFromRequest(req dto.EventRequest) (domain.Event, error) {
	action, err := domain.ParseAction(req.Action)
	if err != nil {
		return domain.Event{}, err
	}

	return domain.Event{
		Action: action,
		Courier: domain.Courier{
			Name:    req.CourierName,
			Contact: req.CourierContact,
		},
		DeliveryID: req.DeliveryID,
		Login: domain.LoginCredentials{
			Username: req.Username,
			Password: req.Password,
		},
		Registration: domain.Registration{
			NewUsername:     req.NewUsername,
			NewPassword:     req.NewPassword,
			ConfirmPassword: req.ConfirmPassword,
		},
	}, nil
}

// eventFromForm reads an HTML form post. Field names follow the inputs in
// the page template.
func eventFromForm(r *http.Request) (domain.Event, error) {
	req := dto.EventRequest{
		Action:          r.PostForm.Get("action"),
		CourierName:     r.PostForm.Get("name"),
		CourierContact:  r.PostForm.Get("contact"),
		Username:        r.PostForm.Get("username"),
		Password:        r.PostForm.Get("password"),
		NewUsername:     r.PostForm.Get("new_username"),
		NewPassword:     r.PostForm.Get("new_password"),
		ConfirmPassword: r.PostForm.Get("confirm_password"),
	}
	// Remove buttons name the courier in a separate field.
	if c := r.PostForm.Get("courier"); c != "" {
		req.CourierName = c
	}

	if raw := strings.TrimSpace(r.PostForm.Get("delivery_id")); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return domain.Event{}, fmt.Errorf("delivery_id %q is not a number: %w", raw, domain.ErrInvalidArgument)
		}
		req.DeliveryID = id
	}

	return eventFromRequest(req)
}

func toNoticeResponses(notices []domain.Notice) []dto.NoticeResponse {
	out := make([]dto.NoticeResponse, 0, len(notices))
	for _, n := range notices {
		out = append(out, dto.NoticeResponse{Level: string(n.Level), Text: n.Text})
	}
	return out
}

func toDeliveryResponses(deliveries []domain.Delivery) []dto.DeliveryResponse {
	out := make([]dto.DeliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		out = append(out, dto.DeliveryResponse{
			ID:          d.ID,
			Customer:    d.Customer,
			Status:      string(d.Status),
			StatusLabel: d.Status.Label(),
		})
	}
	return out
}

func toPageResponse(page *domain.Page) dto.PageResponse {
	res := dto.PageResponse{
		Title: page.Title,
		Intro: page.Intro,
		View:  viewStateToDTO(page.State),
		Auth: dto.AuthPanelResponse{
			Mode:    string(page.Auth.Mode),
			Notices: toNoticeResponses(page.Auth.Notices),
		},
	}

	if a := page.Admin; a != nil {
		couriers := make([]dto.CourierResponse, 0, len(a.Couriers))
		for _, c := range a.Couriers {
			couriers = append(couriers, dto.CourierResponse{Name: c.Name, Contact: c.Contact})
		}
		res.Admin = &dto.AdminPanelResponse{
			Couriers: couriers,
			Notices:  toNoticeResponses(a.Notices),
		}
	}

	if d := page.Delivery; d != nil {
		res.Delivery = &dto.DeliveryPanelResponse{
			Deliveries: toDeliveryResponses(d.Deliveries),
			Filter:     string(d.Filter),
			Notices:    toNoticeResponses(d.Notices),
		}
	}

	if r := page.Reports; r != nil {
		res.Reports = &dto.ReportsPanelResponse{
			Completed: r.Summary.Completed,
			Pending:   r.Summary.Pending,
			Details:   toDeliveryResponses(r.Summary.Details),
		}
	}

	return res
}

// statusFor maps render errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
