package handlers

import (
	"bytes"
	"corvo-delivery/internal/domain"
	"corvo-delivery/internal/platform/logging"
	"corvo-delivery/internal/services"
	"embed"
	"html/template"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("page.html").Funcs(template.FuncMap{
	"courierLine":    domain.CourierLine,
	"removeButton":   domain.RemoveCourierButton,
	"deliveryLine":   domain.DeliveryLine,
	"completeButton": domain.CompleteDeliveryButton,
	"pauseButton":    domain.PauseDeliveryButton,
	"reportLine":     domain.ReportLine,
}).ParseFS(templateFS, "templates/page.html"))

type navLink struct {
	Label  string
	Href   string
	Active bool
}

// formState is echoed into every form so a post keeps the navigation.
type formState struct {
	Panels []string
	Auth   string
	Status string
}

type pageData struct {
	Page          *domain.Page
	Nav           []navLink
	AuthOptions   []navLink
	StatusFilters []navLink
	State         formState
	L             labels
}

type labels struct {
	AdminHeading, AddCourierHeading, CourierListHeading        string
	CourierName, CourierContact, AddCourierButton              string
	DeliveryHeading, PendingHeading                            string
	ReportsHeading, CompletedMetric, PendingMetric, DetailHead string
	AuthSelector, Username, Password                           string
	NewUsername, NewPassword, ConfirmPassword                  string
	LoginButton, RegisterButton                                string
}

var pageLabels = labels{
	AdminHeading:       domain.AdminHeading,
	AddCourierHeading:  domain.AddCourierHeading,
	CourierListHeading: domain.CourierListHeading,
	CourierName:        domain.CourierNameLabel,
	CourierContact:     domain.CourierContactLbl,
	AddCourierButton:   domain.AddCourierButton,
	DeliveryHeading:    domain.DeliveryHeading,
	PendingHeading:     domain.PendingHeading,
	ReportsHeading:     domain.ReportsHeading,
	CompletedMetric:    domain.CompletedMetric,
	PendingMetric:      domain.PendingMetric,
	DetailHead:         domain.ReportDetailHead,
	AuthSelector:       domain.AuthSelectorLabel,
	Username:           domain.UsernameLabel,
	Password:           domain.PasswordLabel,
	NewUsername:        domain.NewUsernameLabel,
	NewPassword:        domain.NewPasswordLabel,
	ConfirmPassword:    domain.ConfirmPasswordLabel,
	LoginButton:        domain.LoginButtonLabel,
	RegisterButton:     domain.RegisterButtonLabel,
}

// PageHandler serves the HTML front end.
type PageHandler struct {
	Dispatcher *services.Dispatcher
}

// Serve renders the page on GET and handles form submissions on POST.
func (h *PageHandler) Serve(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	var (
		state domain.ViewState
		ev    *domain.Event
		err   error
	)

	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		state, err = parseViewState(q["panel"], q.Get("auth"), q.Get("status"))
	case http.MethodPost:
		if err = r.ParseForm(); err != nil {
			http.Error(w, "invalid form body", http.StatusBadRequest)
			return
		}
		state, err = parseViewState(r.PostForm["panel"], r.PostForm.Get("auth"), r.PostForm.Get("status"))
		if err == nil {
			var e domain.Event
			e, err = eventFromForm(r)
			ev = &e
		}
	default:
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := h.Dispatcher.Render(r.Context(), state, ev)
	if err != nil {
		status := statusFor(err)
		http.Error(w, publicMessage(r, status, err), status)
		return
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, newPageData(page)); err != nil {
		logging.FromContext(r.Context()).Error("execute page template", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func newPageData(page *domain.Page) pageData {
	state := viewStateToDTO(page.State)
	data := pageData{
		Page: page,
		State: formState{
			Panels: state.Panels,
			Auth:   state.Auth,
			Status: state.Status,
		},
		L: pageLabels,
	}

	// Sidebar entries show one panel each, like a fresh button press.
	for _, p := range []domain.Panel{domain.PanelAdmin, domain.PanelDelivery, domain.PanelReports} {
		q := url.Values{}
		q.Set("panel", p.String())
		q.Set("auth", state.Auth)
		data.Nav = append(data.Nav, navLink{
			Label:  domain.NavLabel(p),
			Href:   "/?" + q.Encode(),
			Active: page.State.Panels.Has(p),
		})
	}

	options := []struct {
		mode  domain.AuthMode
		label string
	}{
		{domain.AuthLogin, domain.LoginOptionLabel},
		{domain.AuthRegister, domain.RegisterOptionLabel},
	}
	for _, o := range options {
		q := stateQuery(state.Panels, string(o.mode), state.Status)
		data.AuthOptions = append(data.AuthOptions, navLink{
			Label:  o.label,
			Href:   "/?" + q.Encode(),
			Active: page.State.Auth == o.mode,
		})
	}

	if page.Delivery != nil {
		filters := []struct {
			status domain.DeliveryStatus
			label  string
		}{
			{"", "Todas"},
			{domain.StatusPending, domain.StatusPending.Label()},
			{domain.StatusCompleted, domain.StatusCompleted.Label()},
			{domain.StatusPaused, domain.StatusPaused.Label()},
		}
		for _, f := range filters {
			q := stateQuery(state.Panels, state.Auth, string(f.status))
			data.StatusFilters = append(data.StatusFilters, navLink{
				Label:  f.label,
				Href:   "/?" + q.Encode(),
				Active: page.State.StatusFilter == f.status,
			})
		}
	}

	return data
}

func stateQuery(panels []string, auth, status string) url.Values {
	q := url.Values{}
	for _, p := range panels {
		q.Add("panel", p)
	}
	q.Set("auth", auth)
	if status != "" {
		q.Set("status", status)
	}
	return q
}
