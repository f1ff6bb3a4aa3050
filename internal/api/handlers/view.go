package handlers

import (
	"corvo-delivery/internal/api/dto"
	"corvo-delivery/internal/services"
	"encoding/json"
	"io"
	"net/http"
)

// ViewHandler exposes the dispatcher as a JSON API.
type ViewHandler struct {
	Dispatcher *services.Dispatcher
}

// View renders the page for the navigation state in the query string.
func (h *ViewHandler) View(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()
	state, err := parseViewState(q["panel"], q.Get("auth"), q.Get("status"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.Dispatcher.Render(r.Context(), state, nil)
	if err != nil {
		status := statusFor(err)
		writeError(w, r, status, publicMessage(r, status, err))
		return
	}

	writeJSON(w, r, http.StatusOK, toPageResponse(page))
}

// Act renders the page after a single interaction.
func (h *ViewHandler) Act(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ActionRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	state, err := parseViewState(req.View.Panels, req.View.Auth, req.View.Status)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	ev, err := eventFromRequest(req.Event)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.Dispatcher.Render(r.Context(), state, &ev)
	if err != nil {
		status := statusFor(err)
		writeError(w, r, status, publicMessage(r, status, err))
		return
	}

	writeJSON(w, r, http.StatusOK, toPageResponse(page))
}
