// Package api exposes HTTP handlers for the activities service.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"example.com/extracurricular/internal/catalog"
)

// Handler coordinates HTTP requests with the catalog service.
type Handler struct {
	service   *catalog.Service
	staticDir string
}

// NewHandler builds a Handler. staticDir is the directory served under
// /static/.
func NewHandler(service *catalog.Service, staticDir string) *Handler {
	return &Handler{service: service, staticDir: staticDir}
}

// Routes wires endpoints to the router.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.root)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(h.staticDir))))
	r.Get("/activities", h.listActivities)
	r.Post("/activities/{activity}/signup", h.signUp)
	r.Delete("/activities/{activity}/participants/{email}", h.removeParticipant)
	r.Get("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := make(map[string]ActivityView, len(activities))
	for name, activity := range activities {
		resp[name] = toActivityView(activity)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	activityName := routeParam(r, "activity")
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	message, err := h.service.SignUp(r.Context(), activityName, email)
	switch {
	case errors.Is(err, catalog.ErrActivityNotFound):
		writeError(w, http.StatusNotFound, "Activity not found")
		return
	case errors.Is(err, catalog.ErrAlreadySignedUp):
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Student %s is already signed up for %s", email, activityName))
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: message})
}

func (h *Handler) removeParticipant(w http.ResponseWriter, r *http.Request) {
	activityName := routeParam(r, "activity")
	email := routeParam(r, "email")

	message, err := h.service.Remove(r.Context(), activityName, email)
	switch {
	case errors.Is(err, catalog.ErrActivityNotFound):
		writeError(w, http.StatusNotFound, "Activity not found")
		return
	case errors.Is(err, catalog.ErrParticipantNotFound):
		writeError(w, http.StatusNotFound,
			fmt.Sprintf("Participant %s not found in %s", email, activityName))
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: message})
}

// routeParam returns the percent-decoded URL parameter. Activity names may
// contain spaces and emails may contain characters like '+', so the raw
// segment is unescaped before lookup.
func routeParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// ActivityView is the wire shape of one catalog entry.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// MessageResponse wraps the confirmation message for mutations.
type MessageResponse struct {
	Message string `json:"message"`
}

func toActivityView(activity catalog.Activity) ActivityView {
	participants := activity.Participants
	if participants == nil {
		participants = []string{}
	}
	return ActivityView{
		Description:     activity.Description,
		Schedule:        activity.Schedule,
		MaxParticipants: activity.MaxParticipants,
		Participants:    participants,
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
