package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"studyhub-backend/internal/domain"
	"studyhub-backend/internal/service"
)

type FormHandler struct {
	formSvc service.ApplicationFormService
}

func NewFormHandler(formSvc service.ApplicationFormService) *FormHandler {
	return &FormHandler{formSvc: formSvc}
}

type formRequest struct {
	Questions []domain.ApplicationQuestion `json:"questions"`
}

func (h *FormHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "user identity missing")
		return
	}

	var req formRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	form, err := h.formSvc.CreateForm(r.Context(), mux.Vars(r)["id"], userID, req.Questions)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, form)
}

func (h *FormHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "user identity missing")
		return
	}

	var req formRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	form, err := h.formSvc.UpdateForm(r.Context(), mux.Vars(r)["id"], userID, req.Questions)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, form)
}

func (h *FormHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "user identity missing")
		return
	}

	if err := h.formSvc.DeactivateForm(r.Context(), mux.Vars(r)["id"], userID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *FormHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	form, err := h.formSvc.GetActiveForm(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, form)
}
