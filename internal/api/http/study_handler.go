package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"studyhub-backend/internal/domain"
	"studyhub-backend/internal/service"
)

type StudyHandler struct {
	studySvc service.StudyService
}

func NewStudyHandler(studySvc service.StudyService) *StudyHandler {
	return &StudyHandler{studySvc: studySvc}
}

type proposeStudyRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Type            string `json:"type"`
	Slug            string `json:"slug"`
	Generation      int32  `json:"generation"`
	Capacity        *int32 `json:"capacity"`
	RecruitDeadline string `json:"recruit_deadline"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
}

type studyListResponse struct {
	Studies []domain.Study `json:"studies"`
	Total   int32          `json:"total"`
}

func (h *StudyHandler) Propose(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "user identity missing")
		return
	}

	var req proposeStudyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	details := domain.StudyDetails{
		Type:       domain.StudyType(req.Type),
		Slug:       req.Slug,
		Generation: req.Generation,
		Capacity:   req.Capacity,
	}
	var err error
	if details.RecruitDeadline, err = parseDate(req.RecruitDeadline); err != nil {
		writeError(w, http.StatusBadRequest, "invalid recruit_deadline")
		return
	}
	if details.StartDate, err = parseDate(req.StartDate); err != nil {
		writeError(w, http.StatusBadRequest, "invalid start_date")
		return
	}
	if details.EndDate, err = parseDate(req.EndDate); err != nil {
		writeError(w, http.StatusBadRequest, "invalid end_date")
		return
	}

	study, err := h.studySvc.Propose(r.Context(), service.ProposeStudyInput{
		Title:       req.Title,
		Description: req.Description,
		ProposerID:  userID,
		Details:     details,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, study)
}

func (h *StudyHandler) Get(w http.ResponseWriter, r *http.Request) {
	study, err := h.studySvc.GetStudy(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, study)
}

func (h *StudyHandler) List(w http.ResponseWriter, r *http.Request) {
	if status := r.URL.Query().Get("status"); status != "" {
		studies, err := h.studySvc.ListByStatus(r.Context(), domain.StudyStatus(status))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, studyListResponse{Studies: studies, Total: int32(len(studies))})
		return
	}

	page, pageSize := pagination(r)
	studies, total, err := h.studySvc.ListStudiesPaged(r.Context(), (page-1)*pageSize, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, studyListResponse{Studies: studies, Total: total})
}

func (h *StudyHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "user identity missing")
		return
	}
	studies, err := h.studySvc.ListByProposer(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, studyListResponse{Studies: studies, Total: int32(len(studies))})
}

// Approve, Reject and Terminate are review decisions reserved for operators.
func (h *StudyHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.studySvc.Approve)
}

func (h *StudyHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.studySvc.Reject)
}

func (h *StudyHandler) Terminate(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.studySvc.Terminate)
}

func (h *StudyHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.studySvc.Start)
}

func (h *StudyHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.studySvc.Complete)
}

func (h *StudyHandler) decide(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, studyID string) (*domain.Study, error)) {
	if !IsAdmin(r.Context()) {
		writeError(w, http.StatusForbidden, "operator role required")
		return
	}
	study, err := op(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, study)
}
