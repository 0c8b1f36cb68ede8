package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"studyhub-backend/internal/domain"
	"studyhub-backend/internal/service"
)

type MemberHandler struct {
	memberSvc service.MemberService
}

func NewMemberHandler(memberSvc service.MemberService) *MemberHandler {
	return &MemberHandler{memberSvc: memberSvc}
}

type changeRoleRequest struct {
	Role string `json:"role"`
}

type warnRequest struct {
	Reason string `json:"reason"`
}

type memberListResponse struct {
	Members []domain.Member `json:"members"`
	Total   int32           `json:"total"`
}

func (h *MemberHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "user identity missing")
		return
	}

	var req changeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	member, err := h.memberSvc.ChangeRole(r.Context(), mux.Vars(r)["id"], userID, domain.MemberRole(req.Role))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (h *MemberHandler) Warn(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "user identity missing")
		return
	}

	var req warnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	member, err := h.memberSvc.Warn(r.Context(), mux.Vars(r)["id"], userID, req.Reason)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (h *MemberHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "user identity missing")
		return
	}

	if err := h.memberSvc.Remove(r.Context(), mux.Vars(r)["id"], userID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *MemberHandler) Leave(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "user identity missing")
		return
	}

	if err := h.memberSvc.Leave(r.Context(), mux.Vars(r)["id"], userID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	member, err := h.memberSvc.GetMember(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (h *MemberHandler) ListByStudy(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	members, total, err := h.memberSvc.ListByStudy(r.Context(), mux.Vars(r)["id"], (page-1)*pageSize, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, memberListResponse{Members: members, Total: total})
}

func (h *MemberHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "user identity missing")
		return
	}
	members, err := h.memberSvc.ListByUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, memberListResponse{Members: members, Total: int32(len(members))})
}

func (h *MemberHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.memberSvc.Statistics(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
