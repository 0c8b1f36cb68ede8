package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"studyhub-backend/internal/security"
	"studyhub-backend/internal/service"
)

// Handlers bundles the resource handlers for route registration
type Handlers struct {
	Study        *StudyHandler
	Application  *ApplicationHandler
	Member       *MemberHandler
	Form         *FormHandler
	Notification *NotificationHandler
}

// NewHandlers wires handlers from services
func NewHandlers(
	studySvc service.StudyService,
	appSvc service.ApplicationService,
	memberSvc service.MemberService,
	formSvc service.ApplicationFormService,
	noteSvc service.NotificationService,
) *Handlers {
	return &Handlers{
		Study:        NewStudyHandler(studySvc),
		Application:  NewApplicationHandler(appSvc),
		Member:       NewMemberHandler(memberSvc),
		Form:         NewFormHandler(formSvc),
		Notification: NewNotificationHandler(noteSvc),
	}
}

// NewRouter builds the API router. Every /api/v1 route sits behind the auth
// middleware; health stays public.
func NewRouter(h *Handlers, tm security.TokenManager) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(NewAuthMiddleware(tm).Handler)

	// Studies
	api.HandleFunc("/studies", h.Study.Propose).Methods("POST")
	api.HandleFunc("/studies", h.Study.List).Methods("GET")
	api.HandleFunc("/studies/mine", h.Study.ListMine).Methods("GET")
	api.HandleFunc("/studies/{id}", h.Study.Get).Methods("GET")
	api.HandleFunc("/studies/{id}/approve", h.Study.Approve).Methods("POST")
	api.HandleFunc("/studies/{id}/reject", h.Study.Reject).Methods("POST")
	api.HandleFunc("/studies/{id}/start", h.Study.Start).Methods("POST")
	api.HandleFunc("/studies/{id}/complete", h.Study.Complete).Methods("POST")
	api.HandleFunc("/studies/{id}/terminate", h.Study.Terminate).Methods("POST")

	// Applications
	api.HandleFunc("/studies/{id}/applications", h.Application.Apply).Methods("POST")
	api.HandleFunc("/studies/{id}/applications", h.Application.ListByStudy).Methods("GET")
	api.HandleFunc("/applications/mine", h.Application.ListMine).Methods("GET")
	api.HandleFunc("/applications/{id}", h.Application.Get).Methods("GET")
	api.HandleFunc("/applications/{id}/accept", h.Application.Accept).Methods("POST")
	api.HandleFunc("/applications/{id}/reject", h.Application.Reject).Methods("POST")
	api.HandleFunc("/applications/{id}/cancel", h.Application.Cancel).Methods("POST")

	// Members
	api.HandleFunc("/studies/{id}/members", h.Member.ListByStudy).Methods("GET")
	api.HandleFunc("/studies/{id}/members/statistics", h.Member.Statistics).Methods("GET")
	api.HandleFunc("/studies/{id}/leave", h.Member.Leave).Methods("POST")
	api.HandleFunc("/memberships/mine", h.Member.ListMine).Methods("GET")
	api.HandleFunc("/members/{id}", h.Member.Get).Methods("GET")
	api.HandleFunc("/members/{id}", h.Member.Remove).Methods("DELETE")
	api.HandleFunc("/members/{id}/role", h.Member.ChangeRole).Methods("PUT")
	api.HandleFunc("/members/{id}/warn", h.Member.Warn).Methods("POST")

	// Application forms
	api.HandleFunc("/studies/{id}/form", h.Form.Create).Methods("POST")
	api.HandleFunc("/studies/{id}/form", h.Form.GetActive).Methods("GET")
	api.HandleFunc("/forms/{id}", h.Form.Update).Methods("PUT")
	api.HandleFunc("/forms/{id}", h.Form.Deactivate).Methods("DELETE")

	// Notifications
	api.HandleFunc("/notifications", h.Notification.List).Methods("GET")
	api.HandleFunc("/notifications/{id}/read", h.Notification.MarkAsRead).Methods("POST")

	return router
}
