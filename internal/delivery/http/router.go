package http

import (
	"net/http"

	"bhrms/internal/delivery/http/handler"
	"bhrms/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router          *mux.Router
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	referralHandler *handler.ReferralHandler
	facilityHandler *handler.FacilityHandler
	hotlineHandler  *handler.HotlineHandler
	reportHandler   *handler.ReportHandler
	auditLogHandler *handler.AuditLogHandler
	authMiddleware  *middleware.AuthMiddleware
	corsMiddleware  *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	referralHandler *handler.ReferralHandler,
	facilityHandler *handler.FacilityHandler,
	hotlineHandler *handler.HotlineHandler,
	reportHandler *handler.ReportHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		authHandler:     authHandler,
		userHandler:     userHandler,
		referralHandler: referralHandler,
		facilityHandler: facilityHandler,
		hotlineHandler:  hotlineHandler,
		reportHandler:   reportHandler,
		auditLogHandler: auditLogHandler,
		authMiddleware:  authMiddleware,
		corsMiddleware:  corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Directory routes (any authenticated role)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.HandleFunc("/facilities", r.facilityHandler.GetAllFacilities).Methods(http.MethodGet)
	protected.HandleFunc("/hotlines", r.hotlineHandler.GetAllHotlines).Methods(http.MethodGet)
	protected.HandleFunc("/referrals/search", r.referralHandler.SearchReferrals).Methods(http.MethodGet)

	// Referral routes (staff and health workers)
	staff := api.PathPrefix("/referrals").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireStaff)
	staff.HandleFunc("", r.referralHandler.CreateReferral).Methods(http.MethodPost)
	staff.HandleFunc("/my", r.referralHandler.GetMyReferrals).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Referral triage (admin)
	admin.HandleFunc("/referrals", r.referralHandler.GetAllReferrals).Methods(http.MethodGet)
	admin.HandleFunc("/referrals/{id}/status", r.referralHandler.UpdateStatus).Methods(http.MethodPatch)

	// User management (admin)
	admin.HandleFunc("/users", r.userHandler.CreateUser).Methods(http.MethodPost)
	admin.HandleFunc("/users", r.userHandler.GetAllUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{credential}", r.userHandler.DeleteUser).Methods(http.MethodDelete)

	// Facility management (admin)
	admin.HandleFunc("/facilities", r.facilityHandler.CreateFacility).Methods(http.MethodPost)
	admin.HandleFunc("/facilities/{id}", r.facilityHandler.DeleteFacility).Methods(http.MethodDelete)

	// Hotline management (admin)
	admin.HandleFunc("/hotlines", r.hotlineHandler.CreateHotline).Methods(http.MethodPost)
	admin.HandleFunc("/hotlines/{id}", r.hotlineHandler.DeleteHotline).Methods(http.MethodDelete)

	// Reports and audit trail (admin)
	admin.HandleFunc("/reports/summary", r.reportHandler.GetSummary).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetRecentLogs).Methods(http.MethodGet)

	// Legacy add-user route, kept at its original path and response shape
	legacyAdmin := r.router.PathPrefix("/api/admin").Subrouter()
	legacyAdmin.Use(r.authMiddleware.Authenticate)
	legacyAdmin.Use(middleware.RequireAdmin)
	legacyAdmin.HandleFunc("/add-user", r.userHandler.AddUserLegacy).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
