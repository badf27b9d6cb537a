package http

import (
	"net/http"

	"akshaya-backend/internal/handlers"
	"akshaya-backend/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	entryHandler *handlers.EntryHandler,
	reportHandler *handlers.ReportHandler,
	totpHandler *handlers.TOTPHandler,
	userHandler *handlers.UserHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public API routes - Authentication
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/auth/login/2fa", authHandler.VerifyLogin2FA).Methods("POST")

	// Logout is a no-op server-side but lives under /api so clients can
	// treat it like every other authenticated call.
	r.Handle("/api/logout", authMiddleware.Authenticate(http.HandlerFunc(authHandler.Logout))).Methods("POST")

	// Protected API routes - Daily Entries
	entriesAPI := r.PathPrefix("/api/entries").Subrouter()
	entriesAPI.Use(authMiddleware.Authenticate)
	entriesAPI.HandleFunc("", entryHandler.ListEntries).Methods("GET")
	entriesAPI.HandleFunc("", entryHandler.CreateEntry).Methods("POST")
	entriesAPI.HandleFunc("/edit-logs", authMiddleware.AdminOnly(http.HandlerFunc(entryHandler.ListEditLogs)).ServeHTTP).Methods("GET")
	entriesAPI.HandleFunc("/{id}", entryHandler.GetEntry).Methods("GET")
	entriesAPI.HandleFunc("/{id}", entryHandler.UpdateEntry).Methods("PUT")
	entriesAPI.HandleFunc("/{id}", authMiddleware.AdminOnly(http.HandlerFunc(entryHandler.DeleteEntry)).ServeHTTP).Methods("DELETE")
	entriesAPI.HandleFunc("/{id}/edit-logs", entryHandler.GetEditLogs).Methods("GET")

	// Protected API routes - Reports
	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.Use(authMiddleware.Authenticate)
	reportsAPI.HandleFunc("/daily", reportHandler.DailyReport).Methods("GET")
	reportsAPI.HandleFunc("/daily/csv", reportHandler.DailyCSV).Methods("GET")
	reportsAPI.HandleFunc("/daily/pdf", reportHandler.DailyPDF).Methods("GET")
	reportsAPI.HandleFunc("/weekly", reportHandler.WeeklyReport).Methods("GET")
	reportsAPI.HandleFunc("/monthly", reportHandler.MonthlyReport).Methods("GET")

	// Protected API routes - 2FA management
	totpAPI := r.PathPrefix("/api/2fa").Subrouter()
	totpAPI.Use(authMiddleware.Authenticate)
	totpAPI.HandleFunc("/setup", totpHandler.Setup).Methods("POST")
	totpAPI.HandleFunc("/enable", totpHandler.Enable).Methods("POST")
	totpAPI.HandleFunc("/disable", totpHandler.Disable).Methods("POST")

	// Protected API routes - Users (admin only)
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.RequireAdmin)
	usersAPI.HandleFunc("", userHandler.ListUsers).Methods("GET")
	usersAPI.HandleFunc("/{id}", userHandler.GetUser).Methods("GET")

	// Health endpoints (no auth required - for Kubernetes probes)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.DetailedHealth).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
