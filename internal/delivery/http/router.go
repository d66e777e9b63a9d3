package http

import (
	"net/http"

	"github.com/shifacare/medcenter-booking/internal/delivery/http/handler"
	"github.com/shifacare/medcenter-booking/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	medicalCenterHandler *handler.MedicalCenterHandler
	clinicHandler        *handler.ClinicHandler
	appointmentHandler   *handler.AppointmentHandler
	newsHandler          *handler.NewsHandler
	reminderHandler      *handler.ReminderHandler
	auditLogHandler      *handler.AuditLogHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	medicalCenterHandler *handler.MedicalCenterHandler,
	clinicHandler *handler.ClinicHandler,
	appointmentHandler *handler.AppointmentHandler,
	newsHandler *handler.NewsHandler,
	reminderHandler *handler.ReminderHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		medicalCenterHandler: medicalCenterHandler,
		clinicHandler:        clinicHandler,
		appointmentHandler:   appointmentHandler,
		newsHandler:          newsHandler,
		reminderHandler:      reminderHandler,
		auditLogHandler:      auditLogHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Reminder sweep, polled by an external cron
	api.HandleFunc("/reminders/sweep", r.reminderHandler.SweepUpcoming).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Public browsing: centers, clinics, availability, news
	api.HandleFunc("/centers", r.medicalCenterHandler.ListActiveCenters).Methods(http.MethodGet)
	api.HandleFunc("/centers/{id}", r.medicalCenterHandler.GetCenter).Methods(http.MethodGet)
	api.HandleFunc("/centers/{id}/clinics", r.clinicHandler.ListClinicsByCenter).Methods(http.MethodGet)
	api.HandleFunc("/clinics/{id}", r.clinicHandler.GetClinic).Methods(http.MethodGet)
	api.HandleFunc("/clinics/{id}/availability", r.clinicHandler.GetAvailableTimes).Methods(http.MethodGet)
	api.HandleFunc("/news", r.newsHandler.ListPublishedNews).Methods(http.MethodGet)
	api.HandleFunc("/news/{id}", r.newsHandler.GetNews).Methods(http.MethodGet)

	// Patient routes (protected)
	patient := api.PathPrefix("/appointments").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.HandleFunc("", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	patient.HandleFunc("", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	patient.HandleFunc("/{id}/cancel", r.appointmentHandler.CancelMyAppointment).Methods(http.MethodPost)

	// Admin routes (protected - super admin or center admin; per-center
	// scoping happens in the usecases)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdminOrCenterAdmin)

	// Medical center management, creation and deletion are super admin only
	adminOnly := api.PathPrefix("/admin").Subrouter()
	adminOnly.Use(r.authMiddleware.Authenticate)
	adminOnly.Use(middleware.RequireAdmin)
	adminOnly.HandleFunc("/centers", r.medicalCenterHandler.CreateCenter).Methods(http.MethodPost)
	adminOnly.HandleFunc("/centers/{id}", r.medicalCenterHandler.UpdateCenter).Methods(http.MethodPut)
	adminOnly.HandleFunc("/centers/{id}", r.medicalCenterHandler.DeleteCenter).Methods(http.MethodDelete)
	adminOnly.HandleFunc("/audit-logs", r.auditLogHandler.ListAuditLogs).Methods(http.MethodGet)
	adminOnly.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	admin.HandleFunc("/centers", r.medicalCenterHandler.ListAllCenters).Methods(http.MethodGet)

	// Clinic management
	admin.HandleFunc("/clinics", r.clinicHandler.CreateClinic).Methods(http.MethodPost)
	admin.HandleFunc("/clinics/{id}", r.clinicHandler.UpdateClinic).Methods(http.MethodPut)
	admin.HandleFunc("/clinics/{id}", r.clinicHandler.DeleteClinic).Methods(http.MethodDelete)
	admin.HandleFunc("/clinics/{id}/fixed-slots", r.clinicHandler.ListFixedSlots).Methods(http.MethodGet)
	admin.HandleFunc("/clinics/{id}/fixed-slots", r.clinicHandler.ReplaceFixedSlots).Methods(http.MethodPut)
	admin.HandleFunc("/clinics/{id}/fixed-slots/generate", r.clinicHandler.GenerateFixedSlots).Methods(http.MethodPost)

	// Appointment review queue
	admin.HandleFunc("/appointments", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}/approve", r.appointmentHandler.ApproveAppointment).Methods(http.MethodPost)
	admin.HandleFunc("/appointments/{id}/reject", r.appointmentHandler.RejectAppointment).Methods(http.MethodPost)
	admin.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// News management
	admin.HandleFunc("/news", r.newsHandler.ListAllNews).Methods(http.MethodGet)
	admin.HandleFunc("/news", r.newsHandler.CreateNews).Methods(http.MethodPost)
	admin.HandleFunc("/news/{id}", r.newsHandler.UpdateNews).Methods(http.MethodPut)
	admin.HandleFunc("/news/{id}", r.newsHandler.DeleteNews).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
