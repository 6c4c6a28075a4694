package http

import (
	"net/http"

	"github.com/sandy191020/LexConnect/internal/delivery/http/handler"
	"github.com/sandy191020/LexConnect/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	lawyerHandler      *handler.LawyerHandler
	bookingHandler     *handler.BookingHandler
	certificateHandler *handler.CertificateHandler
	scheduleHandler    *handler.ScheduleHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	lawyerHandler *handler.LawyerHandler,
	bookingHandler *handler.BookingHandler,
	certificateHandler *handler.CertificateHandler,
	scheduleHandler *handler.ScheduleHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		lawyerHandler:      lawyerHandler,
		bookingHandler:     bookingHandler,
		certificateHandler: certificateHandler,
		scheduleHandler:    scheduleHandler,
		auditLogHandler:    auditLogHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/client", r.authHandler.RegisterClient).Methods(http.MethodPost)
	auth.HandleFunc("/register/lawyer", r.authHandler.RegisterLawyer).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Public directory of approved lawyers
	api.HandleFunc("/lawyers", r.lawyerHandler.GetApprovedLawyers).Methods(http.MethodGet)

	// Booking routes (client creates, lawyer resolves, both list)
	bookings := api.PathPrefix("/bookings").Subrouter()
	bookings.Use(r.authMiddleware.Authenticate)

	bookingCreate := bookings.NewRoute().Subrouter()
	bookingCreate.Use(middleware.RequireClient)
	bookingCreate.HandleFunc("", r.bookingHandler.CreateBooking).Methods(http.MethodPost)

	bookingList := bookings.NewRoute().Subrouter()
	bookingList.Use(middleware.RequireClientOrLawyer)
	bookingList.HandleFunc("", r.bookingHandler.GetMyBookings).Methods(http.MethodGet)

	bookingResolve := bookings.NewRoute().Subrouter()
	bookingResolve.Use(middleware.RequireLawyer)
	bookingResolve.HandleFunc("/{id}/accept", r.bookingHandler.AcceptBooking).Methods(http.MethodPost)
	bookingResolve.HandleFunc("/{id}/reject", r.bookingHandler.RejectBooking).Methods(http.MethodPost)

	// Certificate routes (lawyer only)
	certificates := api.PathPrefix("/certificates").Subrouter()
	certificates.Use(r.authMiddleware.Authenticate)
	certificates.Use(middleware.RequireLawyer)
	certificates.HandleFunc("", r.certificateHandler.UploadCertificate).Methods(http.MethodPost)
	certificates.HandleFunc("", r.certificateHandler.GetMyCertificates).Methods(http.MethodGet)

	// Schedule routes (lawyer publishes, clients browse with lawyer_id)
	schedules := api.PathPrefix("/schedules").Subrouter()
	schedules.Use(r.authMiddleware.Authenticate)

	scheduleCreate := schedules.NewRoute().Subrouter()
	scheduleCreate.Use(middleware.RequireLawyer)
	scheduleCreate.HandleFunc("", r.scheduleHandler.CreateSlot).Methods(http.MethodPost)

	scheduleList := schedules.NewRoute().Subrouter()
	scheduleList.Use(middleware.RequireClientOrLawyer)
	scheduleList.HandleFunc("", r.scheduleHandler.GetSlots).Methods(http.MethodGet)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/lawyers/pending", r.lawyerHandler.GetPendingLawyers).Methods(http.MethodGet)
	admin.HandleFunc("/lawyers/{id}/approve", r.lawyerHandler.ApproveLawyer).Methods(http.MethodPost)
	admin.HandleFunc("/admins", r.lawyerHandler.CreateAdmin).Methods(http.MethodPost)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
