package http

import (
	"net/http"

	"github.com/josephprado/schedjoeler-api/internal/delivery/http/handler"
	"github.com/josephprado/schedjoeler-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	userHandler        *handler.UserHandler
	appointmentHandler *handler.AppointmentHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	appointmentHandler *handler.AppointmentHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		userHandler:        userHandler,
		appointmentHandler: appointmentHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check (public)
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := r.router.PathPrefix("/api/auth").Subrouter()
	auth.HandleFunc("/token", r.authHandler.IssueToken).Methods(http.MethodPost)

	// Everything else under /api requires authentication
	api := r.router.PathPrefix("/api").Subrouter()
	api.Use(r.authMiddleware.Authenticate)

	api.HandleFunc("/auth/revoke", r.authHandler.RevokeToken).Methods(http.MethodPost)

	api.HandleFunc("/users", r.userHandler.GetAllUsers).Methods(http.MethodGet)
	api.HandleFunc("/users", r.userHandler.CreateUser).Methods(http.MethodPost)
	api.HandleFunc("/users/{uuid}", r.userHandler.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{uuid}", r.userHandler.UpdateUser).Methods(http.MethodPatch)
	api.HandleFunc("/users/{uuid}", r.userHandler.DeleteUser).Methods(http.MethodDelete)

	api.HandleFunc("/appointments", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{uuid}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{uuid}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPatch)
	api.HandleFunc("/appointments/{uuid}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
