package http

import (
	"net/http"

	"telemed-backend/internal/delivery/http/handler"
	"telemed-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	appointmentHandler   *handler.AppointmentHandler
	consultationHandler  *handler.ConsultationHandler
	prescriptionHandler  *handler.PrescriptionHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	adminHandler         *handler.AdminHandler
	doctorHandler        *handler.DoctorHandler
	patientHandler       *handler.PatientHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	consultationHandler *handler.ConsultationHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	adminHandler *handler.AdminHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		appointmentHandler:   appointmentHandler,
		consultationHandler:  consultationHandler,
		prescriptionHandler:  prescriptionHandler,
		medicalRecordHandler: medicalRecordHandler,
		adminHandler:         adminHandler,
		doctorHandler:        doctorHandler,
		patientHandler:       patientHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

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

	// Doctor directory (any authenticated user)
	doctors := api.PathPrefix("/doctors").Subrouter()
	doctors.Use(r.authMiddleware.Authenticate)
	doctors.HandleFunc("", r.doctorHandler.List).Methods(http.MethodGet)

	// Doctor self-service routes must register before the {id} route so
	// "me" never parses as an ID.
	doctorsMe := api.PathPrefix("/doctors/me").Subrouter()
	doctorsMe.Use(r.authMiddleware.Authenticate)
	doctorsMe.Use(middleware.RequireDoctor)
	doctorsMe.HandleFunc("", r.doctorHandler.GetMyProfile).Methods(http.MethodGet)
	doctorsMe.HandleFunc("", r.doctorHandler.UpdateMyProfile).Methods(http.MethodPut)
	doctorsMe.HandleFunc("/availability", r.doctorHandler.SetAvailability).Methods(http.MethodPut)

	doctors.HandleFunc("/{id}", r.doctorHandler.Get).Methods(http.MethodGet)

	// Patient profile routes
	patientsMe := api.PathPrefix("/patients/me").Subrouter()
	patientsMe.Use(r.authMiddleware.Authenticate)
	patientsMe.Use(middleware.RequirePatient)
	patientsMe.HandleFunc("", r.patientHandler.GetMyProfile).Methods(http.MethodGet)
	patientsMe.HandleFunc("", r.patientHandler.UpdateMyProfile).Methods(http.MethodPut)

	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.Handle("", middleware.RequireAdminOrDoctor(http.HandlerFunc(r.patientHandler.List))).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.Get).Methods(http.MethodGet)
	patients.HandleFunc("/{patientId}/prescriptions", r.prescriptionHandler.ListForPatient).Methods(http.MethodGet)
	patients.HandleFunc("/{patientId}/medical-records", r.medicalRecordHandler.ListForPatient).Methods(http.MethodGet)

	// Appointment routes
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.Handle("", middleware.RequirePatient(http.HandlerFunc(r.appointmentHandler.Create))).Methods(http.MethodPost)
	appointments.HandleFunc("", r.appointmentHandler.List).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Update).Methods(http.MethodPut)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Cancel).Methods(http.MethodDelete)

	// Consultation routes (nested under the appointment)
	appointments.Handle("/{id}/consultation", middleware.RequireDoctor(http.HandlerFunc(r.consultationHandler.Create))).Methods(http.MethodPost)
	appointments.HandleFunc("/{id}/consultation", r.consultationHandler.Get).Methods(http.MethodGet)
	appointments.Handle("/{id}/consultation", middleware.RequireDoctor(http.HandlerFunc(r.consultationHandler.Update))).Methods(http.MethodPut)

	// Prescription routes
	prescriptions := api.PathPrefix("/prescriptions").Subrouter()
	prescriptions.Use(r.authMiddleware.Authenticate)
	prescriptions.Handle("", middleware.RequireDoctor(http.HandlerFunc(r.prescriptionHandler.Create))).Methods(http.MethodPost)
	prescriptions.Handle("/issued", middleware.RequireDoctor(http.HandlerFunc(r.prescriptionHandler.ListMine))).Methods(http.MethodGet)
	prescriptions.HandleFunc("/{id}", r.prescriptionHandler.Get).Methods(http.MethodGet)
	prescriptions.HandleFunc("/{id}/deactivate", r.prescriptionHandler.Deactivate).Methods(http.MethodPut)

	// Medical record routes
	medicalRecords := api.PathPrefix("/medical-records").Subrouter()
	medicalRecords.Use(r.authMiddleware.Authenticate)
	medicalRecords.HandleFunc("", r.medicalRecordHandler.Create).Methods(http.MethodPost)
	medicalRecords.HandleFunc("/{id}", r.medicalRecordHandler.Get).Methods(http.MethodGet)
	medicalRecords.HandleFunc("/{id}", r.medicalRecordHandler.Update).Methods(http.MethodPut)
	medicalRecords.Handle("/{id}", middleware.RequireAdmin(http.HandlerFunc(r.medicalRecordHandler.Delete))).Methods(http.MethodDelete)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/users", r.adminHandler.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users", r.adminHandler.CreateUser).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id}", r.adminHandler.GetUser).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.adminHandler.DeleteUser).Methods(http.MethodDelete)
	admin.HandleFunc("/users/{id}/role", r.adminHandler.ChangeRole).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}/status", r.adminHandler.ChangeStatus).Methods(http.MethodPut)
	admin.HandleFunc("/statistics", r.adminHandler.Statistics).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs", r.adminHandler.AuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
