package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"telemed-backend/internal/delivery/http/handler"
	"telemed-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter() *mux.Router {
	r := NewRouter(
		&handler.AuthHandler{},
		&handler.AppointmentHandler{},
		&handler.ConsultationHandler{},
		&handler.PrescriptionHandler{},
		&handler.MedicalRecordHandler{},
		&handler.AdminHandler{},
		&handler.DoctorHandler{},
		&handler.PatientHandler{},
		middleware.NewAuthMiddleware(nil, nil),
		middleware.NewCORSMiddleware(),
	)
	return r.Setup()
}

func TestRouterMethodBindings(t *testing.T) {
	router := setupTestRouter()
	id := "7e57d004-2b97-4c7a-9b3e-000000000001"

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/health"},
		{http.MethodPost, "/api/v1/auth/register"},
		{http.MethodPost, "/api/v1/appointments"},
		{http.MethodPut, "/api/v1/appointments/" + id},
		{http.MethodDelete, "/api/v1/appointments/" + id},
		{http.MethodPost, "/api/v1/appointments/" + id + "/consultation"},
		{http.MethodPut, "/api/v1/prescriptions/" + id + "/deactivate"},
		{http.MethodPut, "/api/v1/doctors/me/availability"},
		{http.MethodPut, "/api/v1/admin/users/" + id + "/role"},
		{http.MethodPut, "/api/v1/admin/users/" + id + "/status"},
		{http.MethodDelete, "/api/v1/admin/users/" + id},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			var match mux.RouteMatch
			req := httptest.NewRequest(tt.method, tt.path, nil)
			assert.True(t, router.Match(req, &match), "route should be registered")
			assert.NoError(t, match.MatchErr)
		})
	}
}

func TestRouterRejectsPatchOnPutRoutes(t *testing.T) {
	router := setupTestRouter()
	id := "7e57d004-2b97-4c7a-9b3e-000000000001"

	for _, path := range []string{
		"/api/v1/admin/users/" + id + "/role",
		"/api/v1/admin/users/" + id + "/status",
		"/api/v1/prescriptions/" + id + "/deactivate",
		"/api/v1/doctors/me/availability",
	} {
		t.Run(path, func(t *testing.T) {
			var match mux.RouteMatch
			req := httptest.NewRequest(http.MethodPatch, path, nil)
			router.Match(req, &match)
			assert.ErrorIs(t, match.MatchErr, mux.ErrMethodMismatch)
		})
	}
}
