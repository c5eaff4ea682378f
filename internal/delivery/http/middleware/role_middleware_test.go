package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"telemed-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func requestWithRole(role string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), UserRoleKey, role)
	return req.WithContext(ctx)
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		allowed      []entity.Role
		role         string
		expectedCode int
	}{
		{"matching role passes", []entity.Role{entity.RoleDoctor}, "DOCTOR", http.StatusOK},
		{"second allowed role passes", []entity.Role{entity.RoleAdmin, entity.RoleDoctor}, "DOCTOR", http.StatusOK},
		{"mismatched role rejected", []entity.Role{entity.RoleAdmin}, "PATIENT", http.StatusForbidden},
		{"unknown role rejected", []entity.Role{entity.RoleAdmin}, "NURSE", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RequireRole(tt.allowed...)(next).ServeHTTP(rec, requestWithRole(tt.role))
			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestRequireRoleWithoutRoleInContext(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run")
	})

	rec := httptest.NewRecorder()
	RequireAdmin(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoleConvenienceWrappers(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		wrapper      func(http.Handler) http.Handler
		role         string
		expectedCode int
	}{
		{"admin only allows admin", RequireAdmin, "ADMIN", http.StatusOK},
		{"admin only rejects doctor", RequireAdmin, "DOCTOR", http.StatusForbidden},
		{"doctor only allows doctor", RequireDoctor, "DOCTOR", http.StatusOK},
		{"patient only allows patient", RequirePatient, "PATIENT", http.StatusOK},
		{"patient only rejects admin", RequirePatient, "ADMIN", http.StatusForbidden},
		{"admin or doctor allows admin", RequireAdminOrDoctor, "ADMIN", http.StatusOK},
		{"admin or doctor allows doctor", RequireAdminOrDoctor, "DOCTOR", http.StatusOK},
		{"admin or doctor rejects patient", RequireAdminOrDoctor, "PATIENT", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.wrapper(next).ServeHTTP(rec, requestWithRole(tt.role))
			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}
