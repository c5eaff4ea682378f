package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"telemed-backend/internal/delivery/dto"
	"telemed-backend/internal/domain/policy"
	"telemed-backend/internal/usecase"
	"telemed-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

type mockConsultationUsecase struct {
	createFn             func(ctx context.Context, actorID, appointmentID uuid.UUID, req *dto.ConsultationRequest) (*dto.ConsultationResponse, error)
	getByAppointmentIDFn func(ctx context.Context, actorID, appointmentID uuid.UUID) (*dto.ConsultationResponse, error)
	updateFn             func(ctx context.Context, actorID, appointmentID uuid.UUID, req *dto.ConsultationRequest) (*dto.ConsultationResponse, error)
}

func (m *mockConsultationUsecase) Create(ctx context.Context, actorID, appointmentID uuid.UUID, req *dto.ConsultationRequest) (*dto.ConsultationResponse, error) {
	return m.createFn(ctx, actorID, appointmentID, req)
}

func (m *mockConsultationUsecase) GetByAppointmentID(ctx context.Context, actorID, appointmentID uuid.UUID) (*dto.ConsultationResponse, error) {
	return m.getByAppointmentIDFn(ctx, actorID, appointmentID)
}

func (m *mockConsultationUsecase) Update(ctx context.Context, actorID, appointmentID uuid.UUID, req *dto.ConsultationRequest) (*dto.ConsultationResponse, error) {
	return m.updateFn(ctx, actorID, appointmentID, req)
}

var _ usecase.ConsultationUsecase = (*mockConsultationUsecase)(nil)

func TestConsultationHandlerCreate(t *testing.T) {
	doctorID := uuid.New()
	appointmentID := uuid.New()

	validBody, _ := json.Marshal(map[string]interface{}{
		"diagnosis":          "Seasonal allergic rhinitis",
		"treatment":          "Antihistamines for 14 days",
		"follow_up_required": true,
	})

	tests := []struct {
		name         string
		usecaseErr   error
		expectedCode int
	}{
		{"recorded", nil, http.StatusCreated},
		{"appointment not found", usecase.ErrAppointmentNotFound, http.StatusNotFound},
		{"not consultable", usecase.ErrConsultationNotAllowed, http.StatusBadRequest},
		{"already recorded", usecase.ErrConsultationExists, http.StatusBadRequest},
		{"denied", fmt.Errorf("%w: you don't have permission to create this consultation", policy.ErrDenied), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockConsultationUsecase{
				createFn: func(ctx context.Context, gotActorID, gotAppointmentID uuid.UUID, req *dto.ConsultationRequest) (*dto.ConsultationResponse, error) {
					assert.Equal(t, doctorID, gotActorID)
					assert.Equal(t, appointmentID, gotAppointmentID)
					if tt.usecaseErr != nil {
						return nil, tt.usecaseErr
					}
					return &dto.ConsultationResponse{ID: uuid.New(), AppointmentID: gotAppointmentID, Diagnosis: req.Diagnosis, FollowUpRequired: req.FollowUpRequired}, nil
				},
			}
			h := NewConsultationHandler(mock, validator.NewValidator())

			req := authenticatedRequest(http.MethodPost, "/api/v1/appointments/"+appointmentID.String()+"/consultation", validBody, doctorID)
			req = mux.SetURLVars(req, map[string]string{"id": appointmentID.String()})

			rec := httptest.NewRecorder()
			h.Create(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			resp := decodeResponse(t, rec)
			assert.Equal(t, tt.expectedCode == http.StatusCreated, resp.Success)
		})
	}
}

func TestConsultationHandlerCreateRequiresDiagnosis(t *testing.T) {
	h := NewConsultationHandler(&mockConsultationUsecase{}, validator.NewValidator())

	body, _ := json.Marshal(map[string]interface{}{"treatment": "rest"})

	appointmentID := uuid.NewString()
	req := authenticatedRequest(http.MethodPost, "/api/v1/appointments/"+appointmentID+"/consultation", body, uuid.New())
	req = mux.SetURLVars(req, map[string]string{"id": appointmentID})

	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Validation failed", resp.Message)
}

func TestConsultationHandlerGet(t *testing.T) {
	actorID := uuid.New()
	appointmentID := uuid.New()

	tests := []struct {
		name         string
		usecaseErr   error
		expectedCode int
	}{
		{"found", nil, http.StatusOK},
		{"appointment not found", usecase.ErrAppointmentNotFound, http.StatusNotFound},
		{"consultation not found", usecase.ErrConsultationNotFound, http.StatusNotFound},
		{"denied", fmt.Errorf("%w: you don't have permission to read this consultation", policy.ErrDenied), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockConsultationUsecase{
				getByAppointmentIDFn: func(ctx context.Context, gotActorID, gotAppointmentID uuid.UUID) (*dto.ConsultationResponse, error) {
					if tt.usecaseErr != nil {
						return nil, tt.usecaseErr
					}
					return &dto.ConsultationResponse{ID: uuid.New(), AppointmentID: gotAppointmentID}, nil
				},
			}
			h := NewConsultationHandler(mock, validator.NewValidator())

			req := authenticatedRequest(http.MethodGet, "/api/v1/appointments/"+appointmentID.String()+"/consultation", nil, actorID)
			req = mux.SetURLVars(req, map[string]string{"id": appointmentID.String()})

			rec := httptest.NewRecorder()
			h.Get(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestConsultationHandlerUpdate(t *testing.T) {
	doctorID := uuid.New()
	appointmentID := uuid.New()

	body, _ := json.Marshal(map[string]interface{}{
		"diagnosis": "Revised: tension headache",
	})

	mock := &mockConsultationUsecase{
		updateFn: func(ctx context.Context, gotActorID, gotAppointmentID uuid.UUID, req *dto.ConsultationRequest) (*dto.ConsultationResponse, error) {
			assert.Equal(t, "Revised: tension headache", req.Diagnosis)
			return &dto.ConsultationResponse{ID: uuid.New(), AppointmentID: gotAppointmentID, Diagnosis: req.Diagnosis}, nil
		},
	}
	h := NewConsultationHandler(mock, validator.NewValidator())

	req := authenticatedRequest(http.MethodPut, "/api/v1/appointments/"+appointmentID.String()+"/consultation", body, doctorID)
	req = mux.SetURLVars(req, map[string]string{"id": appointmentID.String()})

	rec := httptest.NewRecorder()
	h.Update(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
