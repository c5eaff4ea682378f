package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"telemed-backend/internal/delivery/dto"
	"telemed-backend/internal/delivery/http/middleware"
	"telemed-backend/internal/domain/policy"
	"telemed-backend/internal/usecase"
	"telemed-backend/pkg/response"
	"telemed-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAppointmentUsecase struct {
	createFn  func(ctx context.Context, patientUserID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	getByIDFn func(ctx context.Context, actorID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	listFn    func(ctx context.Context, actorID uuid.UUID, status string) (*dto.AppointmentListResponse, error)
	updateFn  func(ctx context.Context, actorID, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	cancelFn  func(ctx context.Context, actorID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
}

func (m *mockAppointmentUsecase) Create(ctx context.Context, patientUserID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return m.createFn(ctx, patientUserID, req)
}

func (m *mockAppointmentUsecase) GetByID(ctx context.Context, actorID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	return m.getByIDFn(ctx, actorID, appointmentID)
}

func (m *mockAppointmentUsecase) List(ctx context.Context, actorID uuid.UUID, status string) (*dto.AppointmentListResponse, error) {
	return m.listFn(ctx, actorID, status)
}

func (m *mockAppointmentUsecase) Update(ctx context.Context, actorID, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return m.updateFn(ctx, actorID, appointmentID, req)
}

func (m *mockAppointmentUsecase) Cancel(ctx context.Context, actorID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	return m.cancelFn(ctx, actorID, appointmentID)
}

var _ usecase.AppointmentUsecase = (*mockAppointmentUsecase)(nil)

func authenticatedRequest(method, target string, body []byte, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	return req.WithContext(ctx)
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestAppointmentHandlerCreate(t *testing.T) {
	patientID := uuid.New()
	doctorID := uuid.New()
	futureDate := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)

	validBody, _ := json.Marshal(map[string]interface{}{
		"doctor_id":        doctorID,
		"appointment_date": futureDate,
		"type":             "VIDEO_CONSULTATION",
		"reason":           "Persistent headaches",
	})

	tests := []struct {
		name         string
		body         []byte
		usecaseErr   error
		expectedCode int
	}{
		{"created", validBody, nil, http.StatusCreated},
		{"doctor not found", validBody, usecase.ErrDoctorNotFound, http.StatusNotFound},
		{"doctor unavailable", validBody, usecase.ErrDoctorUnavailable, http.StatusBadRequest},
		{"past date", validBody, usecase.ErrPastAppointmentDate, http.StatusBadRequest},
		{"patient profile missing", validBody, usecase.ErrPatientProfileNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockAppointmentUsecase{
				createFn: func(ctx context.Context, gotPatientID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
					assert.Equal(t, patientID, gotPatientID)
					if tt.usecaseErr != nil {
						return nil, tt.usecaseErr
					}
					return &dto.AppointmentResponse{ID: uuid.New(), PatientID: patientID, DoctorID: req.DoctorID, Status: "SCHEDULED"}, nil
				},
			}
			h := NewAppointmentHandler(mock, validator.NewValidator())

			rec := httptest.NewRecorder()
			h.Create(rec, authenticatedRequest(http.MethodPost, "/api/v1/appointments", tt.body, patientID))

			assert.Equal(t, tt.expectedCode, rec.Code)
			resp := decodeResponse(t, rec)
			assert.Equal(t, tt.expectedCode == http.StatusCreated, resp.Success)
		})
	}
}

func TestAppointmentHandlerCreateValidation(t *testing.T) {
	h := NewAppointmentHandler(&mockAppointmentUsecase{}, validator.NewValidator())

	// doctor_id and appointment_date are required.
	body, _ := json.Marshal(map[string]interface{}{"reason": "checkup"})

	rec := httptest.NewRecorder()
	h.Create(rec, authenticatedRequest(http.MethodPost, "/api/v1/appointments", body, uuid.New()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Validation failed", resp.Message)
}

func TestAppointmentHandlerCreateUnauthenticated(t *testing.T) {
	h := NewAppointmentHandler(&mockAppointmentUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader(nil))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAppointmentHandlerGet(t *testing.T) {
	actorID := uuid.New()
	appointmentID := uuid.New()

	tests := []struct {
		name         string
		usecaseErr   error
		expectedCode int
	}{
		{"found", nil, http.StatusOK},
		{"not found", usecase.ErrAppointmentNotFound, http.StatusNotFound},
		{"denied", fmt.Errorf("%w: you don't have permission to read this appointment", policy.ErrDenied), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockAppointmentUsecase{
				getByIDFn: func(ctx context.Context, gotActorID, gotAppointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
					assert.Equal(t, actorID, gotActorID)
					assert.Equal(t, appointmentID, gotAppointmentID)
					if tt.usecaseErr != nil {
						return nil, tt.usecaseErr
					}
					return &dto.AppointmentResponse{ID: appointmentID, Status: "SCHEDULED"}, nil
				},
			}
			h := NewAppointmentHandler(mock, validator.NewValidator())

			req := authenticatedRequest(http.MethodGet, "/api/v1/appointments/"+appointmentID.String(), nil, actorID)
			req = mux.SetURLVars(req, map[string]string{"id": appointmentID.String()})

			rec := httptest.NewRecorder()
			h.Get(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestAppointmentHandlerGetInvalidID(t *testing.T) {
	h := NewAppointmentHandler(&mockAppointmentUsecase{}, validator.NewValidator())

	req := authenticatedRequest(http.MethodGet, "/api/v1/appointments/not-a-uuid", nil, uuid.New())
	req = mux.SetURLVars(req, map[string]string{"id": "not-a-uuid"})

	rec := httptest.NewRecorder()
	h.Get(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAppointmentHandlerList(t *testing.T) {
	actorID := uuid.New()

	mock := &mockAppointmentUsecase{
		listFn: func(ctx context.Context, gotActorID uuid.UUID, status string) (*dto.AppointmentListResponse, error) {
			assert.Equal(t, actorID, gotActorID)
			assert.Equal(t, "SCHEDULED", status)
			return &dto.AppointmentListResponse{
				Appointments: []dto.AppointmentResponse{{ID: uuid.New(), Status: "SCHEDULED"}},
				Total:        1,
			}, nil
		},
	}
	h := NewAppointmentHandler(mock, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.List(rec, authenticatedRequest(http.MethodGet, "/api/v1/appointments?status=SCHEDULED", nil, actorID))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

func TestAppointmentHandlerListInvalidStatus(t *testing.T) {
	mock := &mockAppointmentUsecase{
		listFn: func(ctx context.Context, actorID uuid.UUID, status string) (*dto.AppointmentListResponse, error) {
			return nil, usecase.ErrInvalidStatus
		},
	}
	h := NewAppointmentHandler(mock, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.List(rec, authenticatedRequest(http.MethodGet, "/api/v1/appointments?status=BOGUS", nil, uuid.New()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAppointmentHandlerUpdate(t *testing.T) {
	actorID := uuid.New()
	appointmentID := uuid.New()

	body, _ := json.Marshal(map[string]interface{}{"status": "CONFIRMED"})

	mock := &mockAppointmentUsecase{
		updateFn: func(ctx context.Context, gotActorID, gotAppointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
			require.NotNil(t, req.Status)
			assert.Equal(t, "CONFIRMED", *req.Status)
			return &dto.AppointmentResponse{ID: gotAppointmentID, Status: "CONFIRMED"}, nil
		},
	}
	h := NewAppointmentHandler(mock, validator.NewValidator())

	req := authenticatedRequest(http.MethodPut, "/api/v1/appointments/"+appointmentID.String(), body, actorID)
	req = mux.SetURLVars(req, map[string]string{"id": appointmentID.String()})

	rec := httptest.NewRecorder()
	h.Update(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAppointmentHandlerUpdateInvalidStatus(t *testing.T) {
	h := NewAppointmentHandler(&mockAppointmentUsecase{}, validator.NewValidator())

	body, _ := json.Marshal(map[string]interface{}{"status": "DONE"})

	req := authenticatedRequest(http.MethodPut, "/api/v1/appointments/"+uuid.NewString(), body, uuid.New())
	req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})

	rec := httptest.NewRecorder()
	h.Update(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAppointmentHandlerCancel(t *testing.T) {
	actorID := uuid.New()
	appointmentID := uuid.New()

	tests := []struct {
		name         string
		usecaseErr   error
		expectedCode int
	}{
		{"cancelled", nil, http.StatusOK},
		{"not found", usecase.ErrAppointmentNotFound, http.StatusNotFound},
		{"denied", fmt.Errorf("%w: you don't have permission to delete this appointment", policy.ErrDenied), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockAppointmentUsecase{
				cancelFn: func(ctx context.Context, gotActorID, gotAppointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
					if tt.usecaseErr != nil {
						return nil, tt.usecaseErr
					}
					return &dto.AppointmentResponse{ID: gotAppointmentID, Status: "CANCELLED"}, nil
				},
			}
			h := NewAppointmentHandler(mock, validator.NewValidator())

			req := authenticatedRequest(http.MethodDelete, "/api/v1/appointments/"+appointmentID.String(), nil, actorID)
			req = mux.SetURLVars(req, map[string]string{"id": appointmentID.String()})

			rec := httptest.NewRecorder()
			h.Cancel(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}
