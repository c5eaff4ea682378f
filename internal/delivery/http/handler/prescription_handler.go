package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"telemed-backend/internal/delivery/dto"
	"telemed-backend/internal/delivery/http/middleware"
	"telemed-backend/internal/domain/policy"
	"telemed-backend/internal/usecase"
	"telemed-backend/pkg/response"
	"telemed-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PrescriptionHandler struct {
	prescriptionUsecase usecase.PrescriptionUsecase
	validator           *validator.CustomValidator
}

func NewPrescriptionHandler(prescriptionUsecase usecase.PrescriptionUsecase, validator *validator.CustomValidator) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionUsecase: prescriptionUsecase,
		validator:           validator,
	}
}

// Create handles issuing a prescription
// @Summary Issue prescription
// @Description Issue a prescription for a patient (doctor only)
// @Tags Prescriptions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePrescriptionRequest true "Create Prescription Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /prescriptions [post]
func (h *PrescriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.prescriptionUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, policy.ErrDenied):
			response.Forbidden(w, err.Error())
		case err == usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		case err == usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case err == usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to create prescription")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Prescription created successfully", result)
}

// Get handles fetching a single prescription
// @Summary Get prescription
// @Description Get a prescription by ID
// @Tags Prescriptions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Prescription ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /prescriptions/{id} [get]
func (h *PrescriptionHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	prescriptionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid prescription ID")
		return
	}

	result, err := h.prescriptionUsecase.GetByID(r.Context(), userID, prescriptionID)
	if err != nil {
		h.writeError(w, err, "Failed to get prescription")
		return
	}

	response.Success(w, http.StatusOK, "Prescription retrieved successfully", result)
}

// ListForPatient handles listing a patient's prescriptions
// @Summary List patient prescriptions
// @Description List prescriptions of a patient, optionally active only
// @Tags Prescriptions
// @Security BearerAuth
// @Produce json
// @Param patientId path string true "Patient user ID"
// @Param active query bool false "Only active prescriptions"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /patients/{patientId}/prescriptions [get]
func (h *PrescriptionHandler) ListForPatient(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	patientID, err := uuid.Parse(mux.Vars(r)["patientId"])
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	activeOnly := r.URL.Query().Get("active") == "true"

	result, err := h.prescriptionUsecase.ListForPatient(r.Context(), userID, patientID, activeOnly)
	if err != nil {
		h.writeError(w, err, "Failed to list prescriptions")
		return
	}

	response.Success(w, http.StatusOK, "Prescriptions retrieved successfully", result)
}

// ListMine handles listing prescriptions issued by the current doctor
// @Summary List issued prescriptions
// @Description List prescriptions issued by the authenticated doctor
// @Tags Prescriptions
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /prescriptions/issued [get]
func (h *PrescriptionHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	result, err := h.prescriptionUsecase.ListForDoctor(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list prescriptions")
		return
	}

	response.Success(w, http.StatusOK, "Prescriptions retrieved successfully", result)
}

// Deactivate handles turning a prescription off
// @Summary Deactivate prescription
// @Description Deactivate a prescription (prescribing doctor only); one-way
// @Tags Prescriptions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Prescription ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /prescriptions/{id}/deactivate [put]
func (h *PrescriptionHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	prescriptionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid prescription ID")
		return
	}

	result, err := h.prescriptionUsecase.Deactivate(r.Context(), userID, prescriptionID)
	if err != nil {
		h.writeError(w, err, "Failed to deactivate prescription")
		return
	}

	response.Success(w, http.StatusOK, "Prescription deactivated successfully", result)
}

func (h *PrescriptionHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, policy.ErrDenied):
		response.Forbidden(w, err.Error())
	case err == usecase.ErrPrescriptionNotFound:
		response.NotFound(w, "Prescription not found")
	case err == usecase.ErrUserNotFound:
		response.NotFound(w, "User not found")
	default:
		response.InternalServerError(w, fallback)
	}
}
