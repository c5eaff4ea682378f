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

type MedicalRecordHandler struct {
	medicalRecordUsecase usecase.MedicalRecordUsecase
	validator            *validator.CustomValidator
}

func NewMedicalRecordHandler(medicalRecordUsecase usecase.MedicalRecordUsecase, validator *validator.CustomValidator) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		medicalRecordUsecase: medicalRecordUsecase,
		validator:            validator,
	}
}

// Create handles uploading a medical record
// @Summary Create medical record
// @Description Attach a medical record document to a patient
// @Tags MedicalRecords
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateMedicalRecordRequest true "Create Medical Record Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /medical-records [post]
func (h *MedicalRecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.medicalRecordUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, policy.ErrDenied):
			response.Forbidden(w, err.Error())
		case err == usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		case err == usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to create medical record")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medical record created successfully", result)
}

// Get handles fetching a single medical record
// @Summary Get medical record
// @Description Get a medical record by ID
// @Tags MedicalRecords
// @Security BearerAuth
// @Produce json
// @Param id path string true "Medical Record ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medical-records/{id} [get]
func (h *MedicalRecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	recordID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid medical record ID")
		return
	}

	result, err := h.medicalRecordUsecase.GetByID(r.Context(), userID, recordID)
	if err != nil {
		h.writeError(w, err, "Failed to get medical record")
		return
	}

	response.Success(w, http.StatusOK, "Medical record retrieved successfully", result)
}

// ListForPatient handles listing a patient's medical records
// @Summary List patient medical records
// @Description List all medical records of a patient
// @Tags MedicalRecords
// @Security BearerAuth
// @Produce json
// @Param patientId path string true "Patient user ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /patients/{patientId}/medical-records [get]
func (h *MedicalRecordHandler) ListForPatient(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.medicalRecordUsecase.ListForPatient(r.Context(), userID, patientID)
	if err != nil {
		h.writeError(w, err, "Failed to list medical records")
		return
	}

	response.Success(w, http.StatusOK, "Medical records retrieved successfully", result)
}

// Update handles amending a medical record
// @Summary Update medical record
// @Description Update a medical record; the uploader stamp never changes
// @Tags MedicalRecords
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Medical Record ID"
// @Param request body dto.UpdateMedicalRecordRequest true "Update Medical Record Request"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medical-records/{id} [put]
func (h *MedicalRecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	recordID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid medical record ID")
		return
	}

	var req dto.UpdateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.medicalRecordUsecase.Update(r.Context(), userID, recordID, &req)
	if err != nil {
		switch {
		case errors.Is(err, policy.ErrDenied):
			response.Forbidden(w, err.Error())
		case err == usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		case err == usecase.ErrMedicalRecordNotFound:
			response.NotFound(w, "Medical record not found")
		default:
			response.InternalServerError(w, "Failed to update medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record updated successfully", result)
}

// Delete handles removing a medical record
// @Summary Delete medical record
// @Description Delete a medical record (admin only)
// @Tags MedicalRecords
// @Security BearerAuth
// @Produce json
// @Param id path string true "Medical Record ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medical-records/{id} [delete]
func (h *MedicalRecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	recordID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid medical record ID")
		return
	}

	if err := h.medicalRecordUsecase.Delete(r.Context(), userID, recordID); err != nil {
		h.writeError(w, err, "Failed to delete medical record")
		return
	}

	response.Success(w, http.StatusOK, "Medical record deleted successfully", nil)
}

func (h *MedicalRecordHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, policy.ErrDenied):
		response.Forbidden(w, err.Error())
	case err == usecase.ErrMedicalRecordNotFound:
		response.NotFound(w, "Medical record not found")
	case err == usecase.ErrUserNotFound:
		response.NotFound(w, "User not found")
	default:
		response.InternalServerError(w, fallback)
	}
}
