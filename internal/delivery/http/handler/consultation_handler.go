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

type ConsultationHandler struct {
	consultationUsecase usecase.ConsultationUsecase
	validator           *validator.CustomValidator
}

func NewConsultationHandler(consultationUsecase usecase.ConsultationUsecase, validator *validator.CustomValidator) *ConsultationHandler {
	return &ConsultationHandler{
		consultationUsecase: consultationUsecase,
		validator:           validator,
	}
}

// Create handles recording a consultation outcome
// @Summary Record consultation
// @Description Record the clinical outcome of an appointment (owning doctor only); completes the appointment
// @Tags Consultations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.ConsultationRequest true "Consultation Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /appointments/{id}/consultation [post]
func (h *ConsultationHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	var req dto.ConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.consultationUsecase.Create(r.Context(), userID, appointmentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, policy.ErrDenied):
			response.Forbidden(w, err.Error())
		case err == usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case err == usecase.ErrConsultationNotAllowed:
			response.BadRequest(w, "Appointment is not in a consultable status")
		case err == usecase.ErrConsultationExists:
			response.BadRequest(w, "Consultation already recorded for this appointment")
		default:
			response.InternalServerError(w, "Failed to record consultation")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Consultation recorded successfully", result)
}

// Get handles fetching the consultation of an appointment
// @Summary Get consultation
// @Description Get the consultation recorded for an appointment
// @Tags Consultations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/{id}/consultation [get]
func (h *ConsultationHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	result, err := h.consultationUsecase.GetByAppointmentID(r.Context(), userID, appointmentID)
	if err != nil {
		h.writeError(w, err, "Failed to get consultation")
		return
	}

	response.Success(w, http.StatusOK, "Consultation retrieved successfully", result)
}

// Update handles amending a consultation
// @Summary Update consultation
// @Description Amend a recorded consultation (owning doctor only)
// @Tags Consultations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.ConsultationRequest true "Consultation Request"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/{id}/consultation [put]
func (h *ConsultationHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	var req dto.ConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.consultationUsecase.Update(r.Context(), userID, appointmentID, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update consultation")
		return
	}

	response.Success(w, http.StatusOK, "Consultation updated successfully", result)
}

func (h *ConsultationHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, policy.ErrDenied):
		response.Forbidden(w, err.Error())
	case err == usecase.ErrAppointmentNotFound:
		response.NotFound(w, "Appointment not found")
	case err == usecase.ErrConsultationNotFound:
		response.NotFound(w, "Consultation not found")
	case err == usecase.ErrUserNotFound:
		response.NotFound(w, "User not found")
	default:
		response.InternalServerError(w, fallback)
	}
}
