package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type ConsultationRequest struct {
	Diagnosis            string `json:"diagnosis" validate:"required"`
	Treatment            string `json:"treatment" validate:"omitempty"`
	Recommendations      string `json:"recommendations" validate:"omitempty"`
	FollowUpInstructions string `json:"follow_up_instructions" validate:"omitempty"`
	FollowUpRequired     bool   `json:"follow_up_required"`
	DoctorNotes          string `json:"doctor_notes" validate:"omitempty"`
	VitalSigns           string `json:"vital_signs" validate:"omitempty"`
}

// Response DTOs

type ConsultationResponse struct {
	ID                   uuid.UUID `json:"id"`
	AppointmentID        uuid.UUID `json:"appointment_id"`
	Diagnosis            string    `json:"diagnosis,omitempty"`
	Treatment            string    `json:"treatment,omitempty"`
	Recommendations      string    `json:"recommendations,omitempty"`
	FollowUpInstructions string    `json:"follow_up_instructions,omitempty"`
	FollowUpRequired     bool      `json:"follow_up_required"`
	DoctorNotes          string    `json:"doctor_notes,omitempty"`
	VitalSigns           string    `json:"vital_signs,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
