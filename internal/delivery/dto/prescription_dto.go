package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePrescriptionRequest struct {
	PatientID      uuid.UUID `json:"patient_id" validate:"required"`
	MedicationName string    `json:"medication_name" validate:"required,max=255"`
	Dosage         string    `json:"dosage" validate:"required,max=100"`
	Frequency      string    `json:"frequency" validate:"required,max=100"`
	DurationDays   int       `json:"duration_days" validate:"required,gte=1"`
	Instructions   string    `json:"instructions" validate:"omitempty"`
	StartDate      string    `json:"start_date" validate:"required"` // Format: YYYY-MM-DD
	Notes          string    `json:"notes" validate:"omitempty"`
}

// Response DTOs

type PrescriptionResponse struct {
	ID             uuid.UUID `json:"id"`
	PatientID      uuid.UUID `json:"patient_id"`
	PatientName    string    `json:"patient_name,omitempty"`
	DoctorID       uuid.UUID `json:"doctor_id"`
	DoctorName     string    `json:"doctor_name,omitempty"`
	MedicationName string    `json:"medication_name"`
	Dosage         string    `json:"dosage"`
	Frequency      string    `json:"frequency"`
	DurationDays   int       `json:"duration_days"`
	Instructions   string    `json:"instructions,omitempty"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	IsActive       bool      `json:"is_active"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type PrescriptionListResponse struct {
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
	Total         int                    `json:"total"`
}
