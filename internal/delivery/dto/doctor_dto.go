package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type UpdateDoctorProfileRequest struct {
	Specialization    string          `json:"specialization" validate:"omitempty,max=100"`
	LicenseNumber     string          `json:"license_number" validate:"omitempty,max=100"`
	YearsOfExperience *int            `json:"years_of_experience" validate:"omitempty,gte=0"`
	Biography         string          `json:"biography" validate:"omitempty"`
	ConsultationFee   decimal.Decimal `json:"consultation_fee"`
	ClinicAddress     string          `json:"clinic_address" validate:"omitempty"`
	ClinicPhone       string          `json:"clinic_phone" validate:"omitempty,max=20"`
}

type UpdateAvailabilityRequest struct {
	Available *bool `json:"available" validate:"required"`
}

// Response DTOs

type DoctorResponse struct {
	UserID                   uuid.UUID       `json:"user_id"`
	FullName                 string          `json:"full_name,omitempty"`
	Email                    string          `json:"email,omitempty"`
	Specialization           string          `json:"specialization"`
	LicenseNumber            string          `json:"license_number"`
	YearsOfExperience        int             `json:"years_of_experience"`
	Biography                string          `json:"biography,omitempty"`
	ConsultationFee          decimal.Decimal `json:"consultation_fee"`
	AvailableForConsultation bool            `json:"available_for_consultation"`
	ClinicAddress            string          `json:"clinic_address,omitempty"`
	ClinicPhone              string          `json:"clinic_phone,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
