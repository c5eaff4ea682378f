package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type UpdatePatientProfileRequest struct {
	DateOfBirth      string `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	Gender           string `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	BloodType        string `json:"blood_type" validate:"omitempty,max=5"`
	Allergies        string `json:"allergies" validate:"omitempty"`
	MedicalHistory   string `json:"medical_history" validate:"omitempty"`
	EmergencyContact string `json:"emergency_contact" validate:"omitempty,max=255"`
	EmergencyPhone   string `json:"emergency_phone" validate:"omitempty,max=20"`
	Address          string `json:"address" validate:"omitempty"`
}

// Response DTOs

type PatientResponse struct {
	UserID           uuid.UUID `json:"user_id"`
	FullName         string    `json:"full_name,omitempty"`
	Email            string    `json:"email,omitempty"`
	DateOfBirth      string    `json:"date_of_birth,omitempty"`
	Gender           string    `json:"gender,omitempty"`
	BloodType        string    `json:"blood_type,omitempty"`
	Allergies        string    `json:"allergies,omitempty"`
	MedicalHistory   string    `json:"medical_history,omitempty"`
	EmergencyContact string    `json:"emergency_contact,omitempty"`
	EmergencyPhone   string    `json:"emergency_phone,omitempty"`
	Address          string    `json:"address,omitempty"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
