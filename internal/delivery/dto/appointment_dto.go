package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID        uuid.UUID `json:"doctor_id" validate:"required"`
	AppointmentDate time.Time `json:"appointment_date" validate:"required"`
	Type            string    `json:"type" validate:"omitempty,oneof=VIDEO_CONSULTATION IN_PERSON PHONE_CALL FOLLOW_UP"`
	Reason          string    `json:"reason" validate:"omitempty,max=2000"`
	Symptoms        string    `json:"symptoms" validate:"omitempty,max=2000"`
	DurationMinutes int       `json:"duration_minutes" validate:"omitempty,gte=5,lte=240"`
}

// UpdateAppointmentRequest uses pointers so absent fields are left
// untouched.
type UpdateAppointmentRequest struct {
	AppointmentDate *time.Time `json:"appointment_date"`
	Status          *string    `json:"status" validate:"omitempty,oneof=SCHEDULED CONFIRMED IN_PROGRESS COMPLETED CANCELLED NO_SHOW"`
	Notes           *string    `json:"notes" validate:"omitempty,max=2000"`
	MeetingLink     *string    `json:"meeting_link" validate:"omitempty,max=500"`
}

// Response DTOs

type AppointmentResponse struct {
	ID                   uuid.UUID `json:"id"`
	PatientID            uuid.UUID `json:"patient_id"`
	PatientName          string    `json:"patient_name,omitempty"`
	DoctorID             uuid.UUID `json:"doctor_id"`
	DoctorName           string    `json:"doctor_name,omitempty"`
	DoctorSpecialization string    `json:"doctor_specialization,omitempty"`
	AppointmentDate      time.Time `json:"appointment_date"`
	Type                 string    `json:"type"`
	Status               string    `json:"status"`
	Reason               string    `json:"reason,omitempty"`
	Symptoms             string    `json:"symptoms,omitempty"`
	Notes                string    `json:"notes,omitempty"`
	MeetingLink          string    `json:"meeting_link,omitempty"`
	DurationMinutes      int       `json:"duration_minutes"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
