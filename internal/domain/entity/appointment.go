package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "SCHEDULED"
	AppointmentStatusConfirmed  AppointmentStatus = "CONFIRMED"
	AppointmentStatusInProgress AppointmentStatus = "IN_PROGRESS"
	AppointmentStatusCompleted  AppointmentStatus = "COMPLETED"
	AppointmentStatusCancelled  AppointmentStatus = "CANCELLED"
	AppointmentStatusNoShow     AppointmentStatus = "NO_SHOW"
)

// IsValid reports whether the status is one of the known statuses
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusConfirmed, AppointmentStatusInProgress,
		AppointmentStatusCompleted, AppointmentStatusCancelled, AppointmentStatusNoShow:
		return true
	}
	return false
}

// IsTerminal reports whether no further progress is expected from the status
func (s AppointmentStatus) IsTerminal() bool {
	switch s {
	case AppointmentStatusCompleted, AppointmentStatusCancelled, AppointmentStatusNoShow:
		return true
	}
	return false
}

// AppointmentType represents the modality of an appointment
type AppointmentType string

const (
	AppointmentTypeVideo    AppointmentType = "VIDEO_CONSULTATION"
	AppointmentTypeInPerson AppointmentType = "IN_PERSON"
	AppointmentTypePhone    AppointmentType = "PHONE_CALL"
	AppointmentTypeFollowUp AppointmentType = "FOLLOW_UP"
)

func (t AppointmentType) IsValid() bool {
	switch t {
	case AppointmentTypeVideo, AppointmentTypeInPerson, AppointmentTypePhone, AppointmentTypeFollowUp:
		return true
	}
	return false
}

// Appointment references exactly one patient and one doctor profile.
// Appointments are never hard-deleted; cancellation moves the status to
// CANCELLED.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	AppointmentDate time.Time         `gorm:"not null;index" json:"appointment_date"`
	Type            AppointmentType   `gorm:"type:varchar(30);not null;default:'VIDEO_CONSULTATION'" json:"type"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'SCHEDULED';index" json:"status"`
	Reason          string            `gorm:"type:text" json:"reason,omitempty"`
	Symptoms        string            `gorm:"type:text" json:"symptoms,omitempty"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`
	MeetingLink     string            `gorm:"type:varchar(500)" json:"meeting_link,omitempty"`
	DurationMinutes int               `gorm:"default:30" json:"duration_minutes"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient      PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor       DoctorProfile  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Consultation *Consultation  `gorm:"foreignKey:AppointmentID" json:"consultation,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// CanHoldConsultation reports whether a consultation may be recorded
// against the appointment in its current status.
func (a *Appointment) CanHoldConsultation() bool {
	return a.Status == AppointmentStatusCompleted || a.Status == AppointmentStatusInProgress
}

// Cancel moves the appointment to CANCELLED. Idempotent.
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}

// Complete moves the appointment to COMPLETED.
func (a *Appointment) Complete() {
	a.Status = AppointmentStatusCompleted
}
