package entity

import (
	"time"

	"github.com/google/uuid"
)

// Consultation holds the clinical outcome of an appointment. At most
// one consultation exists per appointment, enforced by the unique index
// on appointment_id.
type Consultation struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentID        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"appointment_id"`
	Diagnosis            string    `gorm:"type:text" json:"diagnosis,omitempty"`
	Treatment            string    `gorm:"type:text" json:"treatment,omitempty"`
	Recommendations      string    `gorm:"type:text" json:"recommendations,omitempty"`
	FollowUpInstructions string    `gorm:"type:text" json:"follow_up_instructions,omitempty"`
	FollowUpRequired     *bool     `gorm:"not null;default:false" json:"follow_up_required"`
	DoctorNotes          string    `gorm:"type:text" json:"doctor_notes,omitempty"`
	VitalSigns           string    `gorm:"type:text" json:"vital_signs,omitempty"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (Consultation) TableName() string {
	return "consultations"
}
