package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientProfile represents patient-specific profile data, one row per
// user whose role is PATIENT.
type PatientProfile struct {
	UserID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	DateOfBirth      *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender           string     `gorm:"type:varchar(10)" json:"gender,omitempty"`
	BloodType        string     `gorm:"type:varchar(5)" json:"blood_type,omitempty"`
	Allergies        string     `gorm:"type:text" json:"allergies,omitempty"`
	MedicalHistory   string     `gorm:"type:text" json:"medical_history,omitempty"`
	EmergencyContact string     `gorm:"type:varchar(255)" json:"emergency_contact,omitempty"`
	EmergencyPhone   string     `gorm:"type:varchar(20)" json:"emergency_phone,omitempty"`
	Address          string     `gorm:"type:text" json:"address,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}

// Gender constants
const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
	GenderOther  = "OTHER"
)
