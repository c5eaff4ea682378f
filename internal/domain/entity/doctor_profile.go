package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Placeholder values assigned when a doctor profile is created without
// real credentials (self registration or role promotion). The doctor is
// expected to edit these afterwards.
const (
	DefaultSpecialization = "General Medicine"
	licensePrefix         = "LIC-"
)

// DoctorProfile represents doctor-specific profile data, one row per
// user whose role is DOCTOR.
type DoctorProfile struct {
	UserID                   uuid.UUID       `gorm:"type:uuid;primaryKey" json:"user_id"`
	Specialization           string          `gorm:"type:varchar(100);not null;index" json:"specialization"`
	LicenseNumber            string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"license_number"`
	YearsOfExperience        int             `gorm:"default:0" json:"years_of_experience"`
	Biography                string          `gorm:"type:text" json:"biography,omitempty"`
	ConsultationFee          decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"consultation_fee"`
	AvailableForConsultation *bool           `gorm:"not null;default:true;index" json:"available_for_consultation"`
	ClinicAddress            string          `gorm:"type:text" json:"clinic_address,omitempty"`
	ClinicPhone              string          `gorm:"type:varchar(20)" json:"clinic_phone,omitempty"`
	CreatedAt                time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}

// Available reports the availability flag, treating nil as unavailable.
func (d *DoctorProfile) Available() bool {
	return d.AvailableForConsultation != nil && *d.AvailableForConsultation
}

// GenerateLicenseNumber synthesizes a unique placeholder license token
// for auto-created doctor profiles. Not a real license; uniqueness is
// what the doctor_profiles unique index needs.
func GenerateLicenseNumber() string {
	return fmt.Sprintf("%s%s", licensePrefix, uuid.New().String())
}
