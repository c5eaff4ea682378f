package entity

import (
	"time"

	"github.com/google/uuid"
)

// Prescription references a patient and the prescribing doctor. Once
// deactivated a prescription is never reactivated.
type Prescription struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID      uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID       uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	MedicationName string    `gorm:"type:varchar(255);not null" json:"medication_name"`
	Dosage         string    `gorm:"type:varchar(100);not null" json:"dosage"`
	Frequency      string    `gorm:"type:varchar(100);not null" json:"frequency"`
	DurationDays   int       `gorm:"not null" json:"duration_days"`
	Instructions   string    `gorm:"type:text" json:"instructions,omitempty"`
	StartDate      time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate        time.Time `gorm:"type:date;not null" json:"end_date"`
	IsActive       *bool     `gorm:"not null;default:true;index" json:"is_active"`
	Notes          string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  DoctorProfile  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

// Active reports the active flag, treating nil as inactive.
func (p *Prescription) Active() bool {
	return p.IsActive != nil && *p.IsActive
}

// Deactivate turns the prescription off. One-way.
func (p *Prescription) Deactivate() {
	inactive := false
	p.IsActive = &inactive
}

// RecalculateEndDate derives EndDate as StartDate plus the duration in
// days.
func (p *Prescription) RecalculateEndDate() {
	p.EndDate = p.StartDate.AddDate(0, 0, p.DurationDays)
}
