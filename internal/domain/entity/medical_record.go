package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MedicalRecord is a free-form document attached to a patient. The
// UploadedBy stamp is set once at creation and never rewritten.
type MedicalRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID   uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	RecordDate  time.Time `gorm:"type:date;not null;index" json:"record_date"`
	RecordType  string    `gorm:"type:varchar(100)" json:"record_type,omitempty"`
	FileURL     string    `gorm:"type:varchar(500)" json:"file_url,omitempty"`
	FileName    string    `gorm:"type:varchar(255)" json:"file_name,omitempty"`
	UploadedBy  string    `gorm:"type:varchar(300);not null" json:"uploaded_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}

// UploaderStamp formats the immutable uploaded-by label from the
// creator's name and role.
func UploaderStamp(u *User) string {
	return fmt.Sprintf("%s (%s)", u.FullName, u.Role)
}
