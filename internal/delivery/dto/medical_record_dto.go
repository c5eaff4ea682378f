package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateMedicalRecordRequest struct {
	PatientID   uuid.UUID `json:"patient_id" validate:"required"`
	Title       string    `json:"title" validate:"required,max=255"`
	Description string    `json:"description" validate:"omitempty"`
	RecordDate  string    `json:"record_date" validate:"required"` // Format: YYYY-MM-DD
	RecordType  string    `json:"record_type" validate:"omitempty,max=100"`
	FileURL     string    `json:"file_url" validate:"omitempty,max=500"`
	FileName    string    `json:"file_name" validate:"omitempty,max=255"`
}

type UpdateMedicalRecordRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty"`
	RecordDate  string `json:"record_date" validate:"required"` // Format: YYYY-MM-DD
	RecordType  string `json:"record_type" validate:"omitempty,max=100"`
	FileURL     string `json:"file_url" validate:"omitempty,max=500"`
	FileName    string `json:"file_name" validate:"omitempty,max=255"`
}

// Response DTOs

type MedicalRecordResponse struct {
	ID          uuid.UUID `json:"id"`
	PatientID   uuid.UUID `json:"patient_id"`
	PatientName string    `json:"patient_name,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	RecordDate  string    `json:"record_date"`
	RecordType  string    `json:"record_type,omitempty"`
	FileURL     string    `json:"file_url,omitempty"`
	FileName    string    `json:"file_name,omitempty"`
	UploadedBy  string    `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type MedicalRecordListResponse struct {
	Records []MedicalRecordResponse `json:"records"`
	Total   int                     `json:"total"`
}
