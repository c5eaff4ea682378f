package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=ADMIN DOCTOR PATIENT"`
}

type UpdateUserStatusRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// Response DTOs

// StatisticsResponse aggregates the admin dashboard counters.
type StatisticsResponse struct {
	TotalUsers             int64 `json:"total_users"`
	TotalPatients          int64 `json:"total_patients"`
	TotalDoctors           int64 `json:"total_doctors"`
	TotalAdmins            int64 `json:"total_admins"`
	ActiveUsers            int64 `json:"active_users"`
	TotalAppointments      int64 `json:"total_appointments"`
	ScheduledAppointments  int64 `json:"scheduled_appointments"`
	CompletedAppointments  int64 `json:"completed_appointments"`
	CancelledAppointments  int64 `json:"cancelled_appointments"`
	TotalPrescriptions     int64 `json:"total_prescriptions"`
	ActivePrescriptions    int64 `json:"active_prescriptions"`
	TotalMedicalRecords    int64 `json:"total_medical_records"`
	TotalConsultations     int64 `json:"total_consultations"`
}

type AuditLogResponse struct {
	ID        int64                  `json:"id"`
	UserID    *uuid.UUID             `json:"user_id,omitempty"`
	Action    string                 `json:"action"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}
