package converter

import (
	"testing"
	"time"

	"telemed-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPrescriptionToResponse(t *testing.T) {
	active := true
	patientUserID := uuid.New()
	doctorUserID := uuid.New()

	p := &entity.Prescription{
		ID:             uuid.New(),
		PatientID:      patientUserID,
		DoctorID:       doctorUserID,
		MedicationName: "Amoxicillin",
		Dosage:         "500mg",
		Frequency:      "3x daily",
		DurationDays:   7,
		StartDate:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
		IsActive:       &active,
		Patient: entity.PatientProfile{
			UserID: patientUserID,
			User:   entity.User{ID: patientUserID, FullName: "Pat Doe"},
		},
		Doctor: entity.DoctorProfile{
			UserID: doctorUserID,
			User:   entity.User{ID: doctorUserID, FullName: "Dr. Gray"},
		},
	}

	resp := PrescriptionToResponse(p)

	assert.Equal(t, "2025-06-01", resp.StartDate)
	assert.Equal(t, "2025-06-08", resp.EndDate)
	assert.True(t, resp.IsActive)
	assert.Equal(t, "Pat Doe", resp.PatientName)
	assert.Equal(t, "Dr. Gray", resp.DoctorName)
}

func TestPrescriptionToResponseWithoutPreloads(t *testing.T) {
	p := &entity.Prescription{
		ID:        uuid.New(),
		PatientID: uuid.New(),
		DoctorID:  uuid.New(),
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
	}

	resp := PrescriptionToResponse(p)

	assert.Empty(t, resp.PatientName)
	assert.Empty(t, resp.DoctorName)
	assert.False(t, resp.IsActive, "nil active flag reads as inactive")
}

func TestPrescriptionsToListResponse(t *testing.T) {
	list := PrescriptionsToListResponse(nil)
	assert.NotNil(t, list.Prescriptions, "empty list serializes as [], not null")
	assert.Equal(t, 0, list.Total)
}
