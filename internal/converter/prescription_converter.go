package converter

import (
	"github.com/google/uuid"

	"telemed-backend/internal/delivery/dto"
	"telemed-backend/internal/domain/entity"
)

func PrescriptionToResponse(prescription *entity.Prescription) dto.PrescriptionResponse {
	response := dto.PrescriptionResponse{
		ID:             prescription.ID,
		PatientID:      prescription.PatientID,
		DoctorID:       prescription.DoctorID,
		MedicationName: prescription.MedicationName,
		Dosage:         prescription.Dosage,
		Frequency:      prescription.Frequency,
		DurationDays:   prescription.DurationDays,
		Instructions:   prescription.Instructions,
		StartDate:      prescription.StartDate.Format(dateLayout),
		EndDate:        prescription.EndDate.Format(dateLayout),
		IsActive:       prescription.Active(),
		Notes:          prescription.Notes,
		CreatedAt:      prescription.CreatedAt,
	}

	if prescription.Patient.User.ID != uuid.Nil {
		response.PatientName = prescription.Patient.User.FullName
	}
	if prescription.Doctor.User.ID != uuid.Nil {
		response.DoctorName = prescription.Doctor.User.FullName
	}

	return response
}

func PrescriptionsToListResponse(prescriptions []entity.Prescription) dto.PrescriptionListResponse {
	responses := make([]dto.PrescriptionResponse, 0, len(prescriptions))
	for i := range prescriptions {
		responses = append(responses, PrescriptionToResponse(&prescriptions[i]))
	}
	return dto.PrescriptionListResponse{
		Prescriptions: responses,
		Total:         len(responses),
	}
}
