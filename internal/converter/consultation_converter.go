package converter

import (
	"telemed-backend/internal/delivery/dto"
	"telemed-backend/internal/domain/entity"
)

func ConsultationToResponse(consultation *entity.Consultation) dto.ConsultationResponse {
	followUp := false
	if consultation.FollowUpRequired != nil {
		followUp = *consultation.FollowUpRequired
	}

	return dto.ConsultationResponse{
		ID:                   consultation.ID,
		AppointmentID:        consultation.AppointmentID,
		Diagnosis:            consultation.Diagnosis,
		Treatment:            consultation.Treatment,
		Recommendations:      consultation.Recommendations,
		FollowUpInstructions: consultation.FollowUpInstructions,
		FollowUpRequired:     followUp,
		DoctorNotes:          consultation.DoctorNotes,
		VitalSigns:           consultation.VitalSigns,
		CreatedAt:            consultation.CreatedAt,
		UpdatedAt:            consultation.UpdatedAt,
	}
}
