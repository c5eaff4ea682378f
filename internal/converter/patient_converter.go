package converter

import (
	"github.com/google/uuid"

	"telemed-backend/internal/delivery/dto"
	"telemed-backend/internal/domain/entity"
)

func PatientProfileToResponse(profile *entity.PatientProfile) dto.PatientResponse {
	response := dto.PatientResponse{
		UserID:           profile.UserID,
		Gender:           string(profile.Gender),
		BloodType:        profile.BloodType,
		Allergies:        profile.Allergies,
		MedicalHistory:   profile.MedicalHistory,
		EmergencyContact: profile.EmergencyContact,
		EmergencyPhone:   profile.EmergencyPhone,
		Address:          profile.Address,
	}

	if profile.DateOfBirth != nil {
		response.DateOfBirth = profile.DateOfBirth.Format(dateLayout)
	}
	if profile.User.ID != uuid.Nil {
		response.FullName = profile.User.FullName
		response.Email = profile.User.Email
	}

	return response
}

func PatientProfilesToListResponse(profiles []entity.PatientProfile) dto.PatientListResponse {
	responses := make([]dto.PatientResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, PatientProfileToResponse(&profiles[i]))
	}
	return dto.PatientListResponse{
		Patients: responses,
		Total:    len(responses),
	}
}
