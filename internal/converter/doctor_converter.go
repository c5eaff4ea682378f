package converter

import (
	"github.com/google/uuid"

	"telemed-backend/internal/delivery/dto"
	"telemed-backend/internal/domain/entity"
)

func DoctorProfileToResponse(profile *entity.DoctorProfile) dto.DoctorResponse {
	response := dto.DoctorResponse{
		UserID:                   profile.UserID,
		Specialization:           profile.Specialization,
		LicenseNumber:            profile.LicenseNumber,
		YearsOfExperience:        profile.YearsOfExperience,
		Biography:                profile.Biography,
		ConsultationFee:          profile.ConsultationFee,
		AvailableForConsultation: profile.Available(),
		ClinicAddress:            profile.ClinicAddress,
		ClinicPhone:              profile.ClinicPhone,
	}

	if profile.User.ID != uuid.Nil {
		response.FullName = profile.User.FullName
		response.Email = profile.User.Email
	}

	return response
}

func DoctorProfilesToListResponse(profiles []entity.DoctorProfile) dto.DoctorListResponse {
	responses := make([]dto.DoctorResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, DoctorProfileToResponse(&profiles[i]))
	}
	return dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(responses),
	}
}
