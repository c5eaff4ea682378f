package converter

import (
	"github.com/google/uuid"

	"telemed-backend/internal/delivery/dto"
	"telemed-backend/internal/domain/entity"
)

func AppointmentToResponse(appointment *entity.Appointment) dto.AppointmentResponse {
	response := dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		AppointmentDate: appointment.AppointmentDate,
		Type:            string(appointment.Type),
		Status:          string(appointment.Status),
		Reason:          appointment.Reason,
		Symptoms:        appointment.Symptoms,
		Notes:           appointment.Notes,
		MeetingLink:     appointment.MeetingLink,
		DurationMinutes: appointment.DurationMinutes,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	// Include participant info if preloaded
	if appointment.Patient.User.ID != uuid.Nil {
		response.PatientName = appointment.Patient.User.FullName
	}
	if appointment.Doctor.UserID != uuid.Nil {
		response.DoctorSpecialization = appointment.Doctor.Specialization
		if appointment.Doctor.User.ID != uuid.Nil {
			response.DoctorName = appointment.Doctor.User.FullName
		}
	}

	return response
}

func AppointmentsToListResponse(appointments []entity.Appointment) dto.AppointmentListResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, AppointmentToResponse(&appointments[i]))
	}
	return dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}
}
