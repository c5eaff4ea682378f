package converter

import (
	"github.com/google/uuid"

	"telemed-backend/internal/delivery/dto"
	"telemed-backend/internal/domain/entity"
)

func MedicalRecordToResponse(record *entity.MedicalRecord) dto.MedicalRecordResponse {
	response := dto.MedicalRecordResponse{
		ID:          record.ID,
		PatientID:   record.PatientID,
		Title:       record.Title,
		Description: record.Description,
		RecordDate:  record.RecordDate.Format(dateLayout),
		RecordType:  record.RecordType,
		FileURL:     record.FileURL,
		FileName:    record.FileName,
		UploadedBy:  record.UploadedBy,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}

	if record.Patient.User.ID != uuid.Nil {
		response.PatientName = record.Patient.User.FullName
	}

	return response
}

func MedicalRecordsToListResponse(records []entity.MedicalRecord) dto.MedicalRecordListResponse {
	responses := make([]dto.MedicalRecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, MedicalRecordToResponse(&records[i]))
	}
	return dto.MedicalRecordListResponse{
		Records: responses,
		Total:   len(responses),
	}
}
