package converter

import (
	"telemed-backend/internal/delivery/dto"
	"telemed-backend/internal/domain/entity"
)

func AuditLogToResponse(log *entity.AuditLog) dto.AuditLogResponse {
	return dto.AuditLogResponse{
		ID:        log.ID,
		UserID:    log.UserID,
		Action:    log.Action,
		Metadata:  log.Metadata,
		CreatedAt: log.CreatedAt,
	}
}

func AuditLogsToListResponse(logs []entity.AuditLog) dto.AuditLogListResponse {
	responses := make([]dto.AuditLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, AuditLogToResponse(&logs[i]))
	}
	return dto.AuditLogListResponse{
		Logs:  responses,
		Total: len(responses),
	}
}
