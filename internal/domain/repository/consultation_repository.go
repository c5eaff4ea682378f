package repository

import (
	"telemed-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConsultationRepository interface {
	Create(db *gorm.DB, consultation *entity.Consultation) error
	Update(db *gorm.DB, consultation *entity.Consultation) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Consultation, error)
	FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.Consultation, error)
	CountAll(db *gorm.DB) (int64, error)
}
