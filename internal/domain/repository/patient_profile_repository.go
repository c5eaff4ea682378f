package repository

import (
	"telemed-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientProfileRepository interface {
	Create(db *gorm.DB, profile *entity.PatientProfile) error
	Update(db *gorm.DB, profile *entity.PatientProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error)
	DeleteByUserID(db *gorm.DB, userID uuid.UUID) error
	FindAll(db *gorm.DB) ([]entity.PatientProfile, error)
}
