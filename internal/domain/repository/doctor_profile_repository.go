package repository

import (
	"telemed-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorProfileRepository interface {
	Create(db *gorm.DB, profile *entity.DoctorProfile) error
	Update(db *gorm.DB, profile *entity.DoctorProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
	DeleteByUserID(db *gorm.DB, userID uuid.UUID) error
	FindAll(db *gorm.DB) ([]entity.DoctorProfile, error)
	FindAvailable(db *gorm.DB) ([]entity.DoctorProfile, error)
	FindBySpecialization(db *gorm.DB, specialization string) ([]entity.DoctorProfile, error)
}
