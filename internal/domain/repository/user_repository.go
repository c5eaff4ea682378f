package repository

import (
	"telemed-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	Update(db *gorm.DB, user *entity.User) error
	Delete(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	ExistsByEmail(db *gorm.DB, email string) (bool, error)
	FindAll(db *gorm.DB) ([]entity.User, error)
	CountAll(db *gorm.DB) (int64, error)
	CountByRole(db *gorm.DB, role entity.Role) (int64, error)
	CountActive(db *gorm.DB) (int64, error)
}
