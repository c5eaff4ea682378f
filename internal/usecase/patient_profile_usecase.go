package usecase

import (
	"context"
	"fmt"
	"time"

	"telemed-backend/internal/converter"
	"telemed-backend/internal/delivery/dto"
	"telemed-backend/internal/domain/entity"
	"telemed-backend/internal/domain/policy"
	"telemed-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientProfileUsecase interface {
	GetMyProfile(ctx context.Context, patientUserID uuid.UUID) (*dto.PatientResponse, error)
	UpdateMyProfile(ctx context.Context, patientUserID uuid.UUID, req *dto.UpdatePatientProfileRequest) (*dto.PatientResponse, error)
	GetByUserID(ctx context.Context, actorID, patientUserID uuid.UUID) (*dto.PatientResponse, error)
	ListPatients(ctx context.Context) (*dto.PatientListResponse, error)
}

type patientProfileUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	userRepo           repository.UserRepository
	patientProfileRepo repository.PatientProfileRepository
}

func NewPatientProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientProfileRepo repository.PatientProfileRepository,
) PatientProfileUsecase {
	return &patientProfileUsecase{
		db:                 db,
		log:                log,
		userRepo:           userRepo,
		patientProfileRepo: patientProfileRepo,
	}
}

func (u *patientProfileUsecase) GetMyProfile(ctx context.Context, patientUserID uuid.UUID) (*dto.PatientResponse, error) {
	return u.fetch(ctx, patientUserID)
}

func (u *patientProfileUsecase) UpdateMyProfile(ctx context.Context, patientUserID uuid.UUID, req *dto.UpdatePatientProfileRequest) (*dto.PatientResponse, error) {
	var dob *time.Time
	if req.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		dob = &parsed
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.patientProfileRepo.FindByUserID(tx, patientUserID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientProfileNotFound
	}

	if dob != nil {
		profile.DateOfBirth = dob
	}
	if req.Gender != "" {
		profile.Gender = req.Gender
	}
	if req.BloodType != "" {
		profile.BloodType = req.BloodType
	}
	if req.Allergies != "" {
		profile.Allergies = req.Allergies
	}
	if req.MedicalHistory != "" {
		profile.MedicalHistory = req.MedicalHistory
	}
	if req.EmergencyContact != "" {
		profile.EmergencyContact = req.EmergencyContact
	}
	if req.EmergencyPhone != "" {
		profile.EmergencyPhone = req.EmergencyPhone
	}
	if req.Address != "" {
		profile.Address = req.Address
	}

	if err := u.patientProfileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update patient profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.fetch(ctx, patientUserID)
}

// GetByUserID serves the clinical view of a patient profile: the
// patient themselves, any doctor, or an admin.
func (u *patientProfileUsecase) GetByUserID(ctx context.Context, actorID, patientUserID uuid.UUID) (*dto.PatientResponse, error) {
	db := u.db.WithContext(ctx)

	actor, err := u.userRepo.FindByID(db, actorID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if actor == nil {
		return nil, ErrUserNotFound
	}

	allowed := actor.Role == entity.RoleAdmin ||
		actor.Role == entity.RoleDoctor ||
		actor.ID == patientUserID
	if !allowed {
		return nil, fmt.Errorf("%w: you don't have permission to read this patient profile", policy.ErrDenied)
	}

	return u.fetch(ctx, patientUserID)
}

func (u *patientProfileUsecase) ListPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	profiles, err := u.patientProfileRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	response := converter.PatientProfilesToListResponse(profiles)
	return &response, nil
}

func (u *patientProfileUsecase) fetch(ctx context.Context, patientUserID uuid.UUID) (*dto.PatientResponse, error) {
	profile, err := u.patientProfileRepo.FindByUserID(u.db.WithContext(ctx), patientUserID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientProfileNotFound
	}

	response := converter.PatientProfileToResponse(profile)
	return &response, nil
}
