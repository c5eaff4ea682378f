package usecase

import (
	"context"
	"errors"

	"telemed-backend/internal/converter"
	"telemed-backend/internal/delivery/dto"
	"telemed-backend/internal/domain/entity"
	"telemed-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorProfileNotFound = errors.New("doctor profile not found")
	ErrLicenseAlreadyExists  = errors.New("license number already exists")
)

type DoctorProfileUsecase interface {
	GetMyProfile(ctx context.Context, doctorUserID uuid.UUID) (*dto.DoctorResponse, error)
	UpdateMyProfile(ctx context.Context, doctorUserID uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorResponse, error)
	SetAvailability(ctx context.Context, doctorUserID uuid.UUID, req *dto.UpdateAvailabilityRequest) (*dto.DoctorResponse, error)
	GetByUserID(ctx context.Context, doctorUserID uuid.UUID) (*dto.DoctorResponse, error)
	ListDoctors(ctx context.Context, specialization string, availableOnly bool) (*dto.DoctorListResponse, error)
}

type doctorProfileUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	doctorProfileRepo repository.DoctorProfileRepository
}

func NewDoctorProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorProfileRepo repository.DoctorProfileRepository,
) DoctorProfileUsecase {
	return &doctorProfileUsecase{
		db:                db,
		log:               log,
		doctorProfileRepo: doctorProfileRepo,
	}
}

func (u *doctorProfileUsecase) GetMyProfile(ctx context.Context, doctorUserID uuid.UUID) (*dto.DoctorResponse, error) {
	return u.GetByUserID(ctx, doctorUserID)
}

func (u *doctorProfileUsecase) UpdateMyProfile(ctx context.Context, doctorUserID uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorProfileRepo.FindByUserID(tx, doctorUserID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorProfileNotFound
	}

	if req.Specialization != "" {
		profile.Specialization = req.Specialization
	}
	if req.LicenseNumber != "" {
		profile.LicenseNumber = req.LicenseNumber
	}
	if req.YearsOfExperience != nil {
		profile.YearsOfExperience = *req.YearsOfExperience
	}
	if req.Biography != "" {
		profile.Biography = req.Biography
	}
	if !req.ConsultationFee.IsZero() {
		profile.ConsultationFee = req.ConsultationFee
	}
	if req.ClinicAddress != "" {
		profile.ClinicAddress = req.ClinicAddress
	}
	if req.ClinicPhone != "" {
		profile.ClinicPhone = req.ClinicPhone
	}

	if err := u.doctorProfileRepo.Update(tx, profile); err != nil {
		if isDuplicateKeyError(err, "license") {
			return nil, ErrLicenseAlreadyExists
		}
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.GetByUserID(ctx, doctorUserID)
}

func (u *doctorProfileUsecase) SetAvailability(ctx context.Context, doctorUserID uuid.UUID, req *dto.UpdateAvailabilityRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorProfileRepo.FindByUserID(tx, doctorUserID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorProfileNotFound
	}

	profile.AvailableForConsultation = req.Available
	if err := u.doctorProfileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update doctor availability: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.GetByUserID(ctx, doctorUserID)
}

func (u *doctorProfileUsecase) GetByUserID(ctx context.Context, doctorUserID uuid.UUID) (*dto.DoctorResponse, error) {
	profile, err := u.doctorProfileRepo.FindByUserID(u.db.WithContext(ctx), doctorUserID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorProfileNotFound
	}

	response := converter.DoctorProfileToResponse(profile)
	return &response, nil
}

func (u *doctorProfileUsecase) ListDoctors(ctx context.Context, specialization string, availableOnly bool) (*dto.DoctorListResponse, error) {
	db := u.db.WithContext(ctx)

	var (
		profiles []entity.DoctorProfile
		err      error
	)
	switch {
	case specialization != "":
		profiles, err = u.doctorProfileRepo.FindBySpecialization(db, specialization)
	case availableOnly:
		profiles, err = u.doctorProfileRepo.FindAvailable(db)
	default:
		profiles, err = u.doctorProfileRepo.FindAll(db)
	}
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	response := converter.DoctorProfilesToListResponse(profiles)
	return &response, nil
}
