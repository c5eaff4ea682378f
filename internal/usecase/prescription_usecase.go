package usecase

import (
	"context"
	"errors"
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

var (
	ErrPrescriptionNotFound = errors.New("prescription not found")
	ErrPatientNotFound      = errors.New("patient not found")
)

type PrescriptionUsecase interface {
	Create(ctx context.Context, doctorUserID uuid.UUID, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	GetByID(ctx context.Context, actorID, prescriptionID uuid.UUID) (*dto.PrescriptionResponse, error)
	ListForPatient(ctx context.Context, actorID, patientUserID uuid.UUID, activeOnly bool) (*dto.PrescriptionListResponse, error)
	ListForDoctor(ctx context.Context, doctorUserID uuid.UUID) (*dto.PrescriptionListResponse, error)
	Deactivate(ctx context.Context, actorID, prescriptionID uuid.UUID) (*dto.PrescriptionResponse, error)
}

type prescriptionUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	userRepo           repository.UserRepository
	prescriptionRepo   repository.PrescriptionRepository
	patientProfileRepo repository.PatientProfileRepository
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	prescriptionRepo repository.PrescriptionRepository,
	patientProfileRepo repository.PatientProfileRepository,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:                 db,
		log:                log,
		userRepo:           userRepo,
		prescriptionRepo:   prescriptionRepo,
		patientProfileRepo: patientProfileRepo,
	}
}

func (u *prescriptionUsecase) Create(ctx context.Context, doctorUserID uuid.UUID, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	actor, err := u.userRepo.FindByID(tx, doctorUserID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if actor == nil {
		return nil, ErrUserNotFound
	}

	if err := policy.CanAccess(actor, policy.Links{PatientUserID: req.PatientID}, policy.ResourcePrescription, policy.OpCreate); err != nil {
		return nil, err
	}

	patientProfile, err := u.patientProfileRepo.FindByUserID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if patientProfile == nil {
		return nil, ErrPatientNotFound
	}

	active := true
	prescription := &entity.Prescription{
		PatientID:      req.PatientID,
		DoctorID:       doctorUserID,
		MedicationName: req.MedicationName,
		Dosage:         req.Dosage,
		Frequency:      req.Frequency,
		DurationDays:   req.DurationDays,
		Instructions:   req.Instructions,
		StartDate:      startDate,
		IsActive:       &active,
		Notes:          req.Notes,
	}
	prescription.RecalculateEndDate()

	if err := u.prescriptionRepo.Create(tx, prescription); err != nil {
		if isForeignKeyError(err, "doctor") {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.reload(ctx, prescription.ID)
}

func (u *prescriptionUsecase) GetByID(ctx context.Context, actorID, prescriptionID uuid.UUID) (*dto.PrescriptionResponse, error) {
	db := u.db.WithContext(ctx)

	actor, err := u.userRepo.FindByID(db, actorID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if actor == nil {
		return nil, ErrUserNotFound
	}

	prescription, err := u.prescriptionRepo.FindByID(db, prescriptionID)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	if err := policy.CanAccess(actor, prescriptionLinks(prescription), policy.ResourcePrescription, policy.OpRead); err != nil {
		return nil, err
	}

	response := converter.PrescriptionToResponse(prescription)
	return &response, nil
}

func (u *prescriptionUsecase) ListForPatient(ctx context.Context, actorID, patientUserID uuid.UUID, activeOnly bool) (*dto.PrescriptionListResponse, error) {
	db := u.db.WithContext(ctx)

	actor, err := u.userRepo.FindByID(db, actorID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if actor == nil {
		return nil, ErrUserNotFound
	}

	if err := policy.CanAccess(actor, policy.Links{PatientUserID: patientUserID}, policy.ResourcePrescription, policy.OpRead); err != nil {
		return nil, err
	}

	var prescriptions []entity.Prescription
	if activeOnly {
		prescriptions, err = u.prescriptionRepo.FindActiveByPatientID(db, patientUserID)
	} else {
		prescriptions, err = u.prescriptionRepo.FindByPatientID(db, patientUserID)
	}
	if err != nil {
		u.log.Warnf("Failed to list prescriptions: %+v", err)
		return nil, err
	}

	response := converter.PrescriptionsToListResponse(prescriptions)
	return &response, nil
}

func (u *prescriptionUsecase) ListForDoctor(ctx context.Context, doctorUserID uuid.UUID) (*dto.PrescriptionListResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindByDoctorID(u.db.WithContext(ctx), doctorUserID)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions: %+v", err)
		return nil, err
	}

	response := converter.PrescriptionsToListResponse(prescriptions)
	return &response, nil
}

func (u *prescriptionUsecase) Deactivate(ctx context.Context, actorID, prescriptionID uuid.UUID) (*dto.PrescriptionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	actor, err := u.userRepo.FindByID(tx, actorID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if actor == nil {
		return nil, ErrUserNotFound
	}

	prescription, err := u.prescriptionRepo.FindByID(tx, prescriptionID)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	if err := policy.CanAccess(actor, prescriptionLinks(prescription), policy.ResourcePrescription, policy.OpUpdate); err != nil {
		return nil, err
	}

	// Deactivation is one-way; repeating it changes nothing.
	if prescription.Active() {
		prescription.Deactivate()

		if err := u.prescriptionRepo.Update(tx, prescription); err != nil {
			u.log.Warnf("Failed to deactivate prescription: %+v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	response := converter.PrescriptionToResponse(prescription)
	return &response, nil
}

func (u *prescriptionUsecase) reload(ctx context.Context, prescriptionID uuid.UUID) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByID(u.db.WithContext(ctx), prescriptionID)
	if err != nil {
		u.log.Warnf("Failed to reload prescription: %+v", err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	response := converter.PrescriptionToResponse(prescription)
	return &response, nil
}

func prescriptionLinks(prescription *entity.Prescription) policy.Links {
	return policy.Links{
		PatientUserID: prescription.PatientID,
		DoctorUserID:  prescription.DoctorID,
	}
}
