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

var ErrMedicalRecordNotFound = errors.New("medical record not found")

type MedicalRecordUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	GetByID(ctx context.Context, actorID, recordID uuid.UUID) (*dto.MedicalRecordResponse, error)
	ListForPatient(ctx context.Context, actorID, patientUserID uuid.UUID) (*dto.MedicalRecordListResponse, error)
	Update(ctx context.Context, actorID, recordID uuid.UUID, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	Delete(ctx context.Context, actorID, recordID uuid.UUID) error
}

type medicalRecordUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	userRepo           repository.UserRepository
	medicalRecordRepo  repository.MedicalRecordRepository
	patientProfileRepo repository.PatientProfileRepository
}

func NewMedicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	medicalRecordRepo repository.MedicalRecordRepository,
	patientProfileRepo repository.PatientProfileRepository,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		db:                 db,
		log:                log,
		userRepo:           userRepo,
		medicalRecordRepo:  medicalRecordRepo,
		patientProfileRepo: patientProfileRepo,
	}
}

func (u *medicalRecordUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	recordDate, err := time.Parse("2006-01-02", req.RecordDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	actor, err := u.loadActor(tx, actorID)
	if err != nil {
		return nil, err
	}

	if err := policy.CanAccess(actor, policy.Links{PatientUserID: req.PatientID}, policy.ResourceMedicalRecord, policy.OpCreate); err != nil {
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

	record := &entity.MedicalRecord{
		PatientID:   req.PatientID,
		Title:       req.Title,
		Description: req.Description,
		RecordDate:  recordDate,
		RecordType:  req.RecordType,
		FileURL:     req.FileURL,
		FileName:    req.FileName,
		UploadedBy:  entity.UploaderStamp(actor),
	}

	if err := u.medicalRecordRepo.Create(tx, record); err != nil {
		u.log.Warnf("Failed to create medical record: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.reload(ctx, record.ID)
}

func (u *medicalRecordUsecase) GetByID(ctx context.Context, actorID, recordID uuid.UUID) (*dto.MedicalRecordResponse, error) {
	db := u.db.WithContext(ctx)

	actor, err := u.loadActor(db, actorID)
	if err != nil {
		return nil, err
	}

	record, err := u.medicalRecordRepo.FindByID(db, recordID)
	if err != nil {
		u.log.Warnf("Failed to find medical record: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrMedicalRecordNotFound
	}

	if err := policy.CanAccess(actor, policy.Links{PatientUserID: record.PatientID}, policy.ResourceMedicalRecord, policy.OpRead); err != nil {
		return nil, err
	}

	response := converter.MedicalRecordToResponse(record)
	return &response, nil
}

func (u *medicalRecordUsecase) ListForPatient(ctx context.Context, actorID, patientUserID uuid.UUID) (*dto.MedicalRecordListResponse, error) {
	db := u.db.WithContext(ctx)

	actor, err := u.loadActor(db, actorID)
	if err != nil {
		return nil, err
	}

	if err := policy.CanAccess(actor, policy.Links{PatientUserID: patientUserID}, policy.ResourceMedicalRecord, policy.OpRead); err != nil {
		return nil, err
	}

	records, err := u.medicalRecordRepo.FindByPatientID(db, patientUserID)
	if err != nil {
		u.log.Warnf("Failed to list medical records: %+v", err)
		return nil, err
	}

	response := converter.MedicalRecordsToListResponse(records)
	return &response, nil
}

func (u *medicalRecordUsecase) Update(ctx context.Context, actorID, recordID uuid.UUID, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	recordDate, err := time.Parse("2006-01-02", req.RecordDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	actor, err := u.loadActor(tx, actorID)
	if err != nil {
		return nil, err
	}

	record, err := u.medicalRecordRepo.FindByID(tx, recordID)
	if err != nil {
		u.log.Warnf("Failed to find medical record: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrMedicalRecordNotFound
	}

	if err := policy.CanAccess(actor, policy.Links{PatientUserID: record.PatientID}, policy.ResourceMedicalRecord, policy.OpUpdate); err != nil {
		return nil, err
	}

	// UploadedBy keeps the original creator's stamp.
	record.Title = req.Title
	record.Description = req.Description
	record.RecordDate = recordDate
	record.RecordType = req.RecordType
	record.FileURL = req.FileURL
	record.FileName = req.FileName

	if err := u.medicalRecordRepo.Update(tx, record); err != nil {
		u.log.Warnf("Failed to update medical record: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.reload(ctx, record.ID)
}

func (u *medicalRecordUsecase) Delete(ctx context.Context, actorID, recordID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	actor, err := u.loadActor(tx, actorID)
	if err != nil {
		return err
	}

	record, err := u.medicalRecordRepo.FindByID(tx, recordID)
	if err != nil {
		u.log.Warnf("Failed to find medical record: %+v", err)
		return err
	}
	if record == nil {
		return ErrMedicalRecordNotFound
	}

	if err := policy.CanAccess(actor, policy.Links{PatientUserID: record.PatientID}, policy.ResourceMedicalRecord, policy.OpDelete); err != nil {
		return err
	}

	if err := u.medicalRecordRepo.Delete(tx, record); err != nil {
		u.log.Warnf("Failed to delete medical record: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *medicalRecordUsecase) loadActor(db *gorm.DB, actorID uuid.UUID) (*entity.User, error) {
	actor, err := u.userRepo.FindByID(db, actorID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if actor == nil {
		return nil, ErrUserNotFound
	}
	return actor, nil
}

func (u *medicalRecordUsecase) reload(ctx context.Context, recordID uuid.UUID) (*dto.MedicalRecordResponse, error) {
	record, err := u.medicalRecordRepo.FindByID(u.db.WithContext(ctx), recordID)
	if err != nil {
		u.log.Warnf("Failed to reload medical record: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrMedicalRecordNotFound
	}

	response := converter.MedicalRecordToResponse(record)
	return &response, nil
}
