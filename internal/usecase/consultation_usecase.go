package usecase

import (
	"context"
	"errors"

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
	ErrConsultationNotFound   = errors.New("consultation not found")
	ErrConsultationExists     = errors.New("consultation already recorded for this appointment")
	ErrConsultationNotAllowed = errors.New("appointment is not in a consultable status")
)

type ConsultationUsecase interface {
	Create(ctx context.Context, actorID, appointmentID uuid.UUID, req *dto.ConsultationRequest) (*dto.ConsultationResponse, error)
	GetByAppointmentID(ctx context.Context, actorID, appointmentID uuid.UUID) (*dto.ConsultationResponse, error)
	Update(ctx context.Context, actorID, appointmentID uuid.UUID, req *dto.ConsultationRequest) (*dto.ConsultationResponse, error)
}

type consultationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	appointmentRepo  repository.AppointmentRepository
	consultationRepo repository.ConsultationRepository
}

func NewConsultationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	appointmentRepo repository.AppointmentRepository,
	consultationRepo repository.ConsultationRepository,
) ConsultationUsecase {
	return &consultationUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		appointmentRepo:  appointmentRepo,
		consultationRepo: consultationRepo,
	}
}

func (u *consultationUsecase) Create(ctx context.Context, actorID, appointmentID uuid.UUID, req *dto.ConsultationRequest) (*dto.ConsultationResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	actor, appointment, err := u.loadActorAndAppointment(tx, actorID, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := policy.CanAccess(actor, appointmentLinks(appointment), policy.ResourceConsultation, policy.OpCreate); err != nil {
		return nil, err
	}

	if !appointment.CanHoldConsultation() {
		return nil, ErrConsultationNotAllowed
	}

	existing, err := u.consultationRepo.FindByAppointmentID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to check existing consultation: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrConsultationExists
	}

	followUp := req.FollowUpRequired
	consultation := &entity.Consultation{
		AppointmentID:        appointmentID,
		Diagnosis:            req.Diagnosis,
		Treatment:            req.Treatment,
		Recommendations:      req.Recommendations,
		FollowUpInstructions: req.FollowUpInstructions,
		FollowUpRequired:     &followUp,
		DoctorNotes:          req.DoctorNotes,
		VitalSigns:           req.VitalSigns,
	}

	if err := u.consultationRepo.Create(tx, consultation); err != nil {
		// The unique index on appointment_id closes the race two
		// concurrent creates would otherwise win together.
		if isDuplicateKeyError(err, "appointment") {
			return nil, ErrConsultationExists
		}
		u.log.Warnf("Failed to create consultation: %+v", err)
		return nil, err
	}

	// Recording the outcome completes the appointment.
	if appointment.Status != entity.AppointmentStatusCompleted {
		appointment.Complete()
		if err := u.appointmentRepo.Update(tx, appointment); err != nil {
			u.log.Warnf("Failed to complete appointment: %+v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	response := converter.ConsultationToResponse(consultation)
	return &response, nil
}

func (u *consultationUsecase) GetByAppointmentID(ctx context.Context, actorID, appointmentID uuid.UUID) (*dto.ConsultationResponse, error) {
	db := u.db.WithContext(ctx)

	actor, appointment, err := u.loadActorAndAppointment(db, actorID, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := policy.CanAccess(actor, appointmentLinks(appointment), policy.ResourceConsultation, policy.OpRead); err != nil {
		return nil, err
	}

	consultation, err := u.consultationRepo.FindByAppointmentID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find consultation: %+v", err)
		return nil, err
	}
	if consultation == nil {
		return nil, ErrConsultationNotFound
	}

	response := converter.ConsultationToResponse(consultation)
	return &response, nil
}

func (u *consultationUsecase) Update(ctx context.Context, actorID, appointmentID uuid.UUID, req *dto.ConsultationRequest) (*dto.ConsultationResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	actor, appointment, err := u.loadActorAndAppointment(tx, actorID, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := policy.CanAccess(actor, appointmentLinks(appointment), policy.ResourceConsultation, policy.OpUpdate); err != nil {
		return nil, err
	}

	consultation, err := u.consultationRepo.FindByAppointmentID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find consultation: %+v", err)
		return nil, err
	}
	if consultation == nil {
		return nil, ErrConsultationNotFound
	}

	followUp := req.FollowUpRequired
	consultation.Diagnosis = req.Diagnosis
	consultation.Treatment = req.Treatment
	consultation.Recommendations = req.Recommendations
	consultation.FollowUpInstructions = req.FollowUpInstructions
	consultation.FollowUpRequired = &followUp
	consultation.DoctorNotes = req.DoctorNotes
	consultation.VitalSigns = req.VitalSigns

	if err := u.consultationRepo.Update(tx, consultation); err != nil {
		u.log.Warnf("Failed to update consultation: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	response := converter.ConsultationToResponse(consultation)
	return &response, nil
}

func (u *consultationUsecase) loadActorAndAppointment(db *gorm.DB, actorID, appointmentID uuid.UUID) (*entity.User, *entity.Appointment, error) {
	actor, err := u.userRepo.FindByID(db, actorID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, nil, err
	}
	if actor == nil {
		return nil, nil, ErrUserNotFound
	}

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, nil, err
	}
	if appointment == nil {
		return nil, nil, ErrAppointmentNotFound
	}

	return actor, appointment, nil
}
