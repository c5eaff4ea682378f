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
	"telemed-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrDoctorNotFound         = errors.New("doctor not found")
	ErrDoctorUnavailable      = errors.New("doctor is not available for consultation")
	ErrPatientProfileNotFound = errors.New("patient profile not found")
	ErrPastAppointmentDate    = errors.New("appointment date must be in the future")
	ErrInvalidStatus          = errors.New("invalid appointment status")
)

type AppointmentUsecase interface {
	Create(ctx context.Context, patientUserID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetByID(ctx context.Context, actorID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	List(ctx context.Context, actorID uuid.UUID, status string) (*dto.AppointmentListResponse, error)
	Update(ctx context.Context, actorID, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, actorID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	userRepo           repository.UserRepository
	appointmentRepo    repository.AppointmentRepository
	doctorProfileRepo  repository.DoctorProfileRepository
	patientProfileRepo repository.PatientProfileRepository
	auditService       service.AuditService
	mailer             service.Mailer
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	appointmentRepo repository.AppointmentRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	patientProfileRepo repository.PatientProfileRepository,
	auditService service.AuditService,
	mailer service.Mailer,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:                 db,
		log:                log,
		userRepo:           userRepo,
		appointmentRepo:    appointmentRepo,
		doctorProfileRepo:  doctorProfileRepo,
		patientProfileRepo: patientProfileRepo,
		auditService:       auditService,
		mailer:             mailer,
	}
}

func (u *appointmentUsecase) Create(ctx context.Context, patientUserID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if !req.AppointmentDate.After(time.Now()) {
		return nil, ErrPastAppointmentDate
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patientProfile, err := u.patientProfileRepo.FindByUserID(tx, patientUserID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if patientProfile == nil {
		return nil, ErrPatientProfileNotFound
	}

	doctorProfile, err := u.doctorProfileRepo.FindByUserID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if doctorProfile == nil {
		return nil, ErrDoctorNotFound
	}
	if !doctorProfile.Available() {
		return nil, ErrDoctorUnavailable
	}

	appointmentType := entity.AppointmentType(req.Type)
	if appointmentType == "" {
		appointmentType = entity.AppointmentTypeVideo
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = 30
	}

	appointment := &entity.Appointment{
		PatientID:       patientUserID,
		DoctorID:        req.DoctorID,
		AppointmentDate: req.AppointmentDate,
		Type:            appointmentType,
		Status:          entity.AppointmentStatusScheduled,
		Reason:          req.Reason,
		Symptoms:        req.Symptoms,
		DurationMinutes: duration,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.reload(ctx, appointment.ID)
}

func (u *appointmentUsecase) GetByID(ctx context.Context, actorID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	actor, err := u.loadActor(db, actorID)
	if err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if err := policy.CanAccess(actor, appointmentLinks(appointment), policy.ResourceAppointment, policy.OpRead); err != nil {
		return nil, err
	}

	response := converter.AppointmentToResponse(appointment)
	return &response, nil
}

func (u *appointmentUsecase) List(ctx context.Context, actorID uuid.UUID, status string) (*dto.AppointmentListResponse, error) {
	db := u.db.WithContext(ctx)

	actor, err := u.loadActor(db, actorID)
	if err != nil {
		return nil, err
	}

	var filter entity.AppointmentStatus
	if status != "" {
		filter = entity.AppointmentStatus(status)
		if !filter.IsValid() {
			return nil, ErrInvalidStatus
		}
	}

	var appointments []entity.Appointment
	switch actor.Role {
	case entity.RolePatient:
		if filter != "" {
			appointments, err = u.appointmentRepo.FindByPatientIDAndStatus(db, actor.ID, filter)
		} else {
			appointments, err = u.appointmentRepo.FindByPatientID(db, actor.ID)
		}
	case entity.RoleDoctor:
		if filter != "" {
			appointments, err = u.appointmentRepo.FindByDoctorIDAndStatus(db, actor.ID, filter)
		} else {
			appointments, err = u.appointmentRepo.FindByDoctorID(db, actor.ID)
		}
	default:
		if filter != "" {
			appointments, err = u.appointmentRepo.FindByStatus(db, filter)
		} else {
			appointments, err = u.appointmentRepo.FindAll(db)
		}
	}
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	response := converter.AppointmentsToListResponse(appointments)
	return &response, nil
}

func (u *appointmentUsecase) Update(ctx context.Context, actorID, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	actor, err := u.loadActor(tx, actorID)
	if err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if err := policy.CanAccess(actor, appointmentLinks(appointment), policy.ResourceAppointment, policy.OpUpdate); err != nil {
		return nil, err
	}

	previousStatus := appointment.Status

	if req.AppointmentDate != nil {
		if !req.AppointmentDate.After(time.Now()) {
			return nil, ErrPastAppointmentDate
		}
		appointment.AppointmentDate = *req.AppointmentDate
	}
	if req.Status != nil {
		newStatus := entity.AppointmentStatus(*req.Status)
		if !newStatus.IsValid() {
			return nil, ErrInvalidStatus
		}
		appointment.Status = newStatus
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}
	if req.MeetingLink != nil {
		appointment.MeetingLink = *req.MeetingLink
	}

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	refreshed, err := u.reload(ctx, appointment.ID)
	if err != nil {
		return nil, err
	}

	// Notify the patient when the appointment just became confirmed.
	// Best-effort; the update is already committed.
	if previousStatus != entity.AppointmentStatusConfirmed && appointment.Status == entity.AppointmentStatusConfirmed {
		u.notifyConfirmation(ctx, appointment.ID)
	}

	return refreshed, nil
}

func (u *appointmentUsecase) Cancel(ctx context.Context, actorID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	actor, err := u.loadActor(tx, actorID)
	if err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if err := policy.CanAccess(actor, appointmentLinks(appointment), policy.ResourceAppointment, policy.OpDelete); err != nil {
		return nil, err
	}

	// Cancelling an already cancelled appointment is a no-op.
	if appointment.Status != entity.AppointmentStatusCancelled {
		appointment.Cancel()

		if err := u.appointmentRepo.Update(tx, appointment); err != nil {
			u.log.Warnf("Failed to cancel appointment: %+v", err)
			return nil, err
		}

		if err := u.auditService.Record(tx, &actor.ID, entity.AuditActionAppointmentCancel, entity.JSON{
			"appointment_id": appointment.ID.String(),
		}); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	response := converter.AppointmentToResponse(appointment)
	return &response, nil
}

func (u *appointmentUsecase) loadActor(db *gorm.DB, actorID uuid.UUID) (*entity.User, error) {
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

// reload fetches the appointment with participants preloaded so the
// response carries names and the doctor's specialization.
func (u *appointmentUsecase) reload(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to reload appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	response := converter.AppointmentToResponse(appointment)
	return &response, nil
}

func (u *appointmentUsecase) notifyConfirmation(ctx context.Context, appointmentID uuid.UUID) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil || appointment == nil {
		u.log.Warnf("Failed to load appointment %s for confirmation email: %+v", appointmentID, err)
		return
	}

	patient := appointment.Patient.User
	doctor := appointment.Doctor.User
	if patient.Email == "" {
		return
	}

	service.SendConfirmationAsync(
		u.mailer, u.log,
		patient.Email, patient.FullName,
		doctor.FullName, appointment.Doctor.Specialization,
		appointment.AppointmentDate,
	)
}

func appointmentLinks(appointment *entity.Appointment) policy.Links {
	return policy.Links{
		PatientUserID: appointment.PatientID,
		DoctorUserID:  appointment.DoctorID,
	}
}
