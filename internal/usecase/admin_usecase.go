package usecase

import (
	"context"

	"telemed-backend/internal/converter"
	"telemed-backend/internal/delivery/dto"
	"telemed-backend/internal/domain/entity"
	"telemed-backend/internal/domain/policy"
	"telemed-backend/internal/domain/repository"
	"telemed-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const recentAuditLogLimit = 100

type AdminUsecase interface {
	ListUsers(ctx context.Context) (*dto.UserListResponse, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	CreateUser(ctx context.Context, actorID uuid.UUID, req *dto.RegisterRequest) (*dto.UserResponse, error)
	ChangeRole(ctx context.Context, actorID, userID uuid.UUID, req *dto.UpdateUserRoleRequest) (*dto.UserResponse, error)
	ChangeStatus(ctx context.Context, actorID, userID uuid.UUID, req *dto.UpdateUserStatusRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, actorID, userID uuid.UUID) error
	Statistics(ctx context.Context) (*dto.StatisticsResponse, error)
	RecentAuditLogs(ctx context.Context) (*dto.AuditLogListResponse, error)
}

type adminUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	userRepo           repository.UserRepository
	doctorProfileRepo  repository.DoctorProfileRepository
	patientProfileRepo repository.PatientProfileRepository
	appointmentRepo    repository.AppointmentRepository
	consultationRepo   repository.ConsultationRepository
	prescriptionRepo   repository.PrescriptionRepository
	medicalRecordRepo  repository.MedicalRecordRepository
	auditLogRepo       repository.AuditLogRepository
	auditService       service.AuditService
}

func NewAdminUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	patientProfileRepo repository.PatientProfileRepository,
	appointmentRepo repository.AppointmentRepository,
	consultationRepo repository.ConsultationRepository,
	prescriptionRepo repository.PrescriptionRepository,
	medicalRecordRepo repository.MedicalRecordRepository,
	auditLogRepo repository.AuditLogRepository,
	auditService service.AuditService,
) AdminUsecase {
	return &adminUsecase{
		db:                 db,
		log:                log,
		userRepo:           userRepo,
		doctorProfileRepo:  doctorProfileRepo,
		patientProfileRepo: patientProfileRepo,
		appointmentRepo:    appointmentRepo,
		consultationRepo:   consultationRepo,
		prescriptionRepo:   prescriptionRepo,
		medicalRecordRepo:  medicalRecordRepo,
		auditLogRepo:       auditLogRepo,
		auditService:       auditService,
	}
}

func (u *adminUsecase) ListUsers(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := u.userRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}

	response := converter.UsersToListResponse(users)
	return &response, nil
}

func (u *adminUsecase) GetUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	response := converter.UserToResponse(user)
	return &response, nil
}

func (u *adminUsecase) CreateUser(ctx context.Context, actorID uuid.UUID, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	role := entity.Role(req.Role)
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	active := true
	user := &entity.User{
		Email:       req.Email,
		Password:    string(hashedPassword),
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Role:        role,
		IsActive:    &active,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if err := createProfileForRole(tx, u.doctorProfileRepo, u.patientProfileRepo, user); err != nil {
		u.log.Warnf("Failed to create profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(tx, &actorID, entity.AuditActionUserCreate, entity.JSON{
		"target_user_id": user.ID.String(),
		"email":          user.Email,
		"role":           string(user.Role),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	response := converter.UserToResponse(user)
	return &response, nil
}

// ChangeRole migrates a user between roles inside a single transaction:
// the old role's profile row goes away, the new role's profile row is
// provisioned, and the audit trail commits with both.
func (u *adminUsecase) ChangeRole(ctx context.Context, actorID, userID uuid.UUID, req *dto.UpdateUserRoleRequest) (*dto.UserResponse, error) {
	newRole := entity.Role(req.Role)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	transition, ok := policy.TransitionFor(user.Role, newRole)
	if !ok {
		return nil, ErrInvalidRole
	}

	oldRole := user.Role
	if oldRole != newRole {
		// Both sides of the profile swap come from the transition table.
		if err := deleteProfileOfKind(tx, u.doctorProfileRepo, u.patientProfileRepo, transition.Delete, user.ID); err != nil {
			u.log.Warnf("Failed to delete old role profile: %+v", err)
			return nil, err
		}

		user.Role = newRole
		if err := createProfileOfKind(tx, u.doctorProfileRepo, u.patientProfileRepo, transition.Create, user.ID); err != nil {
			u.log.Warnf("Failed to create new role profile: %+v", err)
			return nil, err
		}

		if err := u.userRepo.Update(tx, user); err != nil {
			u.log.Warnf("Failed to update user: %+v", err)
			return nil, err
		}

		if err := u.auditService.Record(tx, &actorID, entity.AuditActionUserRoleChange, entity.JSON{
			"target_user_id": user.ID.String(),
			"old_role":       string(oldRole),
			"new_role":       string(newRole),
		}); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	response := converter.UserToResponse(user)
	return &response, nil
}

func (u *adminUsecase) ChangeStatus(ctx context.Context, actorID, userID uuid.UUID, req *dto.UpdateUserStatusRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.IsActive = req.Active
	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(tx, &actorID, entity.AuditActionUserStatusChange, entity.JSON{
		"target_user_id": user.ID.String(),
		"active":         *req.Active,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	response := converter.UserToResponse(user)
	return &response, nil
}

func (u *adminUsecase) DeleteUser(ctx context.Context, actorID, userID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	// Profile rows go with the user via ON DELETE CASCADE.
	if err := u.userRepo.Delete(tx, user); err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return err
	}

	if err := u.auditService.Record(tx, &actorID, entity.AuditActionUserDelete, entity.JSON{
		"target_user_id": user.ID.String(),
		"email":          user.Email,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *adminUsecase) Statistics(ctx context.Context) (*dto.StatisticsResponse, error) {
	db := u.db.WithContext(ctx)
	stats := &dto.StatisticsResponse{}

	counters := []struct {
		dst   *int64
		count func() (int64, error)
	}{
		{&stats.TotalUsers, func() (int64, error) { return u.userRepo.CountAll(db) }},
		{&stats.TotalPatients, func() (int64, error) { return u.userRepo.CountByRole(db, entity.RolePatient) }},
		{&stats.TotalDoctors, func() (int64, error) { return u.userRepo.CountByRole(db, entity.RoleDoctor) }},
		{&stats.TotalAdmins, func() (int64, error) { return u.userRepo.CountByRole(db, entity.RoleAdmin) }},
		{&stats.ActiveUsers, func() (int64, error) { return u.userRepo.CountActive(db) }},
		{&stats.TotalAppointments, func() (int64, error) { return u.appointmentRepo.CountAll(db) }},
		{&stats.ScheduledAppointments, func() (int64, error) {
			return u.appointmentRepo.CountByStatus(db, entity.AppointmentStatusScheduled)
		}},
		{&stats.CompletedAppointments, func() (int64, error) {
			return u.appointmentRepo.CountByStatus(db, entity.AppointmentStatusCompleted)
		}},
		{&stats.CancelledAppointments, func() (int64, error) {
			return u.appointmentRepo.CountByStatus(db, entity.AppointmentStatusCancelled)
		}},
		{&stats.TotalPrescriptions, func() (int64, error) { return u.prescriptionRepo.CountAll(db) }},
		{&stats.ActivePrescriptions, func() (int64, error) { return u.prescriptionRepo.CountActive(db) }},
		{&stats.TotalMedicalRecords, func() (int64, error) { return u.medicalRecordRepo.CountAll(db) }},
		{&stats.TotalConsultations, func() (int64, error) { return u.consultationRepo.CountAll(db) }},
	}

	for _, c := range counters {
		n, err := c.count()
		if err != nil {
			u.log.Warnf("Failed to count statistics: %+v", err)
			return nil, err
		}
		*c.dst = n
	}

	return stats, nil
}

func (u *adminUsecase) RecentAuditLogs(ctx context.Context) (*dto.AuditLogListResponse, error) {
	logs, err := u.auditLogRepo.FindRecent(u.db.WithContext(ctx), recentAuditLogLimit)
	if err != nil {
		u.log.Warnf("Failed to list audit logs: %+v", err)
		return nil, err
	}

	response := converter.AuditLogsToListResponse(logs)
	return &response, nil
}
