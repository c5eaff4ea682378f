package policy

import (
	"testing"

	"telemed-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newUser(role entity.Role) *entity.User {
	return &entity.User{ID: uuid.New(), Role: role}
}

func TestCanAccess_AdminAllowedExceptOwnerOnly(t *testing.T) {
	admin := newUser(entity.RoleAdmin)
	links := Links{PatientUserID: uuid.New(), DoctorUserID: uuid.New()}

	for _, resource := range []Resource{ResourceAppointment, ResourceConsultation, ResourcePrescription, ResourceMedicalRecord} {
		for _, op := range []Operation{OpRead, OpCreate, OpUpdate, OpDelete} {
			if resource == ResourcePrescription && op == OpUpdate {
				// Prescription deactivation belongs to the prescriber
				// alone; see the dedicated test below.
				continue
			}
			assert.NoError(t, CanAccess(admin, links, resource, op), "admin should pass %s %s", op, resource)
		}
	}
}

func TestCanAccess_PrescriptionDeactivationIsPrescriberOnly(t *testing.T) {
	patient := newUser(entity.RolePatient)
	prescriber := newUser(entity.RoleDoctor)
	otherDoctor := newUser(entity.RoleDoctor)
	admin := newUser(entity.RoleAdmin)
	links := Links{PatientUserID: patient.ID, DoctorUserID: prescriber.ID}

	assert.NoError(t, CanAccess(prescriber, links, ResourcePrescription, OpUpdate))
	assert.ErrorIs(t, CanAccess(admin, links, ResourcePrescription, OpUpdate), ErrDenied)
	assert.ErrorIs(t, CanAccess(otherDoctor, links, ResourcePrescription, OpUpdate), ErrDenied)
	assert.ErrorIs(t, CanAccess(patient, links, ResourcePrescription, OpUpdate), ErrDenied)
}

func TestCanAccess_NilActorDenied(t *testing.T) {
	err := CanAccess(nil, Links{}, ResourceAppointment, OpRead)
	assert.ErrorIs(t, err, ErrDenied)
}

func TestCanAccess_Appointment(t *testing.T) {
	patient := newUser(entity.RolePatient)
	doctor := newUser(entity.RoleDoctor)
	otherDoctor := newUser(entity.RoleDoctor)
	otherPatient := newUser(entity.RolePatient)
	links := Links{PatientUserID: patient.ID, DoctorUserID: doctor.ID}

	tests := []struct {
		name    string
		actor   *entity.User
		op      Operation
		allowed bool
	}{
		{"owning patient creates", patient, OpCreate, true},
		{"owning doctor cannot create", doctor, OpCreate, false},
		{"owning patient reads", patient, OpRead, true},
		{"owning doctor reads", doctor, OpRead, true},
		{"other doctor cannot read", otherDoctor, OpRead, false},
		{"other patient cannot read", otherPatient, OpRead, false},
		{"owning doctor updates", doctor, OpUpdate, true},
		{"owning patient cancels", patient, OpDelete, true},
		{"other doctor cannot cancel", otherDoctor, OpDelete, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanAccess(tt.actor, links, ResourceAppointment, tt.op)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrDenied)
			}
		})
	}
}

func TestCanAccess_Consultation(t *testing.T) {
	patient := newUser(entity.RolePatient)
	doctor := newUser(entity.RoleDoctor)
	otherDoctor := newUser(entity.RoleDoctor)
	links := Links{PatientUserID: patient.ID, DoctorUserID: doctor.ID}

	assert.NoError(t, CanAccess(doctor, links, ResourceConsultation, OpCreate))
	assert.ErrorIs(t, CanAccess(otherDoctor, links, ResourceConsultation, OpCreate), ErrDenied)
	assert.ErrorIs(t, CanAccess(patient, links, ResourceConsultation, OpCreate), ErrDenied)

	assert.NoError(t, CanAccess(patient, links, ResourceConsultation, OpRead))
	assert.NoError(t, CanAccess(doctor, links, ResourceConsultation, OpRead))
	assert.ErrorIs(t, CanAccess(otherDoctor, links, ResourceConsultation, OpRead), ErrDenied)

	assert.NoError(t, CanAccess(doctor, links, ResourceConsultation, OpUpdate))
	assert.ErrorIs(t, CanAccess(patient, links, ResourceConsultation, OpUpdate), ErrDenied)
}

func TestCanAccess_PrescriptionAnyDoctorReads(t *testing.T) {
	patient := newUser(entity.RolePatient)
	prescriber := newUser(entity.RoleDoctor)
	otherDoctor := newUser(entity.RoleDoctor)
	otherPatient := newUser(entity.RolePatient)
	links := Links{PatientUserID: patient.ID, DoctorUserID: prescriber.ID}

	// Any doctor reads, only the owning patient among patients.
	assert.NoError(t, CanAccess(otherDoctor, links, ResourcePrescription, OpRead))
	assert.NoError(t, CanAccess(patient, links, ResourcePrescription, OpRead))
	assert.ErrorIs(t, CanAccess(otherPatient, links, ResourcePrescription, OpRead), ErrDenied)

	// Any doctor creates; patients never do.
	assert.NoError(t, CanAccess(otherDoctor, links, ResourcePrescription, OpCreate))
	assert.ErrorIs(t, CanAccess(patient, links, ResourcePrescription, OpCreate), ErrDenied)

	// Only the prescriber updates.
	assert.NoError(t, CanAccess(prescriber, links, ResourcePrescription, OpUpdate))
	assert.ErrorIs(t, CanAccess(otherDoctor, links, ResourcePrescription, OpUpdate), ErrDenied)
}

func TestCanAccess_MedicalRecordDeleteIsAdminOnly(t *testing.T) {
	patient := newUser(entity.RolePatient)
	doctor := newUser(entity.RoleDoctor)
	admin := newUser(entity.RoleAdmin)
	links := Links{PatientUserID: patient.ID}

	assert.ErrorIs(t, CanAccess(doctor, links, ResourceMedicalRecord, OpDelete), ErrDenied)
	assert.ErrorIs(t, CanAccess(patient, links, ResourceMedicalRecord, OpDelete), ErrDenied)
	assert.NoError(t, CanAccess(admin, links, ResourceMedicalRecord, OpDelete))

	// Patients manage their own records otherwise.
	assert.NoError(t, CanAccess(patient, links, ResourceMedicalRecord, OpCreate))
	assert.NoError(t, CanAccess(patient, links, ResourceMedicalRecord, OpRead))
	assert.ErrorIs(t, CanAccess(patient, links, ResourceMedicalRecord, OpUpdate), ErrDenied)
	assert.NoError(t, CanAccess(doctor, links, ResourceMedicalRecord, OpUpdate))
}

func TestCanAccess_UnknownRoleDenied(t *testing.T) {
	weird := &entity.User{ID: uuid.New(), Role: entity.Role("SUPERUSER")}
	err := CanAccess(weird, Links{}, ResourceAppointment, OpRead)
	assert.ErrorIs(t, err, ErrDenied)
}
