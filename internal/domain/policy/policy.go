// Package policy centralizes the authorization rules that every
// resource usecase delegates to, plus the role migration table that
// decides which profile rows a role change creates and removes.
package policy

import (
	"errors"
	"fmt"

	"telemed-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDenied is the sentinel wrapped by every permission denial.
var ErrDenied = errors.New("permission denied")

// Resource identifies the kind of resource an access check is about.
type Resource string

const (
	ResourceAppointment   Resource = "appointment"
	ResourceConsultation  Resource = "consultation"
	ResourcePrescription  Resource = "prescription"
	ResourceMedicalRecord Resource = "medical record"
)

// Operation identifies what the actor is trying to do.
type Operation string

const (
	OpRead   Operation = "read"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Links carries the ownership linkage of a resource: the user IDs
// behind its patient and doctor profile references. A zero UUID means
// the resource has no such linkage.
type Links struct {
	PatientUserID uuid.UUID
	DoctorUserID  uuid.UUID
}

// rule describes who passes for one (resource, operation) pair besides
// admins, who pass unless the rule is ownerOnly.
type rule struct {
	anyDoctor     bool // any DOCTOR, regardless of linkage
	owningDoctor  bool // the doctor the resource is linked to
	owningPatient bool // the patient the resource is linked to
	ownerOnly     bool // no admin override; only the listed owners pass
}

// Access rules per resource and operation. Note the deliberate
// asymmetry carried over from the existing behavior: any doctor may
// read prescriptions and medical records, while appointments and
// consultations require the owning doctor. Tightening this needs a
// product decision, not a code change here.
var rules = map[Resource]map[Operation]rule{
	ResourceAppointment: {
		OpCreate: {owningPatient: true},
		OpRead:   {owningDoctor: true, owningPatient: true},
		OpUpdate: {owningDoctor: true, owningPatient: true},
		OpDelete: {owningDoctor: true, owningPatient: true},
	},
	ResourceConsultation: {
		OpCreate: {owningDoctor: true},
		OpRead:   {owningDoctor: true, owningPatient: true},
		OpUpdate: {owningDoctor: true},
	},
	ResourcePrescription: {
		OpCreate: {anyDoctor: true},
		OpRead:   {anyDoctor: true, owningPatient: true},
		// Deactivation is the prescriber's alone; not even admins may
		// flip a prescription they did not issue.
		OpUpdate: {owningDoctor: true, ownerOnly: true},
	},
	ResourceMedicalRecord: {
		OpCreate: {anyDoctor: true, owningPatient: true},
		OpRead:   {anyDoctor: true, owningPatient: true},
		OpUpdate: {anyDoctor: true},
		// OpDelete intentionally absent: admin only.
	},
}

// CanAccess decides whether the acting user may perform op on the
// resource described by links. It returns nil when permitted and an
// ErrDenied-wrapped error with a human-readable reason otherwise.
func CanAccess(actor *entity.User, links Links, resource Resource, op Operation) error {
	if actor == nil {
		return fmt.Errorf("%w: no authenticated user", ErrDenied)
	}

	r, ok := rules[resource][op]

	if actor.Role == entity.RoleAdmin && !(ok && r.ownerOnly) {
		return nil
	}

	if ok {
		switch actor.Role {
		case entity.RoleDoctor:
			if r.anyDoctor {
				return nil
			}
			if r.owningDoctor && links.DoctorUserID == actor.ID {
				return nil
			}
		case entity.RolePatient:
			if r.owningPatient && links.PatientUserID == actor.ID {
				return nil
			}
		}
	}

	return fmt.Errorf("%w: you don't have permission to %s this %s", ErrDenied, op, resource)
}
