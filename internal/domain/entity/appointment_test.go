package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusIsValid(t *testing.T) {
	valid := []AppointmentStatus{
		AppointmentStatusScheduled,
		AppointmentStatusConfirmed,
		AppointmentStatusInProgress,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
		AppointmentStatusNoShow,
	}
	for _, s := range valid {
		assert.True(t, s.IsValid(), "%s should be valid", s)
	}

	assert.False(t, AppointmentStatus("").IsValid())
	assert.False(t, AppointmentStatus("PENDING").IsValid())
	assert.False(t, AppointmentStatus("scheduled").IsValid())
}

func TestAppointmentStatusIsTerminal(t *testing.T) {
	tests := []struct {
		status   AppointmentStatus
		terminal bool
	}{
		{AppointmentStatusScheduled, false},
		{AppointmentStatusConfirmed, false},
		{AppointmentStatusInProgress, false},
		{AppointmentStatusCompleted, true},
		{AppointmentStatusCancelled, true},
		{AppointmentStatusNoShow, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.terminal, tt.status.IsTerminal(), "status %s", tt.status)
	}
}

func TestAppointmentTypeIsValid(t *testing.T) {
	for _, typ := range []AppointmentType{AppointmentTypeVideo, AppointmentTypeInPerson, AppointmentTypePhone, AppointmentTypeFollowUp} {
		assert.True(t, typ.IsValid(), "%s should be valid", typ)
	}
	assert.False(t, AppointmentType("HOUSE_CALL").IsValid())
	assert.False(t, AppointmentType("").IsValid())
}

func TestAppointmentCanHoldConsultation(t *testing.T) {
	tests := []struct {
		status  AppointmentStatus
		allowed bool
	}{
		{AppointmentStatusScheduled, false},
		{AppointmentStatusConfirmed, false},
		{AppointmentStatusInProgress, true},
		{AppointmentStatusCompleted, true},
		{AppointmentStatusCancelled, false},
		{AppointmentStatusNoShow, false},
	}

	for _, tt := range tests {
		a := &Appointment{Status: tt.status}
		assert.Equal(t, tt.allowed, a.CanHoldConsultation(), "status %s", tt.status)
	}
}

func TestAppointmentCancelAndComplete(t *testing.T) {
	a := &Appointment{Status: AppointmentStatusScheduled}

	a.Cancel()
	assert.Equal(t, AppointmentStatusCancelled, a.Status)

	// Cancelling again keeps the status.
	a.Cancel()
	assert.Equal(t, AppointmentStatusCancelled, a.Status)

	b := &Appointment{Status: AppointmentStatusInProgress}
	b.Complete()
	assert.Equal(t, AppointmentStatusCompleted, b.Status)
}
