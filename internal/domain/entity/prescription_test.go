package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPrescriptionRecalculateEndDate(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		days     int
		expected time.Time
	}{
		{"one week", 7, time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)},
		{"single day", 1, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)},
		{"crosses month boundary", 45, time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Prescription{StartDate: start, DurationDays: tt.days}
			p.RecalculateEndDate()
			assert.Equal(t, tt.expected, p.EndDate)
		})
	}
}

func TestPrescriptionActive(t *testing.T) {
	var p Prescription
	assert.False(t, p.Active(), "nil flag means inactive")

	active := true
	p.IsActive = &active
	assert.True(t, p.Active())

	p.Deactivate()
	assert.False(t, p.Active())

	// Deactivate is one-way and idempotent.
	p.Deactivate()
	assert.False(t, p.Active())
}
