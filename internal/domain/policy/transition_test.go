package policy

import (
	"testing"

	"telemed-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestTransitionFor(t *testing.T) {
	tests := []struct {
		name     string
		oldRole  entity.Role
		newRole  entity.Role
		expected Transition
		ok       bool
	}{
		{"patient to doctor", entity.RolePatient, entity.RoleDoctor, Transition{Delete: ProfilePatient, Create: ProfileDoctor}, true},
		{"doctor to patient", entity.RoleDoctor, entity.RolePatient, Transition{Delete: ProfileDoctor, Create: ProfilePatient}, true},
		{"patient to admin", entity.RolePatient, entity.RoleAdmin, Transition{Delete: ProfilePatient}, true},
		{"doctor to admin", entity.RoleDoctor, entity.RoleAdmin, Transition{Delete: ProfileDoctor}, true},
		{"admin to patient", entity.RoleAdmin, entity.RolePatient, Transition{Create: ProfilePatient}, true},
		{"admin to doctor", entity.RoleAdmin, entity.RoleDoctor, Transition{Create: ProfileDoctor}, true},
		{"same role is a no-op", entity.RolePatient, entity.RolePatient, Transition{}, true},
		{"unknown old role", entity.Role("NURSE"), entity.RoleDoctor, Transition{}, false},
		{"unknown new role", entity.RolePatient, entity.Role("NURSE"), Transition{}, false},
		{"empty roles", entity.Role(""), entity.Role(""), Transition{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TransitionFor(tt.oldRole, tt.newRole)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}
