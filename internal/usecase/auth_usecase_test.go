package usecase

import (
	"testing"

	"telemed-backend/internal/domain/entity"
	"telemed-backend/internal/domain/policy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileKindForRole(t *testing.T) {
	assert.Equal(t, policy.ProfilePatient, profileKindForRole(entity.RolePatient))
	assert.Equal(t, policy.ProfileDoctor, profileKindForRole(entity.RoleDoctor))
	assert.Equal(t, policy.ProfileNone, profileKindForRole(entity.RoleAdmin))
	assert.Equal(t, policy.ProfileNone, profileKindForRole(entity.Role("NURSE")))
}

// Role migration consumes both sides of the transition table; the table
// must therefore agree with the per-role profile mapping used at
// registration for every role pair.
func TestRoleTransitionsMatchProfileKinds(t *testing.T) {
	roles := []entity.Role{entity.RoleAdmin, entity.RoleDoctor, entity.RolePatient}

	for _, oldRole := range roles {
		for _, newRole := range roles {
			transition, ok := policy.TransitionFor(oldRole, newRole)
			require.True(t, ok, "%s -> %s should be a known transition", oldRole, newRole)

			if oldRole == newRole {
				assert.Equal(t, policy.Transition{}, transition)
				continue
			}

			assert.Equal(t, profileKindForRole(oldRole), transition.Delete, "%s -> %s deletes the old role's profile", oldRole, newRole)
			assert.Equal(t, profileKindForRole(newRole), transition.Create, "%s -> %s creates the new role's profile", oldRole, newRole)
		}
	}
}
