package policy

import "telemed-backend/internal/domain/entity"

// ProfileKind names the role-specific profile row a transition touches.
type ProfileKind int

const (
	ProfileNone ProfileKind = iota
	ProfilePatient
	ProfileDoctor
)

// Transition describes the profile mutations a role change requires.
// Both sides default to ProfileNone.
type Transition struct {
	Delete ProfileKind
	Create ProfileKind
}

// The six handled role pairs. Keeping this as a table instead of nested
// conditionals makes every pair exhaustively testable and a new role a
// one-line addition.
var transitions = map[[2]entity.Role]Transition{
	{entity.RolePatient, entity.RoleDoctor}: {Delete: ProfilePatient, Create: ProfileDoctor},
	{entity.RoleDoctor, entity.RolePatient}: {Delete: ProfileDoctor, Create: ProfilePatient},
	{entity.RolePatient, entity.RoleAdmin}:  {Delete: ProfilePatient},
	{entity.RoleDoctor, entity.RoleAdmin}:   {Delete: ProfileDoctor},
	{entity.RoleAdmin, entity.RolePatient}:  {Create: ProfilePatient},
	{entity.RoleAdmin, entity.RoleDoctor}:   {Create: ProfileDoctor},
}

// TransitionFor returns the profile mutations for a role change. A
// same-role change is a valid no-op. The second result is false when
// either role is unknown.
func TransitionFor(oldRole, newRole entity.Role) (Transition, bool) {
	if !oldRole.IsValid() || !newRole.IsValid() {
		return Transition{}, false
	}
	if oldRole == newRole {
		return Transition{}, true
	}
	t, ok := transitions[[2]entity.Role{oldRole, newRole}]
	return t, ok
}
