package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleDoctor.IsValid())
	assert.True(t, RolePatient.IsValid())

	assert.False(t, Role("").IsValid())
	assert.False(t, Role("NURSE").IsValid())
	assert.False(t, Role("admin").IsValid())
}

func TestUserActive(t *testing.T) {
	var u User
	assert.False(t, u.Active(), "nil flag means inactive")

	active := true
	u.IsActive = &active
	assert.True(t, u.Active())

	active = false
	assert.False(t, u.Active())
}

func TestUploaderStamp(t *testing.T) {
	u := &User{FullName: "Jane Smith", Role: RoleDoctor}
	assert.Equal(t, "Jane Smith (DOCTOR)", UploaderStamp(u))

	admin := &User{FullName: "Root", Role: RoleAdmin}
	assert.Equal(t, "Root (ADMIN)", UploaderStamp(admin))
}

func TestGenerateLicenseNumber(t *testing.T) {
	first := GenerateLicenseNumber()
	second := GenerateLicenseNumber()

	assert.True(t, strings.HasPrefix(first, "LIC-"))
	assert.NotEqual(t, first, second, "generated license numbers must be unique")
}
