package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolesFromStrings(t *testing.T) {
	roles := RolesFromStrings([]string{"user", "root", "user", "admin"})

	assert.Equal(t, Roles{RoleUser, RoleAdmin}, roles)
	assert.Equal(t, []string{"user", "admin"}, roles.ToStrings())
}

func TestRoles_Contains(t *testing.T) {
	assert.True(t, Roles{RoleUser}.Contains(RoleUser))
	assert.False(t, Roles{RoleUser}.Contains(RoleAdmin))
	assert.True(t, Roles{RoleAdmin}.Contains(RoleUser))
	assert.False(t, Roles{}.Contains(RoleUser))
}
