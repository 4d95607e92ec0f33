package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Permissions(t *testing.T) {
	assert.Empty(t, RoleUser.Permissions())
	assert.Len(t, RoleAdmin.Permissions(), 4)
	assert.Empty(t, Role("GHOST").Permissions())
}

func TestRole_HasPermission(t *testing.T) {
	assert.True(t, RoleAdmin.HasPermission(PermissionAdminDelete))
	assert.False(t, RoleUser.HasPermission(PermissionAdminDelete))
	assert.False(t, Role("GHOST").HasPermission(PermissionAdminRead))
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("GHOST").Valid())
	assert.False(t, Role("").Valid())
}
