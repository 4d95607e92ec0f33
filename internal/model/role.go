package model

// Role is a closed set of user roles. Each role carries a statically
// defined permission set; there is no inheritance between roles.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Permission names a single capability granted by a role.
type Permission string

const (
	PermissionAdminCreate Permission = "admin:create"
	PermissionAdminRead   Permission = "admin:read"
	PermissionAdminUpdate Permission = "admin:update"
	PermissionAdminDelete Permission = "admin:delete"
)

var rolePermissions = map[Role][]Permission{
	RoleUser: {},
	RoleAdmin: {
		PermissionAdminCreate,
		PermissionAdminRead,
		PermissionAdminUpdate,
		PermissionAdminDelete,
	},
}

// Permissions returns the capability set of the role. Unknown roles have
// no permissions.
func (r Role) Permissions() []Permission {
	return rolePermissions[r]
}

// HasPermission reports whether the role grants the given permission.
func (r Role) HasPermission(p Permission) bool {
	for _, granted := range rolePermissions[r] {
		if granted == p {
			return true
		}
	}
	return false
}

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	_, ok := rolePermissions[r]
	return ok
}
