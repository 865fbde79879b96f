package constants

const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleParent = "parent"
)

// AdminAndAbove is the role set allowed into /api/a.
var AdminAndAbove = []string{RoleOwner, RoleAdmin}
