package enum

// UserType is the actor kind resolved at authentication time.
// Company admins and company sub-users scope to the same tenant;
// system admins manage tenants and bypass tenant scoping on /system routes.
type UserType string

const (
	UserTypeCompanyAdmin UserType = "company_admin"
	UserTypeCompanyUser  UserType = "company_user"
	UserTypeSystemAdmin  UserType = "system_admin"
)

// Valid reports whether the value is a known user type
func (t UserType) Valid() bool {
	switch t {
	case UserTypeCompanyAdmin, UserTypeCompanyUser, UserTypeSystemAdmin:
		return true
	}
	return false
}

// IsSystemAdmin reports whether the actor may access tenant-management routes
func (t UserType) IsSystemAdmin() bool {
	return t == UserTypeSystemAdmin
}
