package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Tenant administrator - full access
	RoleManager  Role = "manager"  // Can approve time entries and leave
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID              string
	CompanyID       *string
	Email           string
	Username        string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	EmployeeID *string
}

// IsAdmin checks if user is a tenant administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager checks if user is manager or admin
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

// CanApprove checks if user can approve time entries and leave
func (u *User) CanApprove() bool {
	return u.IsManager()
}

// CanCalculatePayroll checks if user can run pay calculations
func (u *User) CanCalculatePayroll() bool {
	return u.IsAdmin()
}
