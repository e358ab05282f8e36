package domain

import "time"

// UserRole defines the application-wide role assigned to a user.
type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"  // Full access, including user and token management
	RoleEditor UserRole = "EDITOR" // Can create and edit contracts, expenses and org data
	RoleViewer UserRole = "VIEWER" // Read-only access to data and reports
)

// roleRank orders roles by privilege for AtLeast comparisons.
var roleRank = map[UserRole]int{
	RoleViewer: 1,
	RoleEditor: 2,
	RoleAdmin:  3,
}

// AtLeast reports whether the role carries at least the privileges of required.
func (r UserRole) AtLeast(required UserRole) bool {
	return roleRank[r] >= roleRank[required]
}

// IsValid reports whether r is one of the known roles.
func (r UserRole) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// User represents a dashboard user in the domain.
type User struct {
	UserID string   `json:"userID"` // Primary Key (e.g., UUID)
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`

	// Credential fields, never serialized.
	PasswordHash           string     `json:"-"`
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	// External identity provider fields (e.g., "google").
	AuthProvider   *string `json:"authProvider,omitempty"`
	ProviderUserID *string `json:"-"`

	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// AuthProviderType identifies an external identity provider.
type AuthProviderType string

const (
	ProviderGoogle AuthProviderType = "google"
)

// GoogleUserInfo holds the user profile fields returned by Google's userinfo
// endpoint during the OAuth flow.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
