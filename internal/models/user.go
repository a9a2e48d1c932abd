package models

// Role defines the two user roles available at login.
type Role string

const (
	RoleTenant   Role = "tenant"
	RoleLandlord Role = "landlord"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleTenant || r == RoleLandlord
}

// User represents the active session user. At most one user is active at a
// time. Verified starts false and only ever transitions to true, once a
// phone number has been recorded.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Role     Role   `json:"role"`
	Verified bool   `json:"verified"`
	Phone    string `json:"phone,omitempty"`
}
