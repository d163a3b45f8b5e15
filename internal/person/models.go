package person

type Role string

const (
	RoleSeeker  Role = "seeker"
	RoleCompany Role = "company"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the three account roles. An account holds
// exactly one role, and only an admin actor may change somebody else's.
func (r Role) Valid() bool {
	switch r {
	case RoleSeeker, RoleCompany, RoleAdmin:
		return true
	}
	return false
}

// Person is the canonical user record the backend returns from /auth/me.
// It is the profile summary we cache in local storage next to the token.
type Person struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
