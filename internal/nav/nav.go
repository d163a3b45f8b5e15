// Package nav maps (role, authenticated) to the navigation entries and
// action affordances a user may see. Pure and deterministic: no storage, no
// network. Hiding an entry here is cosmetic only; every role-restricted page
// re-verifies the role from the credential store on entry.
package nav

import "github.com/mehmetcc/oseek/internal/person"

type Entry struct {
	Label string
	Route string
}

func Entries(role person.Role, authenticated bool) []Entry {
	if !authenticated {
		return []Entry{
			{Label: "Home", Route: "/"},
			{Label: "Jobs", Route: "/jobs"},
			{Label: "Login", Route: "/login"},
			{Label: "Sign Up", Route: "/signup"},
		}
	}

	switch role {
	case person.RoleSeeker:
		return []Entry{
			{Label: "Home", Route: "/"},
			{Label: "Jobs", Route: "/jobs"},
			{Label: "Recommendations", Route: "/recommendations"},
			{Label: "Activity", Route: "/activity"},
			{Label: "Wishlist", Route: "/wishlist"},
			{Label: "Connections", Route: "/connections"},
			{Label: "Profile", Route: "/profile"},
		}
	case person.RoleCompany:
		return []Entry{
			{Label: "Home", Route: "/"},
			{Label: "Jobs", Route: "/jobs"},
			{Label: "My Jobs", Route: "/my-jobs"},
			{Label: "Dashboard", Route: "/dashboard"},
			{Label: "Notifications", Route: "/notifications"},
			{Label: "Profile", Route: "/profile"},
		}
	case person.RoleAdmin:
		// admins get no Activity and no Profile entry
		return []Entry{
			{Label: "Home", Route: "/"},
			{Label: "Jobs", Route: "/jobs"},
			{Label: "Dashboard", Route: "/dashboard"},
			{Label: "Notifications", Route: "/notifications"},
			{Label: "Admin", Route: "/admin/users"},
		}
	}

	// unknown role renders like a logged-out visitor
	return Entries("", false)
}

// Landing is where a page redirects a user whose role does not match the
// page's requirement.
func Landing(role person.Role) string {
	switch role {
	case person.RoleSeeker, person.RoleCompany:
		return "/"
	case person.RoleAdmin:
		return "/admin/users"
	}
	return "/"
}

/** action affordances */

func CanApply(role person.Role) bool {
	return role == person.RoleSeeker
}

func CanManageJobs(role person.Role) bool {
	return role == person.RoleCompany
}

func CanModerate(role person.Role) bool {
	return role == person.RoleAdmin
}

func SeesNotifications(role person.Role) bool {
	return role == person.RoleCompany || role == person.RoleAdmin
}

func SeesWishlist(role person.Role) bool {
	return role == person.RoleSeeker
}
