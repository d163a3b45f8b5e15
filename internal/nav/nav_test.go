package nav

import (
	"testing"

	"github.com/mehmetcc/oseek/internal/person"
	"github.com/stretchr/testify/assert"
)

func labels(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Label
	}
	return out
}

func TestEntries(t *testing.T) {
	t.Run("logged out", func(t *testing.T) {
		got := labels(Entries("", false))
		assert.Equal(t, []string{"Home", "Jobs", "Login", "Sign Up"}, got)
	})

	t.Run("seeker", func(t *testing.T) {
		got := labels(Entries(person.RoleSeeker, true))
		assert.Equal(t, []string{"Home", "Jobs", "Recommendations", "Activity", "Wishlist", "Connections", "Profile"}, got)
	})

	t.Run("company", func(t *testing.T) {
		got := labels(Entries(person.RoleCompany, true))
		assert.Equal(t, []string{"Home", "Jobs", "My Jobs", "Dashboard", "Notifications", "Profile"}, got)
	})

	t.Run("admin has no activity and no profile", func(t *testing.T) {
		got := labels(Entries(person.RoleAdmin, true))
		assert.Equal(t, []string{"Home", "Jobs", "Dashboard", "Notifications", "Admin"}, got)
		assert.NotContains(t, got, "Activity")
		assert.NotContains(t, got, "Profile")
	})

	t.Run("unknown role renders logged out", func(t *testing.T) {
		assert.Equal(t, labels(Entries("", false)), labels(Entries("alien", true)))
	})
}

func TestLanding(t *testing.T) {
	assert.Equal(t, "/", Landing(person.RoleSeeker))
	assert.Equal(t, "/", Landing(person.RoleCompany))
	assert.Equal(t, "/admin/users", Landing(person.RoleAdmin))
	assert.Equal(t, "/", Landing(""))
}

func TestAffordances(t *testing.T) {
	assert.True(t, CanApply(person.RoleSeeker))
	assert.False(t, CanApply(person.RoleCompany))
	assert.False(t, CanApply(person.RoleAdmin))

	assert.True(t, CanManageJobs(person.RoleCompany))
	assert.False(t, CanManageJobs(person.RoleSeeker))

	assert.True(t, CanModerate(person.RoleAdmin))
	assert.False(t, CanModerate(person.RoleCompany))

	assert.True(t, SeesNotifications(person.RoleCompany))
	assert.True(t, SeesNotifications(person.RoleAdmin))
	assert.False(t, SeesNotifications(person.RoleSeeker))

	assert.True(t, SeesWishlist(person.RoleSeeker))
	assert.False(t, SeesWishlist(person.RoleCompany))
}
