package pages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDashboardPage(t *testing.T) {
	t.Run("logged out", func(t *testing.T) {
		client, store := newBackend(t)
		page := NewDashboardPage(client, store, zap.NewNop())

		page.Load(context.Background())
		assert.NotEmpty(t, page.Err)
	})

	t.Run("seeker widgets", func(t *testing.T) {
		client, store := newBackend(t)
		loginAs(t, client, store, seedSeekerEmail)

		page := NewDashboardPage(client, store, zap.NewNop())
		page.Load(context.Background())
		require.Empty(t, page.Err)

		require.NotNil(t, page.Seeker)
		assert.Nil(t, page.Company)
		assert.Nil(t, page.Admin)
		assert.Equal(t, 1, page.Seeker.UnreadNotifications, "seeded welcome notification")
		assert.Greater(t, page.Seeker.ProfileCompleteness, 0.0)
	})

	t.Run("company widgets", func(t *testing.T) {
		client, store := newBackend(t)
		loginAs(t, client, store, seedCompanyEmail)

		page := NewDashboardPage(client, store, zap.NewNop())
		page.Load(context.Background())
		require.Empty(t, page.Err)

		require.NotNil(t, page.Company)
		assert.Equal(t, 2, page.Company.OpenJobs, "two seeded postings")
	})

	t.Run("admin widgets", func(t *testing.T) {
		client, store := newBackend(t)
		loginAs(t, client, store, seedAdminEmail)

		page := NewDashboardPage(client, store, zap.NewNop())
		page.Load(context.Background())
		require.Empty(t, page.Err)

		require.NotNil(t, page.Admin)
		assert.Equal(t, 3, page.Admin.TotalUsers)
		assert.Equal(t, 1, page.Admin.Seekers)
		assert.Equal(t, 1, page.Admin.Companies)
		assert.Equal(t, 2, page.Admin.JobsTotal)
	})
}
