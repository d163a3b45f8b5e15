package pages

import (
	"context"
	"testing"

	"github.com/mehmetcc/oseek/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConnectionsPage(t *testing.T) {
	client, store := newBackend(t)

	t.Run("logged out cannot enter", func(t *testing.T) {
		page := NewConnectionsPage(client, store, zap.NewNop())
		redirect, ok := page.Enter()
		assert.False(t, ok)
		assert.Equal(t, "/login", redirect)
	})

	// find the company's user id through the admin listing
	loginAs(t, client, store, seedAdminEmail)
	admin := NewAdminUsersPage(client, store, zap.NewNop())
	admin.Load(context.Background())
	require.Empty(t, admin.Err)
	var companyID string
	for _, u := range admin.Users {
		if u.Email == seedCompanyEmail {
			companyID = u.ID
		}
	}
	require.NotEmpty(t, companyID)

	// the seeker sends a request
	loginAs(t, client, store, seedSeekerEmail)
	seekerSide := NewConnectionsPage(client, store, zap.NewNop())
	_, ok := seekerSide.Enter()
	require.True(t, ok)

	require.True(t, seekerSide.Request(context.Background(), companyID), seekerSide.Err)
	require.Len(t, seekerSide.Connections, 1)
	assert.Equal(t, api.ConnectionPending, seekerSide.Connections[0].Status)
	connID := seekerSide.Connections[0].ID

	t.Run("duplicate request is a conflict", func(t *testing.T) {
		assert.False(t, seekerSide.Request(context.Background(), companyID))
		assert.Equal(t, "connection already exists", seekerSide.Err)
	})

	t.Run("only the addressee may accept", func(t *testing.T) {
		assert.False(t, seekerSide.Accept(context.Background(), connID))
		assert.NotEmpty(t, seekerSide.Err)
	})

	// the company accepts
	loginAs(t, client, store, seedCompanyEmail)
	companySide := NewConnectionsPage(client, store, zap.NewNop())
	companySide.Load(context.Background())
	require.Empty(t, companySide.Err)
	require.Len(t, companySide.Connections, 1)

	require.True(t, companySide.Accept(context.Background(), connID), companySide.Err)
	assert.Equal(t, api.ConnectionAccepted, companySide.Connections[0].Status)

	t.Run("either side may remove", func(t *testing.T) {
		require.True(t, companySide.Remove(context.Background(), connID), companySide.Err)
		assert.Empty(t, companySide.Connections)
	})
}
