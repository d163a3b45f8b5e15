package pages

import (
	"context"
	"testing"

	"github.com/mehmetcc/oseek/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAccountPageChangePassword(t *testing.T) {
	client, store := newBackend(t)
	loginAs(t, client, store, seedSeekerEmail)
	page := NewAccountPage(client, store, zap.NewNop())

	t.Run("wrong current password is a server failure", func(t *testing.T) {
		ok := page.ChangePassword(context.Background(), api.ChangePasswordRequest{
			CurrentPassword: "wrong",
			NewPassword:     "anotherpassword",
		})
		assert.False(t, ok)
		assert.NotEmpty(t, page.Err)
	})

	t.Run("short new password fails locally", func(t *testing.T) {
		ok := page.ChangePassword(context.Background(), api.ChangePasswordRequest{
			CurrentPassword: seedPassword,
			NewPassword:     "short",
		})
		assert.False(t, ok)
		assert.NotEmpty(t, page.FieldErrors)
	})

	t.Run("success", func(t *testing.T) {
		ok := page.ChangePassword(context.Background(), api.ChangePasswordRequest{
			CurrentPassword: seedPassword,
			NewPassword:     "brand-new-password",
		})
		assert.True(t, ok, page.Err)
	})
}

func TestAccountPageDeleteAccount(t *testing.T) {
	t.Run("refused without password or phrase", func(t *testing.T) {
		client, store := newBackend(t)
		loginAs(t, client, store, seedSeekerEmail)
		page := NewAccountPage(client, store, zap.NewNop())

		assert.False(t, page.DeleteAccount(context.Background(), "", ""))
		assert.False(t, page.DeleteAccount(context.Background(), "", "delete"), "phrase is case sensitive")
		assert.NotEmpty(t, store.Load().Token, "nothing was sent")
	})

	t.Run("typed phrase works", func(t *testing.T) {
		client, store := newBackend(t)
		loginAs(t, client, store, seedSeekerEmail)
		page := NewAccountPage(client, store, zap.NewNop())

		require.True(t, page.DeleteAccount(context.Background(), "", DeleteConfirmPhrase), page.Err)
		assert.Empty(t, store.Load().Token, "store wiped after deletion")
	})

	t.Run("re-entered password works", func(t *testing.T) {
		client, store := newBackend(t)
		loginAs(t, client, store, seedCompanyEmail)
		page := NewAccountPage(client, store, zap.NewNop())

		require.True(t, page.DeleteAccount(context.Background(), seedPassword, ""), page.Err)
		assert.Empty(t, store.Load().Token)
	})

	t.Run("wrong password is rejected by the server", func(t *testing.T) {
		client, store := newBackend(t)
		loginAs(t, client, store, seedSeekerEmail)
		page := NewAccountPage(client, store, zap.NewNop())

		assert.False(t, page.DeleteAccount(context.Background(), "wrong", ""))
		assert.NotEmpty(t, store.Load().Token, "store untouched on failure")
	})
}

func TestAccountPageLogoutAndTheme(t *testing.T) {
	client, store := newBackend(t)
	loginAs(t, client, store, seedSeekerEmail)
	page := NewAccountPage(client, store, zap.NewNop())

	assert.Empty(t, page.Theme())
	require.True(t, page.SetTheme("dark"))
	assert.Equal(t, "dark", page.Theme())

	assert.False(t, page.SetTheme("solarized"))
	assert.Equal(t, "dark", page.Theme(), "invalid theme leaves the setting alone")

	require.True(t, page.Logout())
	assert.Empty(t, store.Load().Token)
	assert.Equal(t, "dark", page.Theme(), "theme preference survives logout")
}
