package pages

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mehmetcc/oseek/internal/api"
	"github.com/mehmetcc/oseek/internal/config"
	"github.com/mehmetcc/oseek/internal/credstore"
	"github.com/mehmetcc/oseek/internal/mockapi"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Seed accounts the mock backend ships with.
const (
	seedSeekerEmail  = "seeker@oseek.dev"
	seedCompanyEmail = "company@oseek.dev"
	seedAdminEmail   = "admin@oseek.dev"
	seedPassword     = "password123"
)

// newBackend spins up the in-memory backend and a client wired to it through
// a fresh credential store. Every test gets its own world.
func newBackend(t *testing.T) (*api.Client, *credstore.MemStore) {
	t.Helper()

	srv := httptest.NewServer(mockapi.New("test-secret", zap.NewNop()).Routes())
	t.Cleanup(srv.Close)

	store := credstore.NewMemStore()
	cfg := &config.APIConfig{BaseURL: srv.URL, RequestTimeout: 5 * time.Second}
	return api.NewClient(cfg, store, zap.NewNop()), store
}

func loginAs(t *testing.T, client *api.Client, store credstore.Store, email string) {
	t.Helper()
	page := NewLoginPage(client, store, zap.NewNop())
	ok := page.Submit(context.Background(), api.LoginRequest{Email: email, Password: seedPassword})
	require.True(t, ok, "login as %s failed: %s", email, page.Err)
}
