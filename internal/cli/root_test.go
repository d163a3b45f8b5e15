package cli

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/mehmetcc/oseek/internal/mockapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// runCLI executes one command the way a shell invocation would: a fresh
// process-shaped Root() each time, state carried only through the store dir.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	root := Root()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func setupCLI(t *testing.T) {
	t.Helper()
	srv := httptest.NewServer(mockapi.New("test-secret", zap.NewNop()).Routes())
	t.Cleanup(srv.Close)

	t.Setenv("OSEEK_API_BASE_URL", srv.URL)
	t.Setenv("OSEEK_STORE_DIR", t.TempDir())
	t.Setenv("OSEEK_REQUEST_TIMEOUT", "5s")
	t.Setenv("OSEEK_UNREAD_POLL_INTERVAL", "")
}

func TestCLIJobsWorksLoggedOut(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "jobs")
	require.NoError(t, err)
	assert.Contains(t, out, "Senior Go Engineer")
	assert.Contains(t, out, "Frontend Developer")
}

func TestCLILoginSession(t *testing.T) {
	setupCLI(t)

	_, err := runCLI(t, "whoami")
	require.Error(t, err, "no session yet")

	out, err := runCLI(t, "login", "--email", "seeker@oseek.dev", "--password", "password123")
	require.NoError(t, err)
	assert.Contains(t, out, "logged in as")

	out, err = runCLI(t, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "role=seeker")
	assert.Contains(t, out, "Wishlist")

	out, err = runCLI(t, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "logged out")

	_, err = runCLI(t, "whoami")
	assert.Error(t, err, "session gone after logout")
}

func TestCLIRoleGates(t *testing.T) {
	setupCLI(t)

	_, err := runCLI(t, "login", "--email", "seeker@oseek.dev", "--password", "password123")
	require.NoError(t, err)

	_, err = runCLI(t, "myjobs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "role")

	out, err := runCLI(t, "recommend")
	require.NoError(t, err)
	assert.Contains(t, out, "Senior Go Engineer", "seeded skills match the Go posting")
}

func TestCLIDeleteNeedsConfirmation(t *testing.T) {
	setupCLI(t)

	_, err := runCLI(t, "login", "--email", "company@oseek.dev", "--password", "password123")
	require.NoError(t, err)

	out, err := runCLI(t, "myjobs")
	require.NoError(t, err)
	assert.Contains(t, out, "Senior Go Engineer")

	_, err = runCLI(t, "account", "delete")
	require.Error(t, err, "no password and no phrase")

	out, err = runCLI(t, "account", "delete", "--confirm", "DELETE")
	require.NoError(t, err)
	assert.Contains(t, out, "account deleted")
}
