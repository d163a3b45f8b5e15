package guard

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/mehmetcc/oseek/internal/api"
	"github.com/mehmetcc/oseek/internal/credstore"
	"github.com/mehmetcc/oseek/internal/person"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type whoamiStub struct {
	calls int
	user  *person.Person
	err   error
}

func (s *whoamiStub) Me(ctx context.Context) (*person.Person, error) {
	s.calls++
	return s.user, s.err
}

func tokenWithExp(t *testing.T, exp time.Time) string {
	t.Helper()
	payload, err := json.Marshal(map[string]any{"exp": exp.Unix()})
	require.NoError(t, err)
	return "h." + base64.RawURLEncoding.EncodeToString(payload) + ".s"
}

func TestCheckWithoutTokenSkipsTheServer(t *testing.T) {
	stub := &whoamiStub{}
	g := New(stub, credstore.NewMemStore(), zap.NewNop())

	res := g.Check(context.Background())

	assert.Equal(t, StateUnauthorized, res.State)
	assert.Equal(t, LoginRoute, res.RedirectTo)
	assert.False(t, res.Authorized())
	assert.Zero(t, stub.calls, "no stored token means no network call")
}

func TestCheckServerConfirms(t *testing.T) {
	fresh := &person.Person{ID: "u1", Name: "Fresh Name", Role: person.RoleSeeker}
	stub := &whoamiStub{user: fresh}

	store := credstore.NewMemStore()
	require.NoError(t, store.Save("tok", &person.Person{ID: "u1", Name: "Stale Name", Role: person.RoleSeeker}))

	res := New(stub, store, zap.NewNop()).Check(context.Background())

	assert.Equal(t, StateAuthorized, res.State)
	assert.True(t, res.Authorized())
	assert.Equal(t, fresh, res.User)
	assert.Equal(t, "Fresh Name", store.Load().User.Name, "cached user refreshed from the server")
}

func TestCheckServerRejects(t *testing.T) {
	stub := &whoamiStub{err: &api.Error{Status: http.StatusUnauthorized, Message: "token expired"}}

	store := credstore.NewMemStore()
	require.NoError(t, store.Save("tok", &person.Person{ID: "u1"}))

	res := New(stub, store, zap.NewNop()).Check(context.Background())

	assert.Equal(t, StateUnauthorized, res.State)
	assert.Equal(t, LoginRoute, res.RedirectTo)
	assert.Empty(t, store.Load().Token, "rejected credentials are wiped")
}

func TestCheckOfflineWithUnexpiredToken(t *testing.T) {
	stub := &whoamiStub{err: fmt.Errorf("%w: connection refused", api.ErrNetwork)}

	cached := &person.Person{ID: "u1", Role: person.RoleCompany}
	store := credstore.NewMemStore()
	require.NoError(t, store.Save(tokenWithExp(t, time.Now().Add(time.Hour)), cached))

	res := New(stub, store, zap.NewNop()).Check(context.Background())

	assert.Equal(t, StateAuthorized, res.State, "optimistic grant while offline")
	assert.Equal(t, cached.ID, res.User.ID)
	assert.NotEmpty(t, store.Load().Token, "credentials survive an offline grant")
}

func TestCheckOfflineWithExpiredToken(t *testing.T) {
	stub := &whoamiStub{err: fmt.Errorf("%w: connection refused", api.ErrNetwork)}

	store := credstore.NewMemStore()
	require.NoError(t, store.Save(tokenWithExp(t, time.Now().Add(-time.Hour)), &person.Person{ID: "u1"}))

	res := New(stub, store, zap.NewNop()).Check(context.Background())

	assert.Equal(t, StateUnauthorized, res.State)
	assert.Equal(t, LoginRoute, res.RedirectTo)
	assert.Empty(t, store.Load().Token)
}

func TestCheckTerminalResultSticks(t *testing.T) {
	stub := &whoamiStub{user: &person.Person{ID: "u1", Role: person.RoleSeeker}}
	store := credstore.NewMemStore()
	require.NoError(t, store.Save("tok", &person.Person{ID: "u1"}))

	g := New(stub, store, zap.NewNop())
	first := g.Check(context.Background())
	second := g.Check(context.Background())

	assert.Equal(t, first, second)
	assert.Equal(t, 1, stub.calls, "one navigation, one server check")
	assert.Equal(t, StateAuthorized, g.State())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "pending", StatePending.String())
	assert.Equal(t, "checking", StateChecking.String())
	assert.Equal(t, "authorized", StateAuthorized.String())
	assert.Equal(t, "unauthorized", StateUnauthorized.String())
	assert.Equal(t, "unknown", State(42).String())
}
