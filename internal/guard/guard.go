// Package guard decides, per protected-route entry, whether stored
// credentials still hold up. Server truth wins; the local expiry estimate is
// only a fallback when the server cannot be reached at all.
package guard

import (
	"context"
	"sync"

	"github.com/mehmetcc/oseek/internal/api"
	"github.com/mehmetcc/oseek/internal/credstore"
	"github.com/mehmetcc/oseek/internal/person"
	"github.com/mehmetcc/oseek/internal/token"
	"go.uber.org/zap"
)

type State int

const (
	StatePending State = iota
	StateChecking
	StateAuthorized
	StateUnauthorized
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateChecking:
		return "checking"
	case StateAuthorized:
		return "authorized"
	case StateUnauthorized:
		return "unauthorized"
	}
	return "unknown"
}

// LoginRoute is where an unauthorized entry gets redirected. The attempted
// destination is discarded; there is no return-to-URL.
const LoginRoute = "/login"

// WhoAmI is the authoritative session check, implemented by *api.Client.
type WhoAmI interface {
	Me(ctx context.Context) (*person.Person, error)
}

// Result is the terminal outcome of one navigation's check.
type Result struct {
	State      State
	User       *person.Person
	RedirectTo string
}

func (r Result) Authorized() bool {
	return r.State == StateAuthorized
}

// Guard is a per-navigation instance: validity is re-derived on every
// protected entry and never cached across navigations. Check is safe to call
// more than once on the same instance but the first terminal outcome sticks,
// so no two checks for one navigation can run concurrently.
type Guard struct {
	whoami WhoAmI
	store  credstore.Store
	logger *zap.Logger

	mu     sync.Mutex
	state  State
	result Result
}

func New(whoami WhoAmI, store credstore.Store, logger *zap.Logger) *Guard {
	return &Guard{
		whoami: whoami,
		store:  store,
		logger: logger,
		state:  StatePending,
	}
}

func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Check runs the gate and always lands in Authorized or Unauthorized. It
// never returns an error: every failure path resolves to a redirect.
func (g *Guard) Check(ctx context.Context) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == StateAuthorized || g.state == StateUnauthorized {
		return g.result
	}
	g.state = StateChecking

	cred := g.store.Load()
	if cred.Token == "" {
		// nothing stored locally, no point asking the server
		return g.settle(Result{State: StateUnauthorized, RedirectTo: LoginRoute})
	}

	user, err := g.whoami.Me(ctx)
	if err == nil {
		if updErr := g.store.UpdateUser(user); updErr != nil {
			g.logger.Warn("failed to refresh cached user", zap.Error(updErr))
		}
		return g.settle(Result{State: StateAuthorized, User: user})
	}

	if api.IsNetworkError(err) {
		// Offline fallback: trust the token while it merely looks
		// unexpired. Keep it exactly this loose.
		if !token.IsExpired(cred.Token) {
			g.logger.Info("server unreachable, granting on unexpired-looking token")
			return g.settle(Result{State: StateAuthorized, User: cred.User})
		}
		g.logger.Info("server unreachable and token looks expired, clearing credentials")
		g.clearStore()
		return g.settle(Result{State: StateUnauthorized, RedirectTo: LoginRoute})
	}

	// the server answered and rejected us; local state is stale
	if apiErr, ok := api.AsError(err); ok {
		g.logger.Info("session rejected by server",
			zap.Int("status", apiErr.Status),
			zap.String("message", apiErr.Message),
		)
	}
	g.clearStore()
	return g.settle(Result{State: StateUnauthorized, RedirectTo: LoginRoute})
}

func (g *Guard) settle(r Result) Result {
	g.state = r.State
	g.result = r
	return r
}

func (g *Guard) clearStore() {
	if err := g.store.Clear(); err != nil {
		g.logger.Warn("failed to clear credential store", zap.Error(err))
	}
}
