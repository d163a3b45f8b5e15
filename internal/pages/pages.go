// Package pages holds the per-page controllers: fetch, component-local
// state, view data. Controllers never panic a page away; every failure path
// lands in an Err field the renderer shows as a dismissable banner, and
// nothing is ever retried automatically.
package pages

import (
	"github.com/mehmetcc/oseek/internal/api"
	"github.com/mehmetcc/oseek/internal/credstore"
	"github.com/mehmetcc/oseek/internal/guard"
	"github.com/mehmetcc/oseek/internal/nav"
	"github.com/mehmetcc/oseek/internal/person"
)

// networkBanner is the generic text for requests that never reached the
// server. The session guard's expiry fallback is the one place network
// failures get special treatment.
const networkBanner = "network error, please try again"

// banner turns a request failure into inline banner text: server-reported
// messages verbatim, transport failures generic.
func banner(err error) string {
	if err == nil {
		return ""
	}
	if apiErr, ok := api.AsError(err); ok {
		return apiErr.Message
	}
	if api.IsNetworkError(err) {
		return networkBanner
	}
	return err.Error()
}

// requireRole is the defense-in-depth check every role-restricted page runs
// on entry, independent of the nav selector having hidden the entry point.
// It returns the redirect target when the cached role does not match.
func requireRole(store credstore.Store, want person.Role) (redirect string, ok bool) {
	cred := store.Load()
	if cred.User == nil {
		return guard.LoginRoute, false
	}
	if cred.User.Role != want {
		return nav.Landing(cred.User.Role), false
	}
	return "", true
}
