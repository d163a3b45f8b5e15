package credstore

import (
	"github.com/mehmetcc/oseek/internal/person"
)

// Credential is what local storage holds for "is someone logged in locally":
// the bearer token plus the cached profile summary. An empty Token means
// nothing is stored. User may be nil even when a token exists (for example
// when the cached JSON was malformed and got swallowed on load).
type Credential struct {
	Token string
	User  *person.Person
}

// Store is the single shared mutable resource of the client. It is written
// by login/signup/logout/profile-refresh and read by everything else;
// last write wins. Subscribe delivers change notifications so independent
// controllers (and other processes via the file watcher) observe
// login/logout without polling.
type Store interface {
	// Load never fails: malformed stored state reads as absence.
	Load() Credential
	Save(token string, user *person.Person) error
	Clear() error
	// UpdateUser overwrites the cached user without touching the token.
	UpdateUser(user *person.Person) error

	// Token satisfies api.TokenSource.
	Token() string

	Theme() string
	SaveTheme(theme string) error

	// Subscribe returns a channel of credential snapshots and a cancel
	// function. The channel is buffered; a slow consumer misses
	// intermediate states, never blocks a writer.
	Subscribe() (<-chan Credential, func())
}
