package api

import (
	"errors"

	"github.com/mehmetcc/oseek/internal/httpx"
)

// ErrNetwork marks transport-level failures where no response arrived at all
// (timeout, DNS, offline). Server responses, however unhappy, never carry it.
var ErrNetwork = errors.New("network error")

// Error is a server-reported failure: an HTTP status plus the human-readable
// message the backend wants shown verbatim, and the occasional ad hoc
// messageCode (recommendation failure reasons mostly).
type Error struct {
	Status      int
	Message     string
	MessageCode httpx.MessageCode
}

func (e *Error) Error() string {
	return e.Message
}

// AsError unwraps a server-reported failure, if err is one.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNetworkError reports whether err means the server was never reached.
func IsNetworkError(err error) bool {
	return errors.Is(err, ErrNetwork)
}
