package auth

import "errors"

// Expected, recoverable-by-caller authentication failures. Handlers map
// these to structured responses with stable codes; anything else is a
// generic server error.
var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrDuplicateEmail      = errors.New("email already registered")
	ErrUnsupportedProvider = errors.New("unsupported provider")
	ErrProviderUnavailable = errors.New("identity provider unavailable")
	ErrIdentityConflict    = errors.New("email registered under a different provider")
	ErrInvalidToken        = errors.New("invalid token")
	ErrAccountNotFound     = errors.New("account not found")
)
