package auth

import "travel-service/internal/account"

// Identity is the provider-agnostic view of a social identity. Adapters
// produce it from a provider's raw user-info payload; the resolver consumes
// it once. It contains facts only, no decisions, and is never persisted.
type Identity struct {
	Provider account.Provider
	Subject  string // provider-scoped unique user identifier
	Email    string // may be empty when the provider withholds it
	Name     string // may be empty when the provider withholds it
}
