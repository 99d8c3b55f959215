// Package provider normalizes the user-info payloads of the supported
// external identity providers into a common identity record. Each provider
// nests its fields differently; the adapters here absorb those shapes so
// nothing downstream knows which provider a login came from.
package provider

import (
	"fmt"
	"strconv"

	"travel-service/internal/account"
	"travel-service/internal/auth"
)

// Adapter turns one provider's raw attribute map into an Identity. Adapters
// are pure functions over the payload; missing intermediate maps yield
// absent fields, never errors.
type Adapter struct {
	name        account.Provider
	userInfoURL string
	adapt       func(attrs map[string]any) auth.Identity
}

func (a Adapter) Name() account.Provider {
	return a.name
}

// UserInfoURL is the provider endpoint that returns the raw attribute map
// for a bearer access token.
func (a Adapter) UserInfoURL() string {
	return a.userInfoURL
}

// Identity normalizes a raw user-info payload.
func (a Adapter) Identity(attrs map[string]any) auth.Identity {
	return a.adapt(attrs)
}

// adapters is the closed dispatch table. The provider set is fixed; an
// unknown name is a configuration error, not a silent default.
var adapters = map[account.Provider]Adapter{
	account.ProviderGoogle: googleAdapter,
	account.ProviderNaver:  naverAdapter,
	account.ProviderKakao:  kakaoAdapter,
	account.ProviderApple:  appleAdapter,
}

// ForName looks up the adapter for a provider name, case-insensitively.
func ForName(name string) (Adapter, error) {
	p, ok := account.ParseProvider(name)
	if ok {
		if a, ok := adapters[p]; ok {
			return a, nil
		}
	}
	return Adapter{}, fmt.Errorf("%w: %q", auth.ErrUnsupportedProvider, name)
}

// stringAttr reads a string field, stringifying numeric values the way some
// providers (kakao) deliver ids.
func stringAttr(attrs map[string]any, key string) string {
	v, ok := attrs[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// nestedMap descends one level; a missing or mistyped child is an empty map
// so field reads stay nil-safe.
func nestedMap(attrs map[string]any, key string) map[string]any {
	if m, ok := attrs[key].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}
