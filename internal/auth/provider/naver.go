package provider

import (
	"travel-service/internal/account"
	"travel-service/internal/auth"
)

// Naver nests everything one level under "response". When that map is
// absent every field resolves to absent; the caller decides how to react.
var naverAdapter = Adapter{
	name:        account.ProviderNaver,
	userInfoURL: "https://openapi.naver.com/v1/nid/me",
	adapt: func(attrs map[string]any) auth.Identity {
		response := nestedMap(attrs, "response")
		return auth.Identity{
			Provider: account.ProviderNaver,
			Subject:  stringAttr(response, "id"),
			Email:    stringAttr(response, "email"),
			Name:     stringAttr(response, "name"),
		}
	},
}
