package provider

import (
	"travel-service/internal/account"
	"travel-service/internal/auth"
)

// Google returns a flat payload: subject at "sub", email and name at the
// top level.
var googleAdapter = Adapter{
	name:        account.ProviderGoogle,
	userInfoURL: "https://www.googleapis.com/oauth2/v3/userinfo",
	adapt: func(attrs map[string]any) auth.Identity {
		return auth.Identity{
			Provider: account.ProviderGoogle,
			Subject:  stringAttr(attrs, "sub"),
			Email:    stringAttr(attrs, "email"),
			Name:     stringAttr(attrs, "name"),
		}
	},
}
