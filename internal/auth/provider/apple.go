package provider

import (
	"strings"

	"travel-service/internal/account"
	"travel-service/internal/auth"
)

// Apple is flat like Google but withholds the name by policy on most
// logins. The adapter falls back to the local part of the email; when the
// email itself is absent the name stays absent too.
var appleAdapter = Adapter{
	name:        account.ProviderApple,
	userInfoURL: "https://appleid.apple.com/auth/userinfo",
	adapt: func(attrs map[string]any) auth.Identity {
		email := stringAttr(attrs, "email")
		name := stringAttr(attrs, "name")
		if name == "" {
			if at := strings.Index(email, "@"); at > 0 {
				name = email[:at]
			}
		}
		return auth.Identity{
			Provider: account.ProviderApple,
			Subject:  stringAttr(attrs, "sub"),
			Email:    email,
			Name:     name,
		}
	},
}
