package provider

import (
	"travel-service/internal/account"
	"travel-service/internal/auth"
)

// Kakao delivers the subject as a numeric "id" at the top level, the email
// under "kakao_account" and the name a level deeper at
// "kakao_account.profile.nickname".
var kakaoAdapter = Adapter{
	name:        account.ProviderKakao,
	userInfoURL: "https://kapi.kakao.com/v2/user/me",
	adapt: func(attrs map[string]any) auth.Identity {
		kakaoAccount := nestedMap(attrs, "kakao_account")
		profile := nestedMap(kakaoAccount, "profile")
		return auth.Identity{
			Provider: account.ProviderKakao,
			Subject:  stringAttr(attrs, "id"),
			Email:    stringAttr(kakaoAccount, "email"),
			Name:     stringAttr(profile, "nickname"),
		}
	},
}
