package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"travel-service/internal/account"
	"travel-service/internal/token"
)

// Principal is the authenticated identity attached to a request after
// token verification. It lives for the request only.
type Principal struct {
	AccountID string
	Email     string
	Name      string
	Role      account.Role
}

// unexported, collision-proof context key
type principalContextKeyType struct{}

var principalKey = principalContextKeyType{}

// PrincipalFromContext extracts the authenticated principal, if one was
// installed for this request.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}

// Authenticator installs a Principal for requests carrying a valid bearer
// token. Whether an endpoint requires a principal is the route's decision,
// not this layer's.
type Authenticator struct {
	tokens   *token.Codec
	accounts account.Repository
}

func NewAuthenticator(tokens *token.Codec, accounts account.Repository) *Authenticator {
	return &Authenticator{tokens: tokens, accounts: accounts}
}

// Authenticate extracts the bearer token, verifies it and loads the
// account behind its subject. Absent, malformed or unverifiable tokens all
// result in no principal; the request continues either way.
func (a *Authenticator) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Next()
			return
		}

		claims, err := a.tokens.Verify(raw)
		if err != nil {
			c.Next()
			return
		}

		acct, err := a.accounts.ByEmail(c.Request.Context(), claims.Subject)
		if err != nil {
			c.Next()
			return
		}

		principal := Principal{
			AccountID: acct.ID,
			Email:     acct.Email,
			Name:      acct.Name,
			Role:      acct.Role,
		}
		ctx := context.WithValue(c.Request.Context(), principalKey, principal)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequirePrincipal aborts with 401 when Authenticate installed no
// principal.
func RequirePrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := PrincipalFromContext(c.Request.Context()); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "invalid_token",
				"message": "authentication required",
			})
			return
		}
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	tok, found := strings.CutPrefix(header, "Bearer ")
	tok = strings.TrimSpace(tok)
	if !found || tok == "" {
		return "", false
	}
	return tok, true
}
