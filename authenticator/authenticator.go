package authenticator

import (
	"context"
)

// Token represents an authentication token
type Token struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	Expiry       int64
}

// Claims represents user claims from the ID token
type Claims map[string]interface{}

// Provider interface abstracts OAuth provider operations
type Provider interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Token, error)
	GetClaims(ctx context.Context, token *Token) (Claims, error)
}

func (c Claims) stringClaim(name string) string {
	value, _ := c[name].(string)
	return value
}

// Subject returns the sub claim
func (c Claims) Subject() string {
	return c.stringClaim("sub")
}

// Email returns the email claim, empty when absent
func (c Claims) Email() string {
	return c.stringClaim("email")
}

// DisplayName picks nickname, then name, then email, then sub
func (c Claims) DisplayName() string {
	for _, name := range []string{"nickname", "name", "email", "sub"} {
		if value := c.stringClaim(name); value != "" {
			return value
		}
	}
	return ""
}
