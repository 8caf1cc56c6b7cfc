package authenticator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaims(t *testing.T) {
	claims := Claims{"sub": "auth|123", "email": "dpo@example.com", "name": "Data Protection Officer", "email_verified": true}

	assert.Equal(t, "auth|123", claims.Subject())
	assert.Equal(t, "dpo@example.com", claims.Email())
	assert.Equal(t, "Data Protection Officer", claims.DisplayName())

	assert.Equal(t, "auth|123", Claims{"sub": "auth|123", "nickname": ""}.DisplayName())
	assert.Equal(t, "", Claims{}.Email())
}

func TestOpenIDConfig_Validate(t *testing.T) {
	valid := OpenIDConfig{Domain: "login.example.com", ClientID: "id", ClientSecret: "secret", CallbackURL: "http://localhost/callback"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		modify func(*OpenIDConfig)
		err    string
	}{
		{"domain", func(c *OpenIDConfig) { c.Domain = "" }, "domain is required"},
		{"client id", func(c *OpenIDConfig) { c.ClientID = "" }, "client ID is required"},
		{"client secret", func(c *OpenIDConfig) { c.ClientSecret = "" }, "client secret is required"},
		{"callback", func(c *OpenIDConfig) { c.CallbackURL = "" }, "callback URL is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.modify(&cfg)

			provider, err := NewOpenIDProvider(context.Background(), cfg)

			assert.Nil(t, provider)
			assert.EqualError(t, err, tt.err)
		})
	}
}

func TestOpenIDConfig_IssuerURL(t *testing.T) {
	assert.Equal(t, "https://login.example.com/", OpenIDConfig{Domain: "login.example.com"}.IssuerURL())
	assert.Equal(t, "http://127.0.0.1:9000/", OpenIDConfig{Domain: "http://127.0.0.1:9000/"}.IssuerURL())
}

func TestNewOpenIDProvider_Discovery(t *testing.T) {
	var issuer string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/.well-known/openid-configuration" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"issuer":                 issuer,
			"authorization_endpoint": issuer + "authorize",
			"token_endpoint":         issuer + "oauth/token",
			"jwks_uri":               issuer + ".well-known/jwks.json",
		})
	}))
	defer server.Close()
	issuer = server.URL + "/"

	provider, err := NewOpenIDProvider(context.Background(), OpenIDConfig{
		Domain:       server.URL,
		ClientID:     "privacy-toolkit",
		ClientSecret: "secret",
		CallbackURL:  "http://localhost:8080/callback",
	})
	require.NoError(t, err)

	authURL, err := url.Parse(provider.GetAuthURL("state-123"))
	require.NoError(t, err)
	assert.Equal(t, "/authorize", authURL.Path)
	assert.Equal(t, "privacy-toolkit", authURL.Query().Get("client_id"))
	assert.Equal(t, "state-123", authURL.Query().Get("state"))
	assert.Equal(t, "openid profile email", authURL.Query().Get("scope"))

	_, err = provider.GetClaims(context.Background(), &Token{})
	assert.EqualError(t, err, "no id_token in token")
}
