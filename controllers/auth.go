package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/privacy-toolkit/authenticator"
	"github.com/blogem/privacy-toolkit/logger"
	"github.com/blogem/privacy-toolkit/middleware"
)

const (
	sessionState         = "state"
	sessionRedirectAfter = "redirect_after_login"
)

// AuthController handles the back-office login flow
type AuthController struct {
	provider authenticator.Provider
}

// NewAuthController creates a new auth controller; provider may be nil
func NewAuthController(provider authenticator.Provider) *AuthController {
	return &AuthController{provider: provider}
}

// Enabled reports whether a login provider is configured
func (ac *AuthController) Enabled() bool {
	return ac.provider != nil
}

// Login initiates the authentication process
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if !ac.Enabled() {
		renderError(w, http.StatusNotFound, "Login is not configured")
		return
	}

	// Generate random state
	state, err := generateRandomState()
	if err != nil {
		renderError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Save the state in the session to validate in callback
	sess := session.GetSession(r)
	_ = sess.Set(sessionState, state)
	if redirect := r.URL.Query().Get("redirect"); redirect != "" && redirect[0] == '/' {
		_ = sess.Set(sessionRedirectAfter, redirect)
	}

	http.Redirect(w, r, ac.provider.GetAuthURL(state), http.StatusTemporaryRedirect)
}

// Callback handles the callback from the identity provider
func (ac *AuthController) Callback(w http.ResponseWriter, r *http.Request) {
	if !ac.Enabled() {
		renderError(w, http.StatusNotFound, "Login is not configured")
		return
	}

	sess := session.GetSession(r)

	// Verify state
	storedState, _ := sess.Get(sessionState).(string)
	if storedState == "" {
		renderError(w, http.StatusBadRequest, "State not found in session")
		return
	}
	if r.URL.Query().Get("state") != storedState {
		renderError(w, http.StatusBadRequest, "Invalid state parameter")
		return
	}

	token, err := ac.provider.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		logger.Logger().WithError(err).Warn("Login failed")
		renderError(w, http.StatusUnauthorized, "Failed to exchange authorization code for a token")
		return
	}

	claims, err := ac.provider.GetClaims(r.Context(), token)
	if err != nil {
		logger.Logger().WithError(err).Warn("Login failed")
		renderError(w, http.StatusUnauthorized, "Failed to verify ID token")
		return
	}
	if claims.Subject() == "" {
		renderError(w, http.StatusUnauthorized, "ID token has no subject")
		return
	}

	_ = sess.Set(middleware.SessionUserID, claims.Subject())
	_ = sess.Set(middleware.SessionUserEmail, claims.Email())
	_ = sess.Set(middleware.SessionUserName, claims.DisplayName())
	_ = sess.Delete(sessionState)

	logger.Logger().WithField("user", claims.DisplayName()).Info("Back-office login")

	redirect, _ := sess.Get(sessionRedirectAfter).(string)
	_ = sess.Delete(sessionRedirectAfter)
	if redirect == "" {
		redirect = "/"
	}
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

// Logout clears the back-office user from the session
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	_ = sess.Delete(middleware.SessionUserID)
	_ = sess.Delete(middleware.SessionUserEmail)
	_ = sess.Delete(middleware.SessionUserName)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// generateRandomState generates a random state value for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
