package middleware

import (
	"encoding/json"
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/privacy-toolkit/userctx"
)

// Session keys written at login
const (
	SessionUserID    = "user_id"
	SessionUserEmail = "user_email"
	SessionUserName  = "user_nickname"
)

// RequireAuth ensures a back-office user is logged in.
// Unauthenticated requests get a 401 JSON error; the user is added to the request context otherwise.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)
		userID, _ := sess.Get(SessionUserID).(string)

		if userID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "authentication required", "login": "/login"})
			return
		}

		email, _ := sess.Get(SessionUserEmail).(string)
		name, _ := sess.Get(SessionUserName).(string)

		ctx := userctx.WithUser(r.Context(), userctx.User{ID: userID, Email: email, Name: name})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LocalUser marks every request as coming from a fixed user.
// Used for the back-office routes when no login provider is configured.
func LocalUser(user userctx.User) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(userctx.WithUser(r.Context(), user)))
		})
	}
}
