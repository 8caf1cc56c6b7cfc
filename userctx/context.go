package userctx

import "context"

// Context key type
type contextKey string

const userKey contextKey = "back_office_user"

// Anonymous is reported as the actor of requests without a logged-in user
const Anonymous = "anonymous"

// User is the back-office user behind a request
type User struct {
	ID    string
	Email string
	Name  string
}

// WithUser adds the user to the request context
func WithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// FromContext retrieves the user from the request context
func FromContext(ctx context.Context) (User, bool) {
	user, ok := ctx.Value(userKey).(User)
	return user, ok
}

// GetUserEmail retrieves the user email, Anonymous when nobody is logged in
func GetUserEmail(ctx context.Context) string {
	if user, ok := FromContext(ctx); ok && user.Email != "" {
		return user.Email
	}
	return Anonymous
}

// GetUserID retrieves the user ID, empty when nobody is logged in
func GetUserID(ctx context.Context) string {
	user, _ := FromContext(ctx)
	return user.ID
}

// Actor names the user for notes and audit trails: email, then name, then ID
func Actor(ctx context.Context) string {
	user, ok := FromContext(ctx)
	if !ok {
		return Anonymous
	}
	for _, name := range []string{user.Email, user.Name, user.ID} {
		if name != "" {
			return name
		}
	}
	return Anonymous
}
