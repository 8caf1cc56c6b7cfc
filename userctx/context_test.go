package userctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserContext(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, Anonymous, GetUserEmail(ctx))
	assert.Equal(t, "", GetUserID(ctx))
	assert.Equal(t, Anonymous, Actor(ctx))

	ctx = WithUser(ctx, User{ID: "auth|1", Name: "Dana"})
	user, ok := FromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "auth|1", user.ID)
	assert.Equal(t, Anonymous, GetUserEmail(ctx))
	assert.Equal(t, "Dana", Actor(ctx))

	ctx = WithUser(ctx, User{ID: "auth|1", Email: "dana@example.com"})
	assert.Equal(t, "dana@example.com", GetUserEmail(ctx))
	assert.Equal(t, "dana@example.com", Actor(ctx))
}
