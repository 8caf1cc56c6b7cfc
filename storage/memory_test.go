package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseAdapter runs the behaviour every Adapter implementation must share
func exerciseAdapter(t *testing.T, adapter Adapter) {
	ctx := context.Background()

	_, found, err := adapter.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, adapter.Set(ctx, "privacy.consent", `{"a":true}`))
	value, found, err := adapter.Get(ctx, "privacy.consent")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"a":true}`, value)

	require.NoError(t, adapter.Set(ctx, "privacy.consent", `{"a":false}`))
	value, _, err = adapter.Get(ctx, "privacy.consent")
	require.NoError(t, err)
	assert.Equal(t, `{"a":false}`, value)

	require.NoError(t, adapter.Remove(ctx, "privacy.consent"))
	_, found, err = adapter.Get(ctx, "privacy.consent")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, adapter.Remove(ctx, "never-set"))

	require.NoError(t, adapter.Set(ctx, "a", "1"))
	require.NoError(t, adapter.Set(ctx, "b", "2"))
	require.NoError(t, adapter.Clear(ctx))
	_, found, err = adapter.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, found)
	_, found, err = adapter.Get(ctx, "b")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryAdapter(t *testing.T) {
	adapter := NewMemoryAdapter()
	exerciseAdapter(t, adapter)
	assert.Equal(t, 0, adapter.Len())
}

func TestMemoryAdapterEmptyValue(t *testing.T) {
	ctx := context.Background()
	adapter := NewMemoryAdapter()

	require.NoError(t, adapter.Set(ctx, "empty", ""))
	value, found, err := adapter.Get(ctx, "empty")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "", value)
}
