package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPageIDCache_SetAndGet(t *testing.T) {
	c, err := NewPageIDCache(128)
	require.NoError(t, err)
	defer c.Close()

	c.Set("latest:USD", "page-42")
	c.cache.Wait()

	got, ok := c.Get("latest:USD")
	require.True(t, ok)
	require.Equal(t, "page-42", got)
}

func TestPageIDCache_GetMissWhenEmpty(t *testing.T) {
	c, err := NewPageIDCache(64)
	require.NoError(t, err)
	defer c.Close()

	id, ok := c.Get("latest:EUR")
	require.False(t, ok)
	require.Empty(t, id)
}

func TestPageIDCache_DelEvictsOnlySpecifiedKey(t *testing.T) {
	c, err := NewPageIDCache(256)
	require.NoError(t, err)
	defer c.Close()

	c.Set("latest:USD", "page-usd")
	c.Set("history:2025-09-29:USD", "page-hist")
	c.cache.Wait()

	c.Del("latest:USD")

	_, ok := c.Get("latest:USD")
	require.False(t, ok)

	id, ok := c.Get("history:2025-09-29:USD")
	require.True(t, ok)
	require.Equal(t, "page-hist", id)
}
