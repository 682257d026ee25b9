package edgar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	cache := NewMemoryCache()

	_, ok := cache.Lookup()
	assert.False(t, ok)

	dir := Directory{{CIK: "1", Ticker: "AAA", Title: "Acme"}}
	cache.Populate(dir)

	got, ok := cache.Lookup()
	require.True(t, ok)
	assert.Equal(t, dir, got)
}

func TestMemoryCache_EmptyDirectoryCounts(t *testing.T) {
	// A populated-but-empty directory is still a hit; only Populate flips
	// the state.
	cache := NewMemoryCache()
	cache.Populate(Directory{})

	got, ok := cache.Lookup()
	assert.True(t, ok)
	assert.Empty(t, got)
}
