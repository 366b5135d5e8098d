package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestCache_GetSet(t *testing.T) {
	c := New[[]int](time.Minute, "test", zap.NewNop())
	assert.True(t, c.Enabled())

	_, found := c.Get("k")
	assert.False(t, found)

	c.Set("k", []int{1, 2})
	got, found := c.Get("k")
	assert.True(t, found)
	assert.Equal(t, []int{1, 2}, got)

	assert.Equal(t, Metrics{Hits: 1, Misses: 1, Sets: 1}, c.GetMetrics())

	c.Flush()
	_, found = c.Get("k")
	assert.False(t, found)
}

func TestCache_Expiry(t *testing.T) {
	c := New[string](20*time.Millisecond, "short", nil)
	c.Set("k", "v")

	assert.Eventually(t, func() bool {
		_, found := c.Get("k")
		return !found
	}, time.Second, 10*time.Millisecond)
}

func TestCache_ZeroTTLDisables(t *testing.T) {
	c := New[string](0, "off", nil)
	assert.False(t, c.Enabled())

	c.Set("k", "v")
	_, found := c.Get("k")
	assert.False(t, found)
	assert.Equal(t, Metrics{}, c.GetMetrics())
}
