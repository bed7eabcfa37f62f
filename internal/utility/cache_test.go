package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLCache(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	cache := NewTTLCache[string](5*time.Minute, func() time.Time { return now })

	// Cache rỗng
	_, ok := cache.Get()
	assert.False(t, ok)

	cache.Set("hello")
	v, ok := cache.Get()
	assert.True(t, ok)
	assert.Equal(t, "hello", v)

	// Trong TTL vẫn hit
	now = now.Add(4 * time.Minute)
	_, ok = cache.Get()
	assert.True(t, ok)

	// Đúng mốc TTL là miss
	now = now.Add(time.Minute)
	_, ok = cache.Get()
	assert.False(t, ok)
}

func TestTTLCache_Invalidate(t *testing.T) {
	cache := NewTTLCache[int](time.Hour, nil)
	cache.Set(7)

	cache.Invalidate()
	_, ok := cache.Get()
	assert.False(t, ok)
}
