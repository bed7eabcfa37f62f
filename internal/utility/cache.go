package utility

import (
	"sync"
	"time"
)

// TTLCache là cache một giá trị với thời gian sống (TTL).
// Clock được inject qua nowFunc để test được hành vi hết hạn mà không cần sleep.
type TTLCache[T any] struct {
	mu      sync.RWMutex
	value   T
	setAt   time.Time
	has     bool
	ttl     time.Duration
	nowFunc func() time.Time
}

// NewTTLCache tạo một instance mới của TTLCache với TTL cho trước.
// nowFunc = nil thì dùng time.Now.
func NewTTLCache[T any](ttl time.Duration, nowFunc func() time.Time) *TTLCache[T] {
	if nowFunc == nil {
		nowFunc = time.Now
	}
	return &TTLCache[T]{
		ttl:     ttl,
		nowFunc: nowFunc,
	}
}

// Set lưu giá trị vào cache và ghi lại thời điểm lưu.
func (c *TTLCache[T]) Set(value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = value
	c.setAt = c.nowFunc()
	c.has = true
}

// Get lấy giá trị từ cache.
// Trả về zero value và false nếu cache rỗng hoặc giá trị đã quá TTL.
func (c *TTLCache[T]) Get() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var zero T
	if !c.has {
		return zero, false
	}
	if c.nowFunc().Sub(c.setAt) >= c.ttl {
		return zero, false
	}
	return c.value, true
}

// Invalidate xóa giá trị đang cache. Lần Get tiếp theo sẽ miss.
func (c *TTLCache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	c.value = zero
	c.has = false
}
