// Package salesstore chứa kho bản ghi bán hàng trong bộ nhớ.
// Engine truy vấn chỉ làm việc qua interface RecordStore, không biết dữ liệu đến từ CSV hay MongoDB.
package salesstore

import (
	"sync"

	"retail_sales/internal/api/sales/models"
)

// RecordStore là contract đọc mà engine truy vấn phụ thuộc vào.
type RecordStore interface {
	// All trả về snapshot toàn bộ bản ghi hiện có. Caller không được sửa đổi slice trả về.
	All() []models.SalesRecord
	// Count trả về số bản ghi hiện có.
	Count() int
	// Ready trả về true nếu kho đã được nạp ít nhất một lần (kể cả nạp ra tập rỗng).
	Ready() bool
}

// MemoryStore giữ toàn bộ bản ghi trong bộ nhớ, bảo vệ bằng RWMutex.
// Bản ghi bất biến sau khi nạp; thay đổi dữ liệu chỉ qua Replace (thay nguyên khối).
type MemoryStore struct {
	mu      sync.RWMutex
	records []models.SalesRecord
	loaded  bool
}

// NewMemoryStore tạo một kho rỗng, chưa sẵn sàng phục vụ truy vấn.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Replace thay toàn bộ bản ghi bằng tập mới (atomic).
// Dùng cho lần nạp đầu và các lần reload; không hỗ trợ cập nhật từng bản ghi.
func (s *MemoryStore) Replace(records []models.SalesRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.loaded = true
}

// All trả về slice bản ghi hiện tại.
func (s *MemoryStore) All() []models.SalesRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// Count trả về số bản ghi hiện có.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Ready phân biệt "chưa nạp lần nào" với "đã nạp nhưng rỗng".
func (s *MemoryStore) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
