// Package salesloader chứa các loader nạp bản ghi bán hàng vào MemoryStore.
// Hai backend: file CSV và MongoDB, chọn qua cấu hình USE_MONGODB.
package salesloader

import (
	"context"

	"retail_sales/internal/api/sales/models"
)

// SalesLoader nạp toàn bộ bản ghi bán hàng từ một nguồn dữ liệu.
// Engine truy vấn không phụ thuộc interface này; loader chỉ phục vụ khởi động và reload.
type SalesLoader interface {
	// LoadAll đọc toàn bộ dữ liệu nguồn và trả về các bản ghi đã chuẩn hóa.
	LoadAll(ctx context.Context) ([]models.SalesRecord, error)
	// Source trả về tên nguồn dữ liệu (csv, mongodb) để log và health check.
	Source() string
}
