// Package salessvc chứa engine truy vấn dữ liệu bán hàng trong bộ nhớ:
// lọc theo predicate, sắp xếp, phân trang, dẫn xuất filter options và thống kê tổng hợp.
// File: service.sales.go - giữ tên cấu trúc cũ (service.<domain>.<entity>.go).
package salessvc

import (
	"time"

	"retail_sales/internal/api/sales/dto"
	"retail_sales/internal/api/sales/store"
	"retail_sales/internal/utility"
)

// DefaultFacetCacheTTL là TTL mặc định cho cache filter options.
const DefaultFacetCacheTTL = 5 * time.Minute

// SalesService là service trung tâm của domain Sales.
// Service chỉ đọc qua RecordStore, không biết dữ liệu đến từ nguồn nào và không bao giờ sửa bản ghi.
type SalesService struct {
	store      salesstore.RecordStore
	facetCache *utility.TTLCache[*salesdto.FilterOptions]
}

// NewSalesService tạo service với TTL cache cho trước.
// nowFunc = nil thì cache dùng time.Now; test inject clock qua tham số này.
func NewSalesService(recordStore salesstore.RecordStore, facetTTL time.Duration, nowFunc func() time.Time) *SalesService {
	if facetTTL <= 0 {
		facetTTL = DefaultFacetCacheTTL
	}
	return &SalesService{
		store:      recordStore,
		facetCache: utility.NewTTLCache[*salesdto.FilterOptions](facetTTL, nowFunc),
	}
}

// InvalidateFacetCache xóa cache filter options.
// Gọi sau mỗi lần reload dữ liệu để client thấy vocabulary mới ngay.
func (s *SalesService) InvalidateFacetCache() {
	s.facetCache.Invalidate()
}
