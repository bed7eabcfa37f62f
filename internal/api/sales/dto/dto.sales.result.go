package salesdto

import "retail_sales/internal/api/sales/models"

// Pagination mô tả trang kết quả hiện tại.
type Pagination struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalRecords int  `json:"totalRecords"`
	HasNext      bool `json:"hasNext"`
	HasPrev      bool `json:"hasPrev"`
}

// SalesPageResult là một trang kết quả truy vấn bán hàng.
// Data luôn là slice (có thể rỗng), không bao giờ nil khi trả về client.
type SalesPageResult struct {
	Data       []models.SalesRecord `json:"data"`
	Pagination Pagination           `json:"pagination"`
}
