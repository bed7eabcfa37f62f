// Package salesdto chứa DTO cho domain Sales (query, filter options, analytics).
// File: dto.sales.query.go - giữ tên cấu trúc cũ (dto.<domain>.<entity>.go).
package salesdto

import (
	"time"

	"retail_sales/internal/api/sales/models"
)

// SalesQueryInput là đặc tả lọc + sắp xếp cho một lần truy vấn bán hàng.
// Tất cả điều kiện là tùy chọn; điều kiện không khai báo thì không lọc.
// Các điều kiện khai báo được kết hợp theo AND.
type SalesQueryInput struct {
	// Search khớp substring không phân biệt hoa thường trên tên khách hàng,
	// hoặc substring nguyên văn trên số điện thoại.
	Search string `json:"search" validate:"omitempty,no_xss"`

	// Multi-select: so khớp chính xác (phân biệt hoa thường), thỏa một trong các giá trị đã chọn.
	Regions        []string `json:"regions"`
	Genders        []string `json:"genders"`
	Categories     []string `json:"categories"`
	PaymentMethods []string `json:"paymentMethods"`
	CustomerTypes  []string `json:"customerTypes"`
	OrderStatuses  []string `json:"orderStatuses"`
	Brands         []string `json:"brands"`

	// Tags: bản ghi thỏa khi có ít nhất một tag trùng với danh sách chọn (OR trong field).
	Tags []string `json:"tags"`

	// Khoảng tuổi (inclusive). Nil = không ràng buộc đầu đó.
	AgeMin *int `json:"ageMin" validate:"omitempty,gte=0"`
	AgeMax *int `json:"ageMax" validate:"omitempty,lte=150"`

	// Khoảng ngày giao dịch (inclusive, so sánh đầy đủ cả giờ phút).
	DateStart *time.Time `json:"dateStart"`
	DateEnd   *time.Time `json:"dateEnd"`

	// Khóa sắp xếp: rỗng hoặc một trong các khóa được hỗ trợ (xem models.SortKey).
	SortBy models.SortKey `json:"sortBy" validate:"sort_key"`
}
