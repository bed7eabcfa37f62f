package models

import "retail_sales/internal/utility"

// SortKey là khóa sắp xếp kết quả truy vấn bán hàng.
type SortKey string

const (
	SortKeyNone         SortKey = ""              // Giữ nguyên thứ tự dữ liệu
	SortKeyDateDesc     SortKey = "date_desc"     // Ngày giao dịch mới nhất trước
	SortKeyQuantity     SortKey = "quantity"      // Số lượng giảm dần
	SortKeyCustomerName SortKey = "customer_name" // Tên khách hàng tăng dần (locale-aware)
	SortKeyAmountDesc   SortKey = "amount_desc"   // Số tiền cuối giảm dần
)

// SortKeys là danh sách các khóa sắp xếp được hỗ trợ (không gồm SortKeyNone).
var SortKeys = []SortKey{SortKeyDateDesc, SortKeyQuantity, SortKeyCustomerName, SortKeyAmountDesc}

// ParseSortKey chuyển chuỗi sortBy thành SortKey.
// Giá trị không nhận diện được trả về SortKeyNone (không sắp xếp, không lỗi).
func ParseSortKey(s string) SortKey {
	if utility.Contains(SortKeys, SortKey(s)) {
		return SortKey(s)
	}
	return SortKeyNone
}
