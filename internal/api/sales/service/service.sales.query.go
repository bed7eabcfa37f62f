package salessvc

import (
	"sort"

	"retail_sales/internal/api/sales/dto"
	"retail_sales/internal/api/sales/models"
	"retail_sales/internal/common"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// GetSalesData thực thi một lần truy vấn: lọc → sắp xếp → phân trang.
// Trả về common.ErrStoreNotReady nếu kho chưa được nạp lần nào;
// kho đã nạp nhưng rỗng là kết quả hợp lệ (trang rỗng).
func (s *SalesService) GetSalesData(query *salesdto.SalesQueryInput, page int, limit int) (*salesdto.SalesPageResult, error) {
	if !s.store.Ready() {
		return nil, common.ErrStoreNotReady
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	// Lọc: một lượt duyệt, short-circuit tại predicate fail đầu tiên
	predicates := buildPredicates(query)
	all := s.store.All()
	filtered := make([]models.SalesRecord, 0, len(all))
	for i := range all {
		if matchesAll(&all[i], predicates) {
			filtered = append(filtered, all[i])
		}
	}

	if query != nil {
		sortRecords(filtered, query.SortBy)
	}

	// Phân trang: trang vượt quá dữ liệu trả về trang rỗng, không lỗi
	total := len(filtered)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &salesdto.SalesPageResult{
		Data: filtered[start:end],
		Pagination: salesdto.Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalRecords: total,
			HasNext:      page < totalPages,
			HasPrev:      page > 1,
		},
	}, nil
}

// matchesAll kiểm tra bản ghi thỏa tất cả predicates (AND).
func matchesAll(r *models.SalesRecord, predicates []recordPredicate) bool {
	for _, p := range predicates {
		if !p(r) {
			return false
		}
	}
	return true
}

// sortRecords sắp xếp in-place theo khóa; khóa rỗng/không nhận diện giữ nguyên thứ tự.
// Dùng sort ổn định để các bản ghi bằng nhau giữ thứ tự tương đối trong kho.
func sortRecords(records []models.SalesRecord, key models.SortKey) {
	switch key {
	case models.SortKeyDateDesc:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Date.After(records[j].Date)
		})
	case models.SortKeyQuantity:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Quantity > records[j].Quantity
		})
	case models.SortKeyCustomerName:
		// So sánh theo collation để tên có dấu xếp đúng thứ tự tự nhiên
		cl := collate.New(language.Und)
		sort.SliceStable(records, func(i, j int) bool {
			return cl.CompareString(records[i].CustomerName, records[j].CustomerName) < 0
		})
	case models.SortKeyAmountDesc:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].FinalAmount > records[j].FinalAmount
		})
	}
}
