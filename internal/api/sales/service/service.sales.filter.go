package salessvc

import (
	"strings"
	"time"

	"retail_sales/internal/api/sales/dto"
	"retail_sales/internal/api/sales/models"
	"retail_sales/internal/utility"
)

// Biên mặc định khi chỉ khai báo một đầu của khoảng tuổi / khoảng ngày.
const (
	defaultAgeMin = 0
	defaultAgeMax = 999
)

var (
	defaultDateStart = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	defaultDateEnd   = time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)
)

// recordPredicate trả về true nếu bản ghi thỏa một điều kiện lọc.
type recordPredicate func(r *models.SalesRecord) bool

// buildPredicates biên dịch query thành danh sách predicate kết hợp AND.
// Điều kiện không khai báo không sinh predicate; query rỗng trả về danh sách rỗng (match tất cả).
// Mỗi predicate chỉ giữ giá trị điều kiện, không giữ tham chiếu tới dữ liệu.
func buildPredicates(query *salesdto.SalesQueryInput) []recordPredicate {
	var predicates []recordPredicate
	if query == nil {
		return predicates
	}

	if search := strings.TrimSpace(query.Search); search != "" {
		lowered := strings.ToLower(search)
		predicates = append(predicates, func(r *models.SalesRecord) bool {
			// Tên khách: substring không phân biệt hoa thường; SĐT: substring nguyên văn
			return strings.Contains(strings.ToLower(r.CustomerName), lowered) ||
				strings.Contains(r.PhoneNumber, search)
		})
	}

	if p := membershipPredicate(query.Regions, func(r *models.SalesRecord) string { return r.CustomerRegion }); p != nil {
		predicates = append(predicates, p)
	}
	if p := membershipPredicate(query.Genders, func(r *models.SalesRecord) string { return r.Gender }); p != nil {
		predicates = append(predicates, p)
	}
	if p := membershipPredicate(query.Categories, func(r *models.SalesRecord) string { return r.ProductCategory }); p != nil {
		predicates = append(predicates, p)
	}
	if p := membershipPredicate(query.PaymentMethods, func(r *models.SalesRecord) string { return r.PaymentMethod }); p != nil {
		predicates = append(predicates, p)
	}
	if p := membershipPredicate(query.CustomerTypes, func(r *models.SalesRecord) string { return r.CustomerType }); p != nil {
		predicates = append(predicates, p)
	}
	if p := membershipPredicate(query.OrderStatuses, func(r *models.SalesRecord) string { return r.OrderStatus }); p != nil {
		predicates = append(predicates, p)
	}
	if p := membershipPredicate(query.Brands, func(r *models.SalesRecord) string { return r.Brand }); p != nil {
		predicates = append(predicates, p)
	}

	if len(query.Tags) > 0 {
		selected := utility.ToSet(query.Tags)
		predicates = append(predicates, func(r *models.SalesRecord) bool {
			// OR trong field: chỉ cần một tag của bản ghi nằm trong danh sách chọn
			for _, tag := range r.Tags {
				if _, ok := selected[tag]; ok {
					return true
				}
			}
			return false
		})
	}

	if query.AgeMin != nil || query.AgeMax != nil {
		min, max := defaultAgeMin, defaultAgeMax
		if query.AgeMin != nil {
			min = *query.AgeMin
		}
		if query.AgeMax != nil {
			max = *query.AgeMax
		}
		predicates = append(predicates, func(r *models.SalesRecord) bool {
			return r.Age >= min && r.Age <= max
		})
	}

	if query.DateStart != nil || query.DateEnd != nil {
		start, end := defaultDateStart, defaultDateEnd
		if query.DateStart != nil {
			start = *query.DateStart
		}
		if query.DateEnd != nil {
			end = *query.DateEnd
		}
		predicates = append(predicates, func(r *models.SalesRecord) bool {
			// Inclusive hai đầu, so sánh đầy đủ cả giờ phút
			return !r.Date.Before(start) && !r.Date.After(end)
		})
	}

	return predicates
}

// membershipPredicate sinh predicate so khớp chính xác theo set giá trị đã chọn.
// Danh sách chọn rỗng trả về nil (không lọc chiều này).
func membershipPredicate(selected []string, extract func(r *models.SalesRecord) string) recordPredicate {
	if len(selected) == 0 {
		return nil
	}
	set := utility.ToSet(selected)
	return func(r *models.SalesRecord) bool {
		_, ok := set[extract(r)]
		return ok
	}
}
