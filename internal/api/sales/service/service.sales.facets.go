package salessvc

import (
	"retail_sales/internal/api/sales/dto"
	"retail_sales/internal/utility"
)

// fallbackFilterOptions là vocabulary cố định trả về khi chưa có dữ liệu,
// để UI vẫn render được các control lọc.
func fallbackFilterOptions() *salesdto.FilterOptions {
	return &salesdto.FilterOptions{
		CustomerRegion:  []string{"Central", "East", "North", "South", "West"},
		Gender:          []string{"Female", "Male"},
		ProductCategory: []string{"Beauty", "Clothing", "Electronics"},
		Tags: []string{
			"accessories", "beauty", "casual", "cotton", "fashion", "formal",
			"fragrance-free", "gadgets", "makeup", "organic", "portable",
			"skincare", "smart", "unisex", "wireless",
		},
		PaymentMethod: []string{"Cash", "Credit Card", "Debit Card", "Net Banking", "UPI", "Wallet"},
		CustomerType:  []string{"Loyal", "New", "Returning"},
		OrderStatus:   []string{"Cancelled", "Completed", "Pending", "Returned"},
		Brand: []string{
			"ComfortLine", "CyberCore", "EliteWear", "GlowEssence", "NovaGear",
			"PureBloom", "SilkSkin", "StreetLayer", "TechPulse", "UrbanWeave",
			"VelvetTouch", "VoltEdge",
		},
		AgeRange: salesdto.AgeRange{Min: 18, Max: 65},
	}
}

// GetFilterOptions trả về tập giá trị khả dụng cho từng chiều lọc.
// Kết quả được cache theo TTL; kho rỗng (hoặc chưa nạp) trả về fallback vocabulary.
// Hàm này không bao giờ fail.
func (s *SalesService) GetFilterOptions() *salesdto.FilterOptions {
	if cached, ok := s.facetCache.Get(); ok {
		return cached
	}

	options := s.computeFilterOptions()
	s.facetCache.Set(options)
	return options
}

// computeFilterOptions dẫn xuất filter options bằng một lượt duyệt toàn bộ bản ghi.
func (s *SalesService) computeFilterOptions() *salesdto.FilterOptions {
	records := s.store.All()
	if len(records) == 0 {
		return fallbackFilterOptions()
	}

	collect := &facetCollector{}
	for i := range records {
		r := &records[i]
		collect.regions = append(collect.regions, r.CustomerRegion)
		collect.genders = append(collect.genders, r.Gender)
		collect.categories = append(collect.categories, r.ProductCategory)
		collect.methods = append(collect.methods, r.PaymentMethod)
		collect.types = append(collect.types, r.CustomerType)
		collect.statuses = append(collect.statuses, r.OrderStatus)
		collect.brands = append(collect.brands, r.Brand)
		collect.tags = append(collect.tags, r.Tags...)
		// Tuổi 0 là giá trị chuẩn hóa từ parse lỗi, không đưa vào khoảng tuổi
		if r.Age > 0 {
			if collect.ageMin == 0 || r.Age < collect.ageMin {
				collect.ageMin = r.Age
			}
			if r.Age > collect.ageMax {
				collect.ageMax = r.Age
			}
		}
	}

	return collect.result()
}

// facetCollector gom giá trị thô cho từng chiều trong một lượt duyệt;
// result() lọc distinct và sắp xếp khi trả kết quả.
type facetCollector struct {
	regions    []string
	genders    []string
	categories []string
	tags       []string
	methods    []string
	types      []string
	statuses   []string
	brands     []string
	ageMin     int
	ageMax     int
}

func (c *facetCollector) result() *salesdto.FilterOptions {
	ageRange := salesdto.AgeRange{Min: c.ageMin, Max: c.ageMax}
	if c.ageMin == 0 && c.ageMax == 0 {
		// Không có bản ghi nào mang tuổi hợp lệ: dùng khoảng tuổi mặc định
		ageRange = salesdto.AgeRange{Min: 18, Max: 65}
	}

	return &salesdto.FilterOptions{
		CustomerRegion:  utility.DistinctSorted(c.regions),
		Gender:          utility.DistinctSorted(c.genders),
		ProductCategory: utility.DistinctSorted(c.categories),
		Tags:            utility.DistinctSorted(c.tags),
		PaymentMethod:   utility.DistinctSorted(c.methods),
		CustomerType:    utility.DistinctSorted(c.types),
		OrderStatus:     utility.DistinctSorted(c.statuses),
		Brand:           utility.DistinctSorted(c.brands),
		AgeRange:        ageRange,
	}
}
