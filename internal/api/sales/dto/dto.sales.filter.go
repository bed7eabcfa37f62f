package salesdto

// AgeRange là khoảng tuổi quan sát được trong dữ liệu (min/max trên các tuổi > 0).
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// FilterOptions là tập giá trị khả dụng cho từng chiều lọc, dẫn xuất từ dữ liệu hiện có.
// Mỗi danh sách đã khử trùng lặp và sắp xếp tăng dần.
type FilterOptions struct {
	CustomerRegion  []string `json:"customerRegion"`
	Gender          []string `json:"gender"`
	ProductCategory []string `json:"productCategory"`
	Tags            []string `json:"tags"`
	PaymentMethod   []string `json:"paymentMethod"`
	CustomerType    []string `json:"customerType"`
	OrderStatus     []string `json:"orderStatus"`
	Brand           []string `json:"brand"`
	AgeRange        AgeRange `json:"ageRange"`
}
