package salesdto

// AnalyticsSummary là thống kê tổng hợp trên toàn bộ dữ liệu bán hàng.
// Tính lại mỗi lần gọi, không cache.
type AnalyticsSummary struct {
	TotalRevenue  float64            `json:"totalRevenue"`  // Tổng FinalAmount
	TotalOrders   int                `json:"totalOrders"`   // Số giao dịch
	AvgOrderValue float64            `json:"avgOrderValue"` // TotalRevenue / TotalOrders
	TopCategories map[string]int     `json:"topCategories"` // Số giao dịch theo danh mục
	TopBrands     map[string]int     `json:"topBrands"`     // Số giao dịch theo thương hiệu
	RegionStats   map[string]float64 `json:"regionStats"`   // Doanh thu theo vùng
	MonthlyTrends map[string]float64 `json:"monthlyTrends"` // Doanh thu theo tháng (YYYY-MM)
}
