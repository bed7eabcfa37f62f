package salessvc

import (
	"retail_sales/internal/api/sales/dto"
	"retail_sales/internal/common"
)

// GetAnalytics tính thống kê tổng hợp trên toàn bộ dữ liệu (không áp filter).
// Trả về common.ErrStoreNotReady nếu kho chưa nạp, common.ErrNoData nếu kho rỗng.
func (s *SalesService) GetAnalytics() (*salesdto.AnalyticsSummary, error) {
	if !s.store.Ready() {
		return nil, common.ErrStoreNotReady
	}
	records := s.store.All()
	if len(records) == 0 {
		return nil, common.ErrNoData
	}

	summary := &salesdto.AnalyticsSummary{
		TotalOrders:   len(records),
		TopCategories: make(map[string]int),
		TopBrands:     make(map[string]int),
		RegionStats:   make(map[string]float64),
		MonthlyTrends: make(map[string]float64),
	}

	// Một lượt duyệt cho tất cả số liệu.
	// Cột thiếu được chuẩn hóa thành "" lúc nạp vẫn được cộng dồn dưới key rỗng,
	// giữ bất biến: tổng count theo category = tổng đơn, tổng doanh thu theo vùng = tổng doanh thu.
	for i := range records {
		r := &records[i]
		summary.TotalRevenue += r.FinalAmount
		summary.TopCategories[r.ProductCategory]++
		summary.TopBrands[r.Brand]++
		summary.RegionStats[r.CustomerRegion] += r.FinalAmount
		if !r.Date.IsZero() {
			summary.MonthlyTrends[r.Date.Format("2006-01")] += r.FinalAmount
		}
	}

	summary.AvgOrderValue = summary.TotalRevenue / float64(summary.TotalOrders)

	return summary, nil
}
