// Package salessvc - Test thống kê tổng hợp.
package salessvc

import (
	"testing"

	"retail_sales/internal/api/sales/models"
	"retail_sales/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAnalytics_StoreNotReady(t *testing.T) {
	svc, _ := newTestService(nil)
	_, err := svc.GetAnalytics()
	require.ErrorIs(t, err, common.ErrStoreNotReady)
}

func TestGetAnalytics_EmptyStoreReturnsNoData(t *testing.T) {
	svc, _ := newTestService([]models.SalesRecord{})
	_, err := svc.GetAnalytics()
	require.ErrorIs(t, err, common.ErrNoData)
}

func TestGetAnalytics_SinglePassAggregation(t *testing.T) {
	svc, _ := newTestService(testRecords())

	summary, err := svc.GetAnalytics()
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalOrders)
	assert.InDelta(t, 4500.0, summary.TotalRevenue, 0.001) // 500+1200+300+2500
	assert.InDelta(t, 1125.0, summary.AvgOrderValue, 0.001)

	assert.Equal(t, 2, summary.TopCategories["Electronics"])
	assert.Equal(t, 1, summary.TopCategories["Beauty"])
	assert.Equal(t, 2, summary.TopBrands["TechPulse"])

	assert.InDelta(t, 800.0, summary.RegionStats["North"], 0.001) // 500+300
	assert.InDelta(t, 2500.0, summary.RegionStats["East"], 0.001)

	// Doanh thu theo tháng, khóa YYYY-MM
	assert.InDelta(t, 3000.0, summary.MonthlyTrends["2024-01"], 0.001) // 500+2500
	assert.InDelta(t, 1200.0, summary.MonthlyTrends["2024-02"], 0.001)
	assert.InDelta(t, 300.0, summary.MonthlyTrends["2024-03"], 0.001)
}

func TestGetAnalytics_SumInvariants(t *testing.T) {
	// Cột thiếu chuẩn hóa thành "" vẫn phải được cộng dồn (dưới key rỗng),
	// nếu không các bất biến tổng dưới đây sẽ vỡ
	records := testRecords()
	records = append(records, models.SalesRecord{
		CustomerID:  "C005",
		FinalAmount: 750,
		Date:        day(2024, 4, 2),
		// ProductCategory, Brand, CustomerRegion để trống
	})
	svc, _ := newTestService(records)

	summary, err := svc.GetAnalytics()
	require.NoError(t, err)

	categoryTotal := 0
	for _, count := range summary.TopCategories {
		categoryTotal += count
	}
	assert.Equal(t, summary.TotalOrders, categoryTotal, "tổng count theo category phải bằng tổng đơn")

	brandTotal := 0
	for _, count := range summary.TopBrands {
		brandTotal += count
	}
	assert.Equal(t, summary.TotalOrders, brandTotal, "tổng count theo brand phải bằng tổng đơn")

	regionRevenue := 0.0
	for _, revenue := range summary.RegionStats {
		regionRevenue += revenue
	}
	assert.InDelta(t, summary.TotalRevenue, regionRevenue, 0.001, "tổng doanh thu theo vùng phải bằng tổng doanh thu")

	// Bản ghi thiếu cột nằm dưới key rỗng
	assert.Equal(t, 1, summary.TopCategories[""])
	assert.InDelta(t, 750.0, summary.RegionStats[""], 0.001)
}
