// Package salessvc - Test dẫn xuất filter options và cache TTL.
package salessvc

import (
	"testing"
	"time"

	"retail_sales/internal/api/sales/models"
	salesstore "retail_sales/internal/api/sales/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFilterOptions_DerivedSortedDistinct(t *testing.T) {
	records := []models.SalesRecord{
		{CustomerRegion: "South", Gender: "Male", ProductCategory: "Electronics", Brand: "TechPulse", PaymentMethod: "Cash", CustomerType: "New", OrderStatus: "Completed", Tags: []string{"smart", "wireless"}, Age: 42},
		{CustomerRegion: "North", Gender: "Female", ProductCategory: "Beauty", Brand: "GlowEssence", PaymentMethod: "UPI", CustomerType: "Loyal", OrderStatus: "Pending", Tags: []string{"organic", "smart"}, Age: 25},
		{CustomerRegion: "North", Gender: "Female", ProductCategory: "Beauty", Brand: "GlowEssence", PaymentMethod: "UPI", CustomerType: "Loyal", OrderStatus: "Pending", Tags: []string{"organic"}, Age: 0},
	}
	svc, _ := newTestService(records)

	options := svc.GetFilterOptions()
	require.NotNil(t, options)

	// Distinct + sắp xếp tăng dần
	assert.Equal(t, []string{"North", "South"}, options.CustomerRegion)
	assert.Equal(t, []string{"Female", "Male"}, options.Gender)
	assert.Equal(t, []string{"Beauty", "Electronics"}, options.ProductCategory)
	assert.Equal(t, []string{"GlowEssence", "TechPulse"}, options.Brand)
	assert.Equal(t, []string{"organic", "smart", "wireless"}, options.Tags)

	// Age 0 (parse lỗi) không đưa vào khoảng tuổi
	assert.Equal(t, 25, options.AgeRange.Min)
	assert.Equal(t, 42, options.AgeRange.Max)
}

func TestGetFilterOptions_NoValidAgesFallsBackToDefaultRange(t *testing.T) {
	// Kho có dữ liệu nhưng mọi tuổi đều là 0 (parse lỗi): dùng khoảng tuổi mặc định
	records := []models.SalesRecord{
		{CustomerRegion: "North", Age: 0},
		{CustomerRegion: "South", Age: 0},
	}
	svc, _ := newTestService(records)

	options := svc.GetFilterOptions()
	require.NotNil(t, options)
	assert.Equal(t, []string{"North", "South"}, options.CustomerRegion)
	assert.Equal(t, 18, options.AgeRange.Min)
	assert.Equal(t, 65, options.AgeRange.Max)
}

func TestGetFilterOptions_EmptyStoreReturnsFallback(t *testing.T) {
	svc, _ := newTestService([]models.SalesRecord{})

	options := svc.GetFilterOptions()
	require.NotNil(t, options)
	assert.Equal(t, []string{"Central", "East", "North", "South", "West"}, options.CustomerRegion)
	assert.Equal(t, []string{"Female", "Male"}, options.Gender)
	assert.Equal(t, []string{"Beauty", "Clothing", "Electronics"}, options.ProductCategory)
	assert.Len(t, options.Tags, 15)
	assert.Len(t, options.Brand, 12)
	assert.Equal(t, 18, options.AgeRange.Min)
	assert.Equal(t, 65, options.AgeRange.Max)
}

func TestGetFilterOptions_NotReadyStoreReturnsFallback(t *testing.T) {
	svc, _ := newTestService(nil)

	// Khác với GetSalesData, GetFilterOptions không bao giờ fail
	options := svc.GetFilterOptions()
	require.NotNil(t, options)
	assert.Equal(t, []string{"Central", "East", "North", "South", "West"}, options.CustomerRegion)
}

func TestGetFilterOptions_CacheTTL(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	store := salesstore.NewMemoryStore()
	store.Replace([]models.SalesRecord{{CustomerRegion: "North", Age: 30}})
	svc := NewSalesService(store, 5*time.Minute, clock)

	first := svc.GetFilterOptions()
	assert.Equal(t, []string{"North"}, first.CustomerRegion)

	// Dữ liệu đổi nhưng trong TTL vẫn trả về kết quả cũ
	store.Replace([]models.SalesRecord{{CustomerRegion: "South", Age: 30}})
	cached := svc.GetFilterOptions()
	assert.Equal(t, []string{"North"}, cached.CustomerRegion)

	// Quá TTL thì tính lại
	now = now.Add(5 * time.Minute)
	recomputed := svc.GetFilterOptions()
	assert.Equal(t, []string{"South"}, recomputed.CustomerRegion)
}

func TestInvalidateFacetCache_ForcesRecompute(t *testing.T) {
	store := salesstore.NewMemoryStore()
	store.Replace([]models.SalesRecord{{CustomerRegion: "North", Age: 30}})
	svc := NewSalesService(store, time.Hour, nil)

	_ = svc.GetFilterOptions()
	store.Replace([]models.SalesRecord{{CustomerRegion: "West", Age: 30}})

	svc.InvalidateFacetCache()
	options := svc.GetFilterOptions()
	assert.Equal(t, []string{"West"}, options.CustomerRegion)
}
