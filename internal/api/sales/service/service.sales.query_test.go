// Package salessvc - Test engine truy vấn: lọc, sắp xếp, phân trang.
package salessvc

import (
	"fmt"
	"testing"
	"time"

	salesdto "retail_sales/internal/api/sales/dto"
	"retail_sales/internal/api/sales/models"
	salesstore "retail_sales/internal/api/sales/store"
	"retail_sales/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testRecords() []models.SalesRecord {
	return []models.SalesRecord{
		{CustomerID: "C001", CustomerName: "Nguyễn Văn An", PhoneNumber: "0901234567", Gender: "Male", Age: 20, CustomerRegion: "North", CustomerType: "New", Brand: "TechPulse", ProductCategory: "Electronics", Tags: []string{"wireless", "smart"}, Quantity: 2, FinalAmount: 500, PaymentMethod: "Cash", OrderStatus: "Completed", Date: day(2024, 1, 15)},
		{CustomerID: "C002", CustomerName: "Trần Thị Bình", PhoneNumber: "0912345678", Gender: "Female", Age: 35, CustomerRegion: "South", CustomerType: "Loyal", Brand: "GlowEssence", ProductCategory: "Beauty", Tags: []string{"skincare", "organic"}, Quantity: 5, FinalAmount: 1200, PaymentMethod: "UPI", OrderStatus: "Pending", Date: day(2024, 2, 10)},
		{CustomerID: "C003", CustomerName: "Lê Văn Cường", PhoneNumber: "0923456789", Gender: "Male", Age: 70, CustomerRegion: "North", CustomerType: "Returning", Brand: "UrbanWeave", ProductCategory: "Clothing", Tags: []string{"casual", "cotton"}, Quantity: 1, FinalAmount: 300, PaymentMethod: "Credit Card", OrderStatus: "Completed", Date: day(2024, 3, 5)},
		{CustomerID: "C004", CustomerName: "Phạm Thị Dung", PhoneNumber: "0934567890", Gender: "Female", Age: 28, CustomerRegion: "East", CustomerType: "New", Brand: "TechPulse", ProductCategory: "Electronics", Tags: []string{"gadgets"}, Quantity: 3, FinalAmount: 2500, PaymentMethod: "Wallet", OrderStatus: "Cancelled", Date: day(2024, 1, 20)},
	}
}

func newTestService(records []models.SalesRecord) (*SalesService, *salesstore.MemoryStore) {
	store := salesstore.NewMemoryStore()
	if records != nil {
		store.Replace(records)
	}
	return NewSalesService(store, 0, nil), store
}

func TestGetSalesData_StoreNotReady(t *testing.T) {
	svc, _ := newTestService(nil)
	_, err := svc.GetSalesData(&salesdto.SalesQueryInput{}, 1, 10)
	require.ErrorIs(t, err, common.ErrStoreNotReady)
}

func TestGetSalesData_EmptyStoreIsValid(t *testing.T) {
	// Kho đã nạp nhưng rỗng là trạng thái hợp lệ, trả về trang rỗng
	svc, _ := newTestService([]models.SalesRecord{})
	result, err := svc.GetSalesData(&salesdto.SalesQueryInput{}, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, result.Data)
	assert.Equal(t, 0, result.Pagination.TotalRecords)
	assert.False(t, result.Pagination.HasNext)
}

func TestGetSalesData_NoFilterReturnsAll(t *testing.T) {
	svc, _ := newTestService(testRecords())
	result, err := svc.GetSalesData(&salesdto.SalesQueryInput{}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, result.Data, 4)
}

func TestGetSalesData_SearchByNameAndPhone(t *testing.T) {
	svc, _ := newTestService(testRecords())

	// Tên khách: substring không phân biệt hoa thường
	result, err := svc.GetSalesData(&salesdto.SalesQueryInput{Search: "văn"}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, result.Data, 2)

	// SĐT: substring nguyên văn
	result, err = svc.GetSalesData(&salesdto.SalesQueryInput{Search: "0912"}, 1, 10)
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "C002", result.Data[0].CustomerID)

	// Không khớp gì
	result, err = svc.GetSalesData(&salesdto.SalesQueryInput{Search: "zzz"}, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, result.Data)
}

func TestGetSalesData_MembershipFilters(t *testing.T) {
	svc, _ := newTestService(testRecords())

	// Một giá trị
	result, err := svc.GetSalesData(&salesdto.SalesQueryInput{Regions: []string{"North"}}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, result.Data, 2)

	// Nhiều giá trị trong cùng field là OR
	result, err = svc.GetSalesData(&salesdto.SalesQueryInput{Regions: []string{"North", "East"}}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, result.Data, 3)

	// Nhiều field là AND
	result, err = svc.GetSalesData(&salesdto.SalesQueryInput{
		Regions:    []string{"North"},
		Categories: []string{"Electronics"},
	}, 1, 10)
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "C001", result.Data[0].CustomerID)
}

func TestGetSalesData_TagsMatchAnySelected(t *testing.T) {
	svc, _ := newTestService(testRecords())

	// Bản ghi khớp khi có ít nhất một tag trong danh sách chọn
	result, err := svc.GetSalesData(&salesdto.SalesQueryInput{Tags: []string{"smart", "organic"}}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, result.Data, 2)
}

func TestGetSalesData_AgeRangeInclusive(t *testing.T) {
	svc, _ := newTestService(testRecords())

	ageMin, ageMax := 18, 40
	result, err := svc.GetSalesData(&salesdto.SalesQueryInput{AgeMin: &ageMin, AgeMax: &ageMax}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, result.Data, 3) // 20, 35, 28 nằm trong khoảng; 70 bị loại

	// Chỉ một đầu: đầu còn lại không chặn
	onlyMin := 30
	result, err = svc.GetSalesData(&salesdto.SalesQueryInput{AgeMin: &onlyMin}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, result.Data, 2) // 35 và 70

	// Biên inclusive
	exact := 35
	result, err = svc.GetSalesData(&salesdto.SalesQueryInput{AgeMin: &exact, AgeMax: &exact}, 1, 10)
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "C002", result.Data[0].CustomerID)
}

func TestGetSalesData_DateRangeInclusive(t *testing.T) {
	svc, _ := newTestService(testRecords())

	start := day(2024, 1, 15)
	end := day(2024, 2, 10)
	result, err := svc.GetSalesData(&salesdto.SalesQueryInput{DateStart: &start, DateEnd: &end}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, result.Data, 3) // 15/1, 20/1, 10/2 — hai biên đều tính

	// Chỉ dateEnd
	onlyEnd := day(2024, 1, 31)
	result, err = svc.GetSalesData(&salesdto.SalesQueryInput{DateEnd: &onlyEnd}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, result.Data, 2)
}

func TestGetSalesData_SortKeys(t *testing.T) {
	svc, _ := newTestService(testRecords())

	result, err := svc.GetSalesData(&salesdto.SalesQueryInput{SortBy: models.SortKeyDateDesc}, 1, 10)
	require.NoError(t, err)
	require.Len(t, result.Data, 4)
	for i := 1; i < len(result.Data); i++ {
		assert.False(t, result.Data[i].Date.After(result.Data[i-1].Date), "date_desc phải giảm dần")
	}

	result, err = svc.GetSalesData(&salesdto.SalesQueryInput{SortBy: models.SortKeyQuantity}, 1, 10)
	require.NoError(t, err)
	for i := 1; i < len(result.Data); i++ {
		assert.GreaterOrEqual(t, result.Data[i-1].Quantity, result.Data[i].Quantity)
	}

	result, err = svc.GetSalesData(&salesdto.SalesQueryInput{SortBy: models.SortKeyAmountDesc}, 1, 10)
	require.NoError(t, err)
	for i := 1; i < len(result.Data); i++ {
		assert.GreaterOrEqual(t, result.Data[i-1].FinalAmount, result.Data[i].FinalAmount)
	}

	result, err = svc.GetSalesData(&salesdto.SalesQueryInput{SortBy: models.SortKeyCustomerName}, 1, 10)
	require.NoError(t, err)
	require.Len(t, result.Data, 4)
}

func TestGetSalesData_UnknownSortKeepsStoreOrder(t *testing.T) {
	svc, _ := newTestService(testRecords())

	result, err := svc.GetSalesData(&salesdto.SalesQueryInput{SortBy: models.ParseSortKey("bogus")}, 1, 10)
	require.NoError(t, err)
	require.Len(t, result.Data, 4)
	assert.Equal(t, "C001", result.Data[0].CustomerID)
	assert.Equal(t, "C004", result.Data[3].CustomerID)
}

func TestGetSalesData_Pagination(t *testing.T) {
	records := make([]models.SalesRecord, 25)
	for i := range records {
		records[i] = models.SalesRecord{CustomerID: fmt.Sprintf("C%03d", i+1)}
	}
	svc, _ := newTestService(records)

	result, err := svc.GetSalesData(&salesdto.SalesQueryInput{}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, result.Data, 10)
	assert.Equal(t, 3, result.Pagination.TotalPages)
	assert.Equal(t, 25, result.Pagination.TotalRecords)
	assert.True(t, result.Pagination.HasNext)
	assert.False(t, result.Pagination.HasPrev)

	result, err = svc.GetSalesData(&salesdto.SalesQueryInput{}, 3, 10)
	require.NoError(t, err)
	assert.Len(t, result.Data, 5)
	assert.False(t, result.Pagination.HasNext)
	assert.True(t, result.Pagination.HasPrev)

	// Trang vượt quá dữ liệu: trang rỗng, không lỗi
	result, err = svc.GetSalesData(&salesdto.SalesQueryInput{}, 4, 10)
	require.NoError(t, err)
	assert.Empty(t, result.Data)
	assert.Equal(t, 4, result.Pagination.CurrentPage)
	assert.False(t, result.Pagination.HasNext)

	// page/limit không hợp lệ được chuẩn hóa về mặc định
	result, err = svc.GetSalesData(&salesdto.SalesQueryInput{}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Pagination.CurrentPage)
	assert.Len(t, result.Data, 10)
}

func TestGetSalesData_FilterSortPaginateCombined(t *testing.T) {
	records := make([]models.SalesRecord, 0, 30)
	for i := 0; i < 30; i++ {
		region := "North"
		if i%2 == 1 {
			region = "South"
		}
		records = append(records, models.SalesRecord{
			CustomerID:     fmt.Sprintf("C%03d", i+1),
			CustomerRegion: region,
			FinalAmount:    float64(i),
		})
	}
	svc, _ := newTestService(records)

	result, err := svc.GetSalesData(&salesdto.SalesQueryInput{
		Regions: []string{"North"},
		SortBy:  models.SortKeyAmountDesc,
	}, 2, 10)
	require.NoError(t, err)
	require.Len(t, result.Data, 5)
	assert.Equal(t, 15, result.Pagination.TotalRecords)
	assert.Equal(t, 2, result.Pagination.TotalPages)
	// Trang 2 tiếp nối đúng thứ tự giảm dần của trang 1 (amount 28..20 rồi 18..0)
	assert.Equal(t, float64(8), result.Data[0].FinalAmount)
}

// mixedRecords sinh tập dữ liệu đa dạng, xác định để so sánh với filter tham chiếu.
func mixedRecords(n int) []models.SalesRecord {
	regions := []string{"North", "South", "East", "West", ""}
	categories := []string{"Electronics", "Beauty", "Clothing"}
	tagPool := [][]string{{"wireless"}, {"organic", "skincare"}, {"cotton"}, nil}
	records := make([]models.SalesRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, models.SalesRecord{
			CustomerID:      fmt.Sprintf("C%03d", i+1),
			CustomerName:    fmt.Sprintf("Khách %03d", i+1),
			PhoneNumber:     fmt.Sprintf("09%08d", i),
			CustomerRegion:  regions[i%len(regions)],
			ProductCategory: categories[i%len(categories)],
			Tags:            tagPool[i%len(tagPool)],
			Age:             15 + (i*7)%60,
			FinalAmount:     float64((i * 31) % 97),
			Date:            day(2024, time.Month(1+i%12), 1+i%28),
		})
	}
	return records
}

func TestGetSalesData_MatchesReferenceFilter(t *testing.T) {
	// Kết quả của engine phải trùng với một lượt lọc tham chiếu viết thẳng trên cùng dữ liệu
	records := mixedRecords(60)
	svc, _ := newTestService(records)

	ageMin, ageMax := 20, 50
	dateStart, dateEnd := day(2024, 2, 1), day(2024, 10, 31)
	query := &salesdto.SalesQueryInput{
		Regions:    []string{"North", "East"},
		Categories: []string{"Electronics", "Beauty"},
		Tags:       []string{"wireless", "organic"},
		AgeMin:     &ageMin,
		AgeMax:     &ageMax,
		DateStart:  &dateStart,
		DateEnd:    &dateEnd,
	}

	var expected []string
	for _, r := range records {
		if r.CustomerRegion != "North" && r.CustomerRegion != "East" {
			continue
		}
		if r.ProductCategory != "Electronics" && r.ProductCategory != "Beauty" {
			continue
		}
		hasTag := false
		for _, tag := range r.Tags {
			if tag == "wireless" || tag == "organic" {
				hasTag = true
			}
		}
		if !hasTag {
			continue
		}
		if r.Age < ageMin || r.Age > ageMax {
			continue
		}
		if r.Date.Before(dateStart) || r.Date.After(dateEnd) {
			continue
		}
		expected = append(expected, r.CustomerID)
	}

	result, err := svc.GetSalesData(query, 1, 100)
	require.NoError(t, err)
	require.Equal(t, len(expected), result.Pagination.TotalRecords)

	actual := make([]string, 0, len(result.Data))
	for _, r := range result.Data {
		actual = append(actual, r.CustomerID)
	}
	// Không sort: engine giữ nguyên thứ tự dữ liệu nên hai danh sách trùng cả thứ tự
	assert.Equal(t, expected, actual)
}

func TestGetSalesData_AmountDescComparatorAntisymmetry(t *testing.T) {
	// Quan hệ "amount lớn hơn đứng trước" phải phản đối xứng: không tồn tại cặp (i < j)
	// mà phần tử đứng sau lại lớn hơn hẳn phần tử đứng trước
	records := mixedRecords(40)
	svc, _ := newTestService(records)

	result, err := svc.GetSalesData(&salesdto.SalesQueryInput{SortBy: models.SortKeyAmountDesc}, 1, 100)
	require.NoError(t, err)
	require.Len(t, result.Data, 40)

	for i := 0; i < len(result.Data); i++ {
		for j := i + 1; j < len(result.Data); j++ {
			assert.False(t, result.Data[j].FinalAmount > result.Data[i].FinalAmount,
				"vị trí %d (%v) không được lớn hơn vị trí %d (%v)", j, result.Data[j].FinalAmount, i, result.Data[i].FinalAmount)
		}
	}

	// Đảo thứ tự đầu vào: dãy amount sau sort phải y hệt (comparator nhất quán)
	reversed := make([]models.SalesRecord, len(records))
	for i, r := range records {
		reversed[len(records)-1-i] = r
	}
	svcReversed, _ := newTestService(reversed)
	resultReversed, err := svcReversed.GetSalesData(&salesdto.SalesQueryInput{SortBy: models.SortKeyAmountDesc}, 1, 100)
	require.NoError(t, err)
	for i := range result.Data {
		assert.Equal(t, result.Data[i].FinalAmount, resultReversed.Data[i].FinalAmount)
	}
}
