package salesloader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"retail_sales/internal/api/sales/models"
	"retail_sales/internal/common"
	"retail_sales/internal/logger"
	"retail_sales/internal/utility"
)

// CSVLoader đọc bản ghi bán hàng từ file CSV có dòng header.
// Cột được tìm theo tên header, không theo vị trí, để file nguồn đổi thứ tự cột vẫn đọc được.
type CSVLoader struct {
	path string
}

// NewCSVLoader tạo loader cho file CSV tại path.
func NewCSVLoader(path string) *CSVLoader {
	return &CSVLoader{path: path}
}

// Source trả về tên nguồn dữ liệu.
func (l *CSVLoader) Source() string {
	return "csv"
}

// LoadAll đọc toàn bộ file CSV và chuẩn hóa thành SalesRecord.
// Trường số parse lỗi chuẩn hóa về 0, ngày parse lỗi chuẩn hóa về zero time;
// dòng thiếu cột bị bỏ qua (không fail cả file).
func (l *CSVLoader) LoadAll(ctx context.Context) ([]models.SalesRecord, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("không thể mở file dữ liệu %s: %w", l.path, common.ErrNotFound)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // dòng lỗi xử lý riêng, không fail cả file

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("không thể đọc header CSV: %w", common.ErrInvalidFormat)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}

	field := func(row []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	var records []models.SalesRecord
	skipped := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		if len(row) < len(header) {
			skipped++
			continue
		}

		records = append(records, models.SalesRecord{
			CustomerID:         field(row, "Customer ID"),
			CustomerName:       field(row, "Customer Name"),
			PhoneNumber:        field(row, "Phone Number"),
			Gender:             field(row, "Gender"),
			Age:                utility.ParseIntSafe(field(row, "Age")),
			CustomerRegion:     field(row, "Customer Region"),
			CustomerType:       field(row, "Customer Type"),
			ProductID:          field(row, "Product ID"),
			ProductName:        field(row, "Product Name"),
			Brand:              field(row, "Brand"),
			ProductCategory:    field(row, "Product Category"),
			Tags:               utility.SplitAndTrim(field(row, "Tags")),
			Quantity:           utility.ParseIntSafe(field(row, "Quantity")),
			PricePerUnit:       utility.ParseFloatSafe(field(row, "Price per Unit")),
			DiscountPercentage: utility.ParseFloatSafe(field(row, "Discount Percentage")),
			TotalAmount:        utility.ParseFloatSafe(field(row, "Total Amount")),
			FinalAmount:        utility.ParseFloatSafe(field(row, "Final Amount")),
			Date:               utility.ParseDateSafe(field(row, "Date")),
			PaymentMethod:      field(row, "Payment Method"),
			OrderStatus:        field(row, "Order Status"),
			DeliveryType:       field(row, "Delivery Type"),
			StoreID:            field(row, "Store ID"),
			StoreLocation:      field(row, "Store Location"),
			SalespersonID:      field(row, "Salesperson ID"),
			EmployeeName:       field(row, "Employee Name"),
		})
	}

	if skipped > 0 {
		logger.WithModule("loader").Warnf("Skipped %d malformed CSV rows from %s", skipped, l.path)
	}
	logger.WithModule("loader").Infof("Loaded %d sales records from CSV %s", len(records), l.path)

	return records, nil
}
