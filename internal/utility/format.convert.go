package utility

import (
	"strconv"
	"strings"
	"time"
)

// Các layout ngày chấp nhận khi parse dữ liệu nguồn (CSV, query param).
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseFloatSafe parse chuỗi thành float64, lỗi thì trả về 0.
// Dữ liệu nguồn bán lẻ có thể thiếu hoặc sai định dạng số, chuẩn hóa về 0 thay vì fail cả dòng.
func ParseFloatSafe(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// ParseIntSafe parse chuỗi thành int, lỗi thì trả về 0.
func ParseIntSafe(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		// Một số file xuất số nguyên dạng "12.0"
		if f, ferr := strconv.ParseFloat(strings.TrimSpace(s), 64); ferr == nil {
			return int(f)
		}
		return 0
	}
	return n
}

// ParseDateSafe parse chuỗi ngày theo các layout chấp nhận.
// Không parse được thì trả về zero time (bản ghi vẫn được giữ lại).
func ParseDateSafe(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// SplitAndTrim tách chuỗi theo dấu phẩy, trim khoảng trắng và bỏ phần tử rỗng.
// Dùng cho query param multi-select và cột tags trong CSV.
func SplitAndTrim(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
