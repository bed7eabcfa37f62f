package global

import (
	"strings"

	"retail_sales/internal/api/sales/models"

	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("sort_key", validateSortKey)
}

// validateNoXSS kiểm tra XSS trong các tham số free-text (ví dụ: search)
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"onmouseover=",
		"eval(",
		"document.cookie",
		"document.write",
		"innerHTML",
		"fromCharCode",
		"window.location",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateSortKey kiểm tra giá trị sortBy thuộc tập khóa sắp xếp được hỗ trợ.
// Chuỗi rỗng hợp lệ (giữ nguyên thứ tự dữ liệu).
func validateSortKey(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.ParseSortKey(value) != models.SortKeyNone
}
