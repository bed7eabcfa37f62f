// Package router đăng ký các route thuộc domain Sales: dữ liệu bán hàng, filter options, analytics.
package router

import (
	"github.com/gofiber/fiber/v3"

	saleshdl "retail_sales/internal/api/sales/handler"
	apirouter "retail_sales/internal/api/router"
)

// Register đăng ký tất cả route sales lên v1: GET sales/filters/analytics/health, POST reload.
// Handler được khởi tạo sẵn ở tầng cmd (cần store và loader đã nạp dữ liệu).
func Register(h *saleshdl.SalesHandler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		apirouter.RegisterRouteWithMiddleware(v1, "/sales", "GET", "/", nil, h.HandleGetSales)
		apirouter.RegisterRouteWithMiddleware(v1, "/sales", "GET", "/filters", nil, h.HandleGetFilters)
		apirouter.RegisterRouteWithMiddleware(v1, "/sales", "GET", "/analytics", nil, h.HandleGetAnalytics)
		apirouter.RegisterRouteWithMiddleware(v1, "/sales", "GET", "/health", nil, h.HandleHealth)
		apirouter.RegisterRouteWithMiddleware(v1, "/sales", "POST", "/reload", nil, h.HandleReload)
		return nil
	}
}
