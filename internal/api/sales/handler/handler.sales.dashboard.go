// Handler cho Dashboard bán hàng: truy vấn có filter/sort/phân trang, filter options, analytics.
package saleshdl

import (
	"strconv"
	"time"

	basehdl "retail_sales/internal/api/base/handler"
	salesdto "retail_sales/internal/api/sales/dto"
	"retail_sales/internal/api/sales/models"
	"retail_sales/internal/common"
	"retail_sales/internal/global"
	"retail_sales/internal/logger"
	"retail_sales/internal/utility"

	"github.com/gofiber/fiber/v3"
)

// HandleGetSales xử lý GET /sales — danh sách bản ghi bán hàng có filter, sort và phân trang.
// Query: search, region, gender, category, paymentMethod, customerType, orderStatus, brand, tags (comma-separated),
// ageMin, ageMax, dateStart, dateEnd (YYYY-MM-DD), sortBy, page (mặc định 1), limit (mặc định 10, max 100).
func (h *SalesHandler) HandleGetSales(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		input := &salesdto.SalesQueryInput{
			Search:         c.Query("search"),
			Regions:        utility.SplitAndTrim(c.Query("region")),
			Genders:        utility.SplitAndTrim(c.Query("gender")),
			Categories:     utility.SplitAndTrim(c.Query("category")),
			PaymentMethods: utility.SplitAndTrim(c.Query("paymentMethod")),
			CustomerTypes:  utility.SplitAndTrim(c.Query("customerType")),
			OrderStatuses:  utility.SplitAndTrim(c.Query("orderStatus")),
			Brands:         utility.SplitAndTrim(c.Query("brand")),
			Tags:           utility.SplitAndTrim(c.Query("tags")),
			SortBy:         models.ParseSortKey(c.Query("sortBy")),
		}

		// Giá trị số/ngày không parse được thì bỏ qua điều kiện, không báo lỗi
		if s := c.Query("ageMin"); s != "" {
			if n, err := strconv.Atoi(s); err == nil {
				if n < 0 {
					n = 0
				}
				input.AgeMin = &n
			}
		}
		if s := c.Query("ageMax"); s != "" {
			if n, err := strconv.Atoi(s); err == nil {
				if n > 150 {
					n = 150
				}
				input.AgeMax = &n
			}
		}
		if s := c.Query("dateStart"); s != "" {
			if t := utility.ParseDateSafe(s); !t.IsZero() {
				input.DateStart = &t
			}
		}
		if s := c.Query("dateEnd"); s != "" {
			if t := utility.ParseDateSafe(s); !t.IsZero() {
				input.DateEnd = &t
			}
		}

		page := 1
		if s := c.Query("page"); s != "" {
			if n, err := strconv.Atoi(s); err == nil && n >= 1 {
				page = n
			}
		}
		limit := 10
		if s := c.Query("limit"); s != "" {
			if n, err := strconv.Atoi(s); err == nil && n > 0 {
				limit = n
				if limit > 100 {
					limit = 100
				}
			}
		}

		if err := global.Validate.Struct(input); err != nil {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code": common.ErrCodeValidationInput.Code, "message": common.MsgValidationError, "details": err.Error(), "status": "error",
			})
			return nil
		}

		result, err := h.SalesService.GetSalesData(input, page, limit)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": common.MsgSuccess, "data": result, "status": "success",
		})
		return nil
	})
}

// HandleGetFilters xử lý GET /sales/filters — tập giá trị khả dụng cho từng chiều lọc.
// Kết quả cache được phía client 5 phút (Cache-Control).
func (h *SalesHandler) HandleGetFilters(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		options := h.SalesService.GetFilterOptions()
		c.Set("Cache-Control", "public, max-age=300")
		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": common.MsgSuccess, "data": options, "status": "success",
		})
		return nil
	})
}

// HandleGetAnalytics xử lý GET /sales/analytics — thống kê tổng hợp toàn bộ dữ liệu.
// Kho rỗng trả về 404, kho chưa nạp trả về 503.
func (h *SalesHandler) HandleGetAnalytics(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		summary, err := h.SalesService.GetAnalytics()
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		c.Set("Cache-Control", "public, max-age=600")
		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": common.MsgSuccess, "data": summary, "status": "success",
		})
		return nil
	})
}

// HandleHealth xử lý GET /sales/health — tình trạng dữ liệu và uptime của service.
func (h *SalesHandler) HandleHealth(c fiber.Ctx) error {
	healthData := fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    int64(time.Since(h.StartTime).Seconds()),
		"records":   h.Store.Count(),
		"source":    h.Loader.Source(),
	}
	if !h.Store.Ready() {
		healthData["status"] = "degraded"
		return c.Status(common.StatusServiceUnavailable).JSON(fiber.Map{
			"code":    common.StatusServiceUnavailable,
			"message": "Dữ liệu bán hàng chưa sẵn sàng",
			"data":    healthData,
			"status":  "error",
		})
	}
	return c.Status(common.StatusOK).JSON(fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    healthData,
		"status":  "success",
	})
}

// HandleReload xử lý POST /sales/reload — nạp lại toàn bộ dữ liệu từ nguồn và xóa cache filter options.
func (h *SalesHandler) HandleReload(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		records, err := h.Loader.LoadAll(c.Context())
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Reload sales data failed")
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		h.Store.Replace(records)
		h.SalesService.InvalidateFacetCache()

		logger.LogDataAction("reload", h.Loader.Source(), c, map[string]interface{}{
			"records": len(records),
		})

		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": common.MsgSuccess, "data": fiber.Map{"records": len(records), "source": h.Loader.Source()}, "status": "success",
		})
		return nil
	})
}
