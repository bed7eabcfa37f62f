// Package saleshdl chứa HTTP handler cho domain Sales: truy vấn, filter options, analytics, health, reload.
// File: handler.sales.go - giữ tên cấu trúc cũ (handler.<domain>.<entity>.go).
package saleshdl

import (
	"time"

	salesloader "retail_sales/internal/api/sales/loader"
	salessvc "retail_sales/internal/api/sales/service"
	salesstore "retail_sales/internal/api/sales/store"
)

// SalesHandler xử lý API dữ liệu bán hàng: GET sales, filters, analytics, health, POST reload.
type SalesHandler struct {
	SalesService *salessvc.SalesService
	Loader       salesloader.SalesLoader
	Store        *salesstore.MemoryStore
	StartTime    time.Time
}

// NewSalesHandler tạo mới SalesHandler.
func NewSalesHandler(service *salessvc.SalesService, loader salesloader.SalesLoader, store *salesstore.MemoryStore) *SalesHandler {
	return &SalesHandler{
		SalesService: service,
		Loader:       loader,
		Store:        store,
		StartTime:    time.Now(),
	}
}
