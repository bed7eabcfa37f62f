package main

import (
	"context"
	"time"

	saleshdl "retail_sales/internal/api/sales/handler"
	salesloader "retail_sales/internal/api/sales/loader"
	salessvc "retail_sales/internal/api/sales/service"
	salesstore "retail_sales/internal/api/sales/store"
	"retail_sales/internal/global"
	"retail_sales/internal/logger"
)

// InitSalesData chọn nguồn dữ liệu theo cấu hình, nạp toàn bộ bản ghi vào bộ nhớ
// và tạo handler cho domain Sales.
// Nạp thất bại không làm chết server: store giữ trạng thái chưa sẵn sàng,
// API trả về 503 cho tới khi reload thành công.
func InitSalesData() *saleshdl.SalesHandler {
	log := logger.GetAppLogger()
	cfg := global.ServerConfig

	var loader salesloader.SalesLoader
	if cfg.UseMongoDB {
		mongoLoader, err := salesloader.NewMongoLoader()
		if err != nil {
			log.Fatalf("Failed to create mongo loader: %v", err)
		}
		loader = mongoLoader
	} else {
		loader = salesloader.NewCSVLoader(cfg.DataPath)
	}

	store := salesstore.NewMemoryStore()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	records, err := loader.LoadAll(ctx)
	if err != nil {
		log.WithError(err).Errorf("Failed to load sales data from %s, store stays not ready until reload", loader.Source())
	} else {
		store.Replace(records)
		log.Infof("Loaded %d sales records from %s", len(records), loader.Source())
	}

	facetTTL := time.Duration(cfg.FacetCacheTTL) * time.Second
	service := salessvc.NewSalesService(store, facetTTL, nil)

	return saleshdl.NewSalesHandler(service, loader, store)
}
