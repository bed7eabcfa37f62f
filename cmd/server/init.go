package main

import (
	"context"

	"retail_sales/config"
	salesmodels "retail_sales/internal/api/sales/models"
	"retail_sales/internal/database"
	"retail_sales/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database (khi USE_MONGODB=true)
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.SalesRecords = "sales_records"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, sort_key)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database.
// Bỏ qua khi USE_MONGODB=false (service đọc dữ liệu từ CSV, không cần database).
func initDatabase_MongoDB() {
	if !global.ServerConfig.UseMongoDB {
		logrus.Info("MongoDB disabled, serving from CSV data source")
		return
	}

	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err) // Ghi log lỗi nếu khởi tạo database/collections thất bại
	}
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection
	dbName := global.ServerConfig.MongoDB_DBName
	collection := global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.SalesRecords)
	if err := database.CreateIndexes(context.TODO(), collection, salesmodels.SalesRecord{}); err != nil {
		logrus.Fatalf("Failed to create indexes: %v", err) // Ghi log lỗi nếu tạo index thất bại
	}
	logrus.Info("Created indexes for collections") // Ghi log thông báo đã tạo index
}
