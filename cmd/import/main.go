// Công cụ nạp dữ liệu bán hàng từ file CSV vào MongoDB.
// Usage: go run ./cmd/import [-file data/retail_sales.csv] [-drop]
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"retail_sales/config"
	salesloader "retail_sales/internal/api/sales/loader"
	salesmodels "retail_sales/internal/api/sales/models"
	"retail_sales/internal/database"
	"retail_sales/internal/global"
	"retail_sales/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

const insertBatchSize = 1000

func main() {
	filePath := flag.String("file", "", "đường dẫn file CSV (mặc định lấy từ DATA_PATH)")
	drop := flag.Bool("drop", false, "xóa toàn bộ dữ liệu cũ trong collection trước khi nạp")
	flag.Parse()

	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	log := logger.GetAppLogger()

	global.MongoDB_ColNames.SalesRecords = "sales_records"
	global.InitValidator()
	global.ServerConfig = config.NewConfig()

	path := *filePath
	if path == "" {
		path = global.ServerConfig.DataPath
	}

	session, err := database.GetInstance(global.ServerConfig)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	global.MongoDB_Session = session
	defer database.CloseInstance(session)

	if err := database.EnsureDatabaseAndCollections(session); err != nil {
		log.Fatalf("Failed to ensure database and collections: %v", err)
	}

	collection := session.Database(global.ServerConfig.MongoDB_DBName).Collection(global.MongoDB_ColNames.SalesRecords)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := database.CreateIndexes(ctx, collection, salesmodels.SalesRecord{}); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	records, err := salesloader.NewCSVLoader(path).LoadAll(ctx)
	if err != nil {
		log.Fatalf("Failed to read CSV %s: %v", path, err)
	}
	if len(records) == 0 {
		log.Warnf("No records parsed from %s, nothing to import", path)
		return
	}

	if *drop {
		result, err := collection.DeleteMany(ctx, bson.M{})
		if err != nil {
			log.Fatalf("Failed to clear collection: %v", err)
		}
		log.Infof("Cleared %d existing documents", result.DeletedCount)
	}

	// Insert theo batch để tránh vượt giới hạn message size của MongoDB
	inserted := 0
	for start := 0; start < len(records); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(records) {
			end = len(records)
		}
		docs := make([]interface{}, 0, end-start)
		for i := start; i < end; i++ {
			docs = append(docs, records[i])
		}
		if _, err := collection.InsertMany(ctx, docs); err != nil {
			log.Fatalf("Failed to insert batch [%d:%d]: %v", start, end, err)
		}
		inserted += len(docs)
	}

	log.Infof("Imported %d sales records from %s into %s.%s", inserted, path, global.ServerConfig.MongoDB_DBName, global.MongoDB_ColNames.SalesRecords)
}
