package salesloader

import (
	"context"
	"fmt"

	"retail_sales/internal/api/sales/models"
	"retail_sales/internal/common"
	"retail_sales/internal/global"
	"retail_sales/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoLoader đọc toàn bộ bản ghi bán hàng từ collection MongoDB.
// Collection được lấy từ RegistryCollections theo tên đã đăng ký lúc khởi động.
type MongoLoader struct {
	collection *mongo.Collection
}

// NewMongoLoader tạo loader đọc từ collection sales records trong registry.
func NewMongoLoader() (*MongoLoader, error) {
	collection, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.SalesRecords)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.SalesRecords, common.ErrNotFound)
	}
	return &MongoLoader{collection: collection}, nil
}

// Source trả về tên nguồn dữ liệu.
func (l *MongoLoader) Source() string {
	return "mongodb"
}

// LoadAll đọc toàn bộ documents trong collection thành SalesRecord.
func (l *MongoLoader) LoadAll(ctx context.Context) ([]models.SalesRecord, error) {
	cursor, err := l.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var records []models.SalesRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	logger.WithModule("loader").Infof("Loaded %d sales records from MongoDB collection %s", len(records), l.collection.Name())

	return records, nil
}
