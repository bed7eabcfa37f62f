// Package models - SalesRecord thuộc domain Sales.
package models

import "time"

// SalesRecord là một giao dịch bán lẻ (một dòng trong file CSV hoặc một document MongoDB).
// Các trường số parse lỗi được chuẩn hóa về 0 khi nạp; TotalAmount và FinalAmount
// giữ nguyên theo dữ liệu nguồn, không tính lại.
type SalesRecord struct {
	// Thông tin khách hàng
	CustomerID     string `json:"customerId" bson:"customerId"`
	CustomerName   string `json:"customerName" bson:"customerName"`
	PhoneNumber    string `json:"phoneNumber" bson:"phoneNumber"`
	Gender         string `json:"gender" bson:"gender"`
	Age            int    `json:"age" bson:"age"`
	CustomerRegion string `json:"customerRegion" bson:"customerRegion" index:"single"`
	CustomerType   string `json:"customerType" bson:"customerType"`

	// Thông tin sản phẩm
	ProductID       string   `json:"productId" bson:"productId"`
	ProductName     string   `json:"productName" bson:"productName"`
	Brand           string   `json:"brand" bson:"brand"`
	ProductCategory string   `json:"productCategory" bson:"productCategory" index:"single"`
	Tags            []string `json:"tags" bson:"tags"`

	// Thông tin giao dịch
	Quantity           int       `json:"quantity" bson:"quantity"`
	PricePerUnit       float64   `json:"pricePerUnit" bson:"pricePerUnit"`
	DiscountPercentage float64   `json:"discountPercentage" bson:"discountPercentage"`
	TotalAmount        float64   `json:"totalAmount" bson:"totalAmount"`
	FinalAmount        float64   `json:"finalAmount" bson:"finalAmount"`
	Date               time.Time `json:"date" bson:"date" index:"single,order:-1"`
	PaymentMethod      string    `json:"paymentMethod" bson:"paymentMethod"`
	OrderStatus        string    `json:"orderStatus" bson:"orderStatus"`
	DeliveryType       string    `json:"deliveryType" bson:"deliveryType"`

	// Thông tin cửa hàng / nhân viên
	StoreID       string `json:"storeId" bson:"storeId"`
	StoreLocation string `json:"storeLocation" bson:"storeLocation"`
	SalespersonID string `json:"salespersonId" bson:"salespersonId"`
	EmployeeName  string `json:"employeeName" bson:"employeeName"`
}
