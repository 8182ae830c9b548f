package http

import (
	"time"

	"github.com/shopspring/decimal"
)

// Error is the envelope returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewCustomerRequest is the body of POST /api/v1/customers.
type NewCustomerRequest struct {
	Name string `json:"name"`
}

// CustomerResponse represents a customer record.
type CustomerResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	LoyaltyPoints int64  `json:"loyaltyPoints"`
	IsPriority    bool   `json:"isPriority"`
}

// NewProductRequest is the body of POST /api/v1/products.
// Price accepts both JSON numbers and strings.
type NewProductRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int64           `json:"stock"`
}

// RestockRequest is the body of POST /api/v1/products/:id/restock.
type RestockRequest struct {
	Quantity int64 `json:"quantity"`
}

// OrderItemRequest is one line of an order request.
type OrderItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

// NewOrderRequest is the body of POST /api/v1/orders.
type NewOrderRequest struct {
	CustomerID int64              `json:"customerId"`
	Items      []OrderItemRequest `json:"items"`
}

// OrderItemResponse is one line of an order response.
type OrderItemResponse struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

// OrderResponse represents an order record.
type OrderResponse struct {
	ID         int64               `json:"id"`
	CustomerID int64               `json:"customerId"`
	Items      []OrderItemResponse `json:"items"`
	Status     string              `json:"status"`
	CreatedAt  time.Time           `json:"createdAt"`
}

// HistoryEntryResponse represents one recorded status transition.
type HistoryEntryResponse struct {
	OrderID   int64     `json:"orderId"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// BacklogSummaryResponse represents the backlog lane sizes.
type BacklogSummaryResponse struct {
	Regular  int `json:"regular"`
	Priority int `json:"priority"`
}

// IDResponse carries the identifier issued for a newly created resource.
type IDResponse struct {
	ID int64 `json:"id"`
}
