package model

import (
	"time"

	"github.com/muhammadheryan/scrapmarket/constant"
)

type PlaceOrderRequest struct {
	ListingID uint64  `json:"listing_id" validate:"required"`
	Quantity  float64 `json:"quantity" validate:"required,gt=0,finite"`
}

// CreateOrderPayload is the shape sent to the backend order endpoint.
type CreateOrderPayload struct {
	ListingID  uint64  `json:"listing_id"`
	Quantity   float64 `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
}

// Order is a confirmed purchase request as recorded by the backend.
type Order struct {
	ID         uint64               `json:"id"`
	ListingID  uint64               `json:"listing_id"`
	BuyerID    uint64               `json:"buyer_id"`
	Quantity   float64              `json:"quantity"`
	TotalPrice float64              `json:"total_price"`
	Status     constant.OrderStatus `json:"status"`
	CreatedAt  time.Time            `json:"created_at"`
}

// MockOrder is the degraded-mode substitute written to local fallback storage
// when the backend order call fails. It shares the order shape but carries a
// DEMO-prefixed id and is only visible to the buyer who created it.
type MockOrder struct {
	ID           string    `json:"id"`
	ListingID    uint64    `json:"listing_id"`
	ListingTitle string    `json:"listing_title,omitempty"`
	BuyerEmail   string    `json:"buyer_email"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit,omitempty"`
	PricePerUnit float64   `json:"price_per_unit"`
	TotalPrice   float64   `json:"total_price"`
	CreatedAt    time.Time `json:"created_at"`
}

// OrderResult is the terminal state of an order submission. Exactly one of
// Order and MockOrder is set; Fallback is true for the mock path so callers
// can never present a demo record as a real order.
type OrderResult struct {
	Order     *Order     `json:"order,omitempty"`
	MockOrder *MockOrder `json:"mock_order,omitempty"`
	Fallback  bool       `json:"demo"`
	Message   string     `json:"message"`
}

// OrderHistoryItem is one row of a buyer's merged order history. Demo rows
// come from local fallback storage.
type OrderHistoryItem struct {
	ID           string               `json:"id"`
	ListingID    uint64               `json:"listing_id"`
	ListingTitle string               `json:"listing_title,omitempty"`
	Quantity     float64              `json:"quantity"`
	Unit         string               `json:"unit,omitempty"`
	TotalPrice   float64              `json:"total_price"`
	Status       constant.OrderStatus `json:"status"`
	Demo         bool                 `json:"demo"`
	CreatedAt    time.Time            `json:"created_at"`
}

type OrderHistoryResponse struct {
	Items []OrderHistoryItem `json:"items"`
}
