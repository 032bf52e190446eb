package constant

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// MockOrderIDPrefix marks locally stored fallback orders so they can never be
// mistaken for ids issued by the marketplace backend.
const MockOrderIDPrefix = "DEMO-"
