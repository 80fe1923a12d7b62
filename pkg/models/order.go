package models

import (
	"strings"
	"time"
)

// Fulfillment statuses. Any value may move to any other value; the status
// field is an admin override, not a guarded workflow.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Payment statuses. Independent axis from the fulfillment status.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

type OrderItem struct {
	ID        string  `bson:"id" json:"id"`
	ProductID string  `bson:"productId" json:"productId"`
	Brand     string  `bson:"brand" json:"brand"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Image     string  `bson:"image" json:"image"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Offer     string  `bson:"offer,omitempty" json:"offer,omitempty"`
}

type DeliveryAddress struct {
	DoorNo   string `bson:"doorNo" json:"doorNo"`
	Address  string `bson:"address" json:"address"`
	District string `bson:"district" json:"district"`
	State    string `bson:"state" json:"state"`
	Pincode  string `bson:"pincode" json:"pincode"`
}

// Order is one customer order document. Orders are created by the public
// checkout flow; the admin API only reads, patches and deletes them.
// Total is stored as computed at checkout and never recomputed here.
type Order struct {
	ID              string          `bson:"_id,omitempty" json:"id"`
	OrderID         string          `bson:"orderId" json:"orderId"`
	Items           []OrderItem     `bson:"items" json:"items"`
	Total           float64         `bson:"total" json:"total"`
	CustomerName    string          `bson:"customerName" json:"customerName"`
	CustomerPhone   string          `bson:"customerPhone" json:"customerPhone"`
	DeliveryAddress DeliveryAddress `bson:"deliveryAddress" json:"deliveryAddress"`
	Notes           string          `bson:"notes" json:"notes"`
	Status          string          `bson:"status" json:"status"`
	PaymentStatus   string          `bson:"paymentStatus" json:"paymentStatus"`
	CreatedAt       time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// OrderStatistics aggregates counts for the orders list header.
type OrderStatistics struct {
	TotalOrders      int64   `json:"totalOrders"`
	TotalRevenue     float64 `json:"totalRevenue"`
	PendingOrders    int64   `json:"pendingOrders"`
	ProcessingOrders int64   `json:"processingOrders"`
	CompletedOrders  int64   `json:"completedOrders"`
	CancelledOrders  int64   `json:"cancelledOrders"`
}

// ValidOrderStatus reports whether s is one of the allowed fulfillment
// statuses. Comparison is exact; filters accept any case separately.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return true
	}
	return false
}

// MatchesSearch reports whether the order matches a free-text search term:
// case-insensitive over customer name and business order id, substring over
// the phone number.
func (o *Order) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	lower := strings.ToLower(term)
	return strings.Contains(strings.ToLower(o.CustomerName), lower) ||
		strings.Contains(o.CustomerPhone, term) ||
		strings.Contains(strings.ToLower(o.OrderID), lower)
}
