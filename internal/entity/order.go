package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatusName string

const (
	OrderStatusPending   OrderStatusName = "Pending"
	OrderStatusShipped   OrderStatusName = "Shipped"
	OrderStatusDelivered OrderStatusName = "Delivered"
	OrderStatusCancelled OrderStatusName = "Cancelled"
)

var ValidOrderStatuses = map[OrderStatusName]bool{
	OrderStatusPending:   true,
	OrderStatusShipped:   true,
	OrderStatusDelivered: true,
	OrderStatusCancelled: true,
}

// FulfilledOrderStatuses are the statuses that count towards sold quantity and revenue.
var FulfilledOrderStatuses = []OrderStatusName{
	OrderStatusShipped,
	OrderStatusDelivered,
}

// orderStatusRank orders the forward flow, cancellation is handled separately.
var orderStatusRank = map[OrderStatusName]int{
	OrderStatusPending:   1,
	OrderStatusShipped:   2,
	OrderStatusDelivered: 3,
}

func (s OrderStatusName) String() string {
	return string(s)
}

// Fulfilled reports whether the order was shipped or delivered.
func (s OrderStatusName) Fulfilled() bool {
	return s == OrderStatusShipped || s == OrderStatusDelivered
}

// CanTransitionTo reports whether status s may be changed to next.
// Statuses only move forward; cancellation is allowed until the order is delivered.
func (s OrderStatusName) CanTransitionTo(next OrderStatusName) bool {
	if !ValidOrderStatuses[next] || s == next {
		return false
	}
	if s == OrderStatusCancelled || s == OrderStatusDelivered {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	return orderStatusRank[next] > orderStatusRank[s]
}

// Order represents the customer_order table
type Order struct {
	ID         int             `db:"id"`
	UUID       string          `db:"uuid"`
	UserID     int             `db:"user_id"`
	Status     OrderStatusName `db:"status"`
	IsPaid     bool            `db:"is_paid"`
	TotalPrice decimal.Decimal `db:"total_price"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
}

// OrderItem represents the order_item table.
// Price is the unit price frozen at purchase time.
type OrderItem struct {
	ID        int             `db:"id"`
	OrderID   int             `db:"order_id"`
	ProductID int             `db:"product_id"`
	Quantity  int             `db:"quantity"`
	Price     decimal.Decimal `db:"price"`
}

type OrderItemInsert struct {
	ProductID int `db:"product_id"`
	Quantity  int `db:"quantity"`
}

type OrderFull struct {
	Order Order
	Items []OrderItem
}

type OrderNew struct {
	UserID int
	Items  []OrderItemInsert
}

// OrderStatusChanged is published after every successful status transition.
type OrderStatusChanged struct {
	OrderID   int             `json:"orderId"`
	OrderUUID string          `json:"orderUuid"`
	From      OrderStatusName `json:"from"`
	To        OrderStatusName `json:"to"`
	IsPaid    bool            `json:"isPaid"`
	ChangedAt time.Time       `json:"changedAt"`
}
