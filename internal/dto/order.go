package dto

import (
	"time"

	"github.com/MihaiKuro/asd/internal/entity"
)

type OrderItem struct {
	ID        int     `json:"id"`
	ProductID int     `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Order struct {
	ID         int         `json:"id"`
	UUID       string      `json:"uuid"`
	UserID     int         `json:"userId"`
	Status     string      `json:"status"`
	IsPaid     bool        `json:"isPaid"`
	TotalPrice float64     `json:"totalPrice"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
	Items      []OrderItem `json:"items,omitempty"`
}

func ConvertEntityOrder(o *entity.Order) Order {
	return Order{
		ID:         o.ID,
		UUID:       o.UUID,
		UserID:     o.UserID,
		Status:     o.Status.String(),
		IsPaid:     o.IsPaid,
		TotalPrice: Money(o.TotalPrice),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func ConvertEntityOrderFull(of *entity.OrderFull) Order {
	o := ConvertEntityOrder(&of.Order)
	o.Items = make([]OrderItem, 0, len(of.Items))
	for _, it := range of.Items {
		o.Items = append(o.Items, OrderItem{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     Money(it.Price),
		})
	}
	return o
}
