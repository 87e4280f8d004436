package form

import (
	"github.com/MihaiKuro/asd/internal/entity"
	v "github.com/go-ozzo/ozzo-validation/v4"
)

const maxOrderItems = 100

type OrderItemRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

func (r OrderItemRequest) Validate() error {
	return v.ValidateStruct(&r,
		v.Field(&r.ProductID, v.Required, v.Min(1)),
		v.Field(&r.Quantity, v.Required, v.Min(1), v.Max(1000)),
	)
}

type CreateOrderRequest struct {
	UserID int                `json:"userId"`
	Items  []OrderItemRequest `json:"items"`
}

func (r *CreateOrderRequest) Validate() error {
	return ValidateStruct(r,
		v.Field(&r.UserID, v.Required, v.Min(1)),
		v.Field(&r.Items, v.Required, v.Length(1, maxOrderItems)),
	)
}

func (r *CreateOrderRequest) ToEntity() *entity.OrderNew {
	items := make([]entity.OrderItemInsert, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entity.OrderItemInsert{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}
	return &entity.OrderNew{
		UserID: r.UserID,
		Items:  items,
	}
}
