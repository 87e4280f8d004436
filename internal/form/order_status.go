package form

import (
	"math"

	"github.com/MihaiKuro/asd/internal/entity"
	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type SetOrderStatusRequest struct {
	OrderID string `json:"-"`
	Status  string `json:"status"`
}

func (r *SetOrderStatusRequest) Validate() error {
	return ValidateStruct(r,
		v.Field(&r.OrderID, v.Required, is.Int, v.By(intBetween(1, math.MaxInt32))),
		v.Field(&r.Status, v.Required, v.In(
			entity.OrderStatusPending.String(),
			entity.OrderStatusShipped.String(),
			entity.OrderStatusDelivered.String(),
			entity.OrderStatusCancelled.String(),
		)),
	)
}

func (r *SetOrderStatusRequest) ID() int {
	return atoiOr(r.OrderID, 0)
}

func (r *SetOrderStatusRequest) OrderStatus() entity.OrderStatusName {
	return entity.OrderStatusName(r.Status)
}
