package form

import (
	"math"

	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// GetOrderByIDRequest carries the {id} path parameter.
type GetOrderByIDRequest struct {
	OrderID string
}

func (r *GetOrderByIDRequest) Validate() error {
	return ValidateStruct(r,
		v.Field(&r.OrderID, v.Required, is.Int, v.By(intBetween(1, math.MaxInt32))),
	)
}

func (r *GetOrderByIDRequest) ID() int {
	return atoiOr(r.OrderID, 0)
}
