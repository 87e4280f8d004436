package gerr

import "errors"

var (
	OrderNotFound        = errors.New("order not found")
	ProductNotFound      = errors.New("product not found")
	InsufficientStock    = errors.New("insufficient stock")
	InvalidStatusChange  = errors.New("invalid order status transition")
	ReportGenerationFail = errors.New("report generation failed")
)
