package admin

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/MihaiKuro/asd/internal/apisrv"
	"github.com/MihaiKuro/asd/internal/dto"
	"github.com/MihaiKuro/asd/internal/entity"
	"github.com/MihaiKuro/asd/internal/form"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	req := &form.CreateOrderRequest{}
	if err := render.DecodeJSON(r.Body, req); err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(fmt.Errorf("malformed body: %w", err)))
		return
	}
	if err := req.Validate(); err != nil {
		render.Render(w, r, apisrv.ErrFromDomain(err))
		return
	}

	of, err := s.orders.CreateOrder(r.Context(), req.ToEntity())
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't create order",
			slog.String("err", err.Error()),
			slog.Int("userId", req.UserID),
		)
		render.Render(w, r, apisrv.ErrFromDomain(err))
		return
	}
	render.Render(w, r, apisrv.Created(dto.ConvertEntityOrderFull(of)))
}

func (s *Server) getOrderById(w http.ResponseWriter, r *http.Request) {
	req := &form.GetOrderByIDRequest{OrderID: chi.URLParam(r, "id")}
	if err := req.Validate(); err != nil {
		render.Render(w, r, apisrv.ErrFromDomain(err))
		return
	}
	of, err := s.orders.GetOrderById(r.Context(), req.ID())
	if err != nil {
		render.Render(w, r, apisrv.ErrFromDomain(err))
		return
	}
	render.Render(w, r, apisrv.OK(dto.ConvertEntityOrderFull(of)))
}

func (s *Server) setOrderStatus(w http.ResponseWriter, r *http.Request) {
	req := &form.SetOrderStatusRequest{}
	if err := render.DecodeJSON(r.Body, req); err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(fmt.Errorf("malformed body: %w", err)))
		return
	}
	req.OrderID = chi.URLParam(r, "id")
	if err := req.Validate(); err != nil {
		render.Render(w, r, apisrv.ErrFromDomain(err))
		return
	}

	o, prev, err := s.orders.SetOrderStatus(r.Context(), req.ID(), req.OrderStatus())
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't set order status",
			slog.String("err", err.Error()),
			slog.Int("orderId", req.ID()),
			slog.String("status", req.Status),
		)
		render.Render(w, r, apisrv.ErrFromDomain(err))
		return
	}

	s.publishStatusChanged(r, o, prev)
	render.Render(w, r, apisrv.OK(dto.ConvertEntityOrder(o)))
}

// publishStatusChanged is best effort, the status change is already committed.
func (s *Server) publishStatusChanged(r *http.Request, o *entity.Order, prev entity.OrderStatusName) {
	ev := entity.OrderStatusChanged{
		OrderID:   o.ID,
		OrderUUID: o.UUID,
		From:      prev,
		To:        o.Status,
		IsPaid:    o.IsPaid,
		ChangedAt: o.UpdatedAt,
	}
	if err := s.publisher.PublishEvent(r.Context(), s.statusTopic, o.UUID, ev); err != nil {
		slog.Default().ErrorContext(r.Context(), "can't publish order status change",
			slog.String("err", err.Error()),
			slog.Int("orderId", o.ID),
			slog.String("topic", s.statusTopic),
		)
	}
}
