package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/MihaiKuro/asd/internal/dependency"
	"github.com/MihaiKuro/asd/internal/entity"
	gerr "github.com/MihaiKuro/asd/internal/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const orderColumns = `id, uuid, user_id, status, is_paid, total_price, created_at, updated_at`

type orderStore struct {
	*MYSQLStore
}

// Order returns an object implementing order interface
func (ms *MYSQLStore) Order() dependency.Order {
	return &orderStore{
		MYSQLStore: ms,
	}
}

func (ms *orderStore) GetOrdersCreatedBetween(ctx context.Context, tr entity.TimeRange, statuses ...entity.OrderStatusName) ([]entity.OrderFull, error) {
	query := `SELECT ` + orderColumns + ` FROM customer_order WHERE created_at BETWEEN :from AND :to`
	params := map[string]any{
		"from": tr.From,
		"to":   tr.To,
	}
	if len(statuses) > 0 {
		query += ` AND status IN (:statuses)`
		names := make([]string, 0, len(statuses))
		for _, s := range statuses {
			names = append(names, s.String())
		}
		params["statuses"] = names
	}
	query += ` ORDER BY created_at, id`

	orders, err := QueryListNamed[entity.Order](ctx, ms.DB(), query, params)
	if err != nil {
		return nil, fmt.Errorf("can't get orders: %w", err)
	}
	if len(orders) == 0 {
		return []entity.OrderFull{}, nil
	}

	ids := make([]int, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	items, err := getOrdersItems(ctx, ms, ids...)
	if err != nil {
		return nil, fmt.Errorf("can't get order items: %w", err)
	}

	ofs := make([]entity.OrderFull, 0, len(orders))
	for _, o := range orders {
		ofs = append(ofs, entity.OrderFull{
			Order: o,
			Items: items[o.ID],
		})
	}
	return ofs, nil
}

func (ms *orderStore) GetPaidOrdersTotals(ctx context.Context) (int, decimal.Decimal, error) {
	type totals struct {
		Count int             `db:"cnt"`
		Total decimal.Decimal `db:"total"`
	}
	query := `SELECT COUNT(*) AS cnt, COALESCE(SUM(total_price), 0) AS total FROM customer_order WHERE is_paid = TRUE`
	t, err := QueryNamedOne[totals](ctx, ms.DB(), query, map[string]any{})
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("can't get paid orders totals: %w", err)
	}
	return t.Count, t.Total, nil
}

func (ms *orderStore) CountOrdersByStatus(ctx context.Context, status entity.OrderStatusName) (int, error) {
	query := `SELECT COUNT(*) FROM customer_order WHERE status = :status`
	n, err := QueryCountNamed(ctx, ms.DB(), query, map[string]any{
		"status": status.String(),
	})
	if err != nil {
		return 0, fmt.Errorf("can't count %s orders: %w", status, err)
	}
	return n, nil
}

// CreateOrder validates stock for every item, decrements it and stores the
// order with item prices frozen at the current product price.
func (ms *orderStore) CreateOrder(ctx context.Context, orderNew *entity.OrderNew) (*entity.OrderFull, error) {
	if orderNew == nil || len(orderNew.Items) == 0 {
		return nil, fmt.Errorf("zero items to order")
	}
	items := mergeOrderItems(orderNew.Items)
	if len(items) == 0 {
		return nil, fmt.Errorf("zero items to order")
	}

	var of *entity.OrderFull
	err := ms.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		ids := make([]int, 0, len(items))
		for _, it := range items {
			ids = append(ids, it.ProductID)
		}
		prds, err := rep.Catalog().GetProductsByIds(ctx, ids)
		if err != nil {
			return fmt.Errorf("can't get products: %w", err)
		}
		prdMap := make(map[int]entity.Product, len(prds))
		for _, p := range prds {
			prdMap[p.ID] = p
		}

		total := decimal.Zero
		orderItems := make([]entity.OrderItem, 0, len(items))
		for _, it := range items {
			p, ok := prdMap[it.ProductID]
			if !ok {
				return fmt.Errorf("%w: %d", gerr.ProductNotFound, it.ProductID)
			}
			if p.Stock < it.Quantity {
				return fmt.Errorf("%w: product %d has %d, requested %d", gerr.InsufficientStock, p.ID, p.Stock, it.Quantity)
			}
			if err := rep.Catalog().DecreaseStock(ctx, p.ID, it.Quantity); err != nil {
				return err
			}
			total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
			orderItems = append(orderItems, entity.OrderItem{
				ProductID: p.ID,
				Quantity:  it.Quantity,
				Price:     p.Price,
			})
		}

		order := entity.Order{
			UUID:       uuid.NewString(),
			UserID:     orderNew.UserID,
			Status:     entity.OrderStatusPending,
			TotalPrice: total,
			CreatedAt:  rep.Now(),
			UpdatedAt:  rep.Now(),
		}
		order.ID, err = insertOrder(ctx, rep, &order)
		if err != nil {
			return err
		}
		for i := range orderItems {
			orderItems[i].OrderID = order.ID
		}
		if err := insertOrderItems(ctx, rep, orderItems); err != nil {
			return err
		}

		of = &entity.OrderFull{
			Order: order,
			Items: orderItems,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return of, nil
}

func (ms *orderStore) GetOrderById(ctx context.Context, id int) (*entity.OrderFull, error) {
	order, err := getOrderById(ctx, ms, id, false)
	if err != nil {
		return nil, err
	}
	items, err := getOrdersItems(ctx, ms, id)
	if err != nil {
		return nil, fmt.Errorf("can't get order items: %w", err)
	}
	return &entity.OrderFull{
		Order: *order,
		Items: items[id],
	}, nil
}

// SetOrderStatus locks the order row, validates the transition and stores the
// new status. Delivered orders are always marked paid.
func (ms *orderStore) SetOrderStatus(ctx context.Context, id int, status entity.OrderStatusName) (*entity.Order, entity.OrderStatusName, error) {
	var (
		updated *entity.Order
		prev    entity.OrderStatusName
	)
	err := ms.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		order, err := getOrderById(ctx, rep, id, true)
		if err != nil {
			return err
		}
		prev = order.Status
		if !order.Status.CanTransitionTo(status) {
			return fmt.Errorf("%w: cannot change from %s to %s", gerr.InvalidStatusChange, order.Status, status)
		}

		order.Status = status
		order.IsPaid = order.IsPaid || status == entity.OrderStatusDelivered
		order.UpdatedAt = rep.Now()

		query := `
		UPDATE customer_order
		SET status = :status,
			is_paid = :isPaid,
			updated_at = :updatedAt
		WHERE id = :orderId`
		err = ExecNamed(ctx, rep.DB(), query, map[string]any{
			"status":    order.Status.String(),
			"isPaid":    order.IsPaid,
			"updatedAt": order.UpdatedAt,
			"orderId":   order.ID,
		})
		if err != nil {
			return fmt.Errorf("can't update order status: %w", err)
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	return updated, prev, nil
}

func getOrderById(ctx context.Context, rep dependency.Repository, orderId int, forUpdate bool) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM customer_order WHERE id = :orderId`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	order, err := QueryNamedOne[entity.Order](ctx, rep.DB(), query, map[string]any{
		"orderId": orderId,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", gerr.OrderNotFound, orderId)
		}
		return nil, fmt.Errorf("can't get order: %w", err)
	}
	return &order, nil
}

// getOrdersItems returns order lines grouped by order id.
func getOrdersItems(ctx context.Context, rep dependency.Repository, orderIds ...int) (map[int][]entity.OrderItem, error) {
	if len(orderIds) == 0 {
		return map[int][]entity.OrderItem{}, nil
	}

	query := `
	SELECT id, order_id, product_id, quantity, price
	FROM order_item
	WHERE order_id IN (:orderIds)
	ORDER BY order_id, id`

	ois, err := QueryListNamed[entity.OrderItem](ctx, rep.DB(), query, map[string]any{
		"orderIds": orderIds,
	})
	if err != nil {
		return nil, err
	}

	orderItemsMap := make(map[int][]entity.OrderItem, len(orderIds))
	for _, oi := range ois {
		orderItemsMap[oi.OrderID] = append(orderItemsMap[oi.OrderID], oi)
	}
	return orderItemsMap, nil
}

func insertOrder(ctx context.Context, rep dependency.Repository, order *entity.Order) (int, error) {
	query := `
	INSERT INTO customer_order (uuid, user_id, status, is_paid, total_price, created_at, updated_at)
	VALUES (:uuid, :userId, :status, :isPaid, :totalPrice, :createdAt, :updatedAt)`
	id, err := ExecNamedLastId(ctx, rep.DB(), query, map[string]any{
		"uuid":       order.UUID,
		"userId":     order.UserID,
		"status":     order.Status.String(),
		"isPaid":     order.IsPaid,
		"totalPrice": order.TotalPrice,
		"createdAt":  order.CreatedAt,
		"updatedAt":  order.UpdatedAt,
	})
	if err != nil {
		return 0, fmt.Errorf("can't insert order: %w", err)
	}
	return id, nil
}

func insertOrderItems(ctx context.Context, rep dependency.Repository, items []entity.OrderItem) error {
	rows := make([]map[string]any, 0, len(items))
	for _, it := range items {
		rows = append(rows, map[string]any{
			"order_id":   it.OrderID,
			"product_id": it.ProductID,
			"quantity":   it.Quantity,
			"price":      it.Price,
		})
	}
	if err := BulkInsert(ctx, rep.DB(), "order_item", rows); err != nil {
		return fmt.Errorf("can't insert order items: %w", err)
	}
	return nil
}

// mergeOrderItems sums quantities of repeated products and drops empty lines.
// The result is sorted by product id so row locks are taken in a stable order.
func mergeOrderItems(items []entity.OrderItemInsert) []entity.OrderItemInsert {
	merged := make(map[int]entity.OrderItemInsert, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		if existing, ok := merged[item.ProductID]; ok {
			existing.Quantity += item.Quantity
			merged[item.ProductID] = existing
		} else {
			merged[item.ProductID] = item
		}
	}

	mergedSlice := make([]entity.OrderItemInsert, 0, len(merged))
	for _, item := range merged {
		mergedSlice = append(mergedSlice, item)
	}
	sort.Slice(mergedSlice, func(i, j int) bool {
		return mergedSlice[i].ProductID < mergedSlice[j].ProductID
	})
	return mergedSlice
}
