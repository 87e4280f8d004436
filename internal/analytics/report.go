package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/MihaiKuro/asd/internal/entity"
	"github.com/shopspring/decimal"
)

// SalesReport returns the ranked per-product rows and the window summary for f.
// Rows only count shipped or delivered orders and honour the category filter,
// the summary counts every order in the window regardless of status or category.
func (s *Service) SalesReport(ctx context.Context, f entity.SalesReportFilter) (*entity.SalesReport, error) {
	orders, err := s.orders.GetOrdersCreatedBetween(ctx, f.Window)
	if err != nil {
		return nil, fmt.Errorf("can't get orders: %w", err)
	}
	prds, err := s.productsFor(ctx, orders)
	if err != nil {
		return nil, err
	}

	var cats []entity.Category
	if len(prds) > 0 {
		cats, err = s.catalog.ListCategories(ctx)
		if err != nil {
			return nil, fmt.Errorf("can't get categories: %w", err)
		}
	}

	rows := buildReportRows(orders, prds, cats, f)
	summary := summarize(orders, prds, f.Window)

	slog.Default().DebugContext(ctx, "sales report built",
		slog.Time("from", f.Window.From),
		slog.Time("to", f.Window.To),
		slog.Int("orders", len(orders)),
		slog.Int("rows", len(rows)),
	)

	return &entity.SalesReport{
		Rows:    rows,
		Summary: summary,
		Filter:  f,
	}, nil
}

type productAgg struct {
	product  entity.Product
	quantity int
	orders   map[int]struct{}
}

// matchesCategory applies the category filter to the product's own category.
// A subcategory id only matches when it belongs to that category.
func matchesCategory(p entity.Product, f entity.SalesReportFilter, cats map[int]*entity.Category) bool {
	if f.CategoryID != 0 && p.CategoryID != f.CategoryID {
		return false
	}
	if f.SubcategoryID == 0 {
		return true
	}
	if p.SubcategoryID != f.SubcategoryID {
		return false
	}
	c, ok := cats[p.CategoryID]
	if !ok {
		return false
	}
	_, ok = c.Subcategory(f.SubcategoryID)
	return ok
}

// buildReportRows groups fulfilled line items by product, ranks the groups by
// quantity and keeps the first f.Limit of them. Revenue uses the product's
// current margin, not the price the item was sold at.
func buildReportRows(orders []entity.OrderFull, prds map[int]entity.Product, cats []entity.Category, f entity.SalesReportFilter) []entity.SalesReportRow {
	catByID := make(map[int]*entity.Category, len(cats))
	for i := range cats {
		catByID[cats[i].ID] = &cats[i]
	}

	aggs := map[int]*productAgg{}
	for _, o := range orders {
		if !o.Order.Status.Fulfilled() || !f.Window.Contains(o.Order.CreatedAt) {
			continue
		}
		for _, it := range o.Items {
			p, ok := prds[it.ProductID]
			if !ok || !matchesCategory(p, f, catByID) {
				continue
			}
			a, ok := aggs[p.ID]
			if !ok {
				a = &productAgg{product: p, orders: map[int]struct{}{}}
				aggs[p.ID] = a
			}
			a.quantity += it.Quantity
			a.orders[o.Order.ID] = struct{}{}
		}
	}

	rows := make([]entity.SalesReportRow, 0, len(aggs))
	for _, a := range aggs {
		revenue := a.product.Margin().Mul(decimal.NewFromInt(int64(a.quantity)))
		orderCount := len(a.orders)
		aov := decimal.Zero
		if orderCount > 0 {
			aov = revenue.Div(decimal.NewFromInt(int64(orderCount)))
		}
		rows = append(rows, entity.SalesReportRow{
			ProductID:         a.product.ID,
			ProductName:       a.product.Name,
			ProductPrice:      a.product.Price,
			BasePrice:         a.product.BasePrice,
			CategoryID:        a.product.CategoryID,
			CategoryName:      categoryName(catByID, a.product.CategoryID),
			TotalQuantity:     a.quantity,
			TotalRevenue:      revenue,
			OrderCount:        orderCount,
			AverageOrderValue: aov,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalQuantity != rows[j].TotalQuantity {
			return rows[i].TotalQuantity > rows[j].TotalQuantity
		}
		return rows[i].ProductID < rows[j].ProductID
	})

	if f.Limit > 0 && len(rows) > f.Limit {
		rows = rows[:f.Limit]
	}
	return rows
}

func categoryName(cats map[int]*entity.Category, id int) string {
	if c, ok := cats[id]; ok {
		return c.Name
	}
	return ""
}

// summarize totals every joined line item in the window. Revenue is taken
// from the price frozen on the line item minus the product's cost.
func summarize(orders []entity.OrderFull, prds map[int]entity.Product, window entity.TimeRange) entity.SalesSummary {
	sum := entity.SalesSummary{TotalRevenue: decimal.Zero}
	counted := map[int]struct{}{}
	for _, o := range orders {
		if !window.Contains(o.Order.CreatedAt) {
			continue
		}
		for _, it := range o.Items {
			p, ok := prds[it.ProductID]
			if !ok {
				continue
			}
			qty := decimal.NewFromInt(int64(it.Quantity))
			sum.TotalRevenue = sum.TotalRevenue.Add(it.Price.Sub(p.BasePrice).Mul(qty))
			sum.TotalQuantity += it.Quantity
			counted[o.Order.ID] = struct{}{}
		}
	}
	sum.TotalOrders = len(counted)
	return sum
}
