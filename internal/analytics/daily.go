package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/MihaiKuro/asd/internal/entity"
	"github.com/shopspring/decimal"
)

const dayLayout = "2006-01-02"

// DailySales returns one entry per calendar day of tr in the reporting timezone.
// Days without orders are present with zero values.
func (s *Service) DailySales(ctx context.Context, tr entity.TimeRange) ([]entity.DailySales, error) {
	orders, err := s.orders.GetOrdersCreatedBetween(ctx, tr,
		entity.OrderStatusShipped,
		entity.OrderStatusDelivered,
		entity.OrderStatusCancelled,
	)
	if err != nil {
		return nil, fmt.Errorf("can't get orders: %w", err)
	}
	prds, err := s.productsFor(ctx, orders)
	if err != nil {
		return nil, err
	}
	return buildDailySeries(orders, prds, tr, s.loc), nil
}

// buildDailySeries aggregates fulfilled and cancelled orders per day and
// left-joins them onto the full list of days in tr.
func buildDailySeries(orders []entity.OrderFull, prds map[int]entity.Product, tr entity.TimeRange, loc *time.Location) []entity.DailySales {
	byDay := map[string]*entity.DailySales{}
	get := func(day string) *entity.DailySales {
		d, ok := byDay[day]
		if !ok {
			d = &entity.DailySales{Date: day, Revenue: decimal.Zero}
			byDay[day] = d
		}
		return d
	}

	for _, o := range orders {
		day := o.Order.CreatedAt.In(loc).Format(dayLayout)
		switch {
		case o.Order.Status.Fulfilled():
			d := get(day)
			d.Sales++
			for _, it := range o.Items {
				p, ok := prds[it.ProductID]
				if !ok {
					continue
				}
				d.Revenue = d.Revenue.Add(it.Price.Sub(p.BasePrice).Mul(decimal.NewFromInt(int64(it.Quantity))))
			}
		case o.Order.Status == entity.OrderStatusCancelled:
			get(day).Cancelled++
		}
	}

	days := daysInRange(tr.From, tr.To, loc)
	series := make([]entity.DailySales, 0, len(days))
	for _, day := range days {
		if d, ok := byDay[day]; ok {
			series = append(series, *d)
			continue
		}
		series = append(series, entity.DailySales{Date: day, Revenue: decimal.Zero})
	}
	return series
}

// daysInRange lists the calendar days from the day of `from` to the day of `to`, inclusive.
// Days are stepped as civil dates so a midnight skipped by a DST change in loc
// does not shift the labels.
func daysInRange(from, to time.Time, loc *time.Location) []string {
	cur := civilDate(from.In(loc))
	end := civilDate(to.In(loc))
	var days []string
	for !cur.After(end) {
		days = append(days, cur.Format(dayLayout))
		cur = cur.AddDate(0, 0, 1)
	}
	return days
}

// civilDate returns the calendar day of t as midnight UTC.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
