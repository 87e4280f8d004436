package analytics

import (
	"context"
	"fmt"

	"github.com/MihaiKuro/asd/internal/entity"
	"golang.org/x/sync/errgroup"
)

// Overview collects the store-wide counters. The queries run concurrently.
func (s *Service) Overview(ctx context.Context) (*entity.AnalyticsOverview, error) {
	ov := &entity.AnalyticsOverview{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.users.CountUsers(ctx)
		if err != nil {
			return fmt.Errorf("can't count users: %w", err)
		}
		ov.Users = n
		return nil
	})
	g.Go(func() error {
		n, err := s.catalog.CountProducts(ctx)
		if err != nil {
			return fmt.Errorf("can't count products: %w", err)
		}
		ov.Products = n
		return nil
	})
	g.Go(func() error {
		n, total, err := s.orders.GetPaidOrdersTotals(ctx)
		if err != nil {
			return fmt.Errorf("can't get paid orders: %w", err)
		}
		ov.TotalSales = n
		ov.TotalRevenue = total
		return nil
	})
	g.Go(func() error {
		n, err := s.orders.CountOrdersByStatus(ctx, entity.OrderStatusCancelled)
		if err != nil {
			return fmt.Errorf("can't count cancelled orders: %w", err)
		}
		ov.CancelledOrders = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ov, nil
}

// Dashboard is the overview plus the daily series of the trailing window.
func (s *Service) Dashboard(ctx context.Context) (*entity.Dashboard, error) {
	ov, err := s.Overview(ctx)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	daily, err := s.DailySales(ctx, entity.TimeRange{
		From: now.AddDate(0, 0, -s.overviewDays),
		To:   now,
	})
	if err != nil {
		return nil, err
	}
	return &entity.Dashboard{
		Overview: *ov,
		Daily:    daily,
	}, nil
}

// Categories returns the catalog categories used by the report filter.
func (s *Service) Categories(ctx context.Context) ([]entity.Category, error) {
	cats, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("can't get categories: %w", err)
	}
	if cats == nil {
		cats = []entity.Category{}
	}
	return cats, nil
}
