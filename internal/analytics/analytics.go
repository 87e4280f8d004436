// Package analytics builds sales and service statistics out of the order
// ledger and the catalog. It only reads from the store.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/MihaiKuro/asd/internal/dependency"
	"github.com/MihaiKuro/asd/internal/entity"
)

type Config struct {
	// Timezone is the IANA zone used for calendar day boundaries.
	Timezone      string `mapstructure:"timezone"`
	DefaultPeriod int    `mapstructure:"default_period"`
	DefaultLimit  int    `mapstructure:"default_limit"`
	// OverviewDays is the trailing window of the dashboard daily series.
	OverviewDays int `mapstructure:"overview_days"`
}

const (
	defaultPeriod       = 30
	defaultLimit        = 10
	defaultOverviewDays = 7
)

type Service struct {
	orders   dependency.OrderReader
	catalog  dependency.Catalog
	users    dependency.Users
	services dependency.ServiceOrders

	loc          *time.Location
	period       int
	limit        int
	overviewDays int
	now          func() time.Time
}

// New creates the analytics service. Zero config values fall back to defaults.
func New(c *Config, orders dependency.OrderReader, catalog dependency.Catalog, users dependency.Users, services dependency.ServiceOrders) (*Service, error) {
	loc := time.UTC
	if c.Timezone != "" {
		var err error
		loc, err = time.LoadLocation(c.Timezone)
		if err != nil {
			return nil, fmt.Errorf("can't load timezone %q: %w", c.Timezone, err)
		}
	}
	s := &Service{
		orders:       orders,
		catalog:      catalog,
		users:        users,
		services:     services,
		loc:          loc,
		period:       c.DefaultPeriod,
		limit:        c.DefaultLimit,
		overviewDays: c.OverviewDays,
		now:          time.Now,
	}
	if s.period <= 0 {
		s.period = defaultPeriod
	}
	if s.limit <= 0 {
		s.limit = defaultLimit
	}
	if s.overviewDays <= 0 {
		s.overviewDays = defaultOverviewDays
	}
	return s, nil
}

// Location is the reporting timezone.
func (s *Service) Location() *time.Location {
	return s.loc
}

// Now returns the current time in the reporting timezone.
func (s *Service) Now() time.Time {
	return s.now().In(s.loc)
}

func (s *Service) DefaultPeriod() int {
	return s.period
}

func (s *Service) DefaultLimit() int {
	return s.limit
}

// productsFor loads every product referenced by the orders' line items.
// Products that no longer exist are absent from the result.
func (s *Service) productsFor(ctx context.Context, orders []entity.OrderFull) (map[int]entity.Product, error) {
	seen := map[int]struct{}{}
	ids := []int{}
	for _, o := range orders {
		for _, it := range o.Items {
			if _, ok := seen[it.ProductID]; ok {
				continue
			}
			seen[it.ProductID] = struct{}{}
			ids = append(ids, it.ProductID)
		}
	}
	prdMap := make(map[int]entity.Product, len(ids))
	if len(ids) == 0 {
		return prdMap, nil
	}
	prds, err := s.catalog.GetProductsByIds(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("can't get products: %w", err)
	}
	for _, p := range prds {
		prdMap[p.ID] = p
	}
	return prdMap, nil
}
