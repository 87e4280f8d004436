package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/MihaiKuro/asd/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboard(t *testing.T) {
	s, d := newTestService(t)

	d.users.On("CountUsers", mock.Anything).Return(12, nil)
	d.catalog.On("CountProducts", mock.Anything).Return(40, nil)
	d.orders.On("GetPaidOrdersTotals", mock.Anything).Return(5, dec("512.40"), nil)
	d.orders.On("CountOrdersByStatus", mock.Anything, entity.OrderStatusCancelled).Return(2, nil)
	d.orders.On("GetOrdersCreatedBetween", mock.Anything, entity.TimeRange{From: fixedNow.AddDate(0, 0, -7), To: fixedNow},
		entity.OrderStatusShipped, entity.OrderStatusDelivered, entity.OrderStatusCancelled,
	).Return([]entity.OrderFull{}, nil)

	db, err := s.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, db.Overview.Users)
	assert.Equal(t, 40, db.Overview.Products)
	assert.Equal(t, 5, db.Overview.TotalSales)
	assertDecimal(t, "512.4", db.Overview.TotalRevenue)
	assert.Equal(t, 2, db.Overview.CancelledOrders)
	assert.Len(t, db.Daily, 8)
	assert.Equal(t, "2024-05-13", db.Daily[0].Date)
	assert.Equal(t, "2024-05-20", db.Daily[7].Date)
}

func TestOverviewError(t *testing.T) {
	s, d := newTestService(t)
	boom := errors.New("too many connections")

	d.users.On("CountUsers", mock.Anything).Return(0, boom)
	d.catalog.On("CountProducts", mock.Anything).Return(40, nil).Maybe()
	d.orders.On("GetPaidOrdersTotals", mock.Anything).Return(0, dec("0"), nil).Maybe()
	d.orders.On("CountOrdersByStatus", mock.Anything, entity.OrderStatusCancelled).Return(0, nil).Maybe()

	_, err := s.Overview(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestCategories(t *testing.T) {
	s, d := newTestService(t)

	d.catalog.On("ListCategories", mock.Anything).Return(nil, nil).Once()
	cats, err := s.Categories(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, cats)
	assert.Empty(t, cats)

	d.catalog.On("ListCategories", mock.Anything).Return([]entity.Category{
		{ID: 1, Name: "Brakes", Subcategories: []entity.Subcategory{{ID: 1, CategoryID: 1, Name: "Pads"}}},
	}, nil).Once()
	cats, err = s.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Pads", cats[0].Subcategories[0].Name)
}
