package analytics

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/MihaiKuro/asd/internal/dependency/mocks"
	"github.com/MihaiKuro/asd/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testDeps struct {
	orders   *mocks.Order
	catalog  *mocks.Catalog
	users    *mocks.Users
	services *mocks.ServiceOrders
}

var fixedNow = time.Date(2024, 5, 20, 15, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, testDeps) {
	t.Helper()
	d := testDeps{
		orders:   mocks.NewOrder(t),
		catalog:  mocks.NewCatalog(t),
		users:    mocks.NewUsers(t),
		services: mocks.NewServiceOrders(t),
	}
	s, err := New(&Config{Timezone: "UTC"}, d.orders, d.catalog, d.users, d.services)
	require.NoError(t, err)
	s.now = func() time.Time { return fixedNow }
	return s, d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func product(id int, price, base string, categoryID, subcategoryID int) entity.Product {
	return entity.Product{
		ID:            id,
		Name:          "product",
		Price:         dec(price),
		BasePrice:     dec(base),
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
	}
}

func order(id int, status entity.OrderStatusName, at time.Time, items ...entity.OrderItem) entity.OrderFull {
	for i := range items {
		items[i].OrderID = id
	}
	return entity.OrderFull{
		Order: entity.Order{ID: id, Status: status, CreatedAt: at},
		Items: items,
	}
}

func item(productID, qty int, price string) entity.OrderItem {
	return entity.OrderItem{ProductID: productID, Quantity: qty, Price: dec(price)}
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

func TestNewDefaults(t *testing.T) {
	s, err := New(&Config{}, nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 30, s.DefaultPeriod())
	assert.Equal(t, 10, s.DefaultLimit())
	assert.Equal(t, 7, s.overviewDays)
	assert.Equal(t, time.UTC, s.Location())

	_, err = New(&Config{Timezone: "Mars/Olympus_Mons"}, nil, nil, nil, nil)
	assert.Error(t, err)
}

func TestSalesReportEmpty(t *testing.T) {
	s, d := newTestService(t)
	window := entity.TimeRange{From: fixedNow.AddDate(0, 0, -30), To: fixedNow}

	d.orders.On("GetOrdersCreatedBetween", mock.Anything, window).Return([]entity.OrderFull{}, nil)

	rep, err := s.SalesReport(context.Background(), entity.SalesReportFilter{Window: window, Limit: 10})
	require.NoError(t, err)
	assert.NotNil(t, rep.Rows)
	assert.Empty(t, rep.Rows)
	assertDecimal(t, "0", rep.Summary.TotalRevenue)
	assert.Equal(t, 0, rep.Summary.TotalQuantity)
	assert.Equal(t, 0, rep.Summary.TotalOrders)
}

func TestSalesReportRanksAndTruncates(t *testing.T) {
	s, d := newTestService(t)
	window := entity.TimeRange{From: fixedNow.AddDate(0, 0, -30), To: fixedNow}
	at := fixedNow.AddDate(0, 0, -1)

	orders := []entity.OrderFull{
		order(1, entity.OrderStatusDelivered, at, item(1, 10, "50.00"), item(2, 5, "30.00")),
	}
	d.orders.On("GetOrdersCreatedBetween", mock.Anything, window).Return(orders, nil)
	d.catalog.On("GetProductsByIds", mock.Anything, []int{1, 2}).Return([]entity.Product{
		product(1, "50.00", "40.00", 1, 0),
		product(2, "30.00", "20.00", 1, 0),
	}, nil)
	d.catalog.On("ListCategories", mock.Anything).Return([]entity.Category{{ID: 1, Name: "Brakes"}}, nil)

	rep, err := s.SalesReport(context.Background(), entity.SalesReportFilter{Window: window, Limit: 1})
	require.NoError(t, err)
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, 1, rep.Rows[0].ProductID)
	assert.Equal(t, 10, rep.Rows[0].TotalQuantity)
	assert.Equal(t, "Brakes", rep.Rows[0].CategoryName)
	assertDecimal(t, "100", rep.Rows[0].TotalRevenue)

	// summary ignores the limit
	assert.Equal(t, 15, rep.Summary.TotalQuantity)
	assert.Equal(t, 1, rep.Summary.TotalOrders)
	assertDecimal(t, "150", rep.Summary.TotalRevenue)
}

func TestSalesReportCategoryFilterLeavesSummary(t *testing.T) {
	s, d := newTestService(t)
	window := entity.TimeRange{From: fixedNow.AddDate(0, 0, -7), To: fixedNow}
	at := fixedNow.AddDate(0, 0, -2)

	d.orders.On("GetOrdersCreatedBetween", mock.Anything, window).Return([]entity.OrderFull{
		order(1, entity.OrderStatusShipped, at, item(1, 2, "10.00")),
		order(2, entity.OrderStatusShipped, at, item(2, 3, "10.00")),
	}, nil)
	d.catalog.On("GetProductsByIds", mock.Anything, []int{1, 2}).Return([]entity.Product{
		product(1, "10.00", "6.00", 1, 0),
		product(2, "10.00", "5.00", 2, 0),
	}, nil)
	d.catalog.On("ListCategories", mock.Anything).Return([]entity.Category{
		{ID: 1, Name: "Brakes"},
		{ID: 2, Name: "Filters"},
	}, nil)

	rep, err := s.SalesReport(context.Background(), entity.SalesReportFilter{Window: window, CategoryID: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, 1, rep.Rows[0].ProductID)

	assert.Equal(t, 5, rep.Summary.TotalQuantity)
	assert.Equal(t, 2, rep.Summary.TotalOrders)
	assertDecimal(t, "23", rep.Summary.TotalRevenue)
}

func TestSalesReportStoreError(t *testing.T) {
	s, d := newTestService(t)
	window := entity.TimeRange{From: fixedNow.AddDate(0, 0, -7), To: fixedNow}
	boom := errors.New("connection refused")

	d.orders.On("GetOrdersCreatedBetween", mock.Anything, window).Return(nil, boom)

	_, err := s.SalesReport(context.Background(), entity.SalesReportFilter{Window: window, Limit: 10})
	assert.ErrorIs(t, err, boom)
}

func TestBuildReportRows(t *testing.T) {
	at := fixedNow
	prds := map[int]entity.Product{
		1: product(1, "100.00", "80.00", 1, 11),
		2: product(2, "40.00", "0", 1, 12),
		3: product(3, "15.00", "5.00", 2, 21),
	}
	orders := []entity.OrderFull{
		order(1, entity.OrderStatusDelivered, at, item(1, 2, "90.00"), item(2, 1, "40.00")),
		order(2, entity.OrderStatusShipped, at, item(1, 1, "100.00"), item(3, 3, "15.00")),
		order(3, entity.OrderStatusPending, at, item(2, 50, "40.00")),
		order(4, entity.OrderStatusCancelled, at, item(3, 50, "15.00")),
		// product 9 was deleted
		order(5, entity.OrderStatusDelivered, at, item(9, 100, "1.00")),
	}
	cats := []entity.Category{{
		ID:   1,
		Name: "Brakes",
		Subcategories: []entity.Subcategory{
			{ID: 11, CategoryID: 1, Name: "Pads"},
			{ID: 12, CategoryID: 1, Name: "Discs"},
		},
	}}
	window := entity.TimeRange{From: at.Add(-time.Hour), To: at}

	t.Run("ranked by quantity with id tie-break", func(t *testing.T) {
		rows := buildReportRows(orders, prds, cats, entity.SalesReportFilter{Window: window, Limit: 10})
		require.Len(t, rows, 3)
		assert.Equal(t, []int{1, 3, 2}, []int{rows[0].ProductID, rows[1].ProductID, rows[2].ProductID})
		for i := 1; i < len(rows); i++ {
			assert.GreaterOrEqual(t, rows[i-1].TotalQuantity, rows[i].TotalQuantity)
		}
	})

	t.Run("margin revenue and average order value", func(t *testing.T) {
		rows := buildReportRows(orders, prds, cats, entity.SalesReportFilter{Window: window, Limit: 10})
		r := rows[0]
		assert.Equal(t, 3, r.TotalQuantity)
		assert.Equal(t, 2, r.OrderCount)
		// 3 x (100 - 80), sale price of the line item is ignored
		assertDecimal(t, "60", r.TotalRevenue)
		assertDecimal(t, "30", r.AverageOrderValue)
		assert.Equal(t, "Brakes", r.CategoryName)

		// unknown category keeps an empty name
		assert.Equal(t, "", rows[1].CategoryName)
		assert.Equal(t, 2, rows[1].CategoryID)

		// missing cost price counts as zero
		assertDecimal(t, "40", rows[2].TotalRevenue)
	})

	t.Run("equal quantities sort by product id", func(t *testing.T) {
		tied := []entity.OrderFull{
			order(1, entity.OrderStatusShipped, at, item(3, 2, "15.00"), item(1, 2, "100.00")),
		}
		rows := buildReportRows(tied, prds, nil, entity.SalesReportFilter{Window: window, Limit: 10})
		require.Len(t, rows, 2)
		assert.Equal(t, 1, rows[0].ProductID)
		assert.Equal(t, 3, rows[1].ProductID)
	})

	t.Run("subcategory filter", func(t *testing.T) {
		rows := buildReportRows(orders, prds, cats, entity.SalesReportFilter{Window: window, CategoryID: 1, SubcategoryID: 12, Limit: 10})
		require.Len(t, rows, 1)
		assert.Equal(t, 2, rows[0].ProductID)
	})

	t.Run("subcategory must belong to the product category", func(t *testing.T) {
		// product 3 points at subcategory 21 but category 2 is unknown
		rows := buildReportRows(orders, prds, cats, entity.SalesReportFilter{Window: window, SubcategoryID: 21, Limit: 10})
		assert.Empty(t, rows)

		stale := map[int]entity.Product{1: product(1, "100.00", "80.00", 1, 13)}
		rows = buildReportRows(orders, stale, cats, entity.SalesReportFilter{Window: window, SubcategoryID: 13, Limit: 10})
		assert.Empty(t, rows)
	})

	t.Run("orders outside the window are skipped", func(t *testing.T) {
		late := []entity.OrderFull{
			order(6, entity.OrderStatusDelivered, at.Add(time.Minute), item(1, 40, "100.00")),
		}
		rows := buildReportRows(append(late, orders...), prds, cats, entity.SalesReportFilter{Window: window, Limit: 10})
		require.NotEmpty(t, rows)
		assert.Equal(t, 3, rows[0].TotalQuantity)
	})

	t.Run("limit", func(t *testing.T) {
		rows := buildReportRows(orders, prds, cats, entity.SalesReportFilter{Window: window, Limit: 2})
		assert.Len(t, rows, 2)
	})

	t.Run("no fulfilled orders", func(t *testing.T) {
		rows := buildReportRows(orders[2:4], prds, cats, entity.SalesReportFilter{Window: window, Limit: 10})
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})
}

func TestSummarize(t *testing.T) {
	at := fixedNow
	prds := map[int]entity.Product{
		1: product(1, "100.00", "80.00", 1, 0),
	}
	orders := []entity.OrderFull{
		order(1, entity.OrderStatusPending, at, item(1, 2, "90.00")),
		order(2, entity.OrderStatusCancelled, at, item(1, 1, "100.00")),
		order(3, entity.OrderStatusDelivered, at, item(7, 5, "10.00")),
	}

	window := entity.TimeRange{From: at.Add(-time.Hour), To: at}
	outside := order(4, entity.OrderStatusDelivered, at.Add(-2*time.Hour), item(1, 9, "100.00"))

	sum := summarize(append(orders, outside), prds, window)
	// price at purchase: 2 x (90 - 80) + 1 x (100 - 80)
	assertDecimal(t, "40", sum.TotalRevenue)
	assert.Equal(t, 3, sum.TotalQuantity)
	assert.Equal(t, 2, sum.TotalOrders)

	empty := summarize(nil, prds, window)
	assertDecimal(t, "0", empty.TotalRevenue)
	assert.Equal(t, 0, empty.TotalQuantity)
	assert.Equal(t, 0, empty.TotalOrders)
}

func TestServiceSummary(t *testing.T) {
	s, d := newTestService(t)
	tr := &entity.TimeRange{From: fixedNow.AddDate(0, -1, 0), To: fixedNow}
	mech := func(id int32) sql.NullInt32 { return sql.NullInt32{Int32: id, Valid: true} }

	d.services.On("GetServiceOrders", mock.Anything, tr).Return([]entity.ServiceOrder{
		{ID: 1, Vehicle: "B-01-ABC", MechanicID: mech(2), WorksPerformed: "Oil change", TotalCost: dec("100")},
		{ID: 2, Vehicle: "B-01-ABC", MechanicID: mech(2), WorksPerformed: "Oil change", TotalCost: dec("120")},
		{ID: 3, Vehicle: "CJ-22-XYZ", MechanicID: mech(1), WorksPerformed: "Brakes", TotalCost: dec("300")},
		{ID: 4, Vehicle: "IS-10-QWE", WorksPerformed: "", TotalCost: dec("80")},
	}, nil)
	d.services.On("GetMechanicsByIds", mock.Anything, []int{2, 1}).Return([]entity.Mechanic{
		{ID: 1, Name: "Ana"},
		{ID: 2, Name: "Mihai"},
	}, nil)

	sum, err := s.ServiceSummary(context.Background(), tr)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.VehiclesCount)
	assertDecimal(t, "600", sum.TotalRevenue)
	assertDecimal(t, "150", sum.AvgOrder)

	require.Len(t, sum.Interventions, 3)
	assert.Equal(t, entity.InterventionCount{WorksPerformed: "Oil change", Count: 2}, sum.Interventions[0])
	assert.Equal(t, "", sum.Interventions[1].WorksPerformed)

	require.Len(t, sum.MechanicLoad, 3)
	assert.Equal(t, entity.MechanicLoad{MechanicID: 2, MechanicName: "Mihai", Count: 2}, sum.MechanicLoad[0])
	assert.Equal(t, entity.MechanicLoad{MechanicID: 0, MechanicName: "", Count: 1}, sum.MechanicLoad[1])
	assert.Equal(t, entity.MechanicLoad{MechanicID: 1, MechanicName: "Ana", Count: 1}, sum.MechanicLoad[2])
}

func TestServiceSummaryEmpty(t *testing.T) {
	s, d := newTestService(t)

	d.services.On("GetServiceOrders", mock.Anything, (*entity.TimeRange)(nil)).Return([]entity.ServiceOrder{}, nil)

	sum, err := s.ServiceSummary(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.VehiclesCount)
	assertDecimal(t, "0", sum.AvgOrder)
	assertDecimal(t, "0", sum.TotalRevenue)
	assert.Empty(t, sum.Interventions)
	assert.Empty(t, sum.MechanicLoad)
}

func TestTopInterventionsCapped(t *testing.T) {
	var sos []entity.ServiceOrder
	for i, w := range []string{"a", "b", "c", "d", "e", "f", "f"} {
		sos = append(sos, entity.ServiceOrder{ID: i + 1, Vehicle: w, WorksPerformed: w})
	}
	sum := summarizeServiceOrders(sos)
	require.Len(t, sum.Interventions, 5)
	assert.Equal(t, "f", sum.Interventions[0].WorksPerformed)
	assert.Equal(t, "a", sum.Interventions[1].WorksPerformed)
}
