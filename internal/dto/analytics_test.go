package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/MihaiKuro/asd/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, 12.35, Money(decimal.RequireFromString("12.345")))
	assert.Equal(t, 0.0, Money(decimal.Zero))
	assert.Equal(t, 33.33, Money(decimal.NewFromInt(100).Div(decimal.NewFromInt(3))))
}

func TestEmptySalesReportJSON(t *testing.T) {
	r := ConvertEntitySalesReport(&entity.SalesReport{
		Summary: entity.SalesSummary{TotalRevenue: decimal.Zero},
		Filter: entity.SalesReportFilter{
			Period: 30,
			Limit:  10,
			Window: entity.TimeRange{From: time.Unix(0, 0).UTC(), To: time.Unix(0, 0).UTC()},
		},
	})
	b, err := json.Marshal(r)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, []any{}, out["salesReport"])
	assert.Equal(t, map[string]any{"totalRevenue": 0.0, "totalQuantity": 0.0, "totalOrders": 0.0}, out["summary"])

	filters := out["filters"].(map[string]any)
	assert.NotContains(t, filters, "categoryId")
	assert.Equal(t, 30.0, filters["period"])
}

func TestConvertEntityReportFilterIds(t *testing.T) {
	rf := ConvertEntityReportFilter(entity.SalesReportFilter{CategoryID: 3, SubcategoryID: 9})
	require.NotNil(t, rf.CategoryID)
	require.NotNil(t, rf.SubcategoryID)
	assert.Equal(t, 3, *rf.CategoryID)
	assert.Equal(t, 9, *rf.SubcategoryID)
}

func TestConvertEntityDashboard(t *testing.T) {
	d := ConvertEntityDashboard(&entity.Dashboard{
		Overview: entity.AnalyticsOverview{Users: 2, TotalRevenue: decimal.RequireFromString("10.005")},
		Daily:    []entity.DailySales{{Date: "2024-05-01", Sales: 2, Revenue: decimal.NewFromInt(40)}},
	})
	assert.Equal(t, 2, d.AnalyticsData.Users)
	assert.Equal(t, 10.01, d.AnalyticsData.TotalRevenue)
	assert.Equal(t, []DailySales{{Date: "2024-05-01", Sales: 2, Revenue: 40}}, d.DailySalesData)
}
