package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type TimeRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls inside the range, both ends inclusive.
func (tr TimeRange) Contains(t time.Time) bool {
	return !t.Before(tr.From) && !t.After(tr.To)
}

// SalesReportFilter is the resolved form of the sales report query.
// Zero CategoryID / SubcategoryID mean no restriction.
type SalesReportFilter struct {
	Window        TimeRange
	Period        int
	Explicit      bool
	StartDate     string
	EndDate       string
	CategoryID    int
	SubcategoryID int
	Limit         int
}

// SalesReportRow is one ranked product of the sales report.
type SalesReportRow struct {
	ProductID         int
	ProductName       string
	ProductPrice      decimal.Decimal
	BasePrice         decimal.Decimal
	CategoryID        int
	CategoryName      string
	TotalQuantity     int
	TotalRevenue      decimal.Decimal
	OrderCount        int
	AverageOrderValue decimal.Decimal
}

type SalesSummary struct {
	TotalRevenue  decimal.Decimal
	TotalQuantity int
	TotalOrders   int
}

type SalesReport struct {
	Rows    []SalesReportRow
	Summary SalesSummary
	Filter  SalesReportFilter
}

// DailySales is one calendar day of the sales time series.
type DailySales struct {
	Date      string
	Sales     int
	Revenue   decimal.Decimal
	Cancelled int
}

type AnalyticsOverview struct {
	Users           int
	Products        int
	TotalSales      int
	TotalRevenue    decimal.Decimal
	CancelledOrders int
}

type Dashboard struct {
	Overview AnalyticsOverview
	Daily    []DailySales
}

type InterventionCount struct {
	WorksPerformed string
	Count          int
}

type MechanicLoad struct {
	MechanicID   int
	MechanicName string
	Count        int
}

type ServiceSummary struct {
	VehiclesCount int
	Interventions []InterventionCount
	AvgOrder      decimal.Decimal
	TotalRevenue  decimal.Decimal
	MechanicLoad  []MechanicLoad
}
