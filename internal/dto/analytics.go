package dto

import (
	"time"

	"github.com/MihaiKuro/asd/internal/entity"
	"github.com/shopspring/decimal"
)

// Money renders a decimal amount as a JSON number with cent precision.
func Money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

type SalesReportRow struct {
	ProductID         int     `json:"productId"`
	ProductName       string  `json:"productName"`
	CategoryName      string  `json:"categoryName"`
	CategoryID        int     `json:"categoryId"`
	ProductPrice      float64 `json:"productPrice"`
	BasePrice         float64 `json:"basePrice"`
	TotalQuantity     int     `json:"totalQuantity"`
	TotalRevenue      float64 `json:"totalRevenue"`
	OrderCount        int     `json:"orderCount"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

type SalesSummary struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalQuantity int     `json:"totalQuantity"`
	TotalOrders   int     `json:"totalOrders"`
}

// ReportFilters echoes the resolved filter back to the client.
type ReportFilters struct {
	Period        int       `json:"period"`
	Limit         int       `json:"limit"`
	CategoryID    *int      `json:"categoryId,omitempty"`
	SubcategoryID *int      `json:"subcategoryId,omitempty"`
	StartDate     string    `json:"startDate,omitempty"`
	EndDate       string    `json:"endDate,omitempty"`
	Explicit      bool      `json:"explicitDates"`
	From          time.Time `json:"from"`
	To            time.Time `json:"to"`
}

type SalesReport struct {
	SalesReport []SalesReportRow `json:"salesReport"`
	Summary     SalesSummary     `json:"summary"`
	Filters     ReportFilters    `json:"filters"`
}

func ConvertEntitySalesReport(r *entity.SalesReport) SalesReport {
	rows := make([]SalesReportRow, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, SalesReportRow{
			ProductID:         row.ProductID,
			ProductName:       row.ProductName,
			CategoryName:      row.CategoryName,
			CategoryID:        row.CategoryID,
			ProductPrice:      Money(row.ProductPrice),
			BasePrice:         Money(row.BasePrice),
			TotalQuantity:     row.TotalQuantity,
			TotalRevenue:      Money(row.TotalRevenue),
			OrderCount:        row.OrderCount,
			AverageOrderValue: Money(row.AverageOrderValue),
		})
	}
	return SalesReport{
		SalesReport: rows,
		Summary:     ConvertEntitySalesSummary(r.Summary),
		Filters:     ConvertEntityReportFilter(r.Filter),
	}
}

func ConvertEntitySalesSummary(s entity.SalesSummary) SalesSummary {
	return SalesSummary{
		TotalRevenue:  Money(s.TotalRevenue),
		TotalQuantity: s.TotalQuantity,
		TotalOrders:   s.TotalOrders,
	}
}

func ConvertEntityReportFilter(f entity.SalesReportFilter) ReportFilters {
	rf := ReportFilters{
		Period:    f.Period,
		Limit:     f.Limit,
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		Explicit:  f.Explicit,
		From:      f.Window.From,
		To:        f.Window.To,
	}
	if f.CategoryID != 0 {
		id := f.CategoryID
		rf.CategoryID = &id
	}
	if f.SubcategoryID != 0 {
		id := f.SubcategoryID
		rf.SubcategoryID = &id
	}
	return rf
}

type DailySales struct {
	Date      string  `json:"date"`
	Sales     int     `json:"sales"`
	Revenue   float64 `json:"revenue"`
	Cancelled int     `json:"cancelled"`
}

type AnalyticsOverview struct {
	Users           int     `json:"users"`
	Products        int     `json:"products"`
	TotalSales      int     `json:"totalSales"`
	TotalRevenue    float64 `json:"totalRevenue"`
	CancelledOrders int     `json:"cancelledOrders"`
}

type Dashboard struct {
	AnalyticsData  AnalyticsOverview `json:"analyticsData"`
	DailySalesData []DailySales      `json:"dailySalesData"`
}

func ConvertEntityDailySales(ds []entity.DailySales) []DailySales {
	res := make([]DailySales, 0, len(ds))
	for _, d := range ds {
		res = append(res, DailySales{
			Date:      d.Date,
			Sales:     d.Sales,
			Revenue:   Money(d.Revenue),
			Cancelled: d.Cancelled,
		})
	}
	return res
}

func ConvertEntityDashboard(d *entity.Dashboard) Dashboard {
	return Dashboard{
		AnalyticsData: AnalyticsOverview{
			Users:           d.Overview.Users,
			Products:        d.Overview.Products,
			TotalSales:      d.Overview.TotalSales,
			TotalRevenue:    Money(d.Overview.TotalRevenue),
			CancelledOrders: d.Overview.CancelledOrders,
		},
		DailySalesData: ConvertEntityDailySales(d.Daily),
	}
}

type Subcategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Category struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Subcategories []Subcategory `json:"subcategories"`
}

func ConvertEntityCategories(cats []entity.Category) []Category {
	res := make([]Category, 0, len(cats))
	for _, c := range cats {
		subs := make([]Subcategory, 0, len(c.Subcategories))
		for _, sc := range c.Subcategories {
			subs = append(subs, Subcategory{ID: sc.ID, Name: sc.Name})
		}
		res = append(res, Category{ID: c.ID, Name: c.Name, Subcategories: subs})
	}
	return res
}

type Intervention struct {
	WorksPerformed string `json:"worksPerformed"`
	Count          int    `json:"count"`
}

type MechanicLoad struct {
	MechanicID   int    `json:"mechanicId"`
	MechanicName string `json:"mechanicName,omitempty"`
	Count        int    `json:"count"`
}

type ServiceSummary struct {
	VehiclesCount int            `json:"vehiclesCount"`
	Interventions []Intervention `json:"interventions"`
	AvgOrder      float64        `json:"avgOrder"`
	TotalRevenue  float64        `json:"totalRevenue"`
	MechanicLoad  []MechanicLoad `json:"mechanicLoad"`
}

func ConvertEntityServiceSummary(s *entity.ServiceSummary) ServiceSummary {
	ivs := make([]Intervention, 0, len(s.Interventions))
	for _, iv := range s.Interventions {
		ivs = append(ivs, Intervention{WorksPerformed: iv.WorksPerformed, Count: iv.Count})
	}
	ml := make([]MechanicLoad, 0, len(s.MechanicLoad))
	for _, m := range s.MechanicLoad {
		ml = append(ml, MechanicLoad{MechanicID: m.MechanicID, MechanicName: m.MechanicName, Count: m.Count})
	}
	return ServiceSummary{
		VehiclesCount: s.VehiclesCount,
		Interventions: ivs,
		AvgOrder:      Money(s.AvgOrder),
		TotalRevenue:  Money(s.TotalRevenue),
		MechanicLoad:  ml,
	}
}
