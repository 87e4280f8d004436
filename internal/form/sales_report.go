package form

import (
	"math"
	"net/url"
	"time"

	"github.com/MihaiKuro/asd/internal/entity"
	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	MaxReportPeriod = 3650
	MaxReportLimit  = 1000
)

// SalesReportRequest holds the raw query values of the sales report.
type SalesReportRequest struct {
	Period        string `json:"period"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	CategoryID    string `json:"categoryId"`
	SubcategoryID string `json:"subcategoryId"`
	Limit         string `json:"limit"`
}

func SalesReportRequestFromQuery(q url.Values) *SalesReportRequest {
	return &SalesReportRequest{
		Period:        q.Get("period"),
		StartDate:     q.Get("startDate"),
		EndDate:       q.Get("endDate"),
		CategoryID:    q.Get("categoryId"),
		SubcategoryID: q.Get("subcategoryId"),
		Limit:         q.Get("limit"),
	}
}

func (r *SalesReportRequest) Validate() error {
	return ValidateStruct(r,
		v.Field(&r.Period, is.Int, v.By(intBetween(1, MaxReportPeriod))),
		v.Field(&r.Limit, is.Int, v.By(intBetween(1, MaxReportLimit))),
		v.Field(&r.CategoryID, is.Int, v.By(intBetween(1, math.MaxInt32))),
		v.Field(&r.SubcategoryID, is.Int, v.By(intBetween(1, math.MaxInt32))),
		v.Field(&r.StartDate, v.By(isDate)),
		v.Field(&r.EndDate, v.By(isDate)),
	)
}

// ReportDefaults are the values a sales report request falls back to.
type ReportDefaults struct {
	Now      time.Time
	Location *time.Location
	Period   int
	Limit    int
}

// Resolve validates the request and turns it into a report filter.
// Both dates win over the period, a single date is ignored.
func (r *SalesReportRequest) Resolve(d ReportDefaults) (*entity.SalesReportFilter, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	loc := d.Location
	if loc == nil {
		loc = time.UTC
	}

	f := &entity.SalesReportFilter{
		Period:        atoiOr(r.Period, d.Period),
		Limit:         atoiOr(r.Limit, d.Limit),
		CategoryID:    atoiOr(r.CategoryID, 0),
		SubcategoryID: atoiOr(r.SubcategoryID, 0),
	}

	tr, err := explicitRange(r.StartDate, r.EndDate, loc)
	if err != nil {
		return nil, err
	}
	if tr != nil {
		f.Window = *tr
		f.Explicit = true
		f.StartDate = r.StartDate
		f.EndDate = r.EndDate
		return f, nil
	}

	now := d.Now.In(loc)
	f.Window = entity.TimeRange{
		From: now.AddDate(0, 0, -f.Period),
		To:   now,
	}
	return f, nil
}
