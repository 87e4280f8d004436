package form

import (
	"net/url"
	"time"

	"github.com/MihaiKuro/asd/internal/entity"
	v "github.com/go-ozzo/ozzo-validation/v4"
)

type ServiceSummaryRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func ServiceSummaryRequestFromQuery(q url.Values) *ServiceSummaryRequest {
	return &ServiceSummaryRequest{
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
	}
}

func (r *ServiceSummaryRequest) Validate() error {
	return ValidateStruct(r,
		v.Field(&r.StartDate, v.By(isDate)),
		v.Field(&r.EndDate, v.By(isDate)),
	)
}

// Resolve returns the requested window, nil means every ticket.
func (r *ServiceSummaryRequest) Resolve(loc *time.Location) (*entity.TimeRange, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if loc == nil {
		loc = time.UTC
	}
	return explicitRange(r.StartDate, r.EndDate, loc)
}
