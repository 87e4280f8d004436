package admin

import (
	"log/slog"
	"net/http"

	"github.com/MihaiKuro/asd/internal/apisrv"
	"github.com/MihaiKuro/asd/internal/dto"
	"github.com/MihaiKuro/asd/internal/form"
	"github.com/go-chi/render"
)

// getDashboard answers with the bare {analyticsData, dailySalesData} object, no envelope.
func (s *Server) getDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := s.analytics.Dashboard(r.Context())
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't get dashboard",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, apisrv.ErrInternalServerError(err))
		return
	}
	render.JSON(w, r, dto.ConvertEntityDashboard(d))
}

func (s *Server) getSalesReport(w http.ResponseWriter, r *http.Request) {
	req := form.SalesReportRequestFromQuery(r.URL.Query())
	f, err := req.Resolve(form.ReportDefaults{
		Now:      s.analytics.Now(),
		Location: s.analytics.Location(),
		Period:   s.analytics.DefaultPeriod(),
		Limit:    s.analytics.DefaultLimit(),
	})
	if err != nil {
		render.Render(w, r, apisrv.ErrFromDomain(err))
		return
	}

	rep, err := s.analytics.SalesReport(r.Context(), *f)
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't build sales report",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, apisrv.ErrReportGeneration(err))
		return
	}
	render.Render(w, r, apisrv.OK(dto.ConvertEntitySalesReport(rep)))
}

func (s *Server) getCategoriesFilter(w http.ResponseWriter, r *http.Request) {
	cats, err := s.analytics.Categories(r.Context())
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't list categories",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, apisrv.ErrInternalServerError(err))
		return
	}
	render.Render(w, r, apisrv.OK(dto.ConvertEntityCategories(cats)))
}

func (s *Server) getServiceSummary(w http.ResponseWriter, r *http.Request) {
	req := form.ServiceSummaryRequestFromQuery(r.URL.Query())
	tr, err := req.Resolve(s.analytics.Location())
	if err != nil {
		render.Render(w, r, apisrv.ErrFromDomain(err))
		return
	}

	sum, err := s.analytics.ServiceSummary(r.Context(), tr)
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't build service summary",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, apisrv.ErrReportGeneration(err))
		return
	}
	render.Render(w, r, apisrv.OK(dto.ConvertEntityServiceSummary(sum)))
}
