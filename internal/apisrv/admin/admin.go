package admin

import (
	"context"
	"net/http"
	"time"

	"github.com/MihaiKuro/asd/internal/dependency"
	"github.com/MihaiKuro/asd/internal/entity"
	"github.com/go-chi/chi/v5"
)

// Analytics is the read side the admin dashboard is built from.
type Analytics interface {
	Dashboard(ctx context.Context) (*entity.Dashboard, error)
	SalesReport(ctx context.Context, f entity.SalesReportFilter) (*entity.SalesReport, error)
	Categories(ctx context.Context) ([]entity.Category, error)
	ServiceSummary(ctx context.Context, tr *entity.TimeRange) (*entity.ServiceSummary, error)
	Now() time.Time
	Location() *time.Location
	DefaultPeriod() int
	DefaultLimit() int
}

// Server implements handlers for admin.
type Server struct {
	analytics   Analytics
	orders      dependency.Order
	publisher   dependency.Publisher
	statusTopic string
}

// New creates a new server with admin handlers.
// Order status changes are published to statusTopic.
func New(
	a Analytics,
	orders dependency.Order,
	p dependency.Publisher,
	statusTopic string,
) *Server {
	return &Server{
		analytics:   a,
		orders:      orders,
		publisher:   p,
		statusTopic: statusTopic,
	}
}

// Routes returns the admin API, meant to be mounted under /api/admin behind auth.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Route("/analytics", func(r chi.Router) {
		r.Get("/", s.getDashboard)
		r.Get("/sales-report", s.getSalesReport)
		r.Get("/categories-filter", s.getCategoriesFilter)
		r.Get("/service-summary", s.getServiceSummary)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", s.createOrder)
		r.Get("/{id}", s.getOrderById)
		r.Put("/{id}/status", s.setOrderStatus)
	})

	return r
}
