package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/MihaiKuro/asd/internal/apisrv"
	"github.com/MihaiKuro/asd/internal/apisrv/admin"
	"github.com/MihaiKuro/asd/internal/apisrv/auth"
	mw "github.com/MihaiKuro/asd/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"
)

const (
	defaultRequestTimeout = 30 * time.Second
	defaultRateLimit      = 100
	defaultRateWindow     = time.Minute
)

// Config is the configuration for the http server
type Config struct {
	Port           string   `mapstructure:"port"`
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	RequestTimeout string   `mapstructure:"request_timeout"`
	// RateLimit requests per RateWindow and client ip, 0 uses the default.
	RateLimit  int    `mapstructure:"rate_limit"`
	RateWindow string `mapstructure:"rate_window"`
}

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server is the http server
type Server struct {
	hs   *http.Server
	c    *Config
	done chan struct{}
}

// New creates a new server
func New(config *Config) *Server {
	return &Server{
		c:    config,
		done: make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

func parseDuration(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	return time.ParseDuration(s)
}

// Handler builds the router with the whole middleware stack.
func (s *Server) Handler(adminServer *admin.Server, authServer *auth.Server, db Pinger) (http.Handler, error) {
	timeout, err := parseDuration(s.c.RequestTimeout, defaultRequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("bad request timeout: %w", err)
	}
	window, err := parseDuration(s.c.RateWindow, defaultRateWindow)
	if err != nil {
		return nil, fmt.Errorf("bad rate window: %w", err)
	}
	limit := s.c.RateLimit
	if limit <= 0 {
		limit = defaultRateLimit
	}

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			return isOriginAllowed(origin, s.c.AllowedOrigins)
		},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodOptions,
			http.MethodDelete,
		},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.ClientIP)
	r.Use(mw.RequestLogger(slog.Default()))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Use(httprate.Limit(
		limit,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			render.Render(w, r, &apisrv.ErrResponse{
				HTTPStatusCode: http.StatusTooManyRequests,
				Message:        http.StatusText(http.StatusTooManyRequests),
			})
		}),
	))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			slog.Default().ErrorContext(r.Context(), "health check failed",
				slog.String("err", err.Error()),
			)
			render.Render(w, r, &apisrv.ErrResponse{
				Err:            err,
				HTTPStatusCode: http.StatusServiceUnavailable,
				Message:        "store unavailable",
				ErrorText:      err.Error(),
			})
			return
		}
		render.Render(w, r, apisrv.OK("ok"))
	})

	r.Mount("/api/admin", authServer.WithAuth(adminServer.Routes()))

	return r, nil
}

// Start starts the server
func (s *Server) Start(ctx context.Context,
	adminServer *admin.Server,
	authServer *auth.Server,
	db Pinger,
) error {
	handler, err := s.Handler(adminServer, authServer, db)
	if err != nil {
		return err
	}

	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:              listenerAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Default().InfoContext(ctx, "new listener", slog.String("addr", "http://"+listenerAddr))
		err := s.hs.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		close(s.done)
	}()

	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	return s.hs.Shutdown(ctx)
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	// Always allow localhost origins
	if strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "https://localhost:") {
		return true
	}
	for _, allowedOrigin := range allowedOrigins {
		if origin == allowedOrigin {
			return true
		}
	}
	return false
}
