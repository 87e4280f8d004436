package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/MihaiKuro/asd/config"
	"github.com/MihaiKuro/asd/internal/analytics"
	httpapi "github.com/MihaiKuro/asd/internal/api/http"
	"github.com/MihaiKuro/asd/internal/apisrv/admin"
	"github.com/MihaiKuro/asd/internal/apisrv/auth"
	"github.com/MihaiKuro/asd/internal/cache"
	"github.com/MihaiKuro/asd/internal/dependency"
	"github.com/MihaiKuro/asd/internal/messaging"
	"github.com/MihaiKuro/asd/internal/messaging/kafka"
	"github.com/MihaiKuro/asd/internal/store"
)

// App is the main application
type App struct {
	hs       *httpapi.Server
	db       dependency.Repository
	pub      dependency.Publisher
	c        *config.Config
	done     chan struct{}
	doneOnce sync.Once
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting shop analytics backend")

	db, err := store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql",
			slog.String("err", err.Error()),
		)
		return err
	}
	a.db = db

	authS, err := auth.New(&a.c.Auth)
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed create new auth server",
			slog.String("err", err.Error()),
		)
		return err
	}

	catalog, err := cache.NewCategoryCache(&a.c.Cache, a.db.Catalog())
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed create category cache",
			slog.String("err", err.Error()),
		)
		return err
	}

	an, err := analytics.New(&a.c.Analytics, a.db.Order(), catalog, a.db.Users(), a.db.ServiceOrders())
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed create analytics service",
			slog.String("err", err.Error()),
		)
		return err
	}

	a.pub, err = newPublisher(&a.c.Events)
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed create event publisher",
			slog.String("err", err.Error()),
		)
		return err
	}

	adminS := admin.New(an, a.db.Order(), a.pub, a.c.Events.StatusTopic())

	// start API server
	a.hs = httpapi.New(&a.c.HTTP)
	if err = a.hs.Start(ctx, adminS, authS, a.db); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		return err
	}

	go func() {
		<-a.hs.Done()
		a.finish()
	}()

	return nil
}

func newPublisher(c *messaging.Config) (dependency.Publisher, error) {
	if len(c.Brokers) == 0 {
		slog.Default().Warn("no event brokers configured, order events are dropped")
		return messaging.Noop{}, nil
	}
	p, err := kafka.NewPublisher(c)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "http server shutdown failed",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.pub != nil {
		if err := a.pub.Close(); err != nil {
			slog.Default().ErrorContext(ctx, "event publisher close failed",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.db != nil {
		a.db.Close()
	}
	a.finish()
}

func (a *App) finish() {
	a.doneOnce.Do(func() { close(a.done) })
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
