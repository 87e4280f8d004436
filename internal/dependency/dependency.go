package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/MihaiKuro/asd/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

//go:generate mockery --case underscore --all --output=./mocks
type (
	// OrderReader is the read side of the order ledger used by analytics.
	OrderReader interface {
		// GetOrdersCreatedBetween returns orders with their items created inside the range (inclusive).
		// When no statuses are given every status is returned.
		GetOrdersCreatedBetween(ctx context.Context, tr entity.TimeRange, statuses ...entity.OrderStatusName) ([]entity.OrderFull, error)
		// GetPaidOrdersTotals returns the count and the summed total price of paid orders.
		GetPaidOrdersTotals(ctx context.Context) (int, decimal.Decimal, error)
		// CountOrdersByStatus returns the number of orders in the given status.
		CountOrdersByStatus(ctx context.Context, status entity.OrderStatusName) (int, error)
	}

	Order interface {
		OrderReader
		// CreateOrder reserves stock and stores the order with prices frozen at the current product price.
		CreateOrder(ctx context.Context, orderNew *entity.OrderNew) (*entity.OrderFull, error)
		GetOrderById(ctx context.Context, id int) (*entity.OrderFull, error)
		// SetOrderStatus moves the order to a new status and returns the previous one.
		SetOrderStatus(ctx context.Context, id int, status entity.OrderStatusName) (*entity.Order, entity.OrderStatusName, error)
	}

	Catalog interface {
		GetProductsByIds(ctx context.Context, ids []int) ([]entity.Product, error)
		CountProducts(ctx context.Context) (int, error)
		// ListCategories returns every category with its subcategories in display order.
		ListCategories(ctx context.Context) ([]entity.Category, error)
		// DecreaseStock fails without changes when the stock would drop below zero.
		DecreaseStock(ctx context.Context, productId int, quantity int) error
	}

	Users interface {
		CountUsers(ctx context.Context) (int, error)
	}

	ServiceOrders interface {
		// GetServiceOrders returns service orders created inside tr, or all of them when tr is nil.
		GetServiceOrders(ctx context.Context, tr *entity.TimeRange) ([]entity.ServiceOrder, error)
		GetMechanicsByIds(ctx context.Context, ids []int) ([]entity.Mechanic, error)
	}

	Repository interface {
		Order() Order
		Catalog() Catalog
		Users() Users
		ServiceOrders() ServiceOrders
		Tx(ctx context.Context, f func(context.Context, Repository) error) error
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		Now() time.Time
		InTx() bool
		Ping(ctx context.Context) error
		Close()
		IsErrorRepeat(err error) bool
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
		NamedQuery(query string, arg interface{}) (*sqlx.Rows, error)
		PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
		PreparexContext(ctx context.Context, query string) (*sqlx.Stmt, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	// Publisher delivers domain events to a message broker.
	Publisher interface {
		PublishEvent(ctx context.Context, topic string, key string, event any) error
		Close() error
	}
)
