package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

type ServiceOrderStatus string

const (
	ServiceOrderOpen       ServiceOrderStatus = "Open"
	ServiceOrderInProgress ServiceOrderStatus = "InProgress"
	ServiceOrderCompleted  ServiceOrderStatus = "Completed"
	ServiceOrderCancelled  ServiceOrderStatus = "Cancelled"
)

// ServiceOrder is a workshop ticket opened for a customer vehicle.
type ServiceOrder struct {
	ID             int                `db:"id"`
	UserID         int                `db:"user_id"`
	Vehicle        string             `db:"vehicle"`
	MechanicID     sql.NullInt32      `db:"mechanic_id"`
	Status         ServiceOrderStatus `db:"status"`
	WorksPerformed string             `db:"works_performed"`
	TotalParts     decimal.Decimal    `db:"total_parts"`
	TotalLabor     decimal.Decimal    `db:"total_labor"`
	TotalCost      decimal.Decimal    `db:"total_cost"`
	CreatedAt      time.Time          `db:"created_at"`
}

type Mechanic struct {
	ID             int    `db:"id"`
	Name           string `db:"name"`
	Email          string `db:"email"`
	Phone          string `db:"phone"`
	Specialization string `db:"specialization"`
}
