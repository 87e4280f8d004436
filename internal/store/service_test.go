package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MihaiKuro/asd/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var serviceOrderCols = []string{"id", "user_id", "vehicle", "mechanic_id", "status", "works_performed", "total_parts", "total_labor", "total_cost", "created_at"}

func TestGetServiceOrders(t *testing.T) {
	db, mock := newTestDB(t)
	now := time.Now()

	mock.ExpectQuery(q("FROM service_order ORDER BY id")).
		WillReturnRows(sqlmock.NewRows(serviceOrderCols).
			AddRow(1, 2, "VW Golf", 3, "Completed", "Oil change", "40.00", "20.00", "60.00", now).
			AddRow(2, 2, "VW Golf", nil, "Open", "", "0", "0", "0", now))

	sos, err := db.ServiceOrders().GetServiceOrders(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, sos, 2)
	assert.True(t, sos[0].MechanicID.Valid)
	assert.EqualValues(t, 3, sos[0].MechanicID.Int32)
	assert.False(t, sos[1].MechanicID.Valid)
	assert.Equal(t, entity.ServiceOrderCompleted, sos[0].Status)
}

func TestGetServiceOrdersInRange(t *testing.T) {
	db, mock := newTestDB(t)
	tr := entity.TimeRange{From: time.Now().AddDate(0, 0, -3), To: time.Now()}

	mock.ExpectQuery(q("FROM service_order WHERE created_at BETWEEN ? AND ? ORDER BY id")).
		WithArgs(tr.From, tr.To).
		WillReturnRows(sqlmock.NewRows(serviceOrderCols))

	sos, err := db.ServiceOrders().GetServiceOrders(context.Background(), &tr)
	require.NoError(t, err)
	assert.Empty(t, sos)
}

func TestGetMechanicsByIds(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(q("FROM mechanic WHERE id IN (?, ?) ORDER BY id")).
		WithArgs(1, 3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "specialization"}).
			AddRow(1, "Ion", "ion@garage.ro", "", "engines"))

	ms, err := db.ServiceOrders().GetMechanicsByIds(context.Background(), []int{1, 3})
	require.NoError(t, err)
	require.Len(t, ms, 1)
	assert.Equal(t, "Ion", ms[0].Name)

	empty, err := db.ServiceOrders().GetMechanicsByIds(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
