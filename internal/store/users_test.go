package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountUsers(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(q("SELECT COUNT(*) FROM users")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(21))

	n, err := db.Users().CountUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 21, n)

	mock.ExpectQuery(q("SELECT COUNT(*) FROM users")).WillReturnError(errors.New("timeout"))
	_, err = db.Users().CountUsers(context.Background())
	assert.Error(t, err)
}
