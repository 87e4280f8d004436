package store

import (
	"context"
	"fmt"

	"github.com/MihaiKuro/asd/internal/dependency"
)

type usersStore struct {
	*MYSQLStore
}

// Users returns an object implementing users interface
func (ms *MYSQLStore) Users() dependency.Users {
	return &usersStore{
		MYSQLStore: ms,
	}
}

func (ms *usersStore) CountUsers(ctx context.Context) (int, error) {
	n, err := QueryCountNamed(ctx, ms.DB(), `SELECT COUNT(*) FROM users`, map[string]any{})
	if err != nil {
		return 0, fmt.Errorf("can't count users: %w", err)
	}
	return n, nil
}
