package store

import (
	"context"
	"fmt"

	"github.com/MihaiKuro/asd/internal/dependency"
	"github.com/MihaiKuro/asd/internal/entity"
)

type serviceOrderStore struct {
	*MYSQLStore
}

// ServiceOrders returns an object implementing service orders interface
func (ms *MYSQLStore) ServiceOrders() dependency.ServiceOrders {
	return &serviceOrderStore{
		MYSQLStore: ms,
	}
}

func (ms *serviceOrderStore) GetServiceOrders(ctx context.Context, tr *entity.TimeRange) ([]entity.ServiceOrder, error) {
	query := `
	SELECT id, user_id, vehicle, mechanic_id, status, works_performed, total_parts, total_labor, total_cost, created_at
	FROM service_order`
	params := map[string]any{}
	if tr != nil {
		query += ` WHERE created_at BETWEEN :from AND :to`
		params["from"] = tr.From
		params["to"] = tr.To
	}
	query += ` ORDER BY id`

	sos, err := QueryListNamed[entity.ServiceOrder](ctx, ms.DB(), query, params)
	if err != nil {
		return nil, fmt.Errorf("can't get service orders: %w", err)
	}
	return sos, nil
}

func (ms *serviceOrderStore) GetMechanicsByIds(ctx context.Context, ids []int) ([]entity.Mechanic, error) {
	if len(ids) == 0 {
		return []entity.Mechanic{}, nil
	}
	query := `SELECT id, name, email, phone, specialization FROM mechanic WHERE id IN (:ids) ORDER BY id`
	mechanics, err := QueryListNamed[entity.Mechanic](ctx, ms.DB(), query, map[string]any{
		"ids": ids,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get mechanics: %w", err)
	}
	return mechanics, nil
}
