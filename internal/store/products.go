package store

import (
	"context"
	"fmt"

	"github.com/MihaiKuro/asd/internal/dependency"
	"github.com/MihaiKuro/asd/internal/entity"
	gerr "github.com/MihaiKuro/asd/internal/errors"
)

type catalogStore struct {
	*MYSQLStore
}

// Catalog returns an object implementing catalog interface
func (ms *MYSQLStore) Catalog() dependency.Catalog {
	return &catalogStore{
		MYSQLStore: ms,
	}
}

// GetProductsByIds returns the products that still exist, missing ids are skipped.
// A product without a cost price reports a zero base price.
func (ms *catalogStore) GetProductsByIds(ctx context.Context, ids []int) ([]entity.Product, error) {
	if len(ids) == 0 {
		return []entity.Product{}, nil
	}
	query := `
	SELECT
		id,
		name,
		description,
		price,
		COALESCE(base_price, 0) AS base_price,
		stock,
		category_id,
		COALESCE(subcategory_id, 0) AS subcategory_id,
		is_featured,
		created_at
	FROM product
	WHERE id IN (:ids)
	ORDER BY id`

	prds, err := QueryListNamed[entity.Product](ctx, ms.DB(), query, map[string]any{
		"ids": ids,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get products by ids: %w", err)
	}
	return prds, nil
}

func (ms *catalogStore) CountProducts(ctx context.Context) (int, error) {
	n, err := QueryCountNamed(ctx, ms.DB(), `SELECT COUNT(*) FROM product`, map[string]any{})
	if err != nil {
		return 0, fmt.Errorf("can't count products: %w", err)
	}
	return n, nil
}

func (ms *catalogStore) ListCategories(ctx context.Context) ([]entity.Category, error) {
	type categoryRow struct {
		ID   int    `db:"id"`
		Name string `db:"name"`
	}
	cats, err := QueryListNamed[categoryRow](ctx, ms.DB(), `SELECT id, name FROM category ORDER BY id`, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get categories: %w", err)
	}

	subs, err := QueryListNamed[entity.Subcategory](ctx, ms.DB(),
		`SELECT id, category_id, name, position FROM subcategory ORDER BY category_id, position, id`,
		map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get subcategories: %w", err)
	}
	subsByCategory := make(map[int][]entity.Subcategory, len(cats))
	for _, sc := range subs {
		subsByCategory[sc.CategoryID] = append(subsByCategory[sc.CategoryID], sc)
	}

	res := make([]entity.Category, 0, len(cats))
	for _, c := range cats {
		sc := subsByCategory[c.ID]
		if sc == nil {
			sc = []entity.Subcategory{}
		}
		res = append(res, entity.Category{
			ID:            c.ID,
			Name:          c.Name,
			Subcategories: sc,
		})
	}
	return res, nil
}

// DecreaseStock only touches the row when enough stock is left.
func (ms *catalogStore) DecreaseStock(ctx context.Context, productId int, quantity int) error {
	query := `UPDATE product SET stock = stock - :quantity WHERE id = :productId AND stock >= :quantity`
	n, err := ExecNamedAffected(ctx, ms.DB(), query, map[string]any{
		"quantity":  quantity,
		"productId": productId,
	})
	if err != nil {
		return fmt.Errorf("can't decrease stock: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: product %d", gerr.InsufficientStock, productId)
	}
	return nil
}
