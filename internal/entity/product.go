package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents the product table
type Product struct {
	ID            int             `db:"id"`
	Name          string          `db:"name"`
	Description   string          `db:"description"`
	Price         decimal.Decimal `db:"price"`
	BasePrice     decimal.Decimal `db:"base_price"`
	Stock         int             `db:"stock"`
	CategoryID    int             `db:"category_id"`
	SubcategoryID int             `db:"subcategory_id"`
	IsFeatured    bool            `db:"is_featured"`
	CreatedAt     time.Time       `db:"created_at"`
}

// Margin is the profit per unit at the current sale and cost prices.
func (p *Product) Margin() decimal.Decimal {
	return p.Price.Sub(p.BasePrice)
}

// Subcategory lives inside a category and is only meaningful there.
type Subcategory struct {
	ID         int    `db:"id"`
	CategoryID int    `db:"category_id"`
	Name       string `db:"name"`
	Position   int    `db:"position"`
}

type Category struct {
	ID            int    `db:"id"`
	Name          string `db:"name"`
	Subcategories []Subcategory
}

func (c *Category) Subcategory(id int) (Subcategory, bool) {
	for _, sc := range c.Subcategories {
		if sc.ID == id {
			return sc, true
		}
	}
	return Subcategory{}, false
}
