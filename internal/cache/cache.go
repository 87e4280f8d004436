// Package cache keeps rarely changing catalog dictionaries in memory.
package cache

import (
	"fmt"
	"time"
)

const defaultCategoriesTTL = 5 * time.Minute

type Config struct {
	// CategoriesTTL is how long the category list is served from memory, "0s" disables caching.
	CategoriesTTL string `mapstructure:"categories_ttl"`
}

func (c *Config) categoriesTTL() (time.Duration, error) {
	if c.CategoriesTTL == "" {
		return defaultCategoriesTTL, nil
	}
	ttl, err := time.ParseDuration(c.CategoriesTTL)
	if err != nil {
		return 0, fmt.Errorf("bad categories ttl %q: %w", c.CategoriesTTL, err)
	}
	return ttl, nil
}
