// internal/models/dashboard.go
package models

import (
	"github.com/shopspring/decimal"
)

// DashboardStats is computed on every request and never stored.
type DashboardStats struct {
	TotalProducts       int64           `json:"totalProducts"`
	TotalCategories     int64           `json:"totalCategories"`
	TotalInventoryValue decimal.Decimal `json:"totalInventoryValue"`
	TotalStock          int64           `json:"totalStock"`
}
