// internal/models/common.go
package models

import (
	"github.com/shopspring/decimal"
)

// Prices and inventory values travel as JSON numbers, as the admin
// front-ends send and expect them.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Table names follow the existing shop schema rather than GORM's pluralised
// defaults.
const (
	TableCategory      = "category"
	TableProduct       = "product"
	TableSellerDetails = "seller_details"
)
