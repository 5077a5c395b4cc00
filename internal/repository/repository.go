// internal/repository/repository.go
package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/javajoker/shop-admin/internal/models"
)

var (
	// ErrCategoryReference is returned when a product write points at a
	// category row that does not exist (anymore).
	ErrCategoryReference = errors.New("referenced category does not exist")
	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("duplicate value violates unique constraint")
	// ErrNotFound is returned when an update matches no row.
	ErrNotFound = errors.New("record does not exist")
)

// Lookups that miss return (nil, nil); only store failures are errors.

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	FindCategoryByName(ctx context.Context, name string) (*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	CountCategories(ctx context.Context) (int64, error)
}

type ProductRepository interface {
	// ListProducts returns every product with its category loaded, ordered
	// by id.
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID uint) ([]models.Product, error)
	FindProduct(ctx context.Context, id uint) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	// SaveProduct overwrites name, category, price and stock of an existing
	// row. It never inserts; a missing row yields ErrNotFound.
	SaveProduct(ctx context.Context, product *models.Product) error
	// DeleteProduct checks for the row and removes it as one unit. It
	// reports false when there was nothing to delete.
	DeleteProduct(ctx context.Context, id uint) (bool, error)
	CountProducts(ctx context.Context) (int64, error)
	// InventoryValue is SUM(price * stock), zero when there are no rows.
	InventoryValue(ctx context.Context) (decimal.Decimal, error)
	// TotalStock is SUM(stock), zero when there are no rows.
	TotalStock(ctx context.Context) (int64, error)
}

type SellerRepository interface {
	ListSellers(ctx context.Context) ([]models.SellerDetails, error)
	FindSeller(ctx context.Context, id uint) (*models.SellerDetails, error)
	CreateSeller(ctx context.Context, seller *models.SellerDetails) error
	// SaveSeller never inserts; a missing row yields ErrNotFound.
	SaveSeller(ctx context.Context, seller *models.SellerDetails) error
	DeleteSeller(ctx context.Context, id uint) error
	CountSellers(ctx context.Context) (int64, error)
}

// Stores bundles one repository per aggregate.
type Stores struct {
	Categories CategoryRepository
	Products   ProductRepository
	Sellers    SellerRepository
}
