// internal/repository/postgres_product.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/javajoker/shop-admin/internal/database"
	"github.com/javajoker/shop-admin/internal/models"
)

type postgresProductRepository struct {
	db *gorm.DB
}

func NewPostgresProductRepository(db *gorm.DB) ProductRepository {
	return &postgresProductRepository{db: db}
}

func (r *postgresProductRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := r.db.WithContext(ctx).Preload("Category").Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (r *postgresProductRepository) ListProductsByCategory(ctx context.Context, categoryID uint) ([]models.Product, error) {
	products := []models.Product{}
	if err := r.db.WithContext(ctx).Preload("Category").
		Where("category_id = ?", categoryID).
		Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products for category %d: %w", categoryID, err)
	}
	return products, nil
}

func (r *postgresProductRepository) FindProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).Preload("Category").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product %d: %w", id, err)
	}
	return &product, nil
}

// Writes never cascade into the category row; it is only referenced.

func (r *postgresProductRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", translateError(err))
	}
	return nil
}

func (r *postgresProductRepository) SaveProduct(ctx context.Context, product *models.Product) error {
	// Updates rather than Save: Save turns a zero-row update into an insert
	result := r.db.WithContext(ctx).Model(&models.Product{ID: product.ID}).
		Updates(map[string]interface{}{
			"name":        product.Name,
			"category_id": product.CategoryID,
			"price":       product.Price,
			"stock":       product.Stock,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update product %d: %w", product.ID, translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to update product %d: %w", product.ID, ErrNotFound)
	}
	return nil
}

func (r *postgresProductRepository) DeleteProduct(ctx context.Context, id uint) (bool, error) {
	found := false
	err := database.WithTransaction(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true
		return tx.Delete(&product).Error
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return found, nil
}

func (r *postgresProductRepository) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

func (r *postgresProductRepository) InventoryValue(ctx context.Context) (decimal.Decimal, error) {
	var value decimal.Decimal
	row := r.db.WithContext(ctx).Model(&models.Product{}).
		Select("COALESCE(SUM(price * stock), 0)").Row()
	if err := row.Scan(&value); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum inventory value: %w", err)
	}
	return value, nil
}

func (r *postgresProductRepository) TotalStock(ctx context.Context) (int64, error) {
	var total int64
	row := r.db.WithContext(ctx).Model(&models.Product{}).
		Select("COALESCE(SUM(stock), 0)").Row()
	if err := row.Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum stock: %w", err)
	}
	return total, nil
}
