// internal/repository/postgres_seller.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/javajoker/shop-admin/internal/models"
)

type postgresSellerRepository struct {
	db *gorm.DB
}

func NewPostgresSellerRepository(db *gorm.DB) SellerRepository {
	return &postgresSellerRepository{db: db}
}

func (r *postgresSellerRepository) ListSellers(ctx context.Context) ([]models.SellerDetails, error) {
	sellers := []models.SellerDetails{}
	if err := r.db.WithContext(ctx).Order("id").Find(&sellers).Error; err != nil {
		return nil, fmt.Errorf("failed to list sellers: %w", err)
	}
	return sellers, nil
}

func (r *postgresSellerRepository) FindSeller(ctx context.Context, id uint) (*models.SellerDetails, error) {
	var seller models.SellerDetails
	if err := r.db.WithContext(ctx).First(&seller, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find seller %d: %w", id, err)
	}
	return &seller, nil
}

func (r *postgresSellerRepository) CreateSeller(ctx context.Context, seller *models.SellerDetails) error {
	if err := r.db.WithContext(ctx).Create(seller).Error; err != nil {
		return fmt.Errorf("failed to create seller: %w", translateError(err))
	}
	return nil
}

func (r *postgresSellerRepository) SaveSeller(ctx context.Context, seller *models.SellerDetails) error {
	result := r.db.WithContext(ctx).Model(&models.SellerDetails{ID: seller.ID}).
		Updates(map[string]interface{}{
			"name":      seller.Name,
			"address":   seller.Address,
			"email":     seller.Email,
			"password":  seller.Password,
			"phone":     seller.Phone,
			"status_id": seller.StatusID,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update seller %d: %w", seller.ID, translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to update seller %d: %w", seller.ID, ErrNotFound)
	}
	return nil
}

// DeleteSeller does not care whether the row existed.
func (r *postgresSellerRepository) DeleteSeller(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.SellerDetails{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete seller %d: %w", id, err)
	}
	return nil
}

func (r *postgresSellerRepository) CountSellers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.SellerDetails{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count sellers: %w", err)
	}
	return count, nil
}
