// internal/services/seller_service.go
package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/shop-admin/internal/models"
	"github.com/javajoker/shop-admin/internal/repository"
)

// SellerService forwards seller CRUD to the store. Misses are reported as
// nil results, never as errors.
type SellerService struct {
	sellers repository.SellerRepository
}

func NewSellerService(sellers repository.SellerRepository) *SellerService {
	return &SellerService{sellers: sellers}
}

func (s *SellerService) ListSellers(ctx context.Context) ([]models.SellerDetails, error) {
	return s.sellers.ListSellers(ctx)
}

func (s *SellerService) GetSeller(ctx context.Context, id uint) (*models.SellerDetails, error) {
	return s.sellers.FindSeller(ctx, id)
}

// CreateSeller ignores any id sent by the client; the store assigns one.
func (s *SellerService) CreateSeller(ctx context.Context, seller *models.SellerDetails) (*models.SellerDetails, error) {
	seller.ID = 0
	if err := s.sellers.CreateSeller(ctx, seller); err != nil {
		return nil, err
	}

	logrus.WithField("seller_id", seller.ID).Info("Seller created")
	return seller, nil
}

func (s *SellerService) UpdateSeller(ctx context.Context, id uint, details *models.SellerDetails) (*models.SellerDetails, error) {
	existing, err := s.sellers.FindSeller(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	existing.Name = details.Name
	existing.Address = details.Address
	existing.Email = details.Email
	existing.Password = details.Password
	existing.Phone = details.Phone
	existing.StatusID = details.StatusID

	if err := s.sellers.SaveSeller(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	logrus.WithField("seller_id", id).Info("Seller updated")
	return existing, nil
}

// DeleteSeller succeeds whether or not the seller existed.
func (s *SellerService) DeleteSeller(ctx context.Context, id uint) error {
	if err := s.sellers.DeleteSeller(ctx, id); err != nil {
		return err
	}

	logrus.WithField("seller_id", id).Info("Seller deleted")
	return nil
}

func (s *SellerService) CountSellers(ctx context.Context) (int64, error) {
	return s.sellers.CountSellers(ctx)
}
