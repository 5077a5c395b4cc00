// internal/services/product_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/shop-admin/internal/models"
	"github.com/javajoker/shop-admin/internal/repository"
	"github.com/javajoker/shop-admin/internal/utils"
)

// ProductService maps stored products to their wire view, resolves category
// names on every write and computes the dashboard aggregates.
type ProductService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	now        func() time.Time
}

func NewProductService(products repository.ProductRepository, categories repository.CategoryRepository) *ProductService {
	return &ProductService{
		products:   products,
		categories: categories,
		now:        time.Now,
	}
}

// WithClock replaces the source of creation timestamps.
func (s *ProductService) WithClock(now func() time.Time) *ProductService {
	s.now = now
	return s
}

// ToProductView projects a stored product onto its wire view. The product's
// category must be loaded.
func ToProductView(product models.Product) models.ProductView {
	price := product.Price
	return models.ProductView{
		ID:           product.ID,
		Name:         product.Name,
		CategoryName: product.Category.Name,
		Price:        &price,
		Stock:        product.Stock,
	}
}

func toProductViews(products []models.Product) []models.ProductView {
	views := make([]models.ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, ToProductView(product))
	}
	return views
}

func (s *ProductService) ListProducts(ctx context.Context) ([]models.ProductView, error) {
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return toProductViews(products), nil
}

func (s *ProductService) ListProductsByCategory(ctx context.Context, categoryID uint) ([]models.ProductView, error) {
	products, err := s.products.ListProductsByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return toProductViews(products), nil
}

// GetProduct returns nil without an error when the product does not exist.
func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.ProductView, error) {
	product, err := s.products.FindProduct(ctx, id)
	if err != nil || product == nil {
		return nil, err
	}
	view := ToProductView(*product)
	return &view, nil
}

func (s *ProductService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.ListCategories(ctx)
}

// GetDashboardStats runs independent count and sum queries. Under concurrent
// writes the figures may disagree with each other slightly.
func (s *ProductService) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	totalProducts, err := s.products.CountProducts(ctx)
	if err != nil {
		return nil, err
	}

	totalCategories, err := s.categories.CountCategories(ctx)
	if err != nil {
		return nil, err
	}

	totalValue, err := s.products.InventoryValue(ctx)
	if err != nil {
		return nil, err
	}

	totalStock, err := s.products.TotalStock(ctx)
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		TotalProducts:       totalProducts,
		TotalCategories:     totalCategories,
		TotalInventoryValue: totalValue,
		TotalStock:          totalStock,
	}, nil
}

// ResolveCategory looks a category up by its exact name.
func (s *ProductService) ResolveCategory(ctx context.Context, name string) (*models.Category, error) {
	category, err := s.categories.FindCategoryByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, categoryNotFound(name)
	}
	return category, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, view *models.ProductView) (*models.ProductView, error) {
	if err := utils.ValidateStruct(view); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	category, err := s.ResolveCategory(ctx, view.CategoryName)
	if err != nil {
		logrus.WithField("category", view.CategoryName).Warn("Create product: category not resolved")
		return nil, err
	}

	product := models.NewProduct(view.Name, *category, *view.Price, view.Stock, s.now())
	if err := s.products.CreateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrCategoryReference) {
			return nil, categoryNotFound(view.CategoryName)
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"product_id": product.ID,
		"category":   category.Name,
	}).Info("Product created")

	created := ToProductView(*product)
	return &created, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uint, view *models.ProductView) (*models.ProductView, error) {
	if err := utils.ValidateStruct(view); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product, err := s.products.FindProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		logrus.WithField("product_id", id).Warn("Update product: product not found")
		return nil, productNotFound(id)
	}

	category, err := s.ResolveCategory(ctx, view.CategoryName)
	if err != nil {
		logrus.WithField("category", view.CategoryName).Warn("Update product: category not resolved")
		return nil, err
	}

	product.Name = view.Name
	product.CategoryID = category.ID
	product.Category = *category
	product.Price = *view.Price
	product.Stock = view.Stock

	if err := s.products.SaveProduct(ctx, product); err != nil {
		switch {
		case errors.Is(err, repository.ErrCategoryReference):
			return nil, categoryNotFound(view.CategoryName)
		case errors.Is(err, repository.ErrNotFound):
			logrus.WithField("product_id", id).Warn("Update product: product removed before save")
			return nil, productNotFound(id)
		}
		return nil, err
	}

	logrus.WithField("product_id", id).Info("Product updated")

	updated := ToProductView(*product)
	return &updated, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	deleted, err := s.products.DeleteProduct(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		logrus.WithField("product_id", id).Warn("Delete product: product not found")
		return productNotFound(id)
	}

	logrus.WithField("product_id", id).Info("Product deleted")
	return nil
}
