// internal/repository/memory.go
package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/javajoker/shop-admin/internal/models"
)

// MemoryStore keeps categories, products and sellers in process. It backs
// the "memory" store driver and the service tests.
type MemoryStore struct {
	mu         sync.RWMutex
	categories map[uint]models.Category
	products   map[uint]models.Product
	sellers    map[uint]models.SellerDetails

	nextCategoryID uint
	nextProductID  uint
	nextSellerID   uint
}

var (
	_ CategoryRepository = (*MemoryStore)(nil)
	_ ProductRepository  = (*MemoryStore)(nil)
	_ SellerRepository   = (*MemoryStore)(nil)
)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		categories: make(map[uint]models.Category),
		products:   make(map[uint]models.Product),
		sellers:    make(map[uint]models.SellerDetails),
	}
}

// Categories

func (m *MemoryStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	categories := make([]models.Category, 0, len(m.categories))
	for _, category := range m.categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (m *MemoryStore) FindCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, category := range m.categories {
		if category.Name == name {
			found := category
			return &found, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) CreateCategory(ctx context.Context, category *models.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.categories {
		if existing.Name == category.Name {
			return fmt.Errorf("failed to create category %q: %w", category.Name, ErrDuplicate)
		}
	}

	m.nextCategoryID++
	category.ID = m.nextCategoryID
	m.categories[category.ID] = *category
	return nil
}

// DeleteCategory drops a category regardless of the products pointing at
// it, which lets tests simulate a category vanishing between a read and a
// write.
func (m *MemoryStore) DeleteCategory(ctx context.Context, id uint) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.categories, id)
}

func (m *MemoryStore) CountCategories(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return int64(len(m.categories)), nil
}

// Products

func (m *MemoryStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	return m.listProducts(func(models.Product) bool { return true }), nil
}

func (m *MemoryStore) ListProductsByCategory(ctx context.Context, categoryID uint) ([]models.Product, error) {
	return m.listProducts(func(p models.Product) bool { return p.CategoryID == categoryID }), nil
}

func (m *MemoryStore) listProducts(keep func(models.Product) bool) []models.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()

	products := []models.Product{}
	for _, product := range m.products {
		if keep(product) {
			products = append(products, m.withCategory(product))
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products
}

func (m *MemoryStore) FindProduct(ctx context.Context, id uint) (*models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	product, exists := m.products[id]
	if !exists {
		return nil, nil
	}
	product = m.withCategory(product)
	return &product, nil
}

func (m *MemoryStore) CreateProduct(ctx context.Context, product *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.categories[product.CategoryID]; !exists {
		return fmt.Errorf("failed to create product: %w", ErrCategoryReference)
	}

	m.nextProductID++
	product.ID = m.nextProductID
	m.products[product.ID] = *product
	return nil
}

func (m *MemoryStore) SaveProduct(ctx context.Context, product *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, exists := m.products[product.ID]
	if !exists {
		return fmt.Errorf("failed to update product %d: %w", product.ID, ErrNotFound)
	}
	if _, exists := m.categories[product.CategoryID]; !exists {
		return fmt.Errorf("failed to update product %d: %w", product.ID, ErrCategoryReference)
	}

	saved := *product
	saved.CreatedAt = existing.CreatedAt
	m.products[product.ID] = saved
	return nil
}

func (m *MemoryStore) DeleteProduct(ctx context.Context, id uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.products[id]; !exists {
		return false, nil
	}
	delete(m.products, id)
	return true, nil
}

func (m *MemoryStore) CountProducts(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return int64(len(m.products)), nil
}

func (m *MemoryStore) InventoryValue(ctx context.Context) (decimal.Decimal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := decimal.Zero
	for _, product := range m.products {
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(product.Stock))))
	}
	return total, nil
}

func (m *MemoryStore) TotalStock(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var total int64
	for _, product := range m.products {
		total += int64(product.Stock)
	}
	return total, nil
}

// withCategory mirrors a preload: the stored category is attached by id.
// Callers must hold the lock.
func (m *MemoryStore) withCategory(product models.Product) models.Product {
	if category, exists := m.categories[product.CategoryID]; exists {
		product.Category = category
	}
	return product
}

// Sellers

func (m *MemoryStore) ListSellers(ctx context.Context) ([]models.SellerDetails, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sellers := make([]models.SellerDetails, 0, len(m.sellers))
	for _, seller := range m.sellers {
		sellers = append(sellers, seller)
	}
	sort.Slice(sellers, func(i, j int) bool { return sellers[i].ID < sellers[j].ID })
	return sellers, nil
}

func (m *MemoryStore) FindSeller(ctx context.Context, id uint) (*models.SellerDetails, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seller, exists := m.sellers[id]
	if !exists {
		return nil, nil
	}
	return &seller, nil
}

func (m *MemoryStore) CreateSeller(ctx context.Context, seller *models.SellerDetails) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextSellerID++
	seller.ID = m.nextSellerID
	m.sellers[seller.ID] = *seller
	return nil
}

func (m *MemoryStore) SaveSeller(ctx context.Context, seller *models.SellerDetails) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sellers[seller.ID]; !exists {
		return fmt.Errorf("failed to update seller %d: %w", seller.ID, ErrNotFound)
	}
	m.sellers[seller.ID] = *seller
	return nil
}

func (m *MemoryStore) DeleteSeller(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sellers, id)
	return nil
}

func (m *MemoryStore) CountSellers(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return int64(len(m.sellers)), nil
}

// Stores exposes the memory store through every repository interface.
func (m *MemoryStore) Stores() Stores {
	return Stores{
		Categories: m,
		Products:   m,
		Sellers:    m,
	}
}
