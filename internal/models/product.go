// internal/models/product.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	Name       string          `json:"name" gorm:"size:100;not null"`
	CategoryID uint            `json:"categoryId" gorm:"not null;index"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Stock      int             `json:"stock" gorm:"not null;default:0"`
	ImageURL   *string         `json:"imageUrl,omitempty" gorm:"column:image_url;size:500"`
	CreatedAt  time.Time       `json:"createdAt" gorm:"<-:create;autoCreateTime:false"`

	// Relationships
	Category Category `json:"category" gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Product) TableName() string {
	return TableProduct
}

// NewProduct builds an unsaved product bound to category. The identifier is
// left zero for the store to assign.
func NewProduct(name string, category Category, price decimal.Decimal, stock int, createdAt time.Time) *Product {
	return &Product{
		Name:       name,
		CategoryID: category.ID,
		Category:   category,
		Price:      price,
		Stock:      stock,
		CreatedAt:  createdAt,
	}
}

// ProductView is the wire shape of a product: the category reference is
// replaced by the category's name. Price is a pointer so an absent or null
// price is rejected instead of read as zero.
type ProductView struct {
	ID           uint             `json:"id"`
	Name         string           `json:"name" validate:"required,max=100"`
	CategoryName string           `json:"categoryName" validate:"required"`
	Price        *decimal.Decimal `json:"price" validate:"required,money"`
	Stock        int              `json:"stock" validate:"gte=0"`
}
