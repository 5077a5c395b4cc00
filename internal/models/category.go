// internal/models/category.go
package models

type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:100;not null;uniqueIndex"`
}

func (Category) TableName() string {
	return TableCategory
}
