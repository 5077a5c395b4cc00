// internal/models/seller.go
package models

type SellerDetails struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"size:255"`
	Address  string `json:"address" gorm:"size:500"`
	Email    string `json:"email" gorm:"size:255"`
	Password string `json:"password" gorm:"size:255"`
	Phone    string `json:"phone" gorm:"size:50"`
	StatusID int    `json:"statusId" gorm:"column:status_id"`
}

func (SellerDetails) TableName() string {
	return TableSellerDetails
}
