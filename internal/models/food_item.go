package models

// FoodItem is a pantry entry logged by an account.
type FoodItem struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	AccountID      *uint    `gorm:"column:user_id" json:"account_id"`
	Account        *Account `gorm:"foreignKey:AccountID" json:"-"`
	Name           string   `gorm:"not null" json:"name"`
	Quantity       float64  `gorm:"type:real;not null" json:"quantity"`
	ExpirationDate string   `gorm:"type:text;not null" json:"expiration_date"`
	Category       *string  `json:"category,omitempty"`
}

func (FoodItem) TableName() string {
	return "food_items"
}
