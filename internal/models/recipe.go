package models

// Recipe stores free-form ingredient and instruction text.
type Recipe struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	Name         string   `gorm:"not null" json:"name"`
	Ingredients  string   `gorm:"type:text;not null" json:"ingredients"`
	Instructions string   `gorm:"type:text;not null" json:"instructions"`
	Category     *string  `json:"category,omitempty"`
	AccountID    *uint    `gorm:"column:user_id" json:"account_id,omitempty"`
	Account      *Account `gorm:"foreignKey:AccountID" json:"-"`
}

func (Recipe) TableName() string {
	return "recipes"
}
