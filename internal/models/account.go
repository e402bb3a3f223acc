package models

// Account is a registered user. Table and column names match the existing
// store layout so older database files stay readable.
type Account struct {
	ID                 uint    `gorm:"primaryKey" json:"id"`
	Username           string  `gorm:"not null;unique" json:"username"`
	Email              string  `gorm:"not null;unique" json:"email"`
	Phone              *string `json:"phone,omitempty"`
	PasswordHash       string  `gorm:"column:password;not null" json:"-"`
	ProfilePic         []byte  `json:"profile_pic,omitempty"`
	DietaryPreferences *string `json:"dietary_preferences,omitempty"`
	Allergies          *string `json:"allergies,omitempty"`
}

func (Account) TableName() string {
	return "users"
}

// AccountSummary is the listing projection; it never carries the password
// hash or the profile picture.
type AccountSummary struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
}
