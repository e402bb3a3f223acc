package models

import "time"

type CommunityPost struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AccountID uint      `gorm:"column:user_id;not null" json:"account_id"`
	Account   *Account  `gorm:"foreignKey:AccountID" json:"-"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (CommunityPost) TableName() string {
	return "community_posts"
}

// PostView is a feed row joined with its author's username.
type PostView struct {
	ID             uint      `json:"id"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
	AuthorUsername string    `json:"author_username"`
}
