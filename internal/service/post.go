package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nexusgo/foodtracker/backend/internal/models"
)

// PostService handles the community feed
type PostService struct {
	db *gorm.DB
}

var _ IPostService = (*PostService)(nil)

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

func (s *PostService) AddPost(ctx context.Context, accountID uint, content string) (*models.CommunityPost, error) {
	post := &models.CommunityPost{
		AccountID: accountID,
		Content:   content,
	}
	if err := s.db.WithContext(ctx).Create(post).Error; err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// GetPost returns nil when the post does not exist.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.CommunityPost, error) {
	var post models.CommunityPost
	err := s.db.WithContext(ctx).Take(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &post, nil
}

// ListPosts returns the feed newest first with each author's username.
// Posts whose author no longer exists are not listed.
func (s *PostService) ListPosts(ctx context.Context) ([]models.PostView, error) {
	posts := []models.PostView{}
	err := s.db.WithContext(ctx).
		Table("community_posts").
		Select("community_posts.id, community_posts.content, community_posts.created_at, users.username AS author_username").
		Joins("JOIN users ON users.id = community_posts.user_id").
		Order("community_posts.created_at DESC, community_posts.id DESC").
		Scan(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	return deleteByID(ctx, s.db, &models.CommunityPost{}, id)
}
