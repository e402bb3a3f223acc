package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/nexusgo/foodtracker/backend/internal/models"
)

// InitSchema creates the users, food_items, recipes and community_posts
// tables when they are missing. It is the single schema definition and is
// safe to run on every start.
func InitSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Account{},
		&models.FoodItem{},
		&models.Recipe{},
		&models.CommunityPost{},
	); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}
