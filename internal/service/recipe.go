package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nexusgo/foodtracker/backend/internal/models"
	"github.com/nexusgo/foodtracker/backend/internal/optional"
)

// NewRecipe carries recipe input; AccountID is nil for shared recipes.
type NewRecipe struct {
	AccountID    *uint
	Name         string
	Ingredients  string
	Instructions string
	Category     *string
}

type RecipeUpdate struct {
	Name         optional.Value[string]
	Ingredients  optional.Value[string]
	Instructions optional.Value[string]
	Category     optional.Value[*string]
}

// RecipeService handles recipe operations
type RecipeService struct {
	db *gorm.DB
}

var _ IRecipeService = (*RecipeService)(nil)

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// AddRecipe creates a new recipe
func (s *RecipeService) AddRecipe(ctx context.Context, in NewRecipe) (*models.Recipe, error) {
	recipe := &models.Recipe{
		AccountID:    in.AccountID,
		Name:         in.Name,
		Ingredients:  in.Ingredients,
		Instructions: in.Instructions,
		Category:     in.Category,
	}
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, fmt.Errorf("failed to add recipe: %w", err)
	}
	return recipe, nil
}

// GetRecipe retrieves a recipe by ID, or nil when it does not exist
func (s *RecipeService) GetRecipe(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).Take(&recipe, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return &recipe, nil
}

// ListRecipes lists the recipes owned by one account
func (s *RecipeService) ListRecipes(ctx context.Context, accountID uint) ([]models.Recipe, error) {
	return s.find(ctx, s.db.Where("user_id = ?", accountID).Order("id"))
}

// ListAllRecipes lists recipes of every account, including shared ones
func (s *RecipeService) ListAllRecipes(ctx context.Context) ([]models.Recipe, error) {
	return s.find(ctx, s.db.Order("id"))
}

func (s *RecipeService) find(ctx context.Context, query *gorm.DB) ([]models.Recipe, error) {
	recipes := []models.Recipe{}
	if err := query.WithContext(ctx).Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// UpdateRecipe replaces the fields set in upd
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uint, upd RecipeUpdate) error {
	cols := columnSet{}
	setIfPresent(cols, "name", upd.Name)
	setIfPresent(cols, "ingredients", upd.Ingredients)
	setIfPresent(cols, "instructions", upd.Instructions)
	setIfPresent(cols, "category", upd.Category)

	err := updateByID(ctx, s.db, &models.Recipe{}, id, cols)
	if err != nil && !errors.Is(err, ErrEmptyUpdate) && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to update recipe: %w", err)
	}
	return err
}

// DeleteRecipe deletes a recipe
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uint) error {
	return deleteByID(ctx, s.db, &models.Recipe{}, id)
}
