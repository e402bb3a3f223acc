package service

import (
	"context"

	"github.com/nexusgo/foodtracker/backend/internal/models"
	"github.com/nexusgo/foodtracker/backend/internal/types"
)

// IAccountService defines the interface for account operations
type IAccountService interface {
	CreateAccount(ctx context.Context, in NewAccount) (*models.Account, error)
	GetAccountByUsername(ctx context.Context, username string) (*models.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	GetAccountByID(ctx context.Context, id uint) (*models.Account, error)
	Authenticate(ctx context.Context, login, password string) (*models.Account, error)
	UpdateAccount(ctx context.Context, id uint, upd AccountUpdate) error
	ListAccounts(ctx context.Context) ([]models.AccountSummary, error)
	CountDependents(ctx context.Context, id uint) (DependentCounts, error)
	DeleteAccount(ctx context.Context, id uint) error
}

// IFoodItemService defines the interface for pantry operations
type IFoodItemService interface {
	AddFoodItem(ctx context.Context, in NewFoodItem) (*models.FoodItem, error)
	GetFoodItem(ctx context.Context, id uint) (*models.FoodItem, error)
	ListFoodItems(ctx context.Context, accountID uint) ([]models.FoodItem, error)
	ListAllFoodItems(ctx context.Context) ([]models.FoodItem, error)
	ListExpiringFoodItems(ctx context.Context, accountID uint, onOrBefore string) ([]models.FoodItem, error)
	UpdateFoodItem(ctx context.Context, id uint, upd FoodItemUpdate) error
	DeleteFoodItem(ctx context.Context, id uint) error
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	AddRecipe(ctx context.Context, in NewRecipe) (*models.Recipe, error)
	GetRecipe(ctx context.Context, id uint) (*models.Recipe, error)
	ListRecipes(ctx context.Context, accountID uint) ([]models.Recipe, error)
	ListAllRecipes(ctx context.Context) ([]models.Recipe, error)
	UpdateRecipe(ctx context.Context, id uint, upd RecipeUpdate) error
	DeleteRecipe(ctx context.Context, id uint) error
}

// IPostService defines the interface for community feed operations
type IPostService interface {
	AddPost(ctx context.Context, accountID uint, content string) (*models.CommunityPost, error)
	GetPost(ctx context.Context, id uint) (*models.CommunityPost, error)
	ListPosts(ctx context.Context) ([]models.PostView, error)
	DeletePost(ctx context.Context, id uint) error
}

// IAuthService defines the interface for token operations
type IAuthService interface {
	GenerateToken(account *models.Account) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}
