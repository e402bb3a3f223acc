package testhelpers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nexusgo/foodtracker/backend/internal/models"
	"github.com/nexusgo/foodtracker/backend/internal/service"
	"github.com/nexusgo/foodtracker/backend/internal/types"
)

// MockAuthService is a mock implementation of service.IAuthService
type MockAuthService struct {
	mock.Mock
}

var _ service.IAuthService = (*MockAuthService)(nil)

func (m *MockAuthService) GenerateToken(account *models.Account) (string, error) {
	args := m.Called(account)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}

// MockAccountService is a mock implementation of service.IAccountService
type MockAccountService struct {
	mock.Mock
}

var _ service.IAccountService = (*MockAccountService)(nil)

func (m *MockAccountService) account(args mock.Arguments) (*models.Account, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, in service.NewAccount) (*models.Account, error) {
	return m.account(m.Called(ctx, in))
}

func (m *MockAccountService) GetAccountByUsername(ctx context.Context, username string) (*models.Account, error) {
	return m.account(m.Called(ctx, username))
}

func (m *MockAccountService) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	return m.account(m.Called(ctx, email))
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, id uint) (*models.Account, error) {
	return m.account(m.Called(ctx, id))
}

func (m *MockAccountService) Authenticate(ctx context.Context, login, password string) (*models.Account, error) {
	return m.account(m.Called(ctx, login, password))
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, id uint, upd service.AccountUpdate) error {
	return m.Called(ctx, id, upd).Error(0)
}

func (m *MockAccountService) ListAccounts(ctx context.Context) ([]models.AccountSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AccountSummary), args.Error(1)
}

func (m *MockAccountService) CountDependents(ctx context.Context, id uint) (service.DependentCounts, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(service.DependentCounts), args.Error(1)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

// MockFoodItemService is a mock implementation of service.IFoodItemService
type MockFoodItemService struct {
	mock.Mock
}

var _ service.IFoodItemService = (*MockFoodItemService)(nil)

func (m *MockFoodItemService) items(args mock.Arguments) ([]models.FoodItem, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FoodItem), args.Error(1)
}

func (m *MockFoodItemService) AddFoodItem(ctx context.Context, in service.NewFoodItem) (*models.FoodItem, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FoodItem), args.Error(1)
}

func (m *MockFoodItemService) GetFoodItem(ctx context.Context, id uint) (*models.FoodItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FoodItem), args.Error(1)
}

func (m *MockFoodItemService) ListFoodItems(ctx context.Context, accountID uint) ([]models.FoodItem, error) {
	return m.items(m.Called(ctx, accountID))
}

func (m *MockFoodItemService) ListAllFoodItems(ctx context.Context) ([]models.FoodItem, error) {
	return m.items(m.Called(ctx))
}

func (m *MockFoodItemService) ListExpiringFoodItems(ctx context.Context, accountID uint, onOrBefore string) ([]models.FoodItem, error) {
	return m.items(m.Called(ctx, accountID, onOrBefore))
}

func (m *MockFoodItemService) UpdateFoodItem(ctx context.Context, id uint, upd service.FoodItemUpdate) error {
	return m.Called(ctx, id, upd).Error(0)
}

func (m *MockFoodItemService) DeleteFoodItem(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

// MockPostService is a mock implementation of service.IPostService
type MockPostService struct {
	mock.Mock
}

var _ service.IPostService = (*MockPostService)(nil)

func (m *MockPostService) AddPost(ctx context.Context, accountID uint, content string) (*models.CommunityPost, error) {
	args := m.Called(ctx, accountID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CommunityPost), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, id uint) (*models.CommunityPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CommunityPost), args.Error(1)
}

func (m *MockPostService) ListPosts(ctx context.Context) ([]models.PostView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostView), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}
