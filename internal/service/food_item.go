package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nexusgo/foodtracker/backend/internal/models"
	"github.com/nexusgo/foodtracker/backend/internal/optional"
)

type NewFoodItem struct {
	AccountID      uint
	Name           string
	Quantity       float64
	ExpirationDate string
	Category       *string
}

type FoodItemUpdate struct {
	Name           optional.Value[string]
	Quantity       optional.Value[float64]
	ExpirationDate optional.Value[string]
	Category       optional.Value[*string]
}

// FoodItemService handles pantry entries
type FoodItemService struct {
	db *gorm.DB
}

var _ IFoodItemService = (*FoodItemService)(nil)

func NewFoodItemService(db *gorm.DB) *FoodItemService {
	return &FoodItemService{db: db}
}

func (s *FoodItemService) AddFoodItem(ctx context.Context, in NewFoodItem) (*models.FoodItem, error) {
	accountID := in.AccountID
	item := &models.FoodItem{
		AccountID:      &accountID,
		Name:           in.Name,
		Quantity:       in.Quantity,
		ExpirationDate: in.ExpirationDate,
		Category:       in.Category,
	}
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to add food item: %w", err)
	}
	return item, nil
}

// GetFoodItem returns nil when the item does not exist.
func (s *FoodItemService) GetFoodItem(ctx context.Context, id uint) (*models.FoodItem, error) {
	var item models.FoodItem
	err := s.db.WithContext(ctx).Take(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get food item: %w", err)
	}
	return &item, nil
}

func (s *FoodItemService) ListFoodItems(ctx context.Context, accountID uint) ([]models.FoodItem, error) {
	return s.find(ctx, s.db.Where("user_id = ?", accountID).Order("id"))
}

func (s *FoodItemService) ListAllFoodItems(ctx context.Context) ([]models.FoodItem, error) {
	return s.find(ctx, s.db.Order("id"))
}

// ListExpiringFoodItems returns the account's items whose expiration date is
// on or before the given YYYY-MM-DD date, soonest first.
func (s *FoodItemService) ListExpiringFoodItems(ctx context.Context, accountID uint, onOrBefore string) ([]models.FoodItem, error) {
	return s.find(ctx, s.db.
		Where("user_id = ? AND expiration_date <= ?", accountID, onOrBefore).
		Order("expiration_date, id"))
}

func (s *FoodItemService) find(ctx context.Context, query *gorm.DB) ([]models.FoodItem, error) {
	items := []models.FoodItem{}
	if err := query.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list food items: %w", err)
	}
	return items, nil
}

func (s *FoodItemService) UpdateFoodItem(ctx context.Context, id uint, upd FoodItemUpdate) error {
	cols := columnSet{}
	setIfPresent(cols, "name", upd.Name)
	setIfPresent(cols, "quantity", upd.Quantity)
	setIfPresent(cols, "expiration_date", upd.ExpirationDate)
	setIfPresent(cols, "category", upd.Category)

	err := updateByID(ctx, s.db, &models.FoodItem{}, id, cols)
	if err != nil && !errors.Is(err, ErrEmptyUpdate) && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to update food item: %w", err)
	}
	return err
}

func (s *FoodItemService) DeleteFoodItem(ctx context.Context, id uint) error {
	return deleteByID(ctx, s.db, &models.FoodItem{}, id)
}
