package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nexusgo/foodtracker/backend/internal/database"
	"github.com/nexusgo/foodtracker/backend/internal/models"
	"github.com/nexusgo/foodtracker/backend/internal/optional"
)

// DeletePolicy decides what happens to rows that reference a deleted account.
type DeletePolicy string

const (
	// DeleteRestrict refuses to delete an account that still owns rows.
	DeleteRestrict DeletePolicy = "restrict"
	// DeleteCascade removes the account and everything it owns in one transaction.
	DeleteCascade DeletePolicy = "cascade"
	// DeleteOrphan removes only the account and logs how many rows were left behind.
	DeleteOrphan DeletePolicy = "orphan"
)

// ParseDeletePolicy validates a configured policy name.
func ParseDeletePolicy(name string) (DeletePolicy, error) {
	switch p := DeletePolicy(name); p {
	case DeleteRestrict, DeleteCascade, DeleteOrphan:
		return p, nil
	case "":
		return DeleteRestrict, nil
	default:
		return "", fmt.Errorf("unknown delete policy %q", name)
	}
}

// NewAccount carries registration input. Password is plaintext and is hashed
// before it reaches the store.
type NewAccount struct {
	Username           string
	Email              string
	Phone              *string
	Password           string
	ProfilePic         []byte
	DietaryPreferences *string
	Allergies          *string
}

// AccountUpdate lists the fields a profile update may replace. Unset fields
// are left untouched; set fields are written even when empty.
type AccountUpdate struct {
	Username           optional.Value[string]
	Email              optional.Value[string]
	Phone              optional.Value[*string]
	Password           optional.Value[string]
	ProfilePic         optional.Value[[]byte]
	DietaryPreferences optional.Value[*string]
	Allergies          optional.Value[*string]
}

// DependentCounts reports the rows that reference an account.
type DependentCounts struct {
	FoodItems int64 `json:"food_items"`
	Recipes   int64 `json:"recipes"`
	Posts     int64 `json:"posts"`
}

func (c DependentCounts) Total() int64 {
	return c.FoodItems + c.Recipes + c.Posts
}

// AccountService handles account persistence
type AccountService struct {
	db     *gorm.DB
	policy DeletePolicy
	log    zerolog.Logger
}

var _ IAccountService = (*AccountService)(nil)

// NewAccountService creates a new AccountService instance
func NewAccountService(db *gorm.DB, policy DeletePolicy, log zerolog.Logger) *AccountService {
	return &AccountService{
		db:     db,
		policy: policy,
		log:    log.With().Str("component", "accounts").Logger(),
	}
}

// CreateAccount hashes the password and inserts the account. A taken
// username or email yields ErrDuplicateAccount and nothing is written.
func (s *AccountService) CreateAccount(ctx context.Context, in NewAccount) (*models.Account, error) {
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		Username:           in.Username,
		Email:              in.Email,
		Phone:              in.Phone,
		PasswordHash:       hash,
		ProfilePic:         in.ProfilePic,
		DietaryPreferences: in.DietaryPreferences,
		Allergies:          in.Allergies,
	}
	if err := s.db.WithContext(ctx).Create(account).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrDuplicateAccount
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.log.Info().Uint("account_id", account.ID).Str("username", account.Username).Msg("account created")
	return account, nil
}

// GetAccountByUsername returns nil when no account matches.
func (s *AccountService) GetAccountByUsername(ctx context.Context, username string) (*models.Account, error) {
	return s.findOne(ctx, "username = ?", username)
}

// GetAccountByEmail returns nil when no account matches.
func (s *AccountService) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	return s.findOne(ctx, "email = ?", email)
}

// GetAccountByID returns nil when no account matches.
func (s *AccountService) GetAccountByID(ctx context.Context, id uint) (*models.Account, error) {
	return s.findOne(ctx, "id = ?", id)
}

func (s *AccountService) findOne(ctx context.Context, query string, arg interface{}) (*models.Account, error) {
	var account models.Account
	err := s.db.WithContext(ctx).Where(query, arg).Take(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// Authenticate resolves login as a username first, then as an email, and
// checks the password. Accounts still on a legacy digest are rehashed.
func (s *AccountService) Authenticate(ctx context.Context, login, password string) (*models.Account, error) {
	account, err := s.GetAccountByUsername(ctx, login)
	if err != nil {
		return nil, err
	}
	if account == nil {
		if account, err = s.GetAccountByEmail(ctx, login); err != nil {
			return nil, err
		}
	}
	if account == nil || !VerifyPassword(password, account.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	if isLegacyDigest(account.PasswordHash) {
		if err := s.UpdateAccount(ctx, account.ID, AccountUpdate{Password: optional.Of(password)}); err != nil {
			s.log.Warn().Err(err).Uint("account_id", account.ID).Msg("failed to upgrade legacy password hash")
		} else {
			s.log.Info().Uint("account_id", account.ID).Msg("upgraded legacy password hash")
		}
	}
	return account, nil
}

// UpdateAccount replaces the fields set in upd.
func (s *AccountService) UpdateAccount(ctx context.Context, id uint, upd AccountUpdate) error {
	cols := columnSet{}
	setIfPresent(cols, "username", upd.Username)
	setIfPresent(cols, "email", upd.Email)
	setIfPresent(cols, "phone", upd.Phone)
	setIfPresent(cols, "profile_pic", upd.ProfilePic)
	setIfPresent(cols, "dietary_preferences", upd.DietaryPreferences)
	setIfPresent(cols, "allergies", upd.Allergies)
	if password, ok := upd.Password.Get(); ok {
		hash, err := HashPassword(password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		cols["password"] = hash
	}

	err := updateByID(ctx, s.db, &models.Account{}, id, cols)
	switch {
	case err == nil, errors.Is(err, ErrEmptyUpdate), errors.Is(err, ErrNotFound):
		return err
	case database.IsUniqueViolation(err):
		return ErrDuplicateAccount
	default:
		return fmt.Errorf("failed to update account: %w", err)
	}
}

// ListAccounts returns every account without password hashes or pictures.
func (s *AccountService) ListAccounts(ctx context.Context) ([]models.AccountSummary, error) {
	var accounts []models.AccountSummary
	err := s.db.WithContext(ctx).
		Model(&models.Account{}).
		Select("id, username, email, phone").
		Order("id").
		Scan(&accounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// CountDependents reports how many rows reference the account.
func (s *AccountService) CountDependents(ctx context.Context, id uint) (DependentCounts, error) {
	return countDependents(s.db.WithContext(ctx), id)
}

func countDependents(db *gorm.DB, id uint) (DependentCounts, error) {
	var counts DependentCounts
	if err := db.Model(&models.FoodItem{}).Where("user_id = ?", id).Count(&counts.FoodItems).Error; err != nil {
		return counts, err
	}
	if err := db.Model(&models.Recipe{}).Where("user_id = ?", id).Count(&counts.Recipes).Error; err != nil {
		return counts, err
	}
	if err := db.Model(&models.CommunityPost{}).Where("user_id = ?", id).Count(&counts.Posts).Error; err != nil {
		return counts, err
	}
	return counts, nil
}

// DeleteAccount removes the account according to the configured DeletePolicy.
func (s *AccountService) DeleteAccount(ctx context.Context, id uint) error {
	switch s.policy {
	case DeleteCascade:
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for _, owned := range []interface{}{&models.FoodItem{}, &models.Recipe{}, &models.CommunityPost{}} {
				if err := tx.Where("user_id = ?", id).Delete(owned).Error; err != nil {
					return fmt.Errorf("failed to delete owned rows: %w", err)
				}
			}
			return deleteByID(ctx, tx, &models.Account{}, id)
		})

	case DeleteOrphan:
		counts, err := s.CountDependents(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count owned rows: %w", err)
		}
		if err := deleteByID(ctx, s.db, &models.Account{}, id); err != nil {
			return err
		}
		if counts.Total() > 0 {
			s.log.Warn().
				Uint("account_id", id).
				Int64("food_items", counts.FoodItems).
				Int64("recipes", counts.Recipes).
				Int64("posts", counts.Posts).
				Msg("account deleted with orphaned rows")
		}
		return nil

	default:
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			counts, err := countDependents(tx, id)
			if err != nil {
				return fmt.Errorf("failed to count owned rows: %w", err)
			}
			if counts.Total() > 0 {
				return ErrAccountHasDependents
			}
			return deleteByID(ctx, tx, &models.Account{}, id)
		})
	}
}
