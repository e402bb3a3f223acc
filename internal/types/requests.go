package types

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/nexusgo/foodtracker/backend/internal/models"
	"github.com/nexusgo/foodtracker/backend/internal/optional"
)

// DateLayout is the expiration date format accepted by the API.
const DateLayout = "2006-01-02"

type RegisterRequest struct {
	Username           string  `json:"username" binding:"required,min=3,max=50"`
	Email              string  `json:"email" binding:"required,email"`
	Phone              *string `json:"phone"`
	Password           string  `json:"password" binding:"required,min=6"`
	DietaryPreferences *string `json:"dietary_preferences"`
	Allergies          *string `json:"allergies"`
}

// LoginRequest accepts either a username or an email as Login.
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token   string          `json:"token"`
	Account *models.Account `json:"account"`
}

// UpdateAccountRequest changes only the keys present in the body; a key sent
// as null clears a nullable column. The profile picture has its own upload
// route.
type UpdateAccountRequest struct {
	Username           optional.Value[string]  `json:"username"`
	Email              optional.Value[string]  `json:"email"`
	Phone              optional.Value[*string] `json:"phone"`
	Password           optional.Value[string]  `json:"password"`
	DietaryPreferences optional.Value[*string] `json:"dietary_preferences"`
	Allergies          optional.Value[*string] `json:"allergies"`
}

// Validate applies the registration rules to the credential fields that are
// present. A null credential decodes to "" and fails the required rule.
func (r UpdateAccountRequest) Validate() error {
	checks := []struct {
		field string
		value optional.Value[string]
		rules string
	}{
		{"username", r.Username, "required,min=3,max=50"},
		{"email", r.Email, "required,email"},
		{"password", r.Password, "required,min=6"},
	}
	for _, check := range checks {
		v, ok := check.value.Get()
		if !ok {
			continue
		}
		if err := validate.Var(v, check.rules); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) && len(verrs) > 0 {
				return fmt.Errorf("%s failed on %q", check.field, verrs[0].Tag())
			}
			return err
		}
	}
	return nil
}

var validate = validator.New()

type CreateFoodItemRequest struct {
	Name string `json:"name" binding:"required"`
	// Pointer so an explicit 0 passes the required check.
	Quantity       *float64 `json:"quantity" binding:"required,gte=0"`
	ExpirationDate string   `json:"expiration_date" binding:"required,datetime=2006-01-02"`
	Category       *string  `json:"category"`
}

type UpdateFoodItemRequest struct {
	Name           optional.Value[string]  `json:"name"`
	Quantity       optional.Value[float64] `json:"quantity"`
	ExpirationDate optional.Value[string]  `json:"expiration_date"`
	Category       optional.Value[*string] `json:"category"`
}

type CreateRecipeRequest struct {
	Name         string  `json:"name" binding:"required"`
	Ingredients  string  `json:"ingredients" binding:"required"`
	Instructions string  `json:"instructions" binding:"required"`
	Category     *string `json:"category"`
	// Shared recipes have no owner and appear only in the full listing.
	Shared bool `json:"shared"`
}

type UpdateRecipeRequest struct {
	Name         optional.Value[string]  `json:"name"`
	Ingredients  optional.Value[string]  `json:"ingredients"`
	Instructions optional.Value[string]  `json:"instructions"`
	Category     optional.Value[*string] `json:"category"`
}

type CreatePostRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}
