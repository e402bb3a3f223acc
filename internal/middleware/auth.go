package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nexusgo/foodtracker/backend/internal/models"
	"github.com/nexusgo/foodtracker/backend/internal/types"
)

// Context keys set by AuthMiddleware.
const (
	AccountIDKey = "account_id"
	UsernameKey  = "username"
)

// TokenValidator is an interface for validating JWT tokens
type TokenValidator interface {
	ValidateToken(token string) (*types.TokenClaims, error)
}

// AuthMiddleware creates a middleware that validates bearer tokens
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authorization header"})
			return
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid authorization header format"})
			return
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid or expired token"})
			return
		}

		c.Set(AccountIDKey, claims.AccountID)
		c.Set(UsernameKey, claims.Username)
		c.Next()
	}
}

// AccountLookup resolves an account by id; a nil account means it is gone.
type AccountLookup interface {
	GetAccountByID(ctx context.Context, id uint) (*models.Account, error)
}

// RequireAccount rejects tokens whose account has been deleted since the
// token was issued. It must run after AuthMiddleware.
func RequireAccount(accounts AccountLookup, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := AccountID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
			return
		}

		account, err := accounts.GetAccountByID(c.Request.Context(), id)
		if err != nil {
			log.Error().Err(err).Uint("account_id", id).Msg("failed to load token account")
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
			return
		}
		if account == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "account no longer exists"})
			return
		}
		c.Next()
	}
}

// AccountID returns the authenticated account, if any.
func AccountID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(AccountIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}
