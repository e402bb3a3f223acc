package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nexusgo/foodtracker/backend/internal/models"
	"github.com/nexusgo/foodtracker/backend/internal/service"
	"github.com/nexusgo/foodtracker/backend/internal/types"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	accounts service.IAccountService
	auth     service.IAuthService
	log      zerolog.Logger
}

func NewAuthHandler(accounts service.IAccountService, auth service.IAuthService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{accounts: accounts, auth: auth, log: log}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	account, err := h.accounts.CreateAccount(c.Request.Context(), service.NewAccount{
		Username:           req.Username,
		Email:              req.Email,
		Phone:              req.Phone,
		Password:           req.Password,
		DietaryPreferences: req.DietaryPreferences,
		Allergies:          req.Allergies,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondWithToken(c, http.StatusCreated, account)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	account, err := h.accounts.Authenticate(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondWithToken(c, http.StatusOK, account)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, account *models.Account) {
	token, err := h.auth.GenerateToken(account)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, types.AuthResponse{Token: token, Account: account})
}
