package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexusgo/foodtracker/backend/internal/service"
	"github.com/nexusgo/foodtracker/backend/internal/types"
)

// AccountHandler serves the authenticated account and the account listing.
type AccountHandler struct {
	accounts service.IAccountService
}

func NewAccountHandler(accounts service.IAccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	id, ok := currentAccount(c)
	if !ok {
		return
	}

	account, err := h.accounts.GetAccountByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if account == nil {
		respondError(c, service.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	id, ok := currentAccount(c)
	if !ok {
		return
	}

	var req types.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(c, err)
		return
	}

	err := h.accounts.UpdateAccount(c.Request.Context(), id, service.AccountUpdate{
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

	h.GetAccount(c)
}

func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	id, ok := currentAccount(c)
	if !ok {
		return
	}

	if err := h.accounts.DeleteAccount(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.accounts.ListAccounts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}
