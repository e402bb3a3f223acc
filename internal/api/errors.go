package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nexusgo/foodtracker/backend/internal/middleware"
	"github.com/nexusgo/foodtracker/backend/internal/service"
)

func abortWithError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, middleware.ErrorResponse{Error: msg})
}

// respondError maps gateway errors to HTTP statuses. Unrecognised errors are
// attached to the context for the request logger and reported as 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		abortWithError(c, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrEmptyUpdate):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrDuplicateAccount),
		errors.Is(err, service.ErrAccountHasDependents):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		abortWithError(c, http.StatusUnauthorized, err.Error())
	default:
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, "internal server error")
	}
}

func badRequest(c *gin.Context, err error) {
	abortWithError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
}

// pathID parses the :id route parameter.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		abortWithError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// currentAccount returns the account set by the auth middleware.
func currentAccount(c *gin.Context) (uint, bool) {
	id, ok := middleware.AccountID(c)
	if !ok {
		abortWithError(c, http.StatusUnauthorized, "unauthorized")
	}
	return id, ok
}

// ownedBy reports whether a row owned by owner may be changed by account.
// Rows without an owner are read-only.
func ownedBy(owner *uint, account uint) bool {
	return owner != nil && *owner == account
}
