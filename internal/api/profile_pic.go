package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexusgo/foodtracker/backend/internal/optional"
	"github.com/nexusgo/foodtracker/backend/internal/service"
)

// UploadProfilePic replaces the caller's picture with the multipart "file"
// field.
func (h *AccountHandler) UploadProfilePic(c *gin.Context) {
	id, ok := currentAccount(c)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "multipart field \"file\" is required")
		return
	}
	if header.Size > service.MaxProfilePicBytes {
		abortWithError(c, http.StatusRequestEntityTooLarge, service.ErrImageTooLarge.Error())
		return
	}
	f, err := header.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, service.MaxProfilePicBytes+1))
	if err != nil {
		respondError(c, err)
		return
	}
	if _, err := service.ValidateProfilePic(data); err != nil {
		status := http.StatusUnsupportedMediaType
		if errors.Is(err, service.ErrImageTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		abortWithError(c, status, err.Error())
		return
	}

	if err := h.accounts.UpdateAccount(c.Request.Context(), id, service.AccountUpdate{ProfilePic: optional.Of(data)}); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetProfilePic serves the caller's picture with its sniffed content type.
func (h *AccountHandler) GetProfilePic(c *gin.Context) {
	id, ok := currentAccount(c)
	if !ok {
		return
	}

	account, err := h.accounts.GetAccountByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if account == nil || len(account.ProfilePic) == 0 {
		respondError(c, service.ErrNotFound)
		return
	}

	contentType, err := service.DetectImageType(account.ProfilePic)
	if err != nil {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, account.ProfilePic)
}
