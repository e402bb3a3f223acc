package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nexusgo/foodtracker/backend/internal/service"
	"github.com/nexusgo/foodtracker/backend/internal/types"
)

// FoodItemHandler serves pantry entries.
type FoodItemHandler struct {
	items service.IFoodItemService
}

func NewFoodItemHandler(items service.IFoodItemService) *FoodItemHandler {
	return &FoodItemHandler{items: items}
}

func (h *FoodItemHandler) ListFoodItems(c *gin.Context) {
	accountID, ok := currentAccount(c)
	if !ok {
		return
	}

	items, err := h.items.ListFoodItems(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *FoodItemHandler) ListAllFoodItems(c *gin.Context) {
	items, err := h.items.ListAllFoodItems(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListExpiringFoodItems lists items expiring on or before ?before=YYYY-MM-DD,
// defaulting to today.
func (h *FoodItemHandler) ListExpiringFoodItems(c *gin.Context) {
	accountID, ok := currentAccount(c)
	if !ok {
		return
	}

	before := c.DefaultQuery("before", time.Now().UTC().Format(types.DateLayout))
	if _, err := time.Parse(types.DateLayout, before); err != nil {
		abortWithError(c, http.StatusBadRequest, "before must be a YYYY-MM-DD date")
		return
	}

	items, err := h.items.ListExpiringFoodItems(c.Request.Context(), accountID, before)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *FoodItemHandler) CreateFoodItem(c *gin.Context) {
	accountID, ok := currentAccount(c)
	if !ok {
		return
	}

	var req types.CreateFoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	item, err := h.items.AddFoodItem(c.Request.Context(), service.NewFoodItem{
		AccountID:      accountID,
		Name:           req.Name,
		Quantity:       *req.Quantity,
		ExpirationDate: req.ExpirationDate,
		Category:       req.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *FoodItemHandler) UpdateFoodItem(c *gin.Context) {
	id, ok := h.ownedItem(c)
	if !ok {
		return
	}

	var req types.UpdateFoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if date, set := req.ExpirationDate.Get(); set {
		if _, err := time.Parse(types.DateLayout, date); err != nil {
			abortWithError(c, http.StatusBadRequest, "expiration_date must be a YYYY-MM-DD date")
			return
		}
	}
	if qty, set := req.Quantity.Get(); set && qty < 0 {
		abortWithError(c, http.StatusBadRequest, "quantity must not be negative")
		return
	}

	err := h.items.UpdateFoodItem(c.Request.Context(), id, service.FoodItemUpdate{
		Name:           req.Name,
		Quantity:       req.Quantity,
		ExpirationDate: req.ExpirationDate,
		Category:       req.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	item, err := h.items.GetFoodItem(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *FoodItemHandler) DeleteFoodItem(c *gin.Context) {
	id, ok := h.ownedItem(c)
	if !ok {
		return
	}

	if err := h.items.DeleteFoodItem(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ownedItem resolves :id and checks that the caller owns the item.
func (h *FoodItemHandler) ownedItem(c *gin.Context) (uint, bool) {
	accountID, ok := currentAccount(c)
	if !ok {
		return 0, false
	}
	id, ok := pathID(c)
	if !ok {
		return 0, false
	}

	item, err := h.items.GetFoodItem(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return 0, false
	}
	if item == nil {
		respondError(c, service.ErrNotFound)
		return 0, false
	}
	if !ownedBy(item.AccountID, accountID) {
		abortWithError(c, http.StatusForbidden, "food item belongs to another account")
		return 0, false
	}
	return id, true
}
