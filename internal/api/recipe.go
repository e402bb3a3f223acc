package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexusgo/foodtracker/backend/internal/service"
	"github.com/nexusgo/foodtracker/backend/internal/types"
)

// RecipeHandler handles recipe-related HTTP requests
type RecipeHandler struct {
	recipes service.IRecipeService
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(recipes service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// ListRecipes returns the caller's recipes
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	accountID, ok := currentAccount(c)
	if !ok {
		return
	}

	recipes, err := h.recipes.ListRecipes(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// ListAllRecipes returns every recipe, shared ones included
func (h *RecipeHandler) ListAllRecipes(c *gin.Context) {
	recipes, err := h.recipes.ListAllRecipes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// CreateRecipe handles recipe creation
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	accountID, ok := currentAccount(c)
	if !ok {
		return
	}

	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	in := service.NewRecipe{
		Name:         req.Name,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Category:     req.Category,
	}
	if !req.Shared {
		in.AccountID = &accountID
	}

	recipe, err := h.recipes.AddRecipe(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

// UpdateRecipe handles recipe updates
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := h.ownedRecipe(c)
	if !ok {
		return
	}

	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	err := h.recipes.UpdateRecipe(c.Request.Context(), id, service.RecipeUpdate{
		Name:         req.Name,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Category:     req.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// DeleteRecipe handles recipe deletion
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := h.ownedRecipe(c)
	if !ok {
		return
	}

	if err := h.recipes.DeleteRecipe(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RecipeHandler) ownedRecipe(c *gin.Context) (uint, bool) {
	accountID, ok := currentAccount(c)
	if !ok {
		return 0, false
	}
	id, ok := pathID(c)
	if !ok {
		return 0, false
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return 0, false
	}
	if recipe == nil {
		respondError(c, service.ErrNotFound)
		return 0, false
	}
	if !ownedBy(recipe.AccountID, accountID) {
		abortWithError(c, http.StatusForbidden, "recipe belongs to another account")
		return 0, false
	}
	return id, true
}
