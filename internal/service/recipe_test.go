package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexusgo/foodtracker/backend/internal/optional"
	"github.com/nexusgo/foodtracker/backend/internal/service"
	"github.com/nexusgo/foodtracker/backend/internal/testhelpers"
)

func TestRecipeLifecycle(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()
	recipes := service.NewRecipeService(db)
	owner := uint(7)

	created, err := recipes.AddRecipe(ctx, service.NewRecipe{
		AccountID:    &owner,
		Name:         "Pancakes",
		Ingredients:  "flour, milk, eggs",
		Instructions: "mix and fry",
		Category:     strPtr("Breakfast"),
	})
	require.NoError(t, err)

	shared, err := recipes.AddRecipe(ctx, service.NewRecipe{Name: "Tea", Ingredients: "tea, water", Instructions: "steep"})
	require.NoError(t, err)
	assert.Nil(t, shared.AccountID)

	mine, err := recipes.ListRecipes(ctx, owner)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Pancakes", mine[0].Name)

	all, err := recipes.ListAllRecipes(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, recipes.UpdateRecipe(ctx, created.ID, service.RecipeUpdate{
		Instructions: optional.Of("mix, rest, fry"),
		Category:     optional.Of[*string](nil),
	}))
	got, err := recipes.GetRecipe(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pancakes", got.Name)
	assert.Equal(t, "flour, milk, eggs", got.Ingredients)
	assert.Equal(t, "mix, rest, fry", got.Instructions)
	assert.Nil(t, got.Category)

	require.NoError(t, recipes.DeleteRecipe(ctx, created.ID))
	got, err = recipes.GetRecipe(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRecipeErrors(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()
	recipes := service.NewRecipeService(db)

	created, err := recipes.AddRecipe(ctx, service.NewRecipe{Name: "Soup", Ingredients: "water", Instructions: "boil"})
	require.NoError(t, err)

	assert.ErrorIs(t, recipes.UpdateRecipe(ctx, created.ID, service.RecipeUpdate{}), service.ErrEmptyUpdate)
	assert.ErrorIs(t, recipes.UpdateRecipe(ctx, 404, service.RecipeUpdate{Name: optional.Of("x")}), service.ErrNotFound)
	assert.ErrorIs(t, recipes.DeleteRecipe(ctx, 404), service.ErrNotFound)
}
