package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexusgo/foodtracker/backend/internal/service"
	"github.com/nexusgo/foodtracker/backend/internal/testhelpers"
)

func TestSeedRecipesIsRepeatable(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	recipes := service.NewRecipeService(db)
	ctx := context.Background()

	created, skipped, err := seedRecipes(ctx, recipes, starterRecipes)
	require.NoError(t, err)
	assert.Equal(t, len(starterRecipes), created)
	assert.Zero(t, skipped)

	created, skipped, err = seedRecipes(ctx, recipes, starterRecipes)
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Equal(t, len(starterRecipes), skipped)

	all, err := recipes.ListAllRecipes(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(starterRecipes))
	for _, r := range all {
		assert.Nil(t, r.AccountID)
	}
}

func TestReadSeeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"Toast","ingredients":"bread","instructions":"toast","category":null}]`), 0o600))

	seeds, err := readSeeds(path)
	require.NoError(t, err)
	require.Len(t, seeds, 1)
	assert.Equal(t, "Toast", seeds[0].Name)
	assert.Nil(t, seeds[0].Category)

	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o600))
	_, err = readSeeds(path)
	assert.Error(t, err)
}
