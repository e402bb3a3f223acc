package main

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexusgo/foodtracker/backend/internal/service"
	"github.com/nexusgo/foodtracker/backend/internal/testhelpers"
)

func TestSeedUsers(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()
	accounts := service.NewAccountService(db, service.DeleteRestrict, zerolog.Nop())
	items := service.NewFoodItemService(db)
	today := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, seedUsers(ctx, accounts, items, "secret", today, zerolog.Nop()))
	require.NoError(t, seedUsers(ctx, accounts, items, "secret", today, zerolog.Nop()))

	list, err := accounts.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, list, len(testUsers))

	john, err := accounts.Authenticate(ctx, "johndoe", "secret")
	require.NoError(t, err)
	expiring, err := items.ListExpiringFoodItems(ctx, john.ID, "2025-03-04")
	require.NoError(t, err)
	require.Len(t, expiring, 2)
	assert.Equal(t, "Spinach", expiring[0].Name)
	assert.Equal(t, "2025-03-02", expiring[0].ExpirationDate)
}
