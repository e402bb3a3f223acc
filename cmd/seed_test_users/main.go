// Command seed_test_users creates development accounts with a few pantry
// items each. Existing usernames are left alone.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/nexusgo/foodtracker/backend/config"
	"github.com/nexusgo/foodtracker/backend/internal/database"
	"github.com/nexusgo/foodtracker/backend/internal/logger"
	"github.com/nexusgo/foodtracker/backend/internal/service"
	"github.com/nexusgo/foodtracker/backend/internal/types"
)

type testUser struct {
	username  string
	email     string
	allergies *string
	pantry    []pantryItem
}

type pantryItem struct {
	name     string
	quantity float64
	// days from today until the item expires
	expiresIn int
	category  string
}

func strPtr(s string) *string { return &s }

var testUsers = []testUser{
	{
		username: "johndoe",
		email:    "john.doe@example.com",
		pantry: []pantryItem{
			{"Milk", 1, 3, "Dairy"},
			{"Eggs", 12, 10, "Dairy"},
			{"Spinach", 0.5, 1, "Produce"},
		},
	},
	{
		username:  "janesmith",
		email:     "jane.smith@example.com",
		allergies: strPtr("peanuts"),
		pantry: []pantryItem{
			{"Greek Yogurt", 2, 7, "Dairy"},
			{"Chicken Breast", 1.2, 2, "Meat"},
		},
	},
	{
		username: "bobwilson",
		email:    "bob.wilson@example.com",
	},
}

func main() {
	password := flag.String("password", "testpassword123", "password given to every seeded account")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		stderrLog := zerolog.New(os.Stderr)
		stderrLog.Fatal().Err(err).Msg("failed to load configuration")
	}
	if cfg.Env == config.Production {
		stderrLog := zerolog.New(os.Stderr)
		stderrLog.Fatal().Msg("refusing to seed test users in production")
	}
	log := logger.New(cfg)

	db, err := database.Open(cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer database.Close(db)
	if err := database.InitSchema(db); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize schema")
	}

	accounts := service.NewAccountService(db, service.DeleteRestrict, log)
	items := service.NewFoodItemService(db)
	if err := seedUsers(context.Background(), accounts, items, *password, time.Now().UTC(), log); err != nil {
		log.Fatal().Err(err).Msg("failed to seed test users")
	}
}

func seedUsers(ctx context.Context, accounts service.IAccountService, items service.IFoodItemService, password string, today time.Time, log zerolog.Logger) error {
	for _, u := range testUsers {
		account, err := accounts.CreateAccount(ctx, service.NewAccount{
			Username:  u.username,
			Email:     u.email,
			Password:  password,
			Allergies: u.allergies,
		})
		if errors.Is(err, service.ErrDuplicateAccount) {
			log.Info().Str("username", u.username).Msg("user already exists, skipping")
			continue
		}
		if err != nil {
			return err
		}

		for _, p := range u.pantry {
			_, err := items.AddFoodItem(ctx, service.NewFoodItem{
				AccountID:      account.ID,
				Name:           p.name,
				Quantity:       p.quantity,
				ExpirationDate: today.AddDate(0, 0, p.expiresIn).Format(types.DateLayout),
				Category:       strPtr(p.category),
			})
			if err != nil {
				return err
			}
		}
		log.Info().Str("username", u.username).Int("food_items", len(u.pantry)).Msg("created test user")
	}
	return nil
}
