// Command seed_recipes inserts a starter set of shared recipes. Recipes whose
// name already exists are skipped, so it can be run repeatedly.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/nexusgo/foodtracker/backend/config"
	"github.com/nexusgo/foodtracker/backend/internal/database"
	"github.com/nexusgo/foodtracker/backend/internal/logger"
	"github.com/nexusgo/foodtracker/backend/internal/models"
	"github.com/nexusgo/foodtracker/backend/internal/service"
)

type recipeSeed struct {
	Name         string  `json:"name"`
	Ingredients  string  `json:"ingredients"`
	Instructions string  `json:"instructions"`
	Category     *string `json:"category"`
}

func category(s string) *string { return &s }

var starterRecipes = []recipeSeed{
	{
		Name:         "Vegetable Omelette",
		Ingredients:  "3 eggs, 1/2 bell pepper, 1/4 onion, handful of spinach, salt, pepper, butter",
		Instructions: "Whisk the eggs with salt and pepper. Soften the diced vegetables in butter, pour in the eggs and cook until just set. Fold and serve.",
		Category:     category("Breakfast"),
	},
	{
		Name:         "Tomato Basil Pasta",
		Ingredients:  "200g spaghetti, 400g canned tomatoes, 2 garlic cloves, fresh basil, olive oil, parmesan",
		Instructions: "Cook the pasta. Fry sliced garlic in olive oil, add tomatoes and simmer 10 minutes. Toss with pasta and torn basil, top with parmesan.",
		Category:     category("Dinner"),
	},
	{
		Name:         "Banana Oat Pancakes",
		Ingredients:  "2 ripe bananas, 2 eggs, 1 cup rolled oats, 1 tsp baking powder, pinch of cinnamon",
		Instructions: "Blend everything until smooth. Cook small rounds on a greased pan for 2 minutes per side.",
		Category:     category("Breakfast"),
	},
	{
		Name:         "Fried Rice with Leftovers",
		Ingredients:  "2 cups cooked rice, 2 eggs, frozen peas, carrot, spring onion, soy sauce, sesame oil",
		Instructions: "Scramble the eggs and set aside. Stir-fry vegetables, add cold rice and soy sauce, return the eggs and finish with sesame oil.",
		Category:     category("Dinner"),
	},
	{
		Name:         "Lentil Soup",
		Ingredients:  "1 cup red lentils, 1 onion, 2 carrots, 1 celery stalk, 1 tsp cumin, 1 litre stock, lemon",
		Instructions: "Sweat the chopped vegetables, add cumin, lentils and stock. Simmer 25 minutes, blend partly and finish with lemon juice.",
		Category:     category("Lunch"),
	},
	{
		Name:         "Yogurt Parfait",
		Ingredients:  "1 cup plain yogurt, 1/2 cup granola, mixed berries, honey",
		Instructions: "Layer yogurt, granola and berries in a glass and drizzle with honey.",
		Category:     category("Snack"),
	},
}

func main() {
	file := flag.String("file", "", "JSON file with an array of recipes to seed instead of the built-in set")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		stderrLog := zerolog.New(os.Stderr)
		stderrLog.Fatal().Err(err).Msg("failed to load configuration")
	}
	log := logger.New(cfg)

	seeds := starterRecipes
	if *file != "" {
		if seeds, err = readSeeds(*file); err != nil {
			log.Fatal().Err(err).Str("file", *file).Msg("failed to read recipes")
		}
	}

	db, err := database.Open(cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer database.Close(db)
	if err := database.InitSchema(db); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize schema")
	}

	created, skipped, err := seedRecipes(context.Background(), service.NewRecipeService(db), seeds)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed recipes")
	}
	log.Info().Int("created", created).Int("skipped", skipped).Msg("recipes seeded")
}

func readSeeds(path string) ([]recipeSeed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var seeds []recipeSeed
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return seeds, nil
}

// seedRecipes adds each seed as a shared recipe unless one with the same name
// exists.
func seedRecipes(ctx context.Context, recipes service.IRecipeService, seeds []recipeSeed) (created, skipped int, err error) {
	existing, err := recipes.ListAllRecipes(ctx)
	if err != nil {
		return 0, 0, err
	}
	names := make(map[string]bool, len(existing))
	for _, r := range existing {
		names[r.Name] = true
	}

	for _, s := range seeds {
		if s.Name == "" || names[s.Name] {
			skipped++
			continue
		}
		var recipe *models.Recipe
		recipe, err = recipes.AddRecipe(ctx, service.NewRecipe{
			Name:         s.Name,
			Ingredients:  s.Ingredients,
			Instructions: s.Instructions,
			Category:     s.Category,
		})
		if err != nil {
			return created, skipped, fmt.Errorf("failed to add %q: %w", s.Name, err)
		}
		names[recipe.Name] = true
		created++
	}
	return created, skipped, nil
}
