package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"recipebox/internal/adapter"
	"recipebox/internal/domain"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	recipeServings int
	recipeAddList  bool
)

// recipeCmd fetches and shows recipes
var recipeCmd = &cobra.Command{
	Use:   "recipe [id]...",
	Short: "Show recipes with ingredients scaled to a serving count",
	Long: `Fetches one or more recipes, concurrently when several ids are given.

With --servings the ingredient counts are scaled to that many servings.
With --add the (scaled) ingredients are added to the shopping list.`,
	Example: `  recipebox recipe 47746
  recipebox recipe 47746 54454 --servings 2 --add`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRecipe,
}

func init() {
	recipeCmd.Flags().IntVarP(&recipeServings, "servings", "s", 0, "scale ingredients to this many servings")
	recipeCmd.Flags().BoolVar(&recipeAddList, "add", false, "add the ingredients to the shopping list")
}

func runRecipe(cmd *cobra.Command, args []string) error {
	if recipeServings < 0 {
		return domain.ErrInvalidServings
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	recipes, err := adapter.FetchRecipes(cmd.Context(), a.source, args, cfg.API.FetchConcurrency)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, r := range recipes {
		if recipeServings > 0 {
			if err := scaleTo(r, recipeServings); err != nil {
				return err
			}
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		printRecipe(out, r, a.likes.IsLiked(r.ID))

		if recipeAddList {
			added, err := a.list.AddIngredients(cmd.Context(), r.Ingredients)
			if err != nil {
				return err
			}
			logger.Debug("ingredients added", zap.String("recipe", r.ID), zap.Int("items", len(added)))
			fmt.Fprintf(out, "Added %d items to the shopping list\n", len(added))
		}
	}
	return nil
}

// scaleTo steps servings one at a time, the same way the API does
func scaleTo(r *domain.Recipe, servings int) error {
	for r.Servings != servings {
		dir := domain.ServingsIncrease
		if servings < r.Servings {
			dir = domain.ServingsDecrease
		}
		if err := r.UpdateServings(dir); err != nil {
			return err
		}
	}
	return nil
}

func printRecipe(out io.Writer, r *domain.Recipe, liked bool) {
	heart := ""
	if liked {
		heart = " ♥"
	}
	fmt.Fprintf(out, "%s%s\n", r.Title, heart)
	fmt.Fprintf(out, "by %s · %d min · %d servings\n", r.Author, r.CookingTime, r.Servings)
	if r.SourceURL != "" {
		fmt.Fprintf(out, "%s\n", r.SourceURL)
	}
	for _, ing := range r.Ingredients {
		fmt.Fprintf(out, "  - %s\n", formatIngredient(ing.Count, ing.Unit, ing.Ingredient))
	}
}

func formatIngredient(count float64, unit, ingredient string) string {
	parts := make([]string, 0, 3)
	if count > 0 {
		parts = append(parts, strconv.FormatFloat(math.Round(count*100)/100, 'f', -1, 64))
	}
	if unit != "" {
		parts = append(parts, unit)
	}
	parts = append(parts, ingredient)
	return strings.Join(parts, " ")
}
