// Package adapter implements remote recipe sources for recipebox.
//
// A RecipeSource searches a remote catalogue and fetches single recipes.
// ForkifyAdapter talks to the forkify JSON API:
//
//	GET {base}/search?q=pizza -> {"count": n, "recipes": [...]}
//	GET {base}/get?rId=47746  -> {"recipe": {..., "ingredients": [...]}}
//
// Raw ingredient lines are parsed into domain.Ingredient values, and the
// base servings and cooking time estimates are applied before a recipe is
// returned.
//
// FetchRecipes loads several recipes in parallel with bounded concurrency.
package adapter
