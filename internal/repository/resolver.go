package repository

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/saveurlabs/cookbook/internal/domain"
	"github.com/saveurlabs/cookbook/internal/models"
	"github.com/saveurlabs/cookbook/internal/store"
)

// Resolver computes the aggregated view of a recipe: its linked ingredients
// and their summed cost.
type Resolver struct {
	client      store.Client
	recipes     *RecipeRepo
	ingredients *IngredientRepo
}

// ResolveRecipe fetches the recipe, its link rows, and every linked ingredient,
// and aggregates the total cost. The per-ingredient fetches run concurrently
// and are all joined before a result is produced; if any one fails the whole
// resolution fails and nothing partial is returned. Output order is link-row
// order, never fetch-completion order.
func (r *Resolver) ResolveRecipe(ctx context.Context, recipeID string) (*models.ResolvedRecipe, error) {
	recipe, err := r.recipes.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	links, err := r.links(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	resolved := &models.ResolvedRecipe{
		Recipe:      *recipe,
		Ingredients: make([]models.Ingredient, len(links)),
	}
	if len(links) == 0 {
		return resolved, nil
	}

	// No derived context: a failed fetch does not cancel the ones in flight;
	// they complete and their results are discarded. Wait returns the first
	// error, so failure always wins over success.
	var group errgroup.Group
	for i, link := range links {
		group.Go(func() error {
			ing, err := r.ingredients.GetIngredient(ctx, link.Ingredient.String())
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return fmt.Errorf("%w: ingredient %s", domain.ErrDanglingReference, link.Ingredient)
				}
				return err
			}
			resolved.Ingredients[i] = *ing
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	for _, ing := range resolved.Ingredients {
		if ing.Price != nil {
			resolved.TotalCost += *ing.Price
		}
	}
	return resolved, nil
}

// links returns the association rows for a recipe in store order.
func (r *Resolver) links(ctx context.Context, recipeID string) ([]models.RecipeIngredient, error) {
	rows, err := r.client.Query(ctx,
		"SELECT recipe, ingredient, amount FROM recipe_ingredient WHERE recipe = $1", recipeID)
	if err != nil {
		return nil, translate(err)
	}
	return scanRecipeIngredients(rows)
}
