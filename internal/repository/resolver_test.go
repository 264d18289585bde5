package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saveurlabs/cookbook/internal/domain"
	"github.com/saveurlabs/cookbook/internal/models"
	"github.com/saveurlabs/cookbook/internal/store"
	"github.com/saveurlabs/cookbook/internal/testhelpers"
)

func TestResolveRecipeWithoutIngredients(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	recipe, err := repo.CreateRecipe(ctx, models.RecipeInput{Name: strPtr("water")})
	require.NoError(t, err)

	resolved, err := repo.ResolveRecipe(ctx, recipe.ID.String())
	require.NoError(t, err)
	assert.Equal(t, recipe.ID, resolved.ID)
	assert.NotNil(t, resolved.Ingredients)
	assert.Empty(t, resolved.Ingredients)
	assert.Equal(t, 0.0, resolved.TotalCost)
}

func TestResolveRecipeSumsPrices(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	recipe, err := repo.CreateRecipe(ctx, models.RecipeInput{Name: strPtr("pancakes")})
	require.NoError(t, err)

	inputs := []models.IngredientInput{
		{Name: strPtr("flour"), Price: floatPtr(1.99)},
		{Name: strPtr("water")}, // no price, counts as zero
		{Name: strPtr("maple syrup"), Price: floatPtr(3.00)},
	}
	for _, in := range inputs {
		ing, err := repo.CreateIngredient(ctx, in)
		require.NoError(t, err)
		_, err = repo.AddRecipeIngredient(ctx, recipe.ID.String(), ing.ID.String(), nil)
		require.NoError(t, err)
	}

	resolved, err := repo.ResolveRecipe(ctx, recipe.ID.String())
	require.NoError(t, err)
	require.Len(t, resolved.Ingredients, 3)
	assert.InDelta(t, 4.99, resolved.TotalCost, 0.0001)
	assert.Equal(t, "flour", resolved.Ingredients[0].Name)
	assert.Equal(t, "water", resolved.Ingredients[1].Name)
	assert.Nil(t, resolved.Ingredients[1].Price)
	assert.Equal(t, "maple syrup", resolved.Ingredients[2].Name)
}

func TestResolveRecipePreservesLinkOrder(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	recipe, err := repo.CreateRecipe(ctx, models.RecipeInput{Name: strPtr("broth")})
	require.NoError(t, err)

	// Enough concurrent fetches that completion order is effectively random;
	// the output must still follow link insertion order.
	const n = 16
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = fmt.Sprintf("ingredient %02d", i)
		ing, err := repo.CreateIngredient(ctx, models.IngredientInput{Name: strPtr(names[i])})
		require.NoError(t, err)
		_, err = repo.AddRecipeIngredient(ctx, recipe.ID.String(), ing.ID.String(), nil)
		require.NoError(t, err)
	}

	resolved, err := repo.ResolveRecipe(ctx, recipe.ID.String())
	require.NoError(t, err)
	require.Len(t, resolved.Ingredients, n)
	for i, ing := range resolved.Ingredients {
		assert.Equal(t, names[i], ing.Name)
	}
}

func TestResolveRecipeDanglingReference(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	repo := New(store.NewPoolClient(db.DB))
	ctx := context.Background()

	recipe, err := repo.CreateRecipe(ctx, models.RecipeInput{Name: strPtr("relic")})
	require.NoError(t, err)
	ing, err := repo.CreateIngredient(ctx, models.IngredientInput{
		Name:  strPtr("lost spice"),
		Price: floatPtr(9.99),
	})
	require.NoError(t, err)
	_, err = repo.AddRecipeIngredient(ctx, recipe.ID.String(), ing.ID.String(), nil)
	require.NoError(t, err)

	// Fabricate the dangling condition: lift the foreign key and remove the
	// ingredient out from under the link row.
	_, err = db.Exec("ALTER TABLE recipe_ingredient DROP CONSTRAINT recipe_ingredient_ingredient_fkey")
	require.NoError(t, err)
	_, err = db.Exec("DELETE FROM ingredient WHERE id = $1", ing.ID)
	require.NoError(t, err)

	resolved, err := repo.ResolveRecipe(ctx, recipe.ID.String())
	assert.ErrorIs(t, err, domain.ErrDanglingReference)
	assert.Nil(t, resolved, "no partial aggregation on failure")
}

func TestResolveRecipeNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.ResolveRecipe(context.Background(), "b2bf7fbb-67d1-4e1c-9e24-27b0d695b2f0")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolveRecipeInvalidIdentifier(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.ResolveRecipe(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}
