package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/saveurlabs/cookbook/internal/domain"
	"github.com/saveurlabs/cookbook/internal/models"
	"github.com/saveurlabs/cookbook/internal/store"
)

// RecipeRepo handles recipe operations
type RecipeRepo struct {
	client store.Client
}

// ListRecipes returns all recipes in store order.
func (r *RecipeRepo) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	rows, err := r.client.Query(ctx, "SELECT * FROM recipe")
	if err != nil {
		return nil, translate(err)
	}
	return scanRecipes(rows)
}

// GetRecipe retrieves a recipe by id.
func (r *RecipeRepo) GetRecipe(ctx context.Context, id string) (*models.Recipe, error) {
	rows, err := r.client.Query(ctx, "SELECT * FROM recipe WHERE id = $1", id)
	if err != nil {
		return nil, translate(err)
	}
	recipes, err := scanRecipes(rows)
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, fmt.Errorf("recipe %q: %w", id, domain.ErrNotFound)
	}
	return &recipes[0], nil
}

// CreateRecipe inserts a new recipe.
func (r *RecipeRepo) CreateRecipe(ctx context.Context, in models.RecipeInput) (*models.Recipe, error) {
	rows, err := r.client.Query(ctx,
		"INSERT INTO recipe (name) VALUES ($1) RETURNING *", in.Name)
	if err != nil {
		return nil, translate(err)
	}
	recipes, err := scanRecipes(rows)
	if err != nil {
		return nil, err
	}
	return &recipes[0], nil
}

// UpdateRecipe updates a recipe and bumps last_modified using the backend
// clock, so last_modified always ends up later than created.
func (r *RecipeRepo) UpdateRecipe(ctx context.Context, in models.RecipeInput, id string) (*models.Recipe, error) {
	rows, err := r.client.Query(ctx,
		"UPDATE recipe SET name = $1, last_modified = now() WHERE id = $2 RETURNING *",
		in.Name, id)
	if err != nil {
		return nil, translate(err)
	}
	recipes, err := scanRecipes(rows)
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, fmt.Errorf("recipe %q: %w", id, domain.ErrNotFound)
	}
	return &recipes[0], nil
}

// DeleteRecipe removes a recipe, reporting true on success.
func (r *RecipeRepo) DeleteRecipe(ctx context.Context, id string) (bool, error) {
	rows, err := r.client.Query(ctx, "DELETE FROM recipe WHERE id = $1 RETURNING *", id)
	if err != nil {
		return false, translate(err)
	}
	recipes, err := scanRecipes(rows)
	if err != nil {
		return false, err
	}
	if len(recipes) == 0 {
		return false, fmt.Errorf("recipe %q: %w", id, domain.ErrNotFound)
	}
	return true, nil
}

// AddRecipeIngredient links an ingredient to a recipe. A nil or zero amount
// inserts the pair only, leaving amount NULL. A missing recipe or ingredient
// surfaces as domain.ErrNotFound via the foreign-key violation.
func (r *RecipeRepo) AddRecipeIngredient(ctx context.Context, recipeID, ingredientID string, amount *float64) (*models.RecipeIngredient, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if amount == nil || *amount == 0 {
		rows, err = r.client.Query(ctx,
			"INSERT INTO recipe_ingredient (recipe, ingredient) VALUES ($1, $2) RETURNING *",
			recipeID, ingredientID)
	} else {
		rows, err = r.client.Query(ctx,
			"INSERT INTO recipe_ingredient (recipe, ingredient, amount) VALUES ($1, $2, $3) RETURNING *",
			recipeID, ingredientID, amount)
	}
	if err != nil {
		return nil, translate(err)
	}
	links, err := scanRecipeIngredients(rows)
	if err != nil {
		return nil, err
	}
	return &links[0], nil
}

func scanRecipes(rows *sql.Rows) ([]models.Recipe, error) {
	defer rows.Close()

	recipes := []models.Recipe{}
	for rows.Next() {
		var rec models.Recipe
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Created, &rec.LastModified); err != nil {
			return nil, store.Wrap(err)
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, store.Wrap(err)
	}
	return recipes, nil
}

func scanRecipeIngredients(rows *sql.Rows) ([]models.RecipeIngredient, error) {
	defer rows.Close()

	links := []models.RecipeIngredient{}
	for rows.Next() {
		var (
			link   models.RecipeIngredient
			amount sql.NullFloat64
		)
		if err := rows.Scan(&link.Recipe, &link.Ingredient, &amount); err != nil {
			return nil, store.Wrap(err)
		}
		if amount.Valid {
			link.Amount = &amount.Float64
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, store.Wrap(err)
	}
	return links, nil
}
