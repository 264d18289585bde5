package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/saveurlabs/cookbook/internal/domain"
	"github.com/saveurlabs/cookbook/internal/models"
	"github.com/saveurlabs/cookbook/internal/store"
)

// IngredientRepo handles ingredient operations
type IngredientRepo struct {
	client store.Client
}

// ListIngredients returns all ingredients in store order.
func (r *IngredientRepo) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	rows, err := r.client.Query(ctx, "SELECT * FROM ingredient")
	if err != nil {
		return nil, translate(err)
	}
	return scanIngredients(rows)
}

// GetIngredient retrieves an ingredient by id. The id is passed to the backend
// as-is; a malformed uuid surfaces as domain.ErrInvalidID.
func (r *IngredientRepo) GetIngredient(ctx context.Context, id string) (*models.Ingredient, error) {
	rows, err := r.client.Query(ctx, "SELECT * FROM ingredient WHERE id = $1", id)
	if err != nil {
		return nil, translate(err)
	}
	ingredients, err := scanIngredients(rows)
	if err != nil {
		return nil, err
	}
	if len(ingredients) == 0 {
		return nil, fmt.Errorf("ingredient %q: %w", id, domain.ErrNotFound)
	}
	return &ingredients[0], nil
}

// CreateIngredient inserts a new ingredient. A nil or zero price inserts the
// name only, leaving price NULL.
func (r *IngredientRepo) CreateIngredient(ctx context.Context, in models.IngredientInput) (*models.Ingredient, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if in.Price == nil || *in.Price == 0 {
		rows, err = r.client.Query(ctx,
			"INSERT INTO ingredient (name) VALUES ($1) RETURNING *", in.Name)
	} else {
		rows, err = r.client.Query(ctx,
			"INSERT INTO ingredient (name, price) VALUES ($1, $2) RETURNING *", in.Name, in.Price)
	}
	if err != nil {
		return nil, translate(err)
	}
	ingredients, err := scanIngredients(rows)
	if err != nil {
		return nil, err
	}
	return &ingredients[0], nil
}

// UpdateIngredient updates an ingredient and bumps last_modified. A nil or
// zero price updates the name only.
func (r *IngredientRepo) UpdateIngredient(ctx context.Context, in models.IngredientInput, id string) (*models.Ingredient, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if in.Price == nil || *in.Price == 0 {
		rows, err = r.client.Query(ctx,
			"UPDATE ingredient SET name = $1, last_modified = now() WHERE id = $2 RETURNING *",
			in.Name, id)
	} else {
		rows, err = r.client.Query(ctx,
			"UPDATE ingredient SET name = $1, price = $2, last_modified = now() WHERE id = $3 RETURNING *",
			in.Name, in.Price, id)
	}
	if err != nil {
		return nil, translate(err)
	}
	ingredients, err := scanIngredients(rows)
	if err != nil {
		return nil, err
	}
	if len(ingredients) == 0 {
		return nil, fmt.Errorf("ingredient %q: %w", id, domain.ErrNotFound)
	}
	return &ingredients[0], nil
}

// DeleteIngredient removes an ingredient, reporting true on success.
func (r *IngredientRepo) DeleteIngredient(ctx context.Context, id string) (bool, error) {
	rows, err := r.client.Query(ctx, "DELETE FROM ingredient WHERE id = $1 RETURNING *", id)
	if err != nil {
		return false, translate(err)
	}
	ingredients, err := scanIngredients(rows)
	if err != nil {
		return false, err
	}
	if len(ingredients) == 0 {
		return false, fmt.Errorf("ingredient %q: %w", id, domain.ErrNotFound)
	}
	return true, nil
}

func scanIngredients(rows *sql.Rows) ([]models.Ingredient, error) {
	defer rows.Close()

	ingredients := []models.Ingredient{}
	for rows.Next() {
		var (
			ing   models.Ingredient
			price sql.NullFloat64
		)
		if err := rows.Scan(&ing.ID, &ing.Name, &price, &ing.Created, &ing.LastModified); err != nil {
			return nil, store.Wrap(err)
		}
		if price.Valid {
			ing.Price = &price.Float64
		}
		ingredients = append(ingredients, ing)
	}
	if err := rows.Err(); err != nil {
		return nil, store.Wrap(err)
	}
	return ingredients, nil
}
