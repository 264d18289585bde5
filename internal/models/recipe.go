package models

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is a named dish. Ingredients are attached through RecipeIngredient
// link rows, not embedded.
type Recipe struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Created      time.Time `json:"created"`
	LastModified time.Time `json:"last_modified"`
}

// RecipeInput carries client-supplied recipe fields.
type RecipeInput struct {
	Name *string `json:"name"`
}

// RecipeIngredient is a row in the many-to-many association table. Amount is
// nullable; the (recipe, ingredient) pair is the natural key.
type RecipeIngredient struct {
	Recipe     uuid.UUID `json:"recipe"`
	Ingredient uuid.UUID `json:"ingredient"`
	Amount     *float64  `json:"amount"`
}

// ResolvedRecipe is the aggregated view of a recipe: the base recipe plus its
// linked ingredients in link order and the summed cost. Computed on demand,
// never persisted.
type ResolvedRecipe struct {
	Recipe
	Ingredients []Ingredient `json:"ingredients"`
	TotalCost   float64      `json:"total_cost"`
}
