package models

import (
	"time"

	"github.com/google/uuid"
)

// Ingredient is a priced pantry item. The id and both timestamps are assigned
// by the database; Price is nullable.
type Ingredient struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Price        *float64  `json:"price"`
	Created      time.Time `json:"created"`
	LastModified time.Time `json:"last_modified"`
}

// IngredientInput carries client-supplied ingredient fields. Name is a pointer
// so that an absent name reaches the database as NULL and trips its not-null
// constraint rather than being silently replaced by an empty string.
type IngredientInput struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}
