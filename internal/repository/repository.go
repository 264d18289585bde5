// Package repository implements the data-access layer: per-entity CRUD over
// the store client plus the recipe resolution fan-out. Repositories hold no
// state across calls; every operation is a single round trip.
package repository

import (
	"errors"
	"fmt"

	"github.com/saveurlabs/cookbook/internal/domain"
	"github.com/saveurlabs/cookbook/internal/store"
)

// Repository provides a unified interface to all data operations. It composes
// the per-entity repositories using struct embedding; their methods are
// promoted onto it.
type Repository struct {
	*IngredientRepo
	*RecipeRepo
	*Resolver
}

// New creates a Repository over a single store client.
func New(client store.Client) *Repository {
	ingredients := &IngredientRepo{client: client}
	recipes := &RecipeRepo{client: client}
	return &Repository{
		IngredientRepo: ingredients,
		RecipeRepo:     recipes,
		Resolver: &Resolver{
			client:      client,
			recipes:     recipes,
			ingredients: ingredients,
		},
	}
}

// translate re-labels classified store failures as domain errors. Identifier
// validation deliberately happens at the store boundary: the backend's uuid
// grammar rejects malformed input and its message, preserved here, carries the
// offending literal. Anything unclassified passes through untouched.
func translate(err error) error {
	var storeErr *store.Error
	if !errors.As(err, &storeErr) {
		return err
	}
	switch storeErr.Class {
	case store.ClassNotNullViolation:
		return fmt.Errorf("%w: %s", domain.ErrMissingField, storeErr.Message)
	case store.ClassCheckViolation:
		return fmt.Errorf("%w: %s", domain.ErrEmptyField, storeErr.Message)
	case store.ClassInvalidTextRepresentation:
		return fmt.Errorf("%w: %s", domain.ErrInvalidID, storeErr.Message)
	case store.ClassForeignKeyViolation:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, storeErr.Message)
	default:
		return err
	}
}
