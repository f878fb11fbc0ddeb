package catalog

import (
	"context"
	"errors"
	"fmt"
	"recipe-service/domain"
	"recipe-service/entities"

	"gorm.io/gorm"
)

type (
	// ReferenceGate confirms that kitchens and ingredients referenced by a
	// recipe mutation exist. Lookups run on the caller's transaction.
	ReferenceGate interface {
		RequireKitchenByID(ctx context.Context, tx *gorm.DB, id int64) (*entities.Kitchen, error)
		RequireKitchenByName(ctx context.Context, tx *gorm.DB, name string) (*entities.Kitchen, error)
		RequireIngredientByID(ctx context.Context, tx *gorm.DB, id int64) (*entities.Ingredient, error)
		RequireIngredientByName(ctx context.Context, tx *gorm.DB, name string) (*entities.Ingredient, error)
	}

	referenceGate struct {
		catalogRepository CatalogRepository
	}
)

func NewReferenceGate(catalogRepository CatalogRepository) ReferenceGate {
	return &referenceGate{catalogRepository: catalogRepository}
}

func (g *referenceGate) RequireKitchenByID(ctx context.Context, tx *gorm.DB, id int64) (*entities.Kitchen, error) {
	kitchen, err := g.catalogRepository.GetKitchenByID(ctx, tx, id)
	if err != nil {
		return nil, lookupError(err, domain.NewNotFoundByID(domain.KindKitchen, id))
	}
	return kitchen, nil
}

func (g *referenceGate) RequireKitchenByName(ctx context.Context, tx *gorm.DB, name string) (*entities.Kitchen, error) {
	kitchen, err := g.catalogRepository.GetKitchenByName(ctx, tx, name)
	if err != nil {
		return nil, lookupError(err, domain.NewNotFoundByName(domain.KindKitchen, name))
	}
	return kitchen, nil
}

func (g *referenceGate) RequireIngredientByID(ctx context.Context, tx *gorm.DB, id int64) (*entities.Ingredient, error) {
	ingredient, err := g.catalogRepository.GetIngredientByID(ctx, tx, id)
	if err != nil {
		return nil, lookupError(err, domain.NewNotFoundByID(domain.KindIngredient, id))
	}
	return ingredient, nil
}

func (g *referenceGate) RequireIngredientByName(ctx context.Context, tx *gorm.DB, name string) (*entities.Ingredient, error) {
	ingredient, err := g.catalogRepository.GetIngredientByName(ctx, tx, name)
	if err != nil {
		return nil, lookupError(err, domain.NewNotFoundByName(domain.KindIngredient, name))
	}
	return ingredient, nil
}

func lookupError(err error, notFound *domain.NotFoundError) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("lookup %s: %w", notFound.Kind, err)
}
