package catalog

import (
	"context"
	"recipe-service/entities"

	"gorm.io/gorm"
)

type (
	// CatalogRepository stores kitchens and ingredients. Every method takes an
	// optional transaction; nil runs on the repository's own connection.
	CatalogRepository interface {
		CreateKitchen(ctx context.Context, tx *gorm.DB, kitchen *entities.Kitchen) error
		GetKitchenByID(ctx context.Context, tx *gorm.DB, id int64) (*entities.Kitchen, error)
		GetKitchenByName(ctx context.Context, tx *gorm.DB, name string) (*entities.Kitchen, error)
		ListKitchens(ctx context.Context, tx *gorm.DB) ([]*entities.Kitchen, error)

		CreateIngredient(ctx context.Context, tx *gorm.DB, ingredient *entities.Ingredient) error
		GetIngredientByID(ctx context.Context, tx *gorm.DB, id int64) (*entities.Ingredient, error)
		GetIngredientByName(ctx context.Context, tx *gorm.DB, name string) (*entities.Ingredient, error)
		ListIngredients(ctx context.Context, tx *gorm.DB) ([]*entities.Ingredient, error)
	}

	catalogRepository struct {
		db *gorm.DB
	}
)

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx)
}

func (r *catalogRepository) CreateKitchen(ctx context.Context, tx *gorm.DB, kitchen *entities.Kitchen) error {
	return r.conn(ctx, tx).Create(kitchen).Error
}

func (r *catalogRepository) GetKitchenByID(ctx context.Context, tx *gorm.DB, id int64) (*entities.Kitchen, error) {
	var kitchen entities.Kitchen
	if err := r.conn(ctx, tx).Where("id = ?", id).First(&kitchen).Error; err != nil {
		return nil, err
	}
	return &kitchen, nil
}

// GetKitchenByName returns the lowest-id kitchen when several share a name.
func (r *catalogRepository) GetKitchenByName(ctx context.Context, tx *gorm.DB, name string) (*entities.Kitchen, error) {
	var kitchen entities.Kitchen
	if err := r.conn(ctx, tx).Where("name = ?", name).Order("id asc").First(&kitchen).Error; err != nil {
		return nil, err
	}
	return &kitchen, nil
}

func (r *catalogRepository) ListKitchens(ctx context.Context, tx *gorm.DB) ([]*entities.Kitchen, error) {
	var kitchens []*entities.Kitchen
	if err := r.conn(ctx, tx).Order("id asc").Find(&kitchens).Error; err != nil {
		return nil, err
	}
	return kitchens, nil
}

func (r *catalogRepository) CreateIngredient(ctx context.Context, tx *gorm.DB, ingredient *entities.Ingredient) error {
	return r.conn(ctx, tx).Create(ingredient).Error
}

func (r *catalogRepository) GetIngredientByID(ctx context.Context, tx *gorm.DB, id int64) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.conn(ctx, tx).Where("id = ?", id).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// GetIngredientByName returns the lowest-id ingredient when several share a name.
func (r *catalogRepository) GetIngredientByName(ctx context.Context, tx *gorm.DB, name string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.conn(ctx, tx).Where("name = ?", name).Order("id asc").First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *catalogRepository) ListIngredients(ctx context.Context, tx *gorm.DB) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.conn(ctx, tx).Order("id asc").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}
