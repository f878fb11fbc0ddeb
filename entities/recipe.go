// File: entities/recipe.go
package entities

import (
	"gorm.io/gorm"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"

	DefaultInstruction = "Нет инструкции"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Recipe also owns a search_vector tsvector column. It is generated by the
// store from title and instruction (see cmd/database/migrate) and is never
// written from Go, so it is not mapped here.
type Recipe struct {
	ID                int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title             string     `gorm:"type:varchar(70);not null" json:"title"`
	Instruction       string     `gorm:"type:text" json:"instruction"`
	CookingTime       int        `gorm:"not null" json:"cooking_time"`
	CookingDifficulty Difficulty `gorm:"type:varchar(6);not null" json:"cooking_difficulty"`
	KitchenID         int64      `gorm:"not null;index" json:"kitchen_id"`

	Kitchen           *Kitchen            `gorm:"foreignKey:KitchenID"`
	RecipeIngredients []*RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Timestamp
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.Instruction == "" {
		r.Instruction = DefaultInstruction
	}
	return nil
}

// RecipeIngredient is the membership row between a recipe and an ingredient.
type RecipeIngredient struct {
	ID           int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	RecipeID     int64 `gorm:"not null;uniqueIndex:idx_recipe_ingredient" json:"recipe_id"`
	IngredientID int64 `gorm:"not null;uniqueIndex:idx_recipe_ingredient;index" json:"ingredient_id"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
}
