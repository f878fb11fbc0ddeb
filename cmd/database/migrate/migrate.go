package migration

import (
	"fmt"
	"recipe-service/entities"
	"regexp"

	"gorm.io/gorm"
)

var searchLanguagePattern = regexp.MustCompile(`^[a-z_]+$`)

// Migrate creates the recipe tables. On PostgreSQL it also adds the generated
// search_vector column over title and instruction and its GIN index, using
// searchLanguage as the text search configuration.
func Migrate(db *gorm.DB, searchLanguage string) error {
	models := []interface{}{
		&entities.Kitchen{},
		&entities.Ingredient{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("migrate %T: %w", model, err)
		}
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}
	return migrateSearchVector(db, searchLanguage)
}

func migrateSearchVector(db *gorm.DB, searchLanguage string) error {
	if !searchLanguagePattern.MatchString(searchLanguage) {
		return fmt.Errorf("invalid search language %q", searchLanguage)
	}

	statements := []string{
		fmt.Sprintf(`ALTER TABLE recipes ADD COLUMN IF NOT EXISTS search_vector tsvector
			GENERATED ALWAYS AS (
				to_tsvector('%s'::regconfig, coalesce(title, '') || ' ' || coalesce(instruction, ''))
			) STORED`, searchLanguage),
		`CREATE INDEX IF NOT EXISTS idx_recipes_search_vector ON recipes USING GIN (search_vector)`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migrate search_vector: %w", err)
		}
	}
	return nil
}
