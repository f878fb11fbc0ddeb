package testutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	migration "recipe-service/cmd/database/migrate"
	"recipe-service/entities"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var errMissingDSN = errors.New("missing TEST_POSTGRES_DSN")

var (
	pgOnce sync.Once
	pgDB   *gorm.DB
	pgErr  error

	sqliteSeq atomic.Int64
)

// SQLite returns a migrated in-memory database private to the test. Foreign
// keys are enforced. Only one connection is opened, so code under test must
// run every statement of a transaction on the transaction handle.
func SQLite(tb testing.TB) *gorm.DB {
	tb.Helper()

	dsn := fmt.Sprintf("file:testdb_%d?mode=memory&cache=shared&_foreign_keys=1", sqliteSeq.Add(1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("sqlite handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := migration.Migrate(db, "english"); err != nil {
		tb.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

// Postgres returns the shared database named by TEST_POSTGRES_DSN, migrated
// with the english search configuration. Tests are skipped when it is unset.
func Postgres(tb testing.TB) *gorm.DB {
	tb.Helper()

	pgOnce.Do(func() {
		dsn := os.Getenv("TEST_POSTGRES_DSN")
		if dsn == "" {
			pgErr = errMissingDSN
			return
		}

		pgDB, pgErr = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		if pgErr != nil {
			return
		}
		pgErr = migration.Migrate(pgDB, "english")
	})

	if errors.Is(pgErr, errMissingDSN) {
		tb.Skip("set TEST_POSTGRES_DSN to run postgres integration tests")
	}
	if pgErr != nil {
		tb.Fatalf("failed to init test db: %v", pgErr)
	}
	return pgDB
}

// Tx opens a transaction that is rolled back when the test ends.
func Tx(tb testing.TB, db *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := db.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})
	return tx
}

func SeedKitchen(tb testing.TB, db *gorm.DB, name string) *entities.Kitchen {
	tb.Helper()
	k := &entities.Kitchen{Name: name}
	if err := db.WithContext(context.Background()).Create(k).Error; err != nil {
		tb.Fatalf("seed kitchen: %v", err)
	}
	return k
}

func SeedIngredient(tb testing.TB, db *gorm.DB, name string) *entities.Ingredient {
	tb.Helper()
	i := &entities.Ingredient{Name: name}
	if err := db.WithContext(context.Background()).Create(i).Error; err != nil {
		tb.Fatalf("seed ingredient: %v", err)
	}
	return i
}

// SeedRecipe stores a recipe in kitchen linked to ingredients, in order.
func SeedRecipe(tb testing.TB, db *gorm.DB, title string, kitchen *entities.Kitchen, ingredients ...*entities.Ingredient) *entities.Recipe {
	tb.Helper()
	r := &entities.Recipe{
		Title:             title,
		CookingTime:       30,
		CookingDifficulty: entities.DifficultyMedium,
		KitchenID:         kitchen.ID,
	}
	if err := db.WithContext(context.Background()).Omit("Kitchen", "RecipeIngredients").Create(r).Error; err != nil {
		tb.Fatalf("seed recipe: %v", err)
	}
	for _, i := range ingredients {
		link := &entities.RecipeIngredient{RecipeID: r.ID, IngredientID: i.ID}
		if err := db.WithContext(context.Background()).Omit("Ingredient").Create(link).Error; err != nil {
			tb.Fatalf("seed recipe ingredient: %v", err)
		}
	}
	return r
}
