package config

import (
	"fmt"
	"os"
	"path/filepath"
	"recipe-service/internal/api/handlers"
	"recipe-service/internal/api/routes"
	"recipe-service/internal/middleware"
	applogger "recipe-service/internal/pkg/logger"
	"recipe-service/internal/utils"
	"recipe-service/pkg/catalog"
	"recipe-service/pkg/recipe"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

// NewApp wires repositories, services and handlers onto a fiber app. The
// returned close func releases the access log file.
func NewApp(db *gorm.DB, log *applogger.Logger) (*fiber.App, func() error, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName:           "recipe-service",
		EnablePrintRoutes: utils.GetConfig("LOG_MODE") != "production",
	})
	middlewares := middleware.NewMiddleware(log)
	validator := utils.Validate

	// access log
	logFile := utils.GetConfig("LOG_FILE")
	if err := os.MkdirAll(filepath.Dir(logFile), os.ModePerm); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	app.Use(logger.New(logger.Config{
		Format:     "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	// Repository
	catalogRepository := catalog.NewCatalogRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db, utils.GetConfig("SEARCH_LANGUAGE"))

	// Service
	referenceGate := catalog.NewReferenceGate(catalogRepository)
	catalogService := catalog.NewCatalogService(catalogRepository, validator, log)
	recipeService := recipe.NewRecipeService(recipeRepository, referenceGate, validator, log)

	// Handler
	catalogHandler := handlers.NewCatalogHandler(catalogService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		RecipeHandler:  recipeHandler,
		CatalogHandler: catalogHandler,
		Middleware:     middlewares,
	}
	routesConfig.Setup()
	return app, file.Close, nil
}
