package routes

import (
	"recipe-service/internal/api/handlers"
	"recipe-service/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	App            *fiber.App
	RecipeHandler  handlers.RecipeHandler
	CatalogHandler handlers.CatalogHandler
	Middleware     middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.Recover())
	c.App.Use(c.Middleware.RequestID())
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.AccessLog())
	c.Recipes()
	c.Catalog()
	c.GuestRoute()
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	{
		recipes.Post("", c.RecipeHandler.CreateRecipe)
		// static paths before /:id
		recipes.Get("/filter-by-ingredients", c.RecipeHandler.FilterRecipes)
		recipes.Get("/search", c.RecipeHandler.SearchRecipes)
		recipes.Get("/:id", c.RecipeHandler.GetRecipe)
		recipes.Patch("/:id", c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
	}
}

func (c *Config) Catalog() {
	kitchens := c.App.Group("/api/v1/kitchens")
	kitchens.Post("", c.CatalogHandler.CreateKitchen)
	kitchens.Get("", c.CatalogHandler.ListKitchens)

	ingredients := c.App.Group("/api/v1/ingredients")
	ingredients.Post("", c.CatalogHandler.CreateIngredient)
	ingredients.Get("", c.CatalogHandler.ListIngredients)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
