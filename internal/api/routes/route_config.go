package routes

import (
	"nutri-tracker-backend/internal/api/handlers"
	"nutri-tracker-backend/internal/middleware"
	"nutri-tracker-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	FoodHandler    handlers.FoodHandler
	ServingHandler handlers.ServingHandler
	MealHandler    handlers.MealHandler
	ImportHandler  handlers.ImportHandler
	GoalHandler    handlers.GoalHandler
	ExportHandler  handlers.ExportHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Foods()
	c.Meals()
	c.Goals()
	c.Exports()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
	}
}

func (c *Config) Foods() {
	foods := c.App.Group("/api/v1/foods", c.Middleware.AuthMiddleware(c.JWTService))

	// catalog
	foods.Get("", c.FoodHandler.GetFoods)
	foods.Get("/:id", c.FoodHandler.GetFoodDetail)
	foods.Post("", c.Middleware.AdminOnly(), c.FoodHandler.AddFood)
	foods.Put("/:id", c.Middleware.AdminOnly(), c.FoodHandler.UpdateFood)
	foods.Delete("/:id", c.Middleware.AdminOnly(), c.FoodHandler.DeleteFood)

	// serving definitions attached to a food
	foods.Get("/:id/servings", c.ServingHandler.GetServings)
	foods.Post("/:id/servings", c.Middleware.AdminOnly(), c.ServingHandler.AddServing)
	foods.Put("/:id/servings/:servingId", c.Middleware.AdminOnly(), c.ServingHandler.UpdateServing)
	foods.Delete("/:id/servings/:servingId", c.Middleware.AdminOnly(), c.ServingHandler.DeleteServing)
	foods.Patch("/:id/default-serving", c.Middleware.AdminOnly(), c.ServingHandler.SetDefaultServing)
	foods.Post("/:id/servings/standard", c.Middleware.AdminOnly(), c.ServingHandler.EnsureStandardServing)

	// bulk serving import
	servings := c.App.Group("/api/v1/servings", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminOnly())
	servings.Post("/import", c.ImportHandler.ImportServings)
	servings.Get("/import/:jobId", c.ImportHandler.GetImportJob)
}

func (c *Config) Meals() {
	meals := c.App.Group("/api/v1/meals", c.Middleware.AuthMiddleware(c.JWTService))

	meals.Post("", c.MealHandler.LogMeal)
	meals.Get("", c.MealHandler.GetMealLogs)
	meals.Get("/summary", c.MealHandler.GetDailySummary)
	meals.Put("/:id", c.MealHandler.UpdateMealLog)
	meals.Delete("/:id", c.MealHandler.DeleteMealLog)
}

func (c *Config) Goals() {
	goals := c.App.Group("/api/v1/goals", c.Middleware.AuthMiddleware(c.JWTService))

	goals.Post("", c.GoalHandler.SetGoal)
	goals.Get("", c.GoalHandler.GetActiveGoal)
	goals.Get("/progress", c.GoalHandler.GetProgress)
	goals.Delete("", c.GoalHandler.ClearGoal)
}

func (c *Config) Exports() {
	exports := c.App.Group("/api/v1/exports", c.Middleware.AuthMiddleware(c.JWTService))

	exports.Post("/meal-logs", c.ExportHandler.ExportMealLogs)
	exports.Post("/foods", c.Middleware.AdminOnly(), c.ExportHandler.ExportFoodCatalog)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
