package config

import (
	"nutri-tracker-backend/internal/api/handlers"
	"nutri-tracker-backend/internal/api/routes"
	"nutri-tracker-backend/internal/middleware"
	"nutri-tracker-backend/internal/utils"
	"nutri-tracker-backend/internal/utils/storage"
	"nutri-tracker-backend/pkg/export"
	"nutri-tracker-backend/pkg/food"
	"nutri-tracker-backend/pkg/goal"
	"nutri-tracker-backend/pkg/jwt"
	"nutri-tracker-backend/pkg/meal"
	"nutri-tracker-backend/pkg/serving"
	"nutri-tracker-backend/pkg/servingimport"
	"nutri-tracker-backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	servingRepository := serving.NewServingRepository(db)
	mealRepository := meal.NewMealRepository(db)
	importJobRepository := servingimport.NewImportJobRepository(db)
	goalRepository := goal.NewGoalRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	foodService := food.NewFoodService(foodRepository)
	servingService := serving.NewServingService(servingRepository, foodRepository)
	mealService := meal.NewMealService(mealRepository, foodRepository, servingRepository)
	importService := servingimport.NewImportService(importJobRepository, servingRepository, foodRepository)
	goalService := goal.NewGoalService(goalRepository, mealRepository)
	exportService := export.NewExportService(mealRepository, foodRepository, s3)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	servingHandler := handlers.NewServingHandler(servingService, validator)
	mealHandler := handlers.NewMealHandler(mealService, goalService, validator)
	importHandler := handlers.NewImportHandler(importService)
	goalHandler := handlers.NewGoalHandler(goalService, validator)
	exportHandler := handlers.NewExportHandler(exportService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		UserHandler:    userHandler,
		FoodHandler:    foodHandler,
		ServingHandler: servingHandler,
		MealHandler:    mealHandler,
		ImportHandler:  importHandler,
		GoalHandler:    goalHandler,
		ExportHandler:  exportHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
