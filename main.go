package main

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Jackcomputers-app/flyhightide/catalog"
	"github.com/Jackcomputers-app/flyhightide/config"
	"github.com/Jackcomputers-app/flyhightide/database"
	"github.com/Jackcomputers-app/flyhightide/router"
	"github.com/Jackcomputers-app/flyhightide/utils"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	if err := catalog.Validate(); err != nil {
		logger.Fatal("tour catalog is broken", zap.Error(err))
	}

	db, err := database.DBInit()
	if err != nil {
		logger.Fatal("cannot reach the database", zap.Error(err))
	}
	database.DB = database.NewMongoStore(db)
	database.InitCache()

	app := fiber.New()
	router.SetupRoutes(app)

	logger.Info("listening", zap.String("port", config.AppConfig.AppPort))
	if err := app.Listen(":" + config.AppConfig.AppPort); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
