package main

import (
	"github.com/Master1941/foodgram-project-react/config"
	"github.com/Master1941/foodgram-project-react/db"
	"github.com/Master1941/foodgram-project-react/logger"
	"github.com/Master1941/foodgram-project-react/route"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger.InitializeLogger()
	defer logger.Close()

	cfgPath := config.GetEnv("CONFIG_PATH", "config/development.yaml")
	cfg, err := config.ReadConfig(cfgPath)
	if err != nil {
		logger.Fatal("could not read config", zap.Error(err))
	}

	if err := db.InitDB(cfg); err != nil {
		logger.Fatal("could not connect to database", zap.Error(err))
	}
	defer db.Close()

	gormDB := db.GetDBInstance()
	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal("could not run migrations", zap.Error(err))
	}

	r := gin.Default()
	route.SetupRoutes(r, cfg, gormDB)

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
