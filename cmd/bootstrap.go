package cmd

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	config "skill-share.com/skill-share/internal/configs"
	"skill-share.com/skill-share/internal/logger"
)

// bootstrap loads configuration and opens the database shared by every
// subcommand.
func bootstrap() (config.Config, *zap.Logger, *gorm.DB, error) {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("load config: %w", err)
	}

	zapLogger, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("build logger: %w", err)
	}

	db, err := config.NewDatabase(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	return cfg, zapLogger.With(zap.String("app", cfg.AppName)), db, nil
}
