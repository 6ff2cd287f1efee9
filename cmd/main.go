package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/weiyuc/charityevents/internal/server"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	logger := initLogger(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	if err := server.Start(logger); err != nil {
		logger.Fatal("Server failed to start", zap.Error(err))
	}
}

func initLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if level == "debug" {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	return logger
}
