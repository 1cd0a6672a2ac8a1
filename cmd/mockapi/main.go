package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmpt/absensi/internal/mockapi"
	"github.com/dmpt/absensi/internal/pkg/config"
	"github.com/dmpt/absensi/internal/pkg/database"
	"github.com/dmpt/absensi/internal/pkg/logger"
	"github.com/dmpt/absensi/internal/pkg/server"
	"github.com/go-redis/redis/v8"
	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.StringP("config", "c", ".env", "dotenv file loaded when APP_ENV=local")
	rateLimit := pflag.Bool("rate-limit", false, "limit login attempts per IP, needs Redis")
	pflag.Parse()

	configs := config.InitConfig(*configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", mockapi.ServiceName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Redis only backs the login rate limiter
	var redisClient *redis.Client
	if *rateLimit {
		client, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		defer client.Close()
		redisClient = client.GetClient()
	}

	e, err := mockapi.New(configs, zapLogger, redisClient)
	if err != nil {
		zapLogger.Fatal("Failed to build mock backend", logger.Err(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zapLogger.Info("Seeded user ready", logger.String("username", configs.MockAPI.SeedUsername))

	if err := server.NewGracefulServer(e, zapLogger, configs.MockAPI.Port).Run(ctx); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
}
