package main

import (
	"fmt"
	"log/slog"
	"os"

	"fulfillment/cmd"
	"fulfillment/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	configs := getConfigs(logger)

	app := cmd.NewCompositionRoot(configs, logger)
	defer func() {
		_ = app.EventPublisher().Close()
	}()

	jobManager := jobs.NewJobManager(app.CreateProcessNextOrderCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("No .env file found, using environment variables")
	}

	return cmd.Config{
		HTTPPort:              envOrDefault("HTTP_PORT", "8080"),
		KafkaBrokers:          os.Getenv("KAFKA_HOST"),
		KafkaOrderEventsTopic: envOrDefault("KAFKA_ORDER_CHANGED_TOPIC", "order.status_changed"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.HideBanner = true

	app.CreateServer().RegisterRoutes(e)
	e.GET("/metrics", echo.WrapHandler(app.Metrics().Handler()))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
