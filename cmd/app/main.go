package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"dispatch/cmd"
	"dispatch/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
)

func main() {
	configs := getConfigs()

	zapLogger, err := logger.New(configs.Environment, configs.LogLevel)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	app, err := cmd.NewCompositionRoot(configs, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to build composition root", zap.Error(err))
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		zapLogger.Fatal("failed to start jobs", zap.Error(err))
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort, zapLogger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		Environment:    goDotEnvVariable("ENVIRONMENT"),
		LogLevel:       goDotEnvVariable("LOG_LEVEL"),
		CourierAddress: goDotEnvVariable("COURIER_ADDRESS"),
		CourierLat:     goDotEnvFloat("COURIER_LAT"),
		CourierLng:     goDotEnvFloat("COURIER_LNG"),
		MapFitPadding:  goDotEnvInt("MAP_FIT_PADDING"),
		MapCenterZoom:  goDotEnvInt("MAP_CENTER_ZOOM"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvFloat(key string) float64 {
	value, err := strconv.ParseFloat(goDotEnvVariable(key), 64)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func goDotEnvInt(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func startWebServer(app *cmd.CompositionRoot, port string, zapLogger *zap.Logger) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server, err := app.CreateHTTPServer()
	if err != nil {
		zapLogger.Fatal("failed to build http server", zap.Error(err))
	}
	server.RegisterRoutes(e)

	e.GET("/ws", app.MapSurface().HandleUpgrade)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
