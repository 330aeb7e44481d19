package main

import (
	"fmt"
	"os"

	"parking-contact/internal/config"
	"parking-contact/internal/db"
	httphandler "parking-contact/internal/http"
	"parking-contact/internal/logger"
	"parking-contact/internal/repository"
	"parking-contact/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	qrRepo := repository.NewQRCodeRepository(database)
	vehicleRepo := repository.NewVehicleRepository(database)

	registrationService := service.NewRegistrationService(qrRepo, vehicleRepo)
	adminService := service.NewAdminService(qrRepo)

	handler := httphandler.NewHandler(registrationService, adminService, cfg.App.BaseURL, appLogger)
	router := httphandler.NewRouter(handler, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Str("base_url", cfg.App.BaseURL).Msg("starting parking contact service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
