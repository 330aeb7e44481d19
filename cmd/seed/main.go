// Seeds the database with known QR codes for local development: one fresh
// unregistered code, one registered vehicle (password 1234) and a few spares.
package main

import (
	"fmt"
	"os"

	"gorm.io/gorm"

	"parking-contact/internal/config"
	"parking-contact/internal/db"
	"parking-contact/internal/logger"
	"parking-contact/internal/model"
	"parking-contact/internal/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	for _, shortID := range []string{"J6UQDV", "ABC123", "XYZ789", "QWE456"} {
		if err := seedCode(database, shortID); err != nil {
			log.Fatal().Err(err).Str("short_id", shortID).Msg("seed failed")
		}
	}

	if err := seedRegistered(database, "R5Q7UD"); err != nil {
		log.Fatal().Err(err).Str("short_id", "R5Q7UD").Msg("seed failed")
	}

	log.Info().Msg("seeding completed")
}

func seedCode(database *gorm.DB, shortID string) error {
	code := model.QRCode{ShortID: shortID, Status: model.QRStatusUnregistered}
	return database.Where(model.QRCode{ShortID: shortID}).FirstOrCreate(&code).Error
}

func seedRegistered(database *gorm.DB, shortID string) error {
	code := model.QRCode{ShortID: shortID, Status: model.QRStatusRegistered}
	if err := database.Where(model.QRCode{ShortID: shortID}).FirstOrCreate(&code).Error; err != nil {
		return err
	}
	if err := database.Model(&code).Update("status", model.QRStatusRegistered).Error; err != nil {
		return err
	}

	hashed, err := password.Hash("1234")
	if err != nil {
		return err
	}
	vehicle := model.Vehicle{
		QRCodeID:      code.ID,
		PhoneNumber:   "010-1234-5678",
		VehicleNumber: "12가1234",
		SafeNumber:    "050-8940-3626",
		Password:      hashed,
	}
	return database.Where(model.Vehicle{QRCodeID: code.ID}).FirstOrCreate(&vehicle).Error
}
