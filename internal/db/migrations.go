package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'qr_status') THEN
			CREATE TYPE qr_status AS ENUM ('UNREGISTERED', 'REGISTERED');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS qr_codes (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		short_id VARCHAR(6) NOT NULL,
		status qr_status NOT NULL DEFAULT 'UNREGISTERED',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_qr_codes_short_id ON qr_codes (short_id);`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		qr_code_id UUID NOT NULL REFERENCES qr_codes(id),
		phone_number VARCHAR(32) NOT NULL,
		vehicle_number VARCHAR(32) NOT NULL,
		safe_number VARCHAR(16) NOT NULL,
		password VARCHAR(128) NOT NULL,
		registered_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	// One vehicle per code. Concurrent double-registration is rejected here,
	// not in application code.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_vehicles_qr_code_id ON vehicles (qr_code_id);`,
	`CREATE OR REPLACE FUNCTION set_updated_at()
	RETURNS TRIGGER AS $$
	BEGIN
		NEW.updated_at = NOW();
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_qr_codes_updated_at') THEN
			CREATE TRIGGER trg_qr_codes_updated_at
				BEFORE UPDATE ON qr_codes
				FOR EACH ROW
				EXECUTE PROCEDURE set_updated_at();
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_vehicles_updated_at') THEN
			CREATE TRIGGER trg_vehicles_updated_at
				BEFORE UPDATE ON vehicles
				FOR EACH ROW
				EXECUTE PROCEDURE set_updated_at();
		END IF;
	END
	$$;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
