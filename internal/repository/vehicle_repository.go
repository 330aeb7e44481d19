package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parking-contact/internal/model"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// UpdateFields applies a partial update to the vehicle owned by codeID.
// Callers pass only the columns that actually change.
func (r *VehicleRepository) UpdateFields(ctx context.Context, codeID uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.Vehicle{}).
		Where("qr_code_id = ?", codeID).
		Updates(fields).Error
}
