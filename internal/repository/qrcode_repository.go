package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parking-contact/internal/model"
)

type QRCodeRepository struct {
	db *gorm.DB
}

func NewQRCodeRepository(db *gorm.DB) *QRCodeRepository {
	return &QRCodeRepository{db: db}
}

func (r *QRCodeRepository) Create(ctx context.Context, code *model.QRCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

func (r *QRCodeRepository) GetByShortID(ctx context.Context, shortID string) (*model.QRCode, error) {
	var code model.QRCode
	err := r.db.WithContext(ctx).Preload("Vehicle").Where("short_id = ?", shortID).First(&code).Error
	if err != nil {
		return nil, err
	}
	return &code, nil
}

func (r *QRCodeRepository) ExistsByShortID(ctx context.Context, shortID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.QRCode{}).Where("short_id = ?", shortID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *QRCodeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.QRCode{}).Count(&count).Error
	return count, err
}

func (r *QRCodeRepository) CountByStatus(ctx context.Context, status model.QRStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.QRCode{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *QRCodeRepository) List(ctx context.Context, offset, limit int) ([]model.QRCode, error) {
	var codes []model.QRCode
	err := r.db.WithContext(ctx).
		Preload("Vehicle").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&codes).Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}

// RegisterVehicle creates the vehicle and flips the code to REGISTERED in a
// single transaction. The unique index on vehicles.qr_code_id rejects a
// concurrent second registration of the same code.
func (r *QRCodeRepository) RegisterVehicle(ctx context.Context, codeID uuid.UUID, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(vehicle).Error; err != nil {
			return err
		}
		return tx.Model(&model.QRCode{}).
			Where("id = ?", codeID).
			Update("status", model.QRStatusRegistered).Error
	})
}

// UnregisterVehicle removes the vehicle and flips the code back to
// UNREGISTERED in a single transaction, so the status never points at a
// deleted vehicle.
func (r *QRCodeRepository) UnregisterVehicle(ctx context.Context, codeID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("qr_code_id = ?", codeID).Delete(&model.Vehicle{}).Error; err != nil {
			return err
		}
		return tx.Model(&model.QRCode{}).
			Where("id = ?", codeID).
			Update("status", model.QRStatusUnregistered).Error
	})
}

// Delete removes a code and any vehicle attached to it. The vehicle goes
// first because the store does not cascade.
func (r *QRCodeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("qr_code_id = ?", id).Delete(&model.Vehicle{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.QRCode{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
