package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Vehicle struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	QRCodeID      uuid.UUID `gorm:"column:qr_code_id;type:uuid;uniqueIndex;not null" json:"qr_code_id"`
	PhoneNumber   string    `gorm:"type:varchar(32);not null" json:"-"`
	VehicleNumber string    `gorm:"type:varchar(32);not null" json:"vehicle_number"`
	SafeNumber    string    `gorm:"type:varchar(16);not null" json:"safe_number"`
	Password      string    `gorm:"type:varchar(128);not null" json:"-"`
	RegisteredAt  time.Time `gorm:"autoCreateTime" json:"registered_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
