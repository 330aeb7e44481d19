package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QRStatus string

const (
	QRStatusUnregistered QRStatus = "UNREGISTERED"
	QRStatusRegistered   QRStatus = "REGISTERED"
)

type QRCode struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	ShortID   string    `gorm:"column:short_id;type:varchar(6);uniqueIndex;not null" json:"short_id"`
	Status    QRStatus  `gorm:"type:qr_status;not null;default:UNREGISTERED" json:"status"`
	Vehicle   *Vehicle  `gorm:"foreignKey:QRCodeID" json:"vehicle,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (QRCode) TableName() string {
	return "qr_codes"
}

func (q *QRCode) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
