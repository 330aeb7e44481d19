package service

import (
	"context"

	"github.com/google/uuid"

	"parking-contact/internal/model"
)

// QRCodeStore is the persistence surface the services need for QR codes.
// Implemented by repository.QRCodeRepository; tests substitute an in-memory
// fake.
type QRCodeStore interface {
	Create(ctx context.Context, code *model.QRCode) error
	GetByShortID(ctx context.Context, shortID string) (*model.QRCode, error)
	ExistsByShortID(ctx context.Context, shortID string) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status model.QRStatus) (int64, error)
	List(ctx context.Context, offset, limit int) ([]model.QRCode, error)
	RegisterVehicle(ctx context.Context, codeID uuid.UUID, vehicle *model.Vehicle) error
	UnregisterVehicle(ctx context.Context, codeID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// VehicleStore covers the owner-initiated partial update path.
// Implemented by repository.VehicleRepository.
type VehicleStore interface {
	UpdateFields(ctx context.Context, codeID uuid.UUID, fields map[string]interface{}) error
}
