package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parking-contact/internal/model"
	"parking-contact/internal/phone"
	"parking-contact/internal/qrimage"
	"parking-contact/internal/shortid"
)

const (
	minBatchSize = 1
	maxBatchSize = 1000

	// Attempts per code before giving up on finding a free short ID. With a
	// 36^6 keyspace this only trips if the table is pathologically full.
	maxShortIDAttempts = 10

	defaultPageLimit = 20
)

// AdminService is the read/aggregation and batch-generation layer behind the
// admin dashboard.
type AdminService struct {
	qrStore QRCodeStore
}

func NewAdminService(qrStore QRCodeStore) *AdminService {
	return &AdminService{qrStore: qrStore}
}

type Stats struct {
	TotalQRCodes      int64     `json:"totalQRCodes"`
	RegisteredCount   int64     `json:"registeredCount"`
	UnregisteredCount int64     `json:"unregisteredCount"`
	Timestamp         time.Time `json:"timestamp"`
}

// Stats derives the unregistered count from the other two, so the
// total = registered + unregistered invariant holds by construction.
func (s *AdminService) Stats(ctx context.Context) (*Stats, error) {
	total, err := s.qrStore.Count(ctx)
	if err != nil {
		return nil, err
	}
	registered, err := s.qrStore.CountByStatus(ctx, model.QRStatusRegistered)
	if err != nil {
		return nil, err
	}
	return &Stats{
		TotalQRCodes:      total,
		RegisteredCount:   registered,
		UnregisteredCount: total - registered,
		Timestamp:         time.Now().UTC(),
	}, nil
}

type QRCodeListItem struct {
	ID            string         `json:"id"`
	ShortID       string         `json:"shortId"`
	Status        model.QRStatus `json:"status"`
	CreatedAt     time.Time      `json:"createdAt"`
	PhoneNumber   *string        `json:"phoneNumber"`
	VehicleNumber *string        `json:"vehicleNumber"`
}

type QRCodeList struct {
	QRCodes []QRCodeListItem `json:"qrCodes"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}

// List returns one page of codes ordered by creation time descending, newest
// first. Phone numbers are masked before they leave the service.
func (s *AdminService) List(ctx context.Context, page, limit int) (*QRCodeList, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}

	codes, err := s.qrStore.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	total, err := s.qrStore.Count(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]QRCodeListItem, 0, len(codes))
	for _, code := range codes {
		item := QRCodeListItem{
			ID:        code.ID.String(),
			ShortID:   code.ShortID,
			Status:    code.Status,
			CreatedAt: code.CreatedAt,
		}
		if code.Vehicle != nil {
			masked := phone.Mask(code.Vehicle.PhoneNumber)
			item.PhoneNumber = &masked
			item.VehicleNumber = &code.Vehicle.VehicleNumber
		}
		items = append(items, item)
	}

	return &QRCodeList{
		QRCodes: items,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}, nil
}

type GeneratedQRCode struct {
	ID      string `json:"id"`
	ShortID string `json:"shortId"`
	DataURL string `json:"dataUrl"`
	QRURL   string `json:"qrURL"`
}

// GenerateBatch creates count unregistered codes and renders their target
// URLs to QR images. The batch is not wrapped in one transaction: codes
// created before a mid-batch failure stay persisted and the caller sees the
// error.
func (s *AdminService) GenerateBatch(ctx context.Context, count int, baseURL string) ([]GeneratedQRCode, error) {
	if count < minBatchSize || count > maxBatchSize {
		return nil, ErrInvalidInput
	}

	generated := make([]GeneratedQRCode, 0, count)
	for i := 0; i < count; i++ {
		id, err := s.allocateShortID(ctx)
		if err != nil {
			return nil, err
		}

		code := &model.QRCode{
			ShortID: id,
			Status:  model.QRStatusUnregistered,
		}
		if err := s.qrStore.Create(ctx, code); err != nil {
			return nil, err
		}

		targetURL := baseURL + "/qr/" + id
		dataURL, err := qrimage.DataURL(targetURL)
		if err != nil {
			return nil, err
		}

		generated = append(generated, GeneratedQRCode{
			ID:      code.ID.String(),
			ShortID: code.ShortID,
			DataURL: dataURL,
			QRURL:   targetURL,
		})
	}
	return generated, nil
}

// Delete removes a code by ID, cascading to its vehicle.
func (s *AdminService) Delete(ctx context.Context, id string) error {
	codeID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidInput
	}
	if err := s.qrStore.Delete(ctx, codeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// allocateShortID draws candidates until one is free in the store, bounded at
// maxShortIDAttempts rather than retrying forever.
func (s *AdminService) allocateShortID(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxShortIDAttempts; attempt++ {
		candidate, err := shortid.New()
		if err != nil {
			return "", err
		}
		exists, err := s.qrStore.ExistsByShortID(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", ErrShortIDExhausted
}
