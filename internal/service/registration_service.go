package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"parking-contact/internal/model"
	"parking-contact/internal/password"
	"parking-contact/internal/phone"
	"parking-contact/internal/utils"
)

// RegistrationService owns the UNREGISTERED <-> REGISTERED lifecycle of a QR
// code. Every mutation on a registered code is gated by the owner's password.
type RegistrationService struct {
	qrStore      QRCodeStore
	vehicleStore VehicleStore
}

func NewRegistrationService(qrStore QRCodeStore, vehicleStore VehicleStore) *RegistrationService {
	return &RegistrationService{
		qrStore:      qrStore,
		vehicleStore: vehicleStore,
	}
}

type RegisterInput struct {
	PhoneNumber   string
	VehicleNumber string
	Password      string
}

type RegisterResult struct {
	VehicleNumber string    `json:"vehicleNumber"`
	SafeNumber    string    `json:"safeNumber"`
	RegisteredAt  time.Time `json:"registeredAt"`
}

type UpdateInput struct {
	Password      string
	PhoneNumber   string
	VehicleNumber string
	NewPassword   string
}

type VerifyResult struct {
	VehicleNumber string `json:"vehicleNumber"`
	PhoneNumber   string `json:"phoneNumber"`
	SafeNumber    string `json:"safeNumber"`
}

type InfoVehicle struct {
	VehicleNumber     string    `json:"vehicleNumber"`
	SafeNumber        string    `json:"safeNumber"`
	MaskedPhoneNumber string    `json:"maskedPhoneNumber"`
	RegisteredAt      time.Time `json:"registeredAt"`
}

type InfoResult struct {
	ID      string         `json:"id"`
	ShortID string         `json:"shortId"`
	Status  model.QRStatus `json:"status"`
	Vehicle *InfoVehicle   `json:"vehicle,omitempty"`
}

// Info is the public read path behind the scanned QR code. It never exposes
// the raw phone number or the password hash.
func (s *RegistrationService) Info(ctx context.Context, shortID string) (*InfoResult, error) {
	code, err := s.getCode(ctx, shortID)
	if err != nil {
		return nil, err
	}

	result := &InfoResult{
		ID:      code.ID.String(),
		ShortID: code.ShortID,
		Status:  code.Status,
	}

	if code.Status == model.QRStatusUnregistered || code.Vehicle == nil {
		result.Status = model.QRStatusUnregistered
		return result, nil
	}

	result.Vehicle = &InfoVehicle{
		VehicleNumber:     code.Vehicle.VehicleNumber,
		SafeNumber:        code.Vehicle.SafeNumber,
		MaskedPhoneNumber: phone.Mask(code.Vehicle.PhoneNumber),
		RegisteredAt:      code.Vehicle.RegisteredAt,
	}
	return result, nil
}

// Register attaches a vehicle to an unregistered code. Vehicle creation and
// the status flip happen in one store transaction.
func (s *RegistrationService) Register(ctx context.Context, shortID string, input RegisterInput) (*RegisterResult, error) {
	if input.PhoneNumber == "" || input.VehicleNumber == "" || input.Password == "" {
		return nil, ErrInvalidInput
	}

	code, err := s.getCode(ctx, shortID)
	if err != nil {
		return nil, err
	}
	if code.Status == model.QRStatusRegistered || code.Vehicle != nil {
		return nil, ErrAlreadyRegistered
	}

	safeNumber, err := phone.SafeNumber()
	if err != nil {
		return nil, err
	}
	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	vehicle := &model.Vehicle{
		QRCodeID:      code.ID,
		PhoneNumber:   phone.Format(input.PhoneNumber),
		VehicleNumber: utils.NormalizePlate(input.VehicleNumber),
		SafeNumber:    safeNumber,
		Password:      hashed,
		RegisteredAt:  time.Now(),
	}

	if err := s.qrStore.RegisterVehicle(ctx, code.ID, vehicle); err != nil {
		return nil, err
	}

	return &RegisterResult{
		VehicleNumber: vehicle.VehicleNumber,
		SafeNumber:    vehicle.SafeNumber,
		RegisteredAt:  vehicle.RegisteredAt,
	}, nil
}

// Verify checks the owner's password and, on success, returns the raw vehicle
// fields so the owner can pre-fill an edit form. This is the only path that
// exposes the unmasked phone number.
func (s *RegistrationService) Verify(ctx context.Context, shortID, pw string) (*VerifyResult, error) {
	code, err := s.authorize(ctx, shortID, pw)
	if err != nil {
		return nil, err
	}

	return &VerifyResult{
		VehicleNumber: code.Vehicle.VehicleNumber,
		PhoneNumber:   code.Vehicle.PhoneNumber,
		SafeNumber:    code.Vehicle.SafeNumber,
	}, nil
}

// Update applies a partial update to the registered vehicle. Only fields that
// are supplied and differ from the stored values are written; the safe number
// never changes.
func (s *RegistrationService) Update(ctx context.Context, shortID string, input UpdateInput) error {
	code, err := s.authorize(ctx, shortID, input.Password)
	if err != nil {
		return err
	}

	fields := map[string]interface{}{}

	if input.PhoneNumber != "" {
		formatted := phone.Format(input.PhoneNumber)
		if formatted != code.Vehicle.PhoneNumber {
			fields["phone_number"] = formatted
		}
	}
	if input.VehicleNumber != "" {
		normalized := utils.NormalizePlate(input.VehicleNumber)
		if normalized != code.Vehicle.VehicleNumber {
			fields["vehicle_number"] = normalized
		}
	}
	if input.NewPassword != "" {
		hashed, err := password.Hash(input.NewPassword)
		if err != nil {
			return err
		}
		fields["password"] = hashed
	}

	if len(fields) == 0 {
		return nil
	}
	return s.vehicleStore.UpdateFields(ctx, code.ID, fields)
}

// Unregister detaches the vehicle after password verification. Vehicle
// deletion and the status flip happen in one store transaction.
func (s *RegistrationService) Unregister(ctx context.Context, shortID, pw string) error {
	code, err := s.authorize(ctx, shortID, pw)
	if err != nil {
		return err
	}
	return s.qrStore.UnregisterVehicle(ctx, code.ID)
}

func (s *RegistrationService) getCode(ctx context.Context, shortID string) (*model.QRCode, error) {
	if shortID == "" {
		return nil, ErrInvalidInput
	}
	code, err := s.qrStore.GetByShortID(ctx, shortID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return code, nil
}

// authorize runs the shared precondition chain for owner-gated operations:
// the code exists, has a vehicle, and the password matches its hash.
func (s *RegistrationService) authorize(ctx context.Context, shortID, pw string) (*model.QRCode, error) {
	if pw == "" {
		return nil, ErrInvalidInput
	}
	code, err := s.getCode(ctx, shortID)
	if err != nil {
		return nil, err
	}
	if code.Vehicle == nil {
		return nil, ErrNotRegistered
	}
	if !password.Verify(pw, code.Vehicle.Password) {
		return nil, ErrUnauthorized
	}
	return code, nil
}
