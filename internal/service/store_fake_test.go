package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parking-contact/internal/model"
)

// fakeStore is an in-memory QRCodeStore + VehicleStore mirroring the
// repository semantics, including the unique constraints on short_id and
// qr_code_id.
type fakeStore struct {
	mu       sync.Mutex
	codes    map[uuid.UUID]*model.QRCode
	vehicles map[uuid.UUID]*model.Vehicle // keyed by qr_code_id
	clock    time.Time

	failCreateAfter int // fail the Nth Create when > 0
	created         int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		codes:    make(map[uuid.UUID]*model.QRCode),
		vehicles: make(map[uuid.UUID]*model.Vehicle),
		clock:    time.Now(),
	}
}

func (f *fakeStore) Create(ctx context.Context, code *model.QRCode) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.created++
	if f.failCreateAfter > 0 && f.created > f.failCreateAfter {
		return fmt.Errorf("store unavailable")
	}

	for _, existing := range f.codes {
		if existing.ShortID == code.ShortID {
			return fmt.Errorf("duplicate short_id %s", code.ShortID)
		}
	}
	if code.ID == uuid.Nil {
		code.ID = uuid.New()
	}
	f.clock = f.clock.Add(time.Millisecond)
	code.CreatedAt = f.clock

	stored := *code
	f.codes[code.ID] = &stored
	return nil
}

func (f *fakeStore) GetByShortID(ctx context.Context, shortID string) (*model.QRCode, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, code := range f.codes {
		if code.ShortID == shortID {
			return f.withVehicle(code), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) ExistsByShortID(ctx context.Context, shortID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, code := range f.codes {
		if code.ShortID == shortID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.codes)), nil
}

func (f *fakeStore) CountByStatus(ctx context.Context, status model.QRStatus) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, code := range f.codes {
		if code.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) List(ctx context.Context, offset, limit int) ([]model.QRCode, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	all := make([]*model.QRCode, 0, len(f.codes))
	for _, code := range f.codes {
		all = append(all, code)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}

	page := make([]model.QRCode, 0, end-offset)
	for _, code := range all[offset:end] {
		page = append(page, *f.withVehicle(code))
	}
	return page, nil
}

func (f *fakeStore) RegisterVehicle(ctx context.Context, codeID uuid.UUID, vehicle *model.Vehicle) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	code, ok := f.codes[codeID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if _, exists := f.vehicles[codeID]; exists {
		return fmt.Errorf("duplicate qr_code_id %s", codeID)
	}
	if vehicle.ID == uuid.Nil {
		vehicle.ID = uuid.New()
	}

	stored := *vehicle
	f.vehicles[codeID] = &stored
	code.Status = model.QRStatusRegistered
	return nil
}

func (f *fakeStore) UnregisterVehicle(ctx context.Context, codeID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	code, ok := f.codes[codeID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.vehicles, codeID)
	code.Status = model.QRStatusUnregistered
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.codes[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.vehicles, id)
	delete(f.codes, id)
	return nil
}

func (f *fakeStore) UpdateFields(ctx context.Context, codeID uuid.UUID, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	vehicle, ok := f.vehicles[codeID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for column, value := range fields {
		switch column {
		case "phone_number":
			vehicle.PhoneNumber = value.(string)
		case "vehicle_number":
			vehicle.VehicleNumber = value.(string)
		case "password":
			vehicle.Password = value.(string)
		default:
			return fmt.Errorf("unexpected column %s", column)
		}
	}
	return nil
}

func (f *fakeStore) withVehicle(code *model.QRCode) *model.QRCode {
	out := *code
	if vehicle, ok := f.vehicles[code.ID]; ok {
		v := *vehicle
		out.Vehicle = &v
	} else {
		out.Vehicle = nil
	}
	return &out
}

// vehicleFor reads the stored vehicle directly, bypassing the store API.
func (f *fakeStore) vehicleFor(codeID uuid.UUID) *model.Vehicle {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.vehicles[codeID]
}

func (f *fakeStore) addCode(shortID string, status model.QRStatus) *model.QRCode {
	code := &model.QRCode{ShortID: shortID, Status: status}
	if err := f.Create(context.Background(), code); err != nil {
		panic(err)
	}
	return code
}
