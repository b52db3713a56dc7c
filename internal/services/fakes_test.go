package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/dto"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/entities"
	apperrors "github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/errors"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/types"
)

// fakeTxManager выполняет функцию без настоящей транзакции: фейковые
// репозитории не трогают tx.
type fakeTxManager struct{}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type fakeEquipmentRepo struct {
	equipments map[string]*entities.Equipment
	upserted   []entities.Equipment
	upsertErr  error
}

func newFakeEquipmentRepo(items ...*entities.Equipment) *fakeEquipmentRepo {
	repo := &fakeEquipmentRepo{equipments: make(map[string]*entities.Equipment)}
	for _, item := range items {
		repo.equipments[item.ID] = item
	}
	return repo
}

func (r *fakeEquipmentRepo) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	list := make([]entities.Equipment, 0, len(r.equipments))
	for _, eq := range r.equipments {
		list = append(list, *eq)
	}
	return list, uint64(len(list)), nil
}

func (r *fakeEquipmentRepo) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	eq, ok := r.equipments[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *eq
	return &copied, nil
}

func (r *fakeEquipmentRepo) FindByCategory(ctx context.Context, category string) ([]entities.Equipment, error) {
	list := make([]entities.Equipment, 0)
	for _, eq := range r.equipments {
		if eq.Category == category {
			list = append(list, *eq)
		}
	}
	return list, nil
}

func (r *fakeEquipmentRepo) CreateEquipment(ctx context.Context, d dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	eq := &entities.Equipment{
		ID:        "local-1",
		Name:      d.Name,
		Category:  d.Category,
		Status:    entities.EquipmentStatusAvailable,
		UsageType: entities.UsageTypeBooking,
	}
	if eq.Category == "" {
		eq.Category = entities.DefaultCategory
	}
	if d.UsageType != "" {
		eq.UsageType = d.UsageType
	}
	r.equipments[eq.ID] = eq
	return eq, nil
}

func (r *fakeEquipmentRepo) LockEquipment(ctx context.Context, tx pgx.Tx, id string) (*entities.Equipment, error) {
	return r.FindEquipment(ctx, id)
}

func (r *fakeEquipmentRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	eq, ok := r.equipments[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	eq.Status = status
	return nil
}

func (r *fakeEquipmentRepo) UpdateStatusTx(ctx context.Context, tx pgx.Tx, id string, status string) error {
	return r.UpdateStatus(ctx, id, status)
}

func (r *fakeEquipmentRepo) UpsertFromCatalog(ctx context.Context, eq entities.Equipment) (bool, error) {
	if r.upsertErr != nil {
		return false, r.upsertErr
	}
	r.upserted = append(r.upserted, eq)
	_, existed := r.equipments[eq.ID]
	if !existed {
		copied := eq
		r.equipments[eq.ID] = &copied
	}
	return !existed, nil
}

type fakeBookingRepo struct {
	bookings map[int64]*entities.Booking
	nextID   int64
	taken    map[string]bool
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: make(map[int64]*entities.Booking),
		nextID:   1,
		taken:    make(map[string]bool),
	}
}

func slotKey(equipmentID, date, timeSlot string) string {
	return equipmentID + "|" + date + "|" + timeSlot
}

func (r *fakeBookingRepo) CreateBookingTx(ctx context.Context, tx pgx.Tx, b *entities.Booking) error {
	b.ID = r.nextID
	r.nextID++
	copied := *b
	r.bookings[b.ID] = &copied
	r.taken[slotKey(b.EquipmentID, b.Date, b.TimeSlot)] = true
	return nil
}

func (r *fakeBookingRepo) FindBooking(ctx context.Context, id int64) (*entities.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) FindBookingTx(ctx context.Context, tx pgx.Tx, id int64) (*entities.Booking, error) {
	return r.FindBooking(ctx, id)
}

func (r *fakeBookingRepo) ListByUser(ctx context.Context, userID int64) ([]entities.BookingWithEquipment, error) {
	list := make([]entities.BookingWithEquipment, 0)
	for _, b := range r.bookings {
		if b.UserID == userID {
			list = append(list, entities.BookingWithEquipment{Booking: *b})
		}
	}
	return list, nil
}

func (r *fakeBookingRepo) SlotTakenTx(ctx context.Context, tx pgx.Tx, equipmentID, date, timeSlot string) (bool, error) {
	return r.taken[slotKey(equipmentID, date, timeSlot)], nil
}

func (r *fakeBookingRepo) BookedSlots(ctx context.Context, equipmentID, date string) ([]string, error) {
	slots := make([]string, 0)
	for _, b := range r.bookings {
		if b.EquipmentID == equipmentID && b.Date == date && b.Status != entities.BookingStatusCancelled {
			slots = append(slots, b.TimeSlot)
		}
	}
	return slots, nil
}

func (r *fakeBookingRepo) UpdateStatusTx(ctx context.Context, tx pgx.Tx, id int64, status string) error {
	b, ok := r.bookings[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	if status == entities.BookingStatusCancelled {
		delete(r.taken, slotKey(b.EquipmentID, b.Date, b.TimeSlot))
	}
	b.Status = status
	return nil
}

type fakeUserRepo struct {
	users map[int64]*entities.User
}

func newFakeUserRepo(ids ...int64) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[int64]*entities.User)}
	for _, id := range ids {
		repo.users[id] = &entities.User{ID: id, Name: "user"}
	}
	return repo
}

func (r *fakeUserRepo) FindUser(ctx context.Context, id int64) (*entities.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

type fakeCacheRepo struct {
	values map[string]string
	getErr error
	sets   int
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{values: make(map[string]string), getErr: apperrors.ErrNotFound}
}

func (r *fakeCacheRepo) Get(ctx context.Context, key string) (string, error) {
	if v, ok := r.values[key]; ok {
		return v, nil
	}
	return "", r.getErr
}

func (r *fakeCacheRepo) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	r.sets++
	switch v := value.(type) {
	case []byte:
		r.values[key] = string(v)
	case string:
		r.values[key] = v
	}
	return nil
}

func (r *fakeCacheRepo) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(r.values, key)
	}
	return nil
}
