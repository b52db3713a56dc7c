package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/dto"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/entities"
	apperrors "github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/errors"
)

func newBookingServiceForTest(equipmentRepo *fakeEquipmentRepo, bookingRepo *fakeBookingRepo, userRepo *fakeUserRepo) BookingServiceInterface {
	logger := zap.NewNop()
	txManager := &fakeTxManager{}
	lifecycle := NewLifecycleService(equipmentRepo, txManager, logger)
	return NewBookingService(bookingRepo, equipmentRepo, userRepo, lifecycle, txManager, 1, logger)
}

func bookableEquipment(id string) *entities.Equipment {
	return &entities.Equipment{
		ID:        id,
		Name:      "Осциллограф",
		Status:    entities.EquipmentStatusAvailable,
		UsageType: entities.UsageTypeBooking,
	}
}

func requireHTTPError(t *testing.T, err error, code int, message string) {
	t.Helper()
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, code, httpErr.Code)
	assert.Equal(t, message, httpErr.Message)
}

func TestCreateBooking(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo(bookableEquipment("101-SN441"))
	bookingRepo := newFakeBookingRepo()
	svc := newBookingServiceForTest(equipmentRepo, bookingRepo, newFakeUserRepo(1))

	booking, err := svc.CreateBooking(context.Background(), dto.CreateBookingDTO{
		EquipmentID: "101-SN441",
		Date:        "2026-09-01",
		TimeSlot:    "9:00-11:00",
		Purpose:     "Лабораторная работа",
	})

	require.NoError(t, err)
	assert.Equal(t, entities.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, int64(1), booking.UserID)
	assert.NotZero(t, booking.ID)

	eq, err := equipmentRepo.FindEquipment(context.Background(), "101-SN441")
	require.NoError(t, err)
	assert.Equal(t, entities.EquipmentStatusBooked, eq.Status)
}

func TestCreateBooking_SlotTaken(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo(bookableEquipment("101-SN441"))
	bookingRepo := newFakeBookingRepo()
	svc := newBookingServiceForTest(equipmentRepo, bookingRepo, newFakeUserRepo(1))

	request := dto.CreateBookingDTO{
		EquipmentID: "101-SN441",
		Date:        "2026-09-01",
		TimeSlot:    "9:00-11:00",
		Purpose:     "Лабораторная работа",
	}
	_, err := svc.CreateBooking(context.Background(), request)
	require.NoError(t, err)

	// Вернём оборудование в available, чтобы споткнуться именно о слот.
	require.NoError(t, equipmentRepo.UpdateStatus(context.Background(), "101-SN441", entities.EquipmentStatusAvailable))

	_, err = svc.CreateBooking(context.Background(), request)
	requireHTTPError(t, err, 400, "This time slot is already booked")
}

func TestCreateBooking_EquipmentNotFound(t *testing.T) {
	svc := newBookingServiceForTest(newFakeEquipmentRepo(), newFakeBookingRepo(), newFakeUserRepo(1))

	_, err := svc.CreateBooking(context.Background(), dto.CreateBookingDTO{
		EquipmentID: "missing",
		Date:        "2026-09-01",
		TimeSlot:    "9:00-11:00",
		Purpose:     "Лабораторная работа",
	})
	requireHTTPError(t, err, 404, "Equipment not found")
}

func TestCreateBooking_EquipmentNotAvailable(t *testing.T) {
	eq := bookableEquipment("101-SN441")
	eq.Status = entities.EquipmentStatusMaintenance
	svc := newBookingServiceForTest(newFakeEquipmentRepo(eq), newFakeBookingRepo(), newFakeUserRepo(1))

	_, err := svc.CreateBooking(context.Background(), dto.CreateBookingDTO{
		EquipmentID: "101-SN441",
		Date:        "2026-09-01",
		TimeSlot:    "9:00-11:00",
		Purpose:     "Лабораторная работа",
	})
	requireHTTPError(t, err, 400, "Equipment is not available")
}

func TestCreateBooking_WrongUsageType(t *testing.T) {
	eq := bookableEquipment("205-SN113")
	eq.UsageType = entities.UsageTypeImmediate
	svc := newBookingServiceForTest(newFakeEquipmentRepo(eq), newFakeBookingRepo(), newFakeUserRepo(1))

	_, err := svc.CreateBooking(context.Background(), dto.CreateBookingDTO{
		EquipmentID: "205-SN113",
		Date:        "2026-09-01",
		TimeSlot:    "9:00-11:00",
		Purpose:     "Лабораторная работа",
	})
	requireHTTPError(t, err, 400, "Equipment is not available for booking")
}

func TestCreateBooking_UnknownUser(t *testing.T) {
	svc := newBookingServiceForTest(newFakeEquipmentRepo(bookableEquipment("101-SN441")), newFakeBookingRepo(), newFakeUserRepo(1))

	_, err := svc.CreateBooking(context.Background(), dto.CreateBookingDTO{
		EquipmentID: "101-SN441",
		UserID:      99,
		Date:        "2026-09-01",
		TimeSlot:    "9:00-11:00",
		Purpose:     "Лабораторная работа",
	})
	requireHTTPError(t, err, 404, "User not found")
}

func TestCancelBooking(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo(bookableEquipment("101-SN441"))
	bookingRepo := newFakeBookingRepo()
	svc := newBookingServiceForTest(equipmentRepo, bookingRepo, newFakeUserRepo(1))

	booking, err := svc.CreateBooking(context.Background(), dto.CreateBookingDTO{
		EquipmentID: "101-SN441",
		Date:        "2026-09-01",
		TimeSlot:    "9:00-11:00",
		Purpose:     "Лабораторная работа",
	})
	require.NoError(t, err)

	cancelled, err := svc.CancelBooking(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.BookingStatusCancelled, cancelled.Status)

	// Отмена возвращает оборудование в available.
	eq, err := equipmentRepo.FindEquipment(context.Background(), "101-SN441")
	require.NoError(t, err)
	assert.Equal(t, entities.EquipmentStatusAvailable, eq.Status)

	// Слот снова свободен.
	slots, err := svc.AvailableSlots(context.Background(), "101-SN441", "2026-09-01")
	require.NoError(t, err)
	assert.Contains(t, slots, "9:00-11:00")
}

func TestCancelBooking_NotFound(t *testing.T) {
	svc := newBookingServiceForTest(newFakeEquipmentRepo(), newFakeBookingRepo(), newFakeUserRepo(1))

	_, err := svc.CancelBooking(context.Background(), 42)
	requireHTTPError(t, err, 404, "Booking not found")
}

func TestCancelBooking_AlreadyCancelled(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo(bookableEquipment("101-SN441"))
	svc := newBookingServiceForTest(equipmentRepo, newFakeBookingRepo(), newFakeUserRepo(1))

	booking, err := svc.CreateBooking(context.Background(), dto.CreateBookingDTO{
		EquipmentID: "101-SN441",
		Date:        "2026-09-01",
		TimeSlot:    "9:00-11:00",
		Purpose:     "Лабораторная работа",
	})
	require.NoError(t, err)

	_, err = svc.CancelBooking(context.Background(), booking.ID)
	require.NoError(t, err)

	_, err = svc.CancelBooking(context.Background(), booking.ID)
	requireHTTPError(t, err, 400, "Booking is already cancelled")
}

func TestAvailableSlots(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo(bookableEquipment("101-SN441"))
	svc := newBookingServiceForTest(equipmentRepo, newFakeBookingRepo(), newFakeUserRepo(1))

	slots, err := svc.AvailableSlots(context.Background(), "101-SN441", "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, entities.TimeSlots, slots)

	_, err = svc.CreateBooking(context.Background(), dto.CreateBookingDTO{
		EquipmentID: "101-SN441",
		Date:        "2026-09-01",
		TimeSlot:    "11:00-13:00",
		Purpose:     "Лабораторная работа",
	})
	require.NoError(t, err)

	slots, err = svc.AvailableSlots(context.Background(), "101-SN441", "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"9:00-11:00", "13:00-15:00", "15:00-17:00"}, slots)

	// Другая дата не затронута.
	slots, err = svc.AvailableSlots(context.Background(), "101-SN441", "2026-09-02")
	require.NoError(t, err)
	assert.Len(t, slots, 4)
}

func TestAvailableSlots_EquipmentNotFound(t *testing.T) {
	svc := newBookingServiceForTest(newFakeEquipmentRepo(), newFakeBookingRepo(), newFakeUserRepo(1))

	_, err := svc.AvailableSlots(context.Background(), "missing", "2026-09-01")
	requireHTTPError(t, err, 404, "Equipment not found")
}

func TestListByUser_UnknownUser(t *testing.T) {
	svc := newBookingServiceForTest(newFakeEquipmentRepo(), newFakeBookingRepo(), newFakeUserRepo(1))

	_, err := svc.ListByUser(context.Background(), 99)
	requireHTTPError(t, err, 404, "User not found")
}
