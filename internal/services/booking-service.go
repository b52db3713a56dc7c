package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/dto"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/entities"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/repositories"
	apperrors "github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/errors"
)

type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, d dto.CreateBookingDTO) (*entities.Booking, error)
	CancelBooking(ctx context.Context, id int64) (*entities.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]entities.BookingWithEquipment, error)
	AvailableSlots(ctx context.Context, equipmentID, date string) ([]string, error)
}

type BookingService struct {
	bookingRepo   repositories.BookingRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	userRepo      repositories.UserRepositoryInterface
	lifecycle     LifecycleServiceInterface
	txManager     repositories.TxManagerInterface
	defaultUserID int64
	logger        *zap.Logger
}

func NewBookingService(
	bookingRepo repositories.BookingRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	lifecycle LifecycleServiceInterface,
	txManager repositories.TxManagerInterface,
	defaultUserID int64,
	logger *zap.Logger,
) BookingServiceInterface {
	return &BookingService{
		bookingRepo:   bookingRepo,
		equipmentRepo: equipmentRepo,
		userRepo:      userRepo,
		lifecycle:     lifecycle,
		txManager:     txManager,
		defaultUserID: defaultUserID,
		logger:        logger.Named("booking_service"),
	}
}

// CreateBooking резервирует слот. Порядок проверок фиксированный:
// существование оборудования, потом предусловия состояния, потом коллизия
// слота. Всё выполняется в одной транзакции под блокировкой строки
// оборудования, частичный уникальный индекс подстраховывает гонку.
func (s *BookingService) CreateBooking(ctx context.Context, d dto.CreateBookingDTO) (*entities.Booking, error) {
	userID := d.UserID
	if userID == 0 {
		userID = s.defaultUserID
	}

	if _, err := s.userRepo.FindUser(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, s.wrapError(err, "Failed to create booking")
	}

	booking := &entities.Booking{
		EquipmentID:            d.EquipmentID,
		UserID:                 userID,
		Date:                   d.Date,
		TimeSlot:               d.TimeSlot,
		Purpose:                d.Purpose,
		AdditionalRequirements: null.NewString(d.AdditionalRequirements, d.AdditionalRequirements != ""),
		Status:                 entities.BookingStatusConfirmed,
	}

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		eq, err := s.equipmentRepo.LockEquipment(ctx, tx, d.EquipmentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewNotFoundError("Equipment not found")
			}
			return err
		}

		if eq.UsageType != entities.UsageTypeBooking {
			return apperrors.NewConflictError("Equipment is not available for booking")
		}
		if eq.Status != entities.EquipmentStatusAvailable {
			return apperrors.NewConflictError("Equipment is not available")
		}

		taken, err := s.bookingRepo.SlotTakenTx(ctx, tx, d.EquipmentID, d.Date, d.TimeSlot)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.NewConflictError("This time slot is already booked")
		}

		if err := s.bookingRepo.CreateBookingTx(ctx, tx, booking); err != nil {
			return err
		}
		return s.lifecycle.MarkBookedTx(ctx, tx, d.EquipmentID)
	})
	if err != nil {
		return nil, s.wrapError(err, "Failed to create booking")
	}

	s.logger.Info("Бронь создана",
		zap.Int64("bookingID", booking.ID),
		zap.String("equipmentID", booking.EquipmentID),
		zap.String("date", booking.Date),
		zap.String("timeSlot", booking.TimeSlot),
	)
	return booking, nil
}

// CancelBooking отменяет бронь и безусловно возвращает оборудование в
// available. Из терминального статуса бронь не отменяется.
func (s *BookingService) CancelBooking(ctx context.Context, id int64) (*entities.Booking, error) {
	var cancelled *entities.Booking

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		booking, err := s.bookingRepo.FindBookingTx(ctx, tx, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewNotFoundError("Booking not found")
			}
			return err
		}

		if entities.IsTerminalBookingStatus(booking.Status) {
			return apperrors.NewConflictError(fmt.Sprintf("Booking is already %s", booking.Status))
		}

		if err := s.bookingRepo.UpdateStatusTx(ctx, tx, id, entities.BookingStatusCancelled); err != nil {
			return err
		}
		if err := s.lifecycle.ReleaseTx(ctx, tx, booking.EquipmentID); err != nil {
			return err
		}

		booking.Status = entities.BookingStatusCancelled
		cancelled = booking
		return nil
	})
	if err != nil {
		return nil, s.wrapError(err, "Failed to cancel booking")
	}

	s.logger.Info("Бронь отменена",
		zap.Int64("bookingID", cancelled.ID),
		zap.String("equipmentID", cancelled.EquipmentID),
	)
	return cancelled, nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID int64) ([]entities.BookingWithEquipment, error) {
	if _, err := s.userRepo.FindUser(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, s.wrapError(err, "Failed to get bookings")
	}

	list, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, s.wrapError(err, "Failed to get bookings")
	}
	return list, nil
}

// AvailableSlots — канонический набор слотов минус занятые неотменёнными
// бронями, в каноническом порядке.
func (s *BookingService) AvailableSlots(ctx context.Context, equipmentID, date string) ([]string, error) {
	if _, err := s.equipmentRepo.FindEquipment(ctx, equipmentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Equipment not found")
		}
		return nil, s.wrapError(err, "Failed to get available slots")
	}

	booked, err := s.bookingRepo.BookedSlots(ctx, equipmentID, date)
	if err != nil {
		return nil, s.wrapError(err, "Failed to get available slots")
	}

	taken := make(map[string]struct{}, len(booked))
	for _, slot := range booked {
		taken[slot] = struct{}{}
	}

	available := make([]string, 0, len(entities.TimeSlots))
	for _, slot := range entities.TimeSlots {
		if _, ok := taken[slot]; !ok {
			available = append(available, slot)
		}
	}
	return available, nil
}

func (s *BookingService) wrapError(err error, message string) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		return err
	}
	return apperrors.NewHttpError(http.StatusInternalServerError, message, err, nil)
}
