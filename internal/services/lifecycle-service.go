package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/entities"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/repositories"
	apperrors "github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/errors"
)

// LifecycleServiceInterface — единственная точка смены статуса оборудования.
// Поток "немедленного использования" (Use/Finish) живёт здесь целиком,
// цикл booked/available лента бронирований проходит через MarkBookedTx и
// ReleaseTx в своих транзакциях.
type LifecycleServiceInterface interface {
	Use(ctx context.Context, equipmentID string) (*entities.Equipment, error)
	Finish(ctx context.Context, equipmentID string) (*entities.Equipment, error)
	MarkBookedTx(ctx context.Context, tx pgx.Tx, equipmentID string) error
	ReleaseTx(ctx context.Context, tx pgx.Tx, equipmentID string) error
}

type LifecycleService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	txManager     repositories.TxManagerInterface
	logger        *zap.Logger
}

func NewLifecycleService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) LifecycleServiceInterface {
	return &LifecycleService{
		equipmentRepo: equipmentRepo,
		txManager:     txManager,
		logger:        logger.Named("lifecycle_service"),
	}
}

// Use переводит оборудование немедленного использования из available в
// in_use. Проверка и запись идут под блокировкой строки, чтобы два
// параллельных запроса не заняли один прибор.
func (s *LifecycleService) Use(ctx context.Context, equipmentID string) (*entities.Equipment, error) {
	var updated *entities.Equipment

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		eq, err := s.equipmentRepo.LockEquipment(ctx, tx, equipmentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewNotFoundError("Equipment not found")
			}
			return err
		}

		if eq.UsageType != entities.UsageTypeImmediate {
			return apperrors.NewConflictError("Equipment does not support immediate use")
		}
		if eq.Status != entities.EquipmentStatusAvailable {
			return apperrors.NewConflictError("Equipment is not available")
		}

		if err := s.equipmentRepo.UpdateStatusTx(ctx, tx, equipmentID, entities.EquipmentStatusInUse); err != nil {
			return err
		}

		s.logStatusChange(equipmentID, eq.Status, entities.EquipmentStatusInUse)
		eq.Status = entities.EquipmentStatusInUse
		updated = eq
		return nil
	})
	if err != nil {
		return nil, s.wrapError(err, equipmentID)
	}
	return updated, nil
}

// Finish завершает немедленное использование: in_use возвращается в
// available, любой другой статус — конфликт.
func (s *LifecycleService) Finish(ctx context.Context, equipmentID string) (*entities.Equipment, error) {
	var updated *entities.Equipment

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		eq, err := s.equipmentRepo.LockEquipment(ctx, tx, equipmentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewNotFoundError("Equipment not found")
			}
			return err
		}

		if eq.Status != entities.EquipmentStatusInUse {
			return apperrors.NewConflictError(fmt.Sprintf("Equipment is not in use (current status: %s)", eq.Status))
		}

		if err := s.equipmentRepo.UpdateStatusTx(ctx, tx, equipmentID, entities.EquipmentStatusAvailable); err != nil {
			return err
		}

		s.logStatusChange(equipmentID, eq.Status, entities.EquipmentStatusAvailable)
		eq.Status = entities.EquipmentStatusAvailable
		updated = eq
		return nil
	})
	if err != nil {
		return nil, s.wrapError(err, equipmentID)
	}
	return updated, nil
}

// MarkBookedTx вызывается лентой бронирований в её транзакции, строка
// оборудования к этому моменту уже заблокирована и проверена.
func (s *LifecycleService) MarkBookedTx(ctx context.Context, tx pgx.Tx, equipmentID string) error {
	if err := s.equipmentRepo.UpdateStatusTx(ctx, tx, equipmentID, entities.EquipmentStatusBooked); err != nil {
		return err
	}
	s.logStatusChange(equipmentID, entities.EquipmentStatusAvailable, entities.EquipmentStatusBooked)
	return nil
}

// ReleaseTx возвращает оборудование в available при отмене брони.
func (s *LifecycleService) ReleaseTx(ctx context.Context, tx pgx.Tx, equipmentID string) error {
	if err := s.equipmentRepo.UpdateStatusTx(ctx, tx, equipmentID, entities.EquipmentStatusAvailable); err != nil {
		return err
	}
	s.logStatusChange(equipmentID, entities.EquipmentStatusBooked, entities.EquipmentStatusAvailable)
	return nil
}

func (s *LifecycleService) logStatusChange(equipmentID, from, to string) {
	s.logger.Info("Смена статуса оборудования",
		zap.String("equipmentID", equipmentID),
		zap.String("from", from),
		zap.String("to", to),
	)
}

func (s *LifecycleService) wrapError(err error, equipmentID string) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		return err
	}
	return apperrors.NewHttpError(http.StatusInternalServerError,
		"Failed to change equipment status", err, map[string]interface{}{"equipmentID": equipmentID})
}
