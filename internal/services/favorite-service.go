package services

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/entities"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/repositories"
	apperrors "github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/errors"
)

type FavoriteServiceInterface interface {
	Add(ctx context.Context, userID int64, equipmentID string) error
	Remove(ctx context.Context, userID int64, equipmentID string) error
	List(ctx context.Context, userID int64) ([]entities.Equipment, error)
}

type FavoriteService struct {
	favoriteRepo  repositories.FavoriteRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	logger        *zap.Logger
}

func NewFavoriteService(
	favoriteRepo repositories.FavoriteRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) FavoriteServiceInterface {
	return &FavoriteService{
		favoriteRepo:  favoriteRepo,
		equipmentRepo: equipmentRepo,
		logger:        logger.Named("favorite_service"),
	}
}

// Add проверяет, что оборудование существует, и кладёт id в множество
// пользователя. Повторное добавление безвредно.
func (s *FavoriteService) Add(ctx context.Context, userID int64, equipmentID string) error {
	if _, err := s.equipmentRepo.FindEquipment(ctx, equipmentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("Equipment not found")
		}
		return apperrors.NewHttpError(http.StatusInternalServerError,
			"Failed to add favorite", err, map[string]interface{}{"equipmentID": equipmentID})
	}

	if err := s.favoriteRepo.Add(ctx, userID, equipmentID); err != nil {
		return apperrors.NewHttpError(http.StatusInternalServerError,
			"Failed to add favorite", err, map[string]interface{}{"equipmentID": equipmentID})
	}
	return nil
}

// Remove идемпотентен: удаление отсутствующего id не ошибка.
func (s *FavoriteService) Remove(ctx context.Context, userID int64, equipmentID string) error {
	if err := s.favoriteRepo.Remove(ctx, userID, equipmentID); err != nil {
		return apperrors.NewHttpError(http.StatusInternalServerError,
			"Failed to remove favorite", err, map[string]interface{}{"equipmentID": equipmentID})
	}
	return nil
}

// List раскрывает множество id в записи справочника. Висячие id (запись
// исчезла из справочника) молча пропускаются.
func (s *FavoriteService) List(ctx context.Context, userID int64) ([]entities.Equipment, error) {
	ids, err := s.favoriteRepo.List(ctx, userID)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusInternalServerError,
			"Failed to get favorites", err, map[string]interface{}{"userID": userID})
	}

	list := make([]entities.Equipment, 0, len(ids))
	for _, id := range ids {
		eq, err := s.equipmentRepo.FindEquipment(ctx, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				s.logger.Debug("Избранное ссылается на отсутствующее оборудование",
					zap.String("equipmentID", id),
				)
				continue
			}
			return nil, apperrors.NewHttpError(http.StatusInternalServerError,
				"Failed to get favorites", err, map[string]interface{}{"userID": userID})
		}
		list = append(list, *eq)
	}
	return list, nil
}
