package services

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/catalog"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/dto"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/entities"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/repositories"
	apperrors "github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/errors"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/types"
)

// CategoryAll — сентинел "без фильтра" для выборки по категории.
const CategoryAll = "all"

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id string) (*entities.Equipment, error)
	FindByCategory(ctx context.Context, category string) ([]entities.Equipment, error)
	SearchEquipments(ctx context.Context, term string, filters map[string][]string) ([]entities.Equipment, error)
	CreateEquipment(ctx context.Context, d dto.CreateEquipmentDTO) (*entities.Equipment, error)
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	registry      catalog.RegistryInterface
	logger        *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	registry catalog.RegistryInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepo: equipmentRepo,
		registry:      registry,
		logger:        logger.Named("equipment_service"),
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	list, total, err := s.equipmentRepo.GetEquipments(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.NewHttpError(http.StatusInternalServerError,
			"Failed to get equipment list", err, map[string]interface{}{"filter": filter})
	}
	return list, total, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	eq, err := s.equipmentRepo.FindEquipment(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Equipment not found")
		}
		return nil, apperrors.NewHttpError(http.StatusInternalServerError,
			"Failed to get equipment", err, map[string]interface{}{"equipmentID": id})
	}
	return eq, nil
}

func (s *EquipmentService) FindByCategory(ctx context.Context, category string) ([]entities.Equipment, error) {
	// "all" означает весь справочник без фильтра.
	if category == CategoryAll {
		list, _, err := s.equipmentRepo.GetEquipments(ctx, types.Filter{})
		if err != nil {
			return nil, apperrors.NewHttpError(http.StatusInternalServerError,
				"Failed to get equipment list", err, nil)
		}
		return list, nil
	}

	list, err := s.equipmentRepo.FindByCategory(ctx, category)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusInternalServerError,
			"Failed to get equipment list", err, map[string]interface{}{"category": category})
	}
	return list, nil
}

// SearchEquipments — поиск во внешнем каталоге через активного провайдера.
// Пустой запрос без фасетов подменяется широким фасетом по умолчанию:
// внешний API отклоняет запрос совсем без селекторов. Отказ провайдера не
// роняет запрос, а деградирует до пустого списка.
func (s *EquipmentService) SearchEquipments(ctx context.Context, term string, filters map[string][]string) ([]entities.Equipment, error) {
	provider, err := s.registry.GetActive()
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusInternalServerError,
			"Catalog provider is not configured", err, nil)
	}

	if term == "" && len(filters) == 0 {
		filters = catalog.BroadDefaultFilters
	}

	raw, err := provider.SearchEquipments(ctx, term, filters)
	if err != nil {
		s.logger.Warn("Поиск в каталоге не удался, отдаём пустой список",
			zap.String("provider", provider.Name()),
			zap.String("term", term),
			zap.Error(err),
		)
		return []entities.Equipment{}, nil
	}

	list := make([]entities.Equipment, 0, len(raw))
	for _, record := range raw {
		list = append(list, catalog.Normalize(record))
	}
	return list, nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, d dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	eq, err := s.equipmentRepo.CreateEquipment(ctx, d)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusInternalServerError,
			"Failed to create equipment", err, map[string]interface{}{"name": d.Name})
	}

	s.logger.Info("Оборудование добавлено вручную",
		zap.String("equipmentID", eq.ID),
		zap.String("name", eq.Name),
	)
	return eq, nil
}
