package services

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/catalog"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/dto"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/entities"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/repositories"
	apperrors "github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/errors"
)

const filtersCacheKey = "catalog:filters"

type CatalogServiceInterface interface {
	Sync(ctx context.Context) (*dto.CatalogSyncResultDTO, error)
	GetFilters(ctx context.Context) ([]entities.ExternalFilter, error)
}

type CatalogService struct {
	registry      catalog.RegistryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	cache         repositories.CacheRepositoryInterface
	filtersTTL    time.Duration
	logger        *zap.Logger
}

func NewCatalogService(
	registry catalog.RegistryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	filtersTTL time.Duration,
	logger *zap.Logger,
) CatalogServiceInterface {
	return &CatalogService{
		registry:      registry,
		equipmentRepo: equipmentRepo,
		cache:         cache,
		filtersTTL:    filtersTTL,
		logger:        logger.Named("catalog_service"),
	}
}

// Sync выгружает весь каталог через широкий фасет по умолчанию и
// раскладывает записи в справочник. Локальные status и usage_type при
// обновлении сохраняются, поэтому прогон по неизменившейся выгрузке
// идемпотентен. Записи без id или имени пропускаются и считаются.
func (s *CatalogService) Sync(ctx context.Context) (*dto.CatalogSyncResultDTO, error) {
	provider, err := s.registry.GetActive()
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusInternalServerError,
			"Catalog provider is not configured", err, nil)
	}

	raw, err := provider.SearchEquipments(ctx, "", catalog.BroadDefaultFilters)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusInternalServerError,
			"Catalog sync failed", err, map[string]interface{}{"provider": provider.Name()})
	}

	result := &dto.CatalogSyncResultDTO{Provider: provider.Name()}
	for _, record := range raw {
		eq := catalog.Normalize(record)
		if eq.ID == "" || eq.Name == "" {
			result.Skipped++
			continue
		}

		inserted, err := s.equipmentRepo.UpsertFromCatalog(ctx, eq)
		if err != nil {
			s.logger.Warn("Запись каталога не сохранилась",
				zap.String("equipmentID", eq.ID),
				zap.Error(err),
			)
			result.Skipped++
			continue
		}
		if inserted {
			result.Created++
		} else {
			result.Updated++
		}
	}

	s.logger.Info("Синхронизация каталога завершена",
		zap.String("provider", result.Provider),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

// GetFilters — фасеты внешнего каталога через Redis-кеш с TTL. Недоступный
// кеш не мешает ответу, поход к провайдеру просто происходит чаще.
func (s *CatalogService) GetFilters(ctx context.Context) ([]entities.ExternalFilter, error) {
	if cached, err := s.cache.Get(ctx, filtersCacheKey); err == nil {
		var filters []entities.ExternalFilter
		if err := json.Unmarshal([]byte(cached), &filters); err == nil {
			return filters, nil
		}
		s.logger.Warn("Кеш фасетов повреждён, перечитываем у провайдера")
	}

	provider, err := s.registry.GetActive()
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusInternalServerError,
			"Catalog provider is not configured", err, nil)
	}

	filters, err := provider.GetFilters(ctx)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusInternalServerError,
			"Failed to get catalog filters", err, map[string]interface{}{"provider": provider.Name()})
	}

	if data, err := json.Marshal(filters); err == nil {
		if err := s.cache.Set(ctx, filtersCacheKey, data, s.filtersTTL); err != nil {
			s.logger.Warn("Не удалось закешировать фасеты", zap.Error(err))
		}
	}
	return filters, nil
}
