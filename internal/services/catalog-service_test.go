package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/catalog"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/catalog/mock"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/entities"
)

func newCatalogServiceForTest(repo *fakeEquipmentRepo, cache *fakeCacheRepo, provider *mock.MockProvider) CatalogServiceInterface {
	registry := catalog.NewRegistry()
	if err := registry.Register(provider); err != nil {
		panic(err)
	}
	if err := registry.SetActive(provider.Name()); err != nil {
		panic(err)
	}
	return NewCatalogService(registry, repo, cache, time.Minute, zap.NewNop())
}

func TestSync(t *testing.T) {
	provider := mock.NewMockProvider()
	provider.Equipments = []catalog.RawEquipmentRecord{
		{InventoryNumber: "101", SerialNumber: "SN441", Name: "Осциллограф"},
		{InventoryNumber: "102", SerialNumber: "SN872", Name: "Генератор"},
		{ID: "ext-3"}, // без имени, пропускается
	}
	repo := newFakeEquipmentRepo()
	svc := newCatalogServiceForTest(repo, newFakeCacheRepo(), provider)

	result, err := svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "mock", result.Provider)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 1, result.Skipped)

	// Повторный прогон по той же выгрузке ничего не создаёт.
	result, err = svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 2, result.Updated)
}

func TestSync_ProviderFailure(t *testing.T) {
	provider := mock.NewMockProvider()
	provider.Err = errors.New("catalog is down")
	svc := newCatalogServiceForTest(newFakeEquipmentRepo(), newFakeCacheRepo(), provider)

	_, err := svc.Sync(context.Background())
	requireHTTPError(t, err, 500, "Catalog sync failed")
}

func TestGetFilters_CachesResult(t *testing.T) {
	provider := mock.NewMockProvider()
	provider.Filters = []entities.ExternalFilter{
		{Name: "category", Label: "Категория", Options: []string{"осциллограф", "генератор"}},
	}
	cache := newFakeCacheRepo()
	svc := newCatalogServiceForTest(newFakeEquipmentRepo(), cache, provider)

	filters, err := svc.GetFilters(context.Background())
	require.NoError(t, err)
	require.Len(t, filters, 1)
	assert.Equal(t, 1, cache.sets)

	// Второй вызов обслуживается из кеша даже при лежащем провайдере.
	provider.Err = errors.New("catalog is down")
	filters, err = svc.GetFilters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "category", filters[0].Name)
	assert.Equal(t, 1, cache.sets)
}
