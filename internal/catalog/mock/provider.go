package mock

import (
	"context"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/catalog"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/entities"
)

// MockProvider подменяет внешний каталог в тестах и в dev-режиме.
type MockProvider struct {
	Equipments []catalog.RawEquipmentRecord
	Filters    []entities.ExternalFilter
	Err        error

	// Последние аргументы SearchEquipments, для проверок в тестах.
	LastTerm    string
	LastFilters map[string][]string
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) Name() string {
	return "mock"
}

func (m *MockProvider) SearchEquipments(ctx context.Context, term string, filters map[string][]string) ([]catalog.RawEquipmentRecord, error) {
	m.LastTerm = term
	m.LastFilters = filters
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Equipments, nil
}

func (m *MockProvider) GetFilters(ctx context.Context) ([]entities.ExternalFilter, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Filters, nil
}
