package catalog

import (
	"context"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/entities"
)

// RawEquipmentRecord — запись внешнего каталога в том виде, как её отдаёт
// поисковый API. Состав полей у провайдера плавающий: всё, что не
// перечислено здесь, отбрасывается на границе при декодировании.
type RawEquipmentRecord struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Brand           string `json:"brand"`
	Model           string `json:"model"`
	SerialNumber    string `json:"serialNumber"`
	InventoryNumber string `json:"inventoryNumber"`
	Classification  string `json:"classification"`
	Location        string `json:"location"`
	ImageURL        string `json:"imgUrl"`
}

// BroadDefaultFilters — самый широкий из известных фасетов каталога.
// Внешний API отклоняет запрос совсем без селекторов, поэтому пустой
// поиск подменяется этим фасетом и возвращает весь каталог. Это
// задокументированная причуда провайдера, а не баг.
var BroadDefaultFilters = map[string][]string{"category": {"all"}}

// CatalogProvider — источник записей об оборудовании. Для системы он
// только читается; запись в каталог невозможна.
type CatalogProvider interface {
	Name() string
	SearchEquipments(ctx context.Context, term string, filters map[string][]string) ([]RawEquipmentRecord, error)
	GetFilters(ctx context.Context) ([]entities.ExternalFilter, error)
}
