package catalog

import (
	"strings"

	"github.com/aarondl/null/v8"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/entities"
)

// DeriveEquipmentID — чистая и тотальная функция идентификатора: один и
// тот же физический прибор при повторных выгрузках каталога всегда
// получает один и тот же id. Номера соединяются через "-", чтобы пары
// вроде ("12","345") и ("1","2345") не склеивались в одно значение.
func DeriveEquipmentID(inventoryNumber, serialNumber, rawID string) string {
	inv := strings.TrimSpace(inventoryNumber)
	ser := strings.TrimSpace(serialNumber)

	switch {
	case inv != "" && ser != "":
		return inv + "-" + ser
	case inv != "":
		return inv
	case ser != "":
		return ser
	default:
		return strings.TrimSpace(rawID)
	}
}

// InferCategory — первый пробельный токен классификации в нижнем регистре;
// без классификации запись уходит в категорию по умолчанию.
func InferCategory(classification string) string {
	fields := strings.Fields(classification)
	if len(fields) == 0 {
		return entities.DefaultCategory
	}
	return strings.ToLower(fields[0])
}

// Normalize превращает сырую запись каталога в каноническую сущность.
// Преобразование никогда не падает: отсутствующие имя или описание
// остаются пустыми, а не считаются ошибкой.
func Normalize(raw RawEquipmentRecord) entities.Equipment {
	return entities.Equipment{
		ID:          DeriveEquipmentID(raw.InventoryNumber, raw.SerialNumber, raw.ID),
		Name:        strings.TrimSpace(raw.Name),
		Description: strings.TrimSpace(raw.Description),
		Category:    InferCategory(raw.Classification),
		Location:    strings.TrimSpace(raw.Location),
		Status:      entities.EquipmentStatusAvailable,
		UsageType:   entities.UsageTypeBooking,
		ImageURL:    strings.TrimSpace(raw.ImageURL),

		Brand:           nullIfEmpty(raw.Brand),
		Model:           nullIfEmpty(raw.Model),
		SerialNumber:    nullIfEmpty(raw.SerialNumber),
		InventoryNumber: nullIfEmpty(raw.InventoryNumber),
		Classification:  nullIfEmpty(raw.Classification),
	}
}

func nullIfEmpty(s string) null.String {
	s = strings.TrimSpace(s)
	return null.NewString(s, s != "")
}
