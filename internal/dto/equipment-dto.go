package dto

// CreateEquipmentDTO — админский путь добавления оборудования. Такая запись
// получает свежий локальный идентификатор, а не производный от номеров.
type CreateEquipmentDTO struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url"`
	UsageType   string `json:"usageType" validate:"omitempty,usage_type"`

	Brand           *string `json:"brand,omitempty"`
	Model           *string `json:"model,omitempty"`
	SerialNumber    *string `json:"serialNumber,omitempty"`
	InventoryNumber *string `json:"inventoryNumber,omitempty"`
	Classification  *string `json:"classification,omitempty"`
}
