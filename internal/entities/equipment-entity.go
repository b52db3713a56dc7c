package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Статусы оборудования. Меняются только через сервис жизненного цикла.
const (
	EquipmentStatusAvailable   = "available"
	EquipmentStatusBooked      = "booked"
	EquipmentStatusInUse       = "in_use"
	EquipmentStatusMaintenance = "maintenance"
)

// Типы использования статично делят каталог: оборудование "по брони",
// "немедленного использования" и "по долгосрочной заявке". Один экземпляр
// никогда не участвует в двух потоках одновременно.
const (
	UsageTypeBooking   = "booking_required"
	UsageTypeImmediate = "immediate_use"
	UsageTypeLongTerm  = "long_term"
)

// DefaultCategory присваивается записям без классификации.
const DefaultCategory = "other"

type Equipment struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	UsageType   string `json:"usageType"`
	ImageURL    string `json:"imageUrl"`

	Brand           null.String `json:"brand"`
	Model           null.String `json:"model"`
	SerialNumber    null.String `json:"serialNumber"`
	InventoryNumber null.String `json:"inventoryNumber"`
	Classification  null.String `json:"classification"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func IsValidEquipmentStatus(s string) bool {
	switch s {
	case EquipmentStatusAvailable, EquipmentStatusBooked, EquipmentStatusInUse, EquipmentStatusMaintenance:
		return true
	}
	return false
}

func IsValidUsageType(s string) bool {
	switch s {
	case UsageTypeBooking, UsageTypeImmediate, UsageTypeLongTerm:
		return true
	}
	return false
}
