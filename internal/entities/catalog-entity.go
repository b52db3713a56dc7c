package entities

// ExternalFilter — фасет поиска внешнего каталога. Система его не владеет,
// а лишь транслирует клиенту как есть.
type ExternalFilter struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Options []string `json:"options"`
}

// EquipmentReportRow — строка отчёта по использованию оборудования.
type EquipmentReportRow struct {
	Equipment
	TotalBookings  int64 `json:"totalBookings"`
	ActiveBookings int64 `json:"activeBookings"`
}
