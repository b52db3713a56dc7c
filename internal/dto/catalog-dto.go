package dto

// CatalogSyncResultDTO — итог одного прогона синхронизации с внешним
// каталогом.
type CatalogSyncResultDTO struct {
	Provider string `json:"provider"`
	Created  int    `json:"created"`
	Updated  int    `json:"updated"`
	Skipped  int    `json:"skipped"`
}
