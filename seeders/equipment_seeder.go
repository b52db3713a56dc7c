package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

type equipmentSeed struct {
	ID              string
	Name            string
	Description     string
	Category        string
	Location        string
	UsageType       string
	InventoryNumber string
	SerialNumber    string
	Classification  string
}

// Небольшой срез реального каталога, чтобы dev-окружение было живым без
// похода во внешний API.
var equipmentSeeds = []equipmentSeed{
	{
		ID:              "101-SN441",
		Name:            "Осциллограф Tektronix TBS1052B",
		Description:     "Двухканальный цифровой осциллограф 50 МГц",
		Category:        "осциллограф",
		Location:        "Лаборатория 204",
		UsageType:       "booking_required",
		InventoryNumber: "101",
		SerialNumber:    "SN441",
		Classification:  "Осциллограф цифровой",
	},
	{
		ID:              "102-SN872",
		Name:            "Генератор сигналов Rigol DG1022Z",
		Description:     "Генератор сигналов произвольной формы, 25 МГц",
		Category:        "генератор",
		Location:        "Лаборатория 204",
		UsageType:       "booking_required",
		InventoryNumber: "102",
		SerialNumber:    "SN872",
		Classification:  "Генератор сигналов",
	},
	{
		ID:              "205-SN113",
		Name:            "Мультиметр Fluke 87V",
		Description:     "Промышленный цифровой мультиметр",
		Category:        "мультиметр",
		Location:        "Лаборатория 210",
		UsageType:       "immediate_use",
		InventoryNumber: "205",
		SerialNumber:    "SN113",
		Classification:  "Мультиметр цифровой",
	},
	{
		ID:              "310-SN557",
		Name:            "Термокамера ESPEC SH-242",
		Description:     "Камера тепла и холода, -40..+150 C",
		Category:        "термокамера",
		Location:        "Испытательный центр",
		UsageType:       "long_term",
		InventoryNumber: "310",
		SerialNumber:    "SN557",
		Classification:  "Термокамера испытательная",
	},
}

// SeedEquipment наполняет справочник демонстрационным оборудованием.
// Повторный запуск безопасен: существующие записи пропускаются.
func SeedEquipment(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("Запуск наполнения справочника оборудования...")

	for _, seed := range equipmentSeeds {
		if err := seedEquipmentRecord(ctx, db, seed); err != nil {
			log.Fatalf("Ошибка наполнения оборудования %s: %v", seed.ID, err)
		}
	}
	log.Println("Наполнение справочника оборудования завершено")
}

func seedEquipmentRecord(ctx context.Context, db *pgxpool.Pool, seed equipmentSeed) error {
	var exists bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM equipments WHERE id = $1)`, seed.ID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("проверка существования записи: %w", err)
	}
	if exists {
		log.Printf("  - %s уже существует, пропускаем", seed.ID)
		return nil
	}

	_, err = db.Exec(ctx, `
		INSERT INTO equipments (id, name, description, category, location, usage_type,
			inventory_number, serial_number, classification)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		seed.ID, seed.Name, seed.Description, seed.Category, seed.Location,
		seed.UsageType, seed.InventoryNumber, seed.SerialNumber, seed.Classification,
	)
	if err != nil {
		return fmt.Errorf("вставка записи: %w", err)
	}
	log.Printf("  - %s создано", seed.ID)
	return nil
}
