package main

import (
	"context"
	"flag"
	"log"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/config"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/database/postgresql"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/seeders"
)

func main() {
	runUsers := flag.Bool("users", false, "Наполнить пользователей")
	runEquipment := flag.Bool("equipment", false, "Наполнить справочник оборудования")
	runAll := flag.Bool("all", false, "Запустить все сидеры")
	flag.Parse()

	if !*runUsers && !*runEquipment && !*runAll {
		log.Println("Не выбран ни один сидер для запуска.")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()
	log.Println("Используется DSN:", cfg.Postgres.DSN)

	ctx := context.Background()
	dbPool, err := postgresql.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer dbPool.Close()

	if *runAll || *runUsers {
		seeders.SeedUsers(dbPool)
	}
	if *runAll || *runEquipment {
		seeders.SeedEquipment(dbPool)
	}

	log.Println("Сидирование завершено.")
}
