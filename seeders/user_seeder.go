package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

var userSeeds = []struct {
	ID   int64
	Name string
}{
	{ID: 1, Name: "Default user"},
	{ID: 2, Name: "Иванов И.И."},
	{ID: 3, Name: "Петрова А.С."},
}

// SeedUsers создаёт демонстрационных пользователей, включая пользователя
// по умолчанию с id 1.
func SeedUsers(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("Запуск наполнения пользователей...")

	for _, seed := range userSeeds {
		if err := seedUser(ctx, db, seed.ID, seed.Name); err != nil {
			log.Fatalf("Ошибка создания пользователя %d: %v", seed.ID, err)
		}
	}

	if _, err := db.Exec(ctx, `SELECT setval('users_id_seq', (SELECT MAX(id) FROM users))`); err != nil {
		log.Fatalf("Ошибка сдвига последовательности users_id_seq: %v", err)
	}
	log.Println("Наполнение пользователей завершено")
}

func seedUser(ctx context.Context, db *pgxpool.Pool, id int64, name string) error {
	var exists bool
	err := db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("проверка существования пользователя: %w", err)
	}
	if exists {
		log.Printf("  - пользователь %d уже существует, пропускаем", id)
		return nil
	}

	if _, err := db.Exec(ctx, `INSERT INTO users (id, name) VALUES ($1, $2)`, id, name); err != nil {
		return fmt.Errorf("вставка пользователя: %w", err)
	}
	log.Printf("  - пользователь %d создан", id)
	return nil
}
