package repositories

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// FavoriteRepositoryInterface — избранное хранится вне реляционной БД,
// как множество id оборудования на пользователя.
type FavoriteRepositoryInterface interface {
	Add(ctx context.Context, userID int64, equipmentID string) error
	Remove(ctx context.Context, userID int64, equipmentID string) error
	List(ctx context.Context, userID int64) ([]string, error)
}

type RedisFavoriteRepository struct {
	client *redis.Client
}

func NewRedisFavoriteRepository(client *redis.Client) FavoriteRepositoryInterface {
	return &RedisFavoriteRepository{client: client}
}

func favoritesKey(userID int64) string {
	return fmt.Sprintf("favorites:%d", userID)
}

func (r *RedisFavoriteRepository) Add(ctx context.Context, userID int64, equipmentID string) error {
	return r.client.SAdd(ctx, favoritesKey(userID), equipmentID).Err()
}

func (r *RedisFavoriteRepository) Remove(ctx context.Context, userID int64, equipmentID string) error {
	return r.client.SRem(ctx, favoritesKey(userID), equipmentID).Err()
}

func (r *RedisFavoriteRepository) List(ctx context.Context, userID int64) ([]string, error) {
	return r.client.SMembers(ctx, favoritesKey(userID)).Result()
}
