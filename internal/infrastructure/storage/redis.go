package storage

import (
	"context"
	"fmt"

	"pantry-matcher/internal/infrastructure/config"
	"pantry-matcher/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisRepository 以 Redis 實作社群食譜持久層
type RedisRepository struct {
	client     *redis.Client
	recipesKey string
	tombsKey   string
}

// NewRedisRepository 創建 Redis 持久層
func NewRedisRepository(cfg *config.StorageConfig) (*RedisRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisRepository{
		client:     client,
		recipesKey: fmt.Sprintf("%s:community_recipes_v1", cfg.KeyPrefix),
		tombsKey:   fmt.Sprintf("%s:community_recipes_tombstones_v1", cfg.KeyPrefix),
	}, nil
}

// List 讀取投稿清單；缺鍵或內容損毀時退化為空清單
func (r *RedisRepository) List(ctx context.Context) ([]common.Recipe, error) {
	data, err := r.client.Get(ctx, r.recipesKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get community recipes: %w", err)
	}

	var recipes []common.Recipe
	if err := common.ParseJSONBytes(data, &recipes); err != nil {
		common.LogWarn("社群食譜內容損毀，視為空清單",
			zap.Error(err),
			zap.String("key", r.recipesKey),
		)
		return nil, nil
	}
	return recipes, nil
}

// Put 追加一筆投稿
func (r *RedisRepository) Put(ctx context.Context, recipe common.Recipe) error {
	recipes, err := r.List(ctx)
	if err != nil {
		return err
	}
	recipes = append(recipes, recipe)
	return r.saveRecipes(ctx, recipes)
}

// Delete 自清單移除指定 id
func (r *RedisRepository) Delete(ctx context.Context, id int) error {
	recipes, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := recipes[:0]
	for _, rec := range recipes {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	return r.saveRecipes(ctx, kept)
}

// Tombstones 讀取墓碑集合；缺鍵或損毀時退化為空集合
func (r *RedisRepository) Tombstones(ctx context.Context) (map[int]struct{}, error) {
	data, err := r.client.Get(ctx, r.tombsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return map[int]struct{}{}, nil
		}
		return nil, fmt.Errorf("failed to get tombstones: %w", err)
	}

	var ids []int
	if err := common.ParseJSONBytes(data, &ids); err != nil {
		common.LogWarn("墓碑內容損毀，視為空集合",
			zap.Error(err),
			zap.String("key", r.tombsKey),
		)
		return map[int]struct{}{}, nil
	}

	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

// AddTombstone 無條件加入墓碑
func (r *RedisRepository) AddTombstone(ctx context.Context, id int) error {
	set, err := r.Tombstones(ctx)
	if err != nil {
		return err
	}
	set[id] = struct{}{}
	return r.saveTombstones(ctx, set)
}

// RemoveTombstone 自墓碑移除 id
func (r *RedisRepository) RemoveTombstone(ctx context.Context, id int) error {
	set, err := r.Tombstones(ctx)
	if err != nil {
		return err
	}
	delete(set, id)
	return r.saveTombstones(ctx, set)
}

// Close 關閉 Redis 連線
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func (r *RedisRepository) saveRecipes(ctx context.Context, recipes []common.Recipe) error {
	data, err := common.ToJSON(recipes)
	if err != nil {
		return fmt.Errorf("failed to marshal community recipes: %w", err)
	}
	if err := r.client.Set(ctx, r.recipesKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save community recipes: %w", err)
	}
	return nil
}

func (r *RedisRepository) saveTombstones(ctx context.Context, set map[int]struct{}) error {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	data, err := common.ToJSON(ids)
	if err != nil {
		return fmt.Errorf("failed to marshal tombstones: %w", err)
	}
	if err := r.client.Set(ctx, r.tombsKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save tombstones: %w", err)
	}
	return nil
}
