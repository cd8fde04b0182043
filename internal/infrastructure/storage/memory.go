package storage

import (
	"context"
	"sync"

	"pantry-matcher/internal/pkg/common"
)

// MemoryRepository 記憶體版持久層，供測試與無 Redis 環境使用
type MemoryRepository struct {
	mu         sync.RWMutex
	recipes    []common.Recipe
	tombstones map[int]struct{}
}

// NewMemoryRepository 創建記憶體持久層
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		tombstones: make(map[int]struct{}),
	}
}

// List 讀取投稿清單
func (m *MemoryRepository) List(ctx context.Context) ([]common.Recipe, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]common.Recipe, len(m.recipes))
	copy(out, m.recipes)
	return out, nil
}

// Put 追加一筆投稿
func (m *MemoryRepository) Put(ctx context.Context, recipe common.Recipe) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.recipes = append(m.recipes, recipe)
	return nil
}

// Delete 自清單移除指定 id
func (m *MemoryRepository) Delete(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.recipes[:0]
	for _, rec := range m.recipes {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	m.recipes = kept
	return nil
}

// Tombstones 讀取墓碑集合
func (m *MemoryRepository) Tombstones(ctx context.Context) (map[int]struct{}, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[int]struct{}, len(m.tombstones))
	for id := range m.tombstones {
		out[id] = struct{}{}
	}
	return out, nil
}

// AddTombstone 無條件加入墓碑
func (m *MemoryRepository) AddTombstone(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tombstones[id] = struct{}{}
	return nil
}

// RemoveTombstone 自墓碑移除 id
func (m *MemoryRepository) RemoveTombstone(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.tombstones, id)
	return nil
}
