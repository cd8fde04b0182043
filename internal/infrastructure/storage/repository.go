package storage

import (
	"context"

	"pantry-matcher/internal/pkg/common"
)

// CommunityRepository 社群食譜持久層
// 兩個邏輯鍵：投稿清單與墓碑（已刪除 id）集合。讀取失敗一律視為空集合，
// 不可讓持久層錯誤中斷比對流程
type CommunityRepository interface {
	// List 讀取全部已持久化的社群食譜
	List(ctx context.Context) ([]common.Recipe, error)

	// Put 追加一筆社群食譜
	Put(ctx context.Context, recipe common.Recipe) error

	// Delete 從清單移除指定 id（不存在時不視為錯誤）
	Delete(ctx context.Context, id int) error

	// Tombstones 讀取墓碑集合
	Tombstones(ctx context.Context) (map[int]struct{}, error)

	// AddTombstone 無條件加入墓碑
	AddTombstone(ctx context.Context, id int) error

	// RemoveTombstone 將 id 自墓碑移除（重新投稿時復活）
	RemoveTombstone(ctx context.Context, id int) error
}
