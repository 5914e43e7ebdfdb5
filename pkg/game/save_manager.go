package game

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// MaxHighScores 排行榜保留的记录数
const MaxHighScores = 10

const (
	scoresObject   = "scores"
	scoresProperty = "board"
)

// HighScore 一局游戏的结果
type HighScore struct {
	Score    int       `yaml:"score"`
	Level    int       `yaml:"level"`
	Won      bool      `yaml:"won"`
	PlayedAt time.Time `yaml:"playedAt"`
}

// scoreBoard 持久化格式
type scoreBoard struct {
	Entries []HighScore `yaml:"entries"`
}

// SaveManager 排行榜存档
//
// 职责：
//   - 加载和保存最高分记录
//   - 按分数降序维护前 MaxHighScores 条
//
// gdataManager 为 nil 时记录只保存在内存中。
type SaveManager struct {
	gdataManager *gdata.Manager
	entries      []HighScore
}

// NewSaveManager 创建存档管理器
//
// 参数：
//   - gdataManager: gdata 存储管理器，可为 nil
//
// 返回：
//   - *SaveManager: 存档管理器实例
//   - error: 已有存档无法解析时返回错误，此时管理器仍可用（空排行榜）
func NewSaveManager(gdataManager *gdata.Manager) (*SaveManager, error) {
	sm := &SaveManager{gdataManager: gdataManager}
	if err := sm.Load(); err != nil {
		return sm, err
	}
	return sm, nil
}

// Load 从 gdata 读取排行榜
func (sm *SaveManager) Load() error {
	sm.entries = nil
	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(scoresObject, scoresProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(scoresObject, scoresProperty)
	if err != nil {
		return fmt.Errorf("failed to load high scores: %w", err)
	}

	var board scoreBoard
	if err := yaml.Unmarshal(data, &board); err != nil {
		return fmt.Errorf("failed to parse high scores: %w", err)
	}

	sm.entries = board.Entries
	sortScores(sm.entries)
	return nil
}

// Save 持久化排行榜
func (sm *SaveManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(scoreBoard{Entries: sm.entries})
	if err != nil {
		return fmt.Errorf("failed to marshal high scores: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(scoresObject, scoresProperty, data); err != nil {
		return fmt.Errorf("failed to save high scores: %w", err)
	}
	return nil
}

// Record 记录一局结果并保存
//
// 参数：
//   - entry: 本局结果
//
// 返回：
//   - int: 在排行榜中的名次（从 1 开始），未上榜返回 0
//   - error: 保存失败时返回错误（内存中的排行榜仍然更新）
func (sm *SaveManager) Record(entry HighScore) (int, error) {
	pos := sort.Search(len(sm.entries), func(i int) bool {
		other := sm.entries[i]
		if other.Score != entry.Score {
			return other.Score < entry.Score
		}
		return other.PlayedAt.After(entry.PlayedAt)
	})

	sm.entries = append(sm.entries, HighScore{})
	copy(sm.entries[pos+1:], sm.entries[pos:])
	sm.entries[pos] = entry

	rank := pos + 1
	if len(sm.entries) > MaxHighScores {
		sm.entries = sm.entries[:MaxHighScores]
	}
	if rank > MaxHighScores {
		rank = 0
	}

	if err := sm.Save(); err != nil {
		return rank, err
	}
	log.Printf("[SaveManager] Recorded score %d (rank %d)", entry.Score, rank)
	return rank, nil
}

// HighScores 返回排行榜副本
func (sm *SaveManager) HighScores() []HighScore {
	out := make([]HighScore, len(sm.entries))
	copy(out, sm.entries)
	return out
}

// Best 返回最高分，没有记录时为 0
func (sm *SaveManager) Best() int {
	if len(sm.entries) == 0 {
		return 0
	}
	return sm.entries[0].Score
}

// sortScores 分数降序，同分时早的在前
func sortScores(entries []HighScore) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].PlayedAt.Before(entries[j].PlayedAt)
	})
}
