package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key 前缀
	resultKeyPrefix  = "game:result:"
	playerStatsKey   = "player:stats:"
	leaderboardKey   = "leaderboard:sets"
	dailyLeaderboard = "leaderboard:daily:"

	// 对局结果过期时间
	resultExpiration = 30 * 24 * time.Hour
)

// Result 一局游戏的结果（只记录结果，不保存可恢复的对局状态）
type Result struct {
	GameID     string `json:"game_id"`
	Player     string `json:"player"`
	Score      int    `json:"score"`       // 找到的 Set 数
	CardsLeft  int    `json:"cards_left"`  // 结束时剩余的牌
	DurationMS int64  `json:"duration_ms"` // 对局时长
	Finished   bool   `json:"finished"`    // 是否打到了终局
	FinishedAt int64  `json:"finished_at"`
}

// PlayerStats 玩家统计数据
type PlayerStats struct {
	Player       string `json:"player"`
	Games        int    `json:"games"`          // 总局数
	Finished     int    `json:"finished"`       // 打完的局数
	TotalSets    int    `json:"total_sets"`     // 累计找到的 Set
	BestScore    int    `json:"best_score"`     // 单局最高
	FastestMS    int64  `json:"fastest_ms"`     // 打完一局的最短用时
	LastPlayedAt int64  `json:"last_played_at"` // 最后游戏时间
	CreatedAt    int64  `json:"created_at"`     // 首次游戏时间
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank      int    `json:"rank"`
	Player    string `json:"player"`
	BestScore int    `json:"best_score"`
	Games     int    `json:"games"`
	TotalSets int    `json:"total_sets"`
}

// Scoreboard Redis 记分板
type Scoreboard struct {
	redis *redis.Client
}

// NewScoreboard 创建记分板
func NewScoreboard(client *redis.Client) *Scoreboard {
	return &Scoreboard{redis: client}
}

// Ping 检查 Redis 是否可用
func (s *Scoreboard) Ping(ctx context.Context) error {
	return s.redis.Ping(ctx).Err()
}

// --- 对局结果 ---

// RecordResult 保存对局结果，并更新玩家统计和排行榜
func (s *Scoreboard) RecordResult(ctx context.Context, res Result) error {
	if res.GameID == "" || res.Player == "" {
		return fmt.Errorf("result needs a game id and a player")
	}
	if res.FinishedAt == 0 {
		res.FinishedAt = time.Now().Unix()
	}

	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("序列化对局结果失败: %w", err)
	}
	if err := s.redis.Set(ctx, resultKeyPrefix+res.GameID, data, resultExpiration).Err(); err != nil {
		return err
	}

	stats, err := s.getOrCreateStats(ctx, res.Player)
	if err != nil {
		return err
	}
	applyResult(stats, res)
	if err := s.SavePlayerStats(ctx, stats); err != nil {
		return err
	}
	return s.updateLeaderboard(ctx, stats, res)
}

// LoadResult 读取对局结果，不存在时返回 nil
func (s *Scoreboard) LoadResult(ctx context.Context, gameID string) (*Result, error) {
	data, err := s.redis.Get(ctx, resultKeyPrefix+gameID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("反序列化对局结果失败: %w", err)
	}
	return &res, nil
}

// --- 玩家统计 ---

// GetPlayerStats 获取玩家统计，不存在时返回 nil
func (s *Scoreboard) GetPlayerStats(ctx context.Context, player string) (*PlayerStats, error) {
	data, err := s.redis.Get(ctx, playerStatsKey+player).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats PlayerStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// SavePlayerStats 保存玩家统计
func (s *Scoreboard) SavePlayerStats(ctx context.Context, stats *PlayerStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, playerStatsKey+stats.Player, data, 0).Err()
}

func (s *Scoreboard) getOrCreateStats(ctx context.Context, player string) (*PlayerStats, error) {
	stats, err := s.GetPlayerStats(ctx, player)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return &PlayerStats{Player: player, CreatedAt: time.Now().Unix()}, nil
	}
	return stats, nil
}

// applyResult 把一局结果计入统计
func applyResult(stats *PlayerStats, res Result) {
	stats.Games++
	stats.TotalSets += res.Score
	stats.BestScore = max(stats.BestScore, res.Score)
	stats.LastPlayedAt = res.FinishedAt

	if res.Finished {
		stats.Finished++
		if stats.FastestMS == 0 || res.DurationMS < stats.FastestMS {
			stats.FastestMS = res.DurationMS
		}
	}
}

// --- 排行榜 ---

// updateLeaderboard 总榜记录每位玩家的单局最高分，日榜记录当天的最高分
func (s *Scoreboard) updateLeaderboard(ctx context.Context, stats *PlayerStats, res Result) error {
	if err := s.redis.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  float64(stats.BestScore),
		Member: stats.Player,
	}).Err(); err != nil {
		return err
	}

	dailyKey := dailyLeaderboard + time.Unix(res.FinishedAt, 0).Format("2006-01-02")
	current, err := s.redis.ZScore(ctx, dailyKey, res.Player).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	if errors.Is(err, redis.Nil) || float64(res.Score) > current {
		if err := s.redis.ZAdd(ctx, dailyKey, redis.Z{
			Score:  float64(res.Score),
			Member: res.Player,
		}).Err(); err != nil {
			return err
		}
	}
	// 设置过期时间（2天）
	return s.redis.Expire(ctx, dailyKey, 48*time.Hour).Err()
}

// Top 获取总榜前 limit 名
func (s *Scoreboard) Top(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		return nil, nil
	}
	results, err := s.redis.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(results))
	for i, z := range results {
		player, ok := z.Member.(string)
		if !ok {
			continue
		}
		entry := LeaderboardEntry{Rank: i + 1, Player: player, BestScore: int(z.Score)}
		if stats, err := s.GetPlayerStats(ctx, player); err == nil && stats != nil {
			entry.Games = stats.Games
			entry.TotalSets = stats.TotalSets
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Rank 获取玩家在总榜的名次，未上榜返回 -1
func (s *Scoreboard) Rank(ctx context.Context, player string) (int64, error) {
	rank, err := s.redis.ZRevRank(ctx, leaderboardKey, player).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return -1, nil
		}
		return -1, err
	}
	return rank + 1, nil
}
