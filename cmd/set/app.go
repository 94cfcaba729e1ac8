package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/palemoky/set-game/internal/config"
	"github.com/palemoky/set-game/internal/game"
	"github.com/palemoky/set-game/internal/logger"
	"github.com/palemoky/set-game/internal/sound"
	"github.com/palemoky/set-game/internal/storage"
	"github.com/palemoky/set-game/internal/ui"
)

const pingTimeout = 2 * time.Second

// loadConfig 配置文件读取失败时退回默认配置；环境变量有误时保留文件配置
func loadConfig(path string) *config.Config {
	cfg, err := config.Load(path)
	switch {
	case err == nil:
		return cfg
	case cfg != nil:
		fmt.Fprintf(os.Stderr, "环境变量格式错误，已忽略: %v\n", err)
		return cfg
	case !os.IsNotExist(err):
		fmt.Fprintf(os.Stderr, "加载配置文件失败，使用默认配置: %v\n", err)
	}
	return config.Default()
}

func run(ctx context.Context, cfg *config.Config) error {
	log, err := logger.Init(cfg.Log.Dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "日志初始化失败，不写日志: %v\n", err)
		log = logger.Nop()
	}
	defer logger.Close()
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			panic(r)
		}
	}()

	sb, closeSB := openScoreboard(ctx, cfg.Redis, log)
	defer closeSB()

	snd := openSound(cfg.Sound, log)
	defer snd.Close()

	opts := []game.Option{
		game.WithLayout(cfg.Game.InitialSize, cfg.Game.RowWidth),
		game.WithLogger(log),
	}
	if cfg.Game.Seed != 0 {
		opts = append(opts, game.WithSeed(cfg.Game.Seed))
	}
	g := game.New(opts...)

	uiOpts := ui.Options{
		Player:         cfg.Player.Name,
		MessageTimeout: cfg.Game.MessageTimeout(),
		Sound:          snd,
		Logger:         log,
	}
	// 不能直接赋值 nil 的 *storage.Scoreboard，否则接口不为 nil
	if sb != nil {
		uiOpts.Scoreboard = sb
	}
	return ui.Run(g, uiOpts)
}

// openScoreboard Redis 未启用或连不上时返回 nil，游戏照常进行
func openScoreboard(ctx context.Context, cfg config.RedisConfig, log *zap.Logger) (*storage.Scoreboard, func()) {
	if !cfg.Enabled {
		return nil, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	sb := storage.NewScoreboard(client)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := sb.Ping(pingCtx); err != nil {
		log.Warn("scoreboard disabled", zap.String("addr", cfg.Addr), zap.Error(err))
		_ = client.Close()
		return nil, func() {}
	}

	log.Info("scoreboard connected", zap.String("addr", cfg.Addr))
	return sb, func() { _ = client.Close() }
}

type soundCloser interface {
	sound.Player
	Close()
}

type muteCloser struct{ sound.Mute }

func (muteCloser) Close() {}

// openSound 音效初始化失败时静音
func openSound(cfg config.SoundConfig, log *zap.Logger) soundCloser {
	if !cfg.On() {
		return muteCloser{}
	}
	sm := sound.NewSoundManager("")
	if err := sm.Init(); err != nil {
		log.Warn("sound disabled", zap.Error(err))
		return muteCloser{}
	}
	return sm
}
