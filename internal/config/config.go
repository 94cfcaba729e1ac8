package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	defaultInitialSize    = 12
	defaultRowWidth       = 3
	defaultMessageTimeout = 1500
	defaultPlayerName     = "player"
	defaultRedisAddr      = "localhost:6379"
)

// Config 客户端配置
type Config struct {
	Game   GameConfig   `yaml:"game"`
	Player PlayerConfig `yaml:"player"`
	Redis  RedisConfig  `yaml:"redis"`
	Sound  SoundConfig  `yaml:"sound"`
	Log    LogConfig    `yaml:"log"`
}

// GameConfig 游戏配置
type GameConfig struct {
	InitialSize      int    `yaml:"initial_size" env:"GAME_INITIAL_SIZE"`             // 开局牌数
	RowWidth         int    `yaml:"row_width" env:"GAME_ROW_WIDTH"`                   // 每行牌数
	Seed             uint64 `yaml:"seed" env:"GAME_SEED"`                             // 随机种子，0 表示随机
	MessageTimeoutMS int    `yaml:"message_timeout_ms" env:"GAME_MESSAGE_TIMEOUT_MS"` // 提示消息显示时长（毫秒）
}

// MessageTimeout 返回提示消息的显示时长
func (c *GameConfig) MessageTimeout() time.Duration {
	return time.Duration(c.MessageTimeoutMS) * time.Millisecond
}

// PlayerConfig 玩家配置
type PlayerConfig struct {
	Name string `yaml:"name" env:"PLAYER_NAME"`
}

// RedisConfig Redis 配置，用于记分板
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled" env:"REDIS_ENABLED"`
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB"`
}

// SoundConfig 音效配置
type SoundConfig struct {
	Enabled *bool `yaml:"enabled" env:"SOUND_ENABLED"`
}

// On 未配置时默认开启
func (c SoundConfig) On() bool {
	return c.Enabled == nil || *c.Enabled
}

// LogConfig 日志配置
type LogConfig struct {
	Dir string `yaml:"dir" env:"LOG_DIR"` // 为空时使用 ~/.set-game
}

// Load 加载配置文件，然后应用环境变量和默认值。
// 环境变量格式错误时仍返回已解析的配置（出错的字段保持文件中的值）和错误
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	envErr := env.Parse(&cfg)
	cfg.applyDefaults()
	if envErr != nil {
		return &cfg, fmt.Errorf("invalid environment: %w", envErr)
	}
	return &cfg, nil
}

// Default 返回默认配置（同样应用环境变量）
func Default() *Config {
	cfg := &Config{}
	// 环境变量格式错误时忽略，保持默认值
	_ = env.Parse(cfg)
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Game.InitialSize <= 0 {
		c.Game.InitialSize = defaultInitialSize
	}
	if c.Game.RowWidth <= 0 {
		c.Game.RowWidth = defaultRowWidth
	}
	if c.Game.MessageTimeoutMS <= 0 {
		c.Game.MessageTimeoutMS = defaultMessageTimeout
	}
	if c.Player.Name == "" {
		c.Player.Name = os.Getenv("USER")
	}
	if c.Player.Name == "" {
		c.Player.Name = defaultPlayerName
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = defaultRedisAddr
	}
}
