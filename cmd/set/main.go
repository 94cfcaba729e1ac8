package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/palemoky/set-game/internal/config"
	"github.com/palemoky/set-game/internal/logger"
)

func main() {
	// .env 不存在时忽略
	_ = godotenv.Load()

	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "set: %v\n", err)
		if path := logger.GetLogPath(); path != "" {
			fmt.Fprintf(os.Stderr, "详细日志: %s\n", path)
		}
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "set",
		Usage: "play the card game Set in your terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "configs/config.yaml",
				Usage:   "配置文件路径",
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "随机种子，相同种子发同样的牌",
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "记分板上显示的玩家名",
			},
			&cli.BoolFlag{
				Name:  "no-sound",
				Usage: "关闭音效",
			},
			&cli.BoolFlag{
				Name:  "redis",
				Usage: "把成绩记录到 Redis 记分板",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := loadConfig(cmd.String("config"))
			applyFlags(cfg, cmd)
			return run(ctx, cfg)
		},
	}
}

// applyFlags 命令行参数优先于配置文件和环境变量
func applyFlags(cfg *config.Config, cmd *cli.Command) {
	if cmd.IsSet("seed") {
		cfg.Game.Seed = cmd.Uint64("seed")
	}
	if name := cmd.String("name"); name != "" {
		cfg.Player.Name = name
	}
	if cmd.Bool("no-sound") {
		off := false
		cfg.Sound.Enabled = &off
	}
	if cmd.Bool("redis") {
		cfg.Redis.Enabled = true
	}
}
