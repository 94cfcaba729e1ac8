package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	appDirName    = ".set-game"
	logFileName   = "debug.log"
	maxLogSizeMB  = 10
	maxLogBackups = 3
)

var (
	debugLog *lumberjack.Logger
	logPath  string
	base     = zap.NewNop()
)

// Init opens the debug log and returns a JSON logger writing to it.
// An empty dir means ~/.set-game.
func Init(dir string) (*zap.Logger, error) {
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(homeDir, appDirName)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logPath = filepath.Join(dir, logFileName)
	debugLog = &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(debugLog), zap.DebugLevel)
	base = zap.New(core, zap.AddCaller())

	base.Info("logger initialized", zap.String("path", logPath))
	return base, nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}

// Close flushes and closes the debug log.
func Close() {
	_ = base.Sync()
	if debugLog != nil {
		_ = debugLog.Close()
		debugLog = nil
	}
	base = zap.NewNop()
}

// LogPanic logs a recovered panic with its stack trace.
func LogPanic(r any) {
	base.Error("panic", zap.Any("recovered", r), zap.ByteString("stack", debug.Stack()))
}

// GetLogPath returns the current log file path.
func GetLogPath() string {
	return logPath
}
