package command

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/lwmacct/251207-go-pkg-propexp/internal/config"
)

// SetupLogger 按配置创建 slog.Logger，写入 stderr 并设为默认 logger。
func SetupLogger(cfg config.LogConfig) (*slog.Logger, error) {
	logger, err := NewLogger(cfg, os.Stderr, term.IsTerminal(int(os.Stderr.Fd())))
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	return logger, nil
}

// NewLogger 创建写入 w 的 logger。
//
// format 为 auto 时，tty 为 true 使用文本格式，否则使用 JSON。
func NewLogger(cfg config.LogConfig, w io.Writer, tty bool) (*slog.Logger, error) {
	var level slog.Level
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	switch cfg.Format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "", "auto":
		if tty {
			return slog.New(slog.NewTextHandler(w, opts)), nil
		}
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}
}
