// Package mlog sets up the zap loggers used by the command-line tools.
package mlog

import (
	"fmt"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config configures a logger.
type Config struct {
	// Level is one of debug, info, warn or error. Default is info.
	Level string `yaml:"level"`

	// File, if set, receives log output instead of stderr.
	File string `yaml:"file"`

	// Production selects the JSON encoder instead of the console one.
	Production bool `yaml:"production"`
}

var global atomic.Pointer[zap.Logger]

func init() {
	global.Store(zap.NewNop())
}

// L returns the process-wide logger. It is a no-op logger until
// [SetL] is called.
func L() *zap.Logger {
	return global.Load()
}

// SetL replaces the process-wide logger.
func SetL(lg *zap.Logger) {
	global.Store(lg)
}

// NewLogger builds a logger from c. The returned close function
// releases the log file, if any, and must be called once the logger is
// no longer used.
func NewLogger(c *Config) (lg *zap.Logger, closeFn func(), err error) {
	lvl := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if c.Level != "" {
		if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", c.Level, err)
		}
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	newEncoder := zapcore.NewConsoleEncoder
	if c.Production {
		encCfg = zap.NewProductionEncoderConfig()
		newEncoder = zapcore.NewJSONEncoder
	}

	out := zapcore.Lock(os.Stderr)
	closeFile := func() {}
	if c.File != "" {
		f, cf, err := zap.Open(c.File)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFile = cf
	}

	lg = zap.New(zapcore.NewCore(newEncoder(encCfg), out, lvl))
	return lg, func() {
		_ = lg.Sync()
		closeFile()
	}, nil
}
