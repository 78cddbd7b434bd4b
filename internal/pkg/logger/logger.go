package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/doeshing/bsterm/internal/ports"
)

// ZapLogger adapts a zap.Logger to ports.Logger.
type ZapLogger struct {
	z *zap.Logger
}

// New builds a logger. A non-verbose logger discards everything; a verbose
// one writes development-style entries to path, or stderr when path is empty.
func New(verbose bool, path string) (*ZapLogger, error) {
	if !verbose {
		return NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if path != "" {
		cfg.OutputPaths = []string{path}
		cfg.ErrorOutputPaths = []string{path}
	}
	z, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &ZapLogger{z: z}, nil
}

// NewNop returns a logger that drops every entry.
func NewNop() *ZapLogger {
	return &ZapLogger{z: zap.NewNop()}
}

// Wrap adapts an existing zap.Logger.
func Wrap(z *zap.Logger) *ZapLogger {
	return &ZapLogger{z: z}
}

func (l *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	l.z.Debug(msg, toZap(fields)...)
}

func (l *ZapLogger) Info(msg string, fields map[string]interface{}) {
	l.z.Info(msg, toZap(fields)...)
}

func (l *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	l.z.Warn(msg, toZap(fields)...)
}

func (l *ZapLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.z.Error(msg, append(toZap(fields), zap.Error(err))...)
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.z.Sync()
}

func toZap(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}

var _ ports.Logger = (*ZapLogger)(nil)
