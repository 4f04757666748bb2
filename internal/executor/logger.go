package executor

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger writes info and debug entries to stdout and warnings and above
// to stderr. A nil writer discards its levels.
func NewLogger(stdout, stderr io.Writer) *zap.Logger {
	if stdout == nil && stderr == nil {
		return zap.NewNop()
	}

	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	low := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l < zapcore.WarnLevel
	})
	high := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= zapcore.WarnLevel
	})

	var cores []zapcore.Core
	if stdout != nil {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(stdout), low))
	}
	if stderr != nil {
		cores = append(cores, zapcore.NewCore(encoder.Clone(), zapcore.AddSync(stderr), high))
	}
	return zap.New(zapcore.NewTee(cores...))
}
