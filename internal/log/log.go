// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package log builds the *zap.Logger respkit and its cmd/ front ends use for
// structured diagnostics. Library code never calls the package-level
// helpers here directly — it takes a *zap.Logger through Options — this
// package exists so binaries under cmd/ build their logger from one place;
// cmd/resp-cli is the one that does.
package log

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a *zap.Logger whose level is controlled by the RESPKIT_LOG_LEVEL
// environment variable (debug, info, warn, error; default info) and whose
// encoding is controlled by RESPKIT_LOG_FORMAT (json or console; default console).
func New() *zap.Logger {
	level := parseLevel(os.Getenv("RESPKIT_LOG_LEVEL"))

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.TimeKey = "ts"

	var encoder zapcore.Encoder
	if strings.EqualFold(os.Getenv("RESPKIT_LOG_FORMAT"), "json") {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
